// Package textwire reads and writes legacy-compatible, length-prefixed text
// records. A record on the wire is a 2-byte big-endian payload length
// followed by that many bytes of standard UTF-8.
//
// Components:
//   - codec.UTF8: validating string codec. Encoding is standard UTF-8 (null
//     as a single 0x00 byte, supplementary-plane characters as one 4-byte
//     sequence). Decoding rejects malformed input with the exact offset and
//     a bounded hex window of the offending bytes.
//   - WriteFrame/ReadFrame: the 16-bit length-prefixed frame layer over any
//     io.Writer/io.Reader. Payloads are capped at 65535 bytes.
//   - Record: a single-string value type serialized as one frame.
//   - Writer[V]/Reader[V]: generic framed records over a pluggable Codec[V]
//     (JSON, CBOR, Msgpack, Protobuf, or the validating UTF8 codec).
//
// Error contract:
//
//	"Invalid UTF8 at <hex>"   - malformed leading or continuation byte
//	"Truncated UTF8 at <hex>" - well-formed prefix, buffer ends early
//
// where <hex> renders up to 6 bytes starting at the failure offset. These
// strings are part of the wire-compatibility contract, not incidental
// logging.
package textwire
