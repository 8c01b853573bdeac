package codec

// UTF8 is the validating Codec[string] behind the legacy record format.
// The zero value is ready to use.
//
// Encoding is standard UTF-8 with two deliberate departures from the
// platform-native "modified UTF-8" the format descends from:
//   - U+0000 encodes as the single byte 0x00, never the overlong 0xC0 0x80.
//   - Supplementary-plane characters encode as one 4-byte sequence, never as
//     two 3-byte surrogate encodings.
//
// Decoding validates byte-exactly and reports failures as *DecodeError with
// the offset and a bounded hex window of the offending bytes. The legacy
// forms above are rejected on input as well: the decoder accepts only what
// the encoder can produce for those code points.
type UTF8 struct{}

var _ Codec[string] = UTF8{}

// Encode returns the UTF-8 encoding of s. It is total: any well-formed text
// encodes, and no length limit applies at this layer. Bytes of s that do not
// form valid UTF-8 are encoded as U+FFFD.
func (UTF8) Encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = appendRune(out, r)
	}
	return out, nil
}

// appendRune appends the minimal UTF-8 form of r. Callers guarantee r is a
// Unicode scalar value.
func appendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst,
			0xC0|byte(r>>6),
			0x80|byte(r)&0x3F)
	case r < 0x10000:
		return append(dst,
			0xE0|byte(r>>12),
			0x80|byte(r>>6)&0x3F,
			0x80|byte(r)&0x3F)
	default:
		return append(dst,
			0xF0|byte(r>>18),
			0x80|byte(r>>12)&0x3F,
			0x80|byte(r>>6)&0x3F,
			0x80|byte(r)&0x3F)
	}
}

// Decode validates and decodes b. On failure it returns a *DecodeError
// classified as either InvalidSequence or TruncatedSequence:
//
//	TruncatedSequence - a multi-byte sequence began but the buffer ended
//	before all continuation bytes arrived; offset is the sequence start.
//	InvalidSequence - everything else: a bare continuation byte or an
//	0xF8-0xFF lead (offset is the current position), or a bad continuation
//	byte, a legacy modified-UTF-8 form, or an out-of-range scalar (offset is
//	the sequence start).
func (UTF8) Decode(b []byte) (string, error) {
	out := make([]byte, 0, len(b))
	off := 0
	for off < len(b) {
		lead := b[off]
		if lead < 0x80 {
			out = append(out, lead)
			off++
			continue
		}
		if lead < 0xC0 {
			// continuation byte where a lead is expected
			return "", newDecodeError(InvalidSequence, b, off)
		}
		if lead >= 0xF8 {
			// 5- and 6-byte lead bytes have no standard UTF-8 meaning
			return "", newDecodeError(InvalidSequence, b, off)
		}

		var size int
		var r rune
		switch {
		case lead < 0xE0:
			size, r = 2, rune(lead&0x1F)
		case lead < 0xF0:
			size, r = 3, rune(lead&0x0F)
		default:
			size, r = 4, rune(lead&0x07)
		}
		if off+size > len(b) {
			return "", newDecodeError(TruncatedSequence, b, off)
		}
		for i := 1; i < size; i++ {
			c := b[off+i]
			if c&0xC0 != 0x80 {
				return "", newDecodeError(InvalidSequence, b, off)
			}
			r = r<<6 | rune(c&0x3F)
		}
		if !acceptScalar(size, r) {
			return "", newDecodeError(InvalidSequence, b, off)
		}
		out = appendRune(out, r)
		off += size
	}
	return string(out), nil
}

// acceptScalar rejects the decoded forms the encoder can never produce:
// the 2-byte overlong null, 3-byte surrogate halves (the legacy split
// supplementary encoding), and 4-byte values beyond U+10FFFF.
func acceptScalar(size int, r rune) bool {
	switch size {
	case 2:
		return r != 0
	case 3:
		return r < 0xD800 || r > 0xDFFF
	default:
		return r <= 0x10FFFF
	}
}
