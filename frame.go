package textwire

import (
	"encoding/binary"
	"io"

	"github.com/unkn0wn-root/textwire/codec"
)

// MaxPayload is the largest payload length representable in the 16-bit
// record length prefix.
const MaxPayload = 0xFFFF

// lenPrefixSize is the record header: one big-endian uint16.
const lenPrefixSize = 2

// WriteFrame writes one length-prefixed record: a 2-byte big-endian payload
// length followed by the payload. Returns *CapacityError when the payload
// does not fit the 16-bit length field; nothing is written in that case.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxPayload {
		return &CapacityError{Size: len(payload)}
	}
	var hdr [lenPrefixSize]byte
	binary.BigEndian.PutUint16(hdr[:], uint16(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	_, err := w.Write(payload)
	return err
}

// ReadFrame reads one length-prefixed record and returns its payload.
// io.EOF before any header byte marks a clean end of input and is returned
// as-is. A source that ends mid-payload yields *ShortReadError.
func ReadFrame(r io.Reader) ([]byte, error) {
	var hdr [lenPrefixSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	n := int(binary.BigEndian.Uint16(hdr[:]))
	payload := make([]byte, n)
	got, err := io.ReadFull(r, payload)
	if err != nil {
		return nil, &ShortReadError{Want: n, Got: got, Err: err}
	}
	return payload, nil
}

// WriteString frames the validating UTF-8 encoding of s.
func WriteString(w io.Writer, s string) error {
	payload, err := codec.UTF8{}.Encode(s)
	if err != nil {
		return err
	}
	return WriteFrame(w, payload)
}

// ReadString reads one frame and decodes its payload as UTF-8, propagating
// any *codec.DecodeError unchanged.
func ReadString(r io.Reader) (string, error) {
	payload, err := ReadFrame(r)
	if err != nil {
		return "", err
	}
	return codec.UTF8{}.Decode(payload)
}
