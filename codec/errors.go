package codec

import "encoding/hex"

// DecodeErrorKind classifies UTF-8 decode failures.
type DecodeErrorKind int

const (
	// InvalidSequence marks a malformed leading or continuation byte, or a
	// legacy modified-UTF-8 form this codec does not accept.
	InvalidSequence DecodeErrorKind = iota
	// TruncatedSequence marks a multi-byte sequence cut short by the end of
	// the buffer.
	TruncatedSequence
)

func (k DecodeErrorKind) String() string {
	switch k {
	case InvalidSequence:
		return "invalid"
	case TruncatedSequence:
		return "truncated"
	default:
		return "unknown"
	}
}

// hexWindowBytes bounds the hex context carried by a DecodeError.
const hexWindowBytes = 6

// DecodeError reports a malformed UTF-8 byte sequence. Offset is the byte
// position where the offending sequence begins; Window is the hex rendering
// of up to 6 bytes starting there. The same input always produces the same
// kind, offset and window.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset int
	Window string
}

func newDecodeError(kind DecodeErrorKind, b []byte, off int) *DecodeError {
	return &DecodeError{Kind: kind, Offset: off, Window: hexWindow(b, off)}
}

// hexWindow renders up to hexWindowBytes bytes of b starting at off. Pure
// function of its arguments; fewer bytes are rendered when the buffer ends
// before the window does, with no padding.
func hexWindow(b []byte, off int) string {
	end := off + hexWindowBytes
	if end > len(b) {
		end = len(b)
	}
	return hex.EncodeToString(b[off:end])
}

// Error strings are part of the wire-compatibility contract. Do not reword.
func (e *DecodeError) Error() string {
	if e.Kind == TruncatedSequence {
		return "Truncated UTF8 at " + e.Window
	}
	return "Invalid UTF8 at " + e.Window
}
