package textwire

import "fmt"

// CapacityError reports a payload too large for the 16-bit length prefix.
// It is distinct from decode validation errors: the text itself is fine, it
// just does not fit one record.
type CapacityError struct {
	Size int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("textwire: payload of %d bytes exceeds record capacity %d", e.Size, MaxPayload)
}

// ShortReadError reports a framed record whose source ended before the
// declared payload arrived in full.
type ShortReadError struct {
	Want int
	Got  int
	Err  error
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("textwire: short read: want %d payload bytes, got %d: %v", e.Want, e.Got, e.Err)
}

func (e *ShortReadError) Unwrap() error { return e.Err }
