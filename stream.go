package textwire

import (
	"errors"
	"io"

	"github.com/unkn0wn-root/textwire/codec"
)

// Options tune Writer and Reader. The zero value is ready to use.
type Options struct {
	// Logger receives warn-level diagnostics for rejected records.
	// nil => NopLogger.
	Logger Logger
}

// Writer emits framed records of V onto an io.Writer, one frame per value,
// using a pluggable codec for the payload.
type Writer[V any] struct {
	w   io.Writer
	c   codec.Codec[V]
	log Logger
}

func NewWriter[V any](w io.Writer, c codec.Codec[V], opts Options) *Writer[V] {
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}
	return &Writer[V]{w: w, c: c, log: opts.Logger}
}

// Write encodes v and frames it. Values whose payload exceeds MaxPayload
// fail with *CapacityError and are logged; nothing is written.
func (wr *Writer[V]) Write(v V) error {
	payload, err := wr.c.Encode(v)
	if err != nil {
		return err
	}
	err = WriteFrame(wr.w, payload)
	var ce *CapacityError
	if errors.As(err, &ce) {
		wr.log.Warn("textwire.record_too_large", Fields{
			"size": ce.Size,
			"max":  MaxPayload,
		})
	}
	return err
}

// Reader consumes framed records of V from an io.Reader.
type Reader[V any] struct {
	r   io.Reader
	c   codec.Codec[V]
	log Logger
}

func NewReader[V any](r io.Reader, c codec.Codec[V], opts Options) *Reader[V] {
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}
	return &Reader[V]{r: r, c: c, log: opts.Logger}
}

// Read returns the next record. io.EOF marks a clean end of input. Decode
// failures are logged with their offset and hex window, then returned
// unchanged so callers keep the full error contract.
func (rd *Reader[V]) Read() (V, error) {
	var zero V
	payload, err := ReadFrame(rd.r)
	if err != nil {
		return zero, err
	}
	v, err := rd.c.Decode(payload)
	if err != nil {
		var de *codec.DecodeError
		if errors.As(err, &de) {
			rd.log.Warn("textwire.record_rejected", Fields{
				"kind":   de.Kind.String(),
				"offset": de.Offset,
				"window": de.Window,
			})
		}
		return zero, err
	}
	return v, nil
}
