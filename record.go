package textwire

import "io"

// Record is a single text value serialized as one length-prefixed frame.
// Records compare by value; the zero Record holds the empty string.
type Record struct {
	text string
}

func NewRecord(text string) Record { return Record{text: text} }

func (r Record) Text() string { return r.text }

// Equal reports structural equality.
func (r Record) Equal(o Record) bool { return r.text == o.text }

// Encode writes the record as one frame.
func (r Record) Encode(w io.Writer) error { return WriteString(w, r.text) }

// Decode replaces the record's text with the next framed record from rd.
// The record is left unchanged on error.
func (r *Record) Decode(rd io.Reader) error {
	s, err := ReadString(rd)
	if err != nil {
		return err
	}
	r.text = s
	return nil
}
