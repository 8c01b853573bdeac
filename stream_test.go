package textwire

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/unkn0wn-root/textwire/codec"
)

type note struct {
	ID   int    `json:"id" msgpack:"id"`
	Body string `json:"body" msgpack:"body"`
}

type captureLogger struct {
	warns  []string
	fields []Fields
}

func (l *captureLogger) Debug(string, Fields) {}
func (l *captureLogger) Info(string, Fields)  {}
func (l *captureLogger) Error(string, Fields) {}
func (l *captureLogger) Warn(msg string, f Fields) {
	l.warns = append(l.warns, msg)
	l.fields = append(l.fields, f)
}

func roundTripNotes[C codec.Codec[note]](t *testing.T, c C) {
	t.Helper()
	in := []note{
		{ID: 1, Body: "first"},
		{ID: 2, Body: "null \x00 and cat \U0001F431"},
		{ID: 3, Body: ""},
	}

	var buf bytes.Buffer
	w := NewWriter[note](&buf, c, Options{})
	for _, n := range in {
		if err := w.Write(n); err != nil {
			t.Fatalf("Write(%+v): %v", n, err)
		}
	}

	r := NewReader[note](&buf, c, Options{})
	for _, want := range in {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("after last record: got %v want io.EOF", err)
	}
}

func TestStreamJSON(t *testing.T)    { roundTripNotes(t, codec.JSON[note]{}) }
func TestStreamCBOR(t *testing.T)    { roundTripNotes(t, codec.MustCBOR[note](true)) }
func TestStreamMsgpack(t *testing.T) { roundTripNotes(t, codec.Msgpack[note]{}) }

func TestStreamUTF8(t *testing.T) {
	in := []string{"hello", "a\x00b", "\U0001F431"}

	var buf bytes.Buffer
	w := NewWriter[string](&buf, codec.UTF8{}, Options{})
	for _, s := range in {
		if err := w.Write(s); err != nil {
			t.Fatalf("Write(%q): %v", s, err)
		}
	}

	r := NewReader[string](&buf, codec.UTF8{}, Options{})
	for _, want := range in {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: got %q want %q", got, want)
		}
	}
}

func TestReaderLogsRejectedRecord(t *testing.T) {
	// hand-framed malformed payload
	in := []byte{0x00, 0x02, 0xff, 0xff}
	log := &captureLogger{}
	r := NewReader[string](bytes.NewReader(in), codec.UTF8{}, Options{Logger: log})

	_, err := r.Read()
	var de *codec.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type %T, want *codec.DecodeError", err)
	}
	if len(log.warns) != 1 || log.warns[0] != "textwire.record_rejected" {
		t.Fatalf("warn log: got %v", log.warns)
	}
	if log.fields[0]["window"] != "ffff" || log.fields[0]["offset"] != 0 {
		t.Fatalf("warn fields: got %v", log.fields[0])
	}
}

func TestWriterLogsOversizedRecord(t *testing.T) {
	log := &captureLogger{}
	var buf bytes.Buffer
	w := NewWriter[string](&buf, codec.String{}, Options{Logger: log})

	err := w.Write(strings.Repeat("a", MaxPayload+1))
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("error type %T, want *CapacityError", err)
	}
	if len(log.warns) != 1 || log.warns[0] != "textwire.record_too_large" {
		t.Fatalf("warn log: got %v", log.warns)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial frame written: %d bytes", buf.Len())
	}
}
