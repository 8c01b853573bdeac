package textwire

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/unkn0wn-root/textwire/codec"
)

func TestFrameWireShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteString(&buf, "abc"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	want := []byte{0x00, 0x03, 'a', 'b', 'c'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire bytes: got % x want % x", buf.Bytes(), want)
	}
}

func TestFrameLengthBigEndian(t *testing.T) {
	payload := bytes.Repeat([]byte{'a'}, 0x0102)
	var buf bytes.Buffer
	if err := WriteFrame(&buf, payload); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	b := buf.Bytes()
	if b[0] != 0x01 || b[1] != 0x02 {
		t.Fatalf("length prefix: got %02x%02x want 0102", b[0], b[1])
	}
	if len(b) != lenPrefixSize+len(payload) {
		t.Fatalf("frame size: got %d want %d", len(b), lenPrefixSize+len(payload))
	}
}

func TestStringRoundTripSequential(t *testing.T) {
	cases := []string{"", "hello", "a\x00b", "\U0001F431 says mäu", "日本語"}

	var buf bytes.Buffer
	for _, tc := range cases {
		if err := WriteString(&buf, tc); err != nil {
			t.Fatalf("WriteString(%q): %v", tc, err)
		}
	}
	for _, tc := range cases {
		got, err := ReadString(&buf)
		if err != nil {
			t.Fatalf("ReadString: %v", err)
		}
		if got != tc {
			t.Fatalf("round trip mismatch: got %q want %q", got, tc)
		}
	}
	if _, err := ReadFrame(&buf); err != io.EOF {
		t.Fatalf("after last record: got %v want io.EOF", err)
	}
}

func TestWriteCapacity(t *testing.T) {
	big := strings.Repeat("a", MaxPayload+1)

	var buf bytes.Buffer
	err := WriteString(&buf, big)
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("error type %T, want *CapacityError", err)
	}
	if ce.Size != MaxPayload+1 {
		t.Fatalf("CapacityError.Size: got %d want %d", ce.Size, MaxPayload+1)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial frame written: %d bytes", buf.Len())
	}

	// The encoding itself is fine outside framing.
	enc, err := codec.UTF8{}.Encode(big)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := codec.UTF8{}.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec != big {
		t.Fatalf("oversized text does not round trip outside framing")
	}
}

func TestReadShortPayload(t *testing.T) {
	in := []byte{0x00, 0x05, 'a', 'b', 'c'}
	_, err := ReadString(bytes.NewReader(in))
	var sre *ShortReadError
	if !errors.As(err, &sre) {
		t.Fatalf("error type %T, want *ShortReadError", err)
	}
	if sre.Want != 5 || sre.Got != 3 {
		t.Fatalf("short read: got want=%d got=%d, expected want=5 got=3", sre.Want, sre.Got)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected wrapped io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestReadCleanEOF(t *testing.T) {
	if _, err := ReadFrame(bytes.NewReader(nil)); err != io.EOF {
		t.Fatalf("empty source: got %v want io.EOF", err)
	}
}

func TestReadDecodeErrorPropagates(t *testing.T) {
	// framed truncated CAT FACE: valid frame, malformed payload
	in := []byte{0x00, 0x03, 0xf0, 0x9f, 0x90}
	_, err := ReadString(bytes.NewReader(in))
	var de *codec.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type %T, want *codec.DecodeError", err)
	}
	if de.Kind != codec.TruncatedSequence || de.Offset != 0 || de.Window != "f09f90" {
		t.Fatalf("decode error: got %+v", de)
	}
	if err.Error() != "Truncated UTF8 at f09f90" {
		t.Fatalf("message: got %q", err.Error())
	}
}
