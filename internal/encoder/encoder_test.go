package encoder

import (
	"bytes"
	"testing"

	"github.com/lurk101/ps2kbd-lib/internal/scancode"
)

// captureSink records every byte pushed into it.
type captureSink struct {
	bytes []byte
	full  bool
}

func (s *captureSink) PushByte(b byte) bool {
	if s.full {
		return false
	}
	s.bytes = append(s.bytes, b)
	return true
}

func TestPressReleaseFraming(t *testing.T) {
	sink := &captureSink{}
	kbd := New(sink)

	kbd.Press(0x1c)
	kbd.Release(0x1c)

	want := []byte{0x1c, 0xf0, 0x1c}
	if !bytes.Equal(sink.bytes, want) {
		t.Fatalf("stream = %x, want %x", sink.bytes, want)
	}
}

func TestTypeByteUnshifted(t *testing.T) {
	sink := &captureSink{}
	kbd := New(sink)

	if err := kbd.TypeByte('a'); err != nil {
		t.Fatalf("TypeByte error: %v", err)
	}
	want := []byte{0x1c, 0xf0, 0x1c}
	if !bytes.Equal(sink.bytes, want) {
		t.Fatalf("stream = %x, want %x", sink.bytes, want)
	}
}

func TestTypeByteShifted(t *testing.T) {
	sink := &captureSink{}
	kbd := New(sink)

	if err := kbd.TypeByte('A'); err != nil {
		t.Fatalf("TypeByte error: %v", err)
	}
	want := []byte{scancode.LeftShift, 0x1c, 0xf0, 0x1c}
	if !bytes.Equal(sink.bytes, want) {
		t.Fatalf("stream = %x, want %x", sink.bytes, want)
	}
}

func TestTypeStringSharesShiftRun(t *testing.T) {
	sink := &captureSink{}
	kbd := New(sink)

	if err := kbd.TypeString("AB"); err != nil {
		t.Fatalf("TypeString error: %v", err)
	}
	// One shift press covers the whole run; shift is released at the end.
	want := []byte{
		scancode.LeftShift,
		0x1c, 0xf0, 0x1c, // A
		0x32, 0xf0, 0x32, // B
		0xf0, scancode.LeftShift,
	}
	if !bytes.Equal(sink.bytes, want) {
		t.Fatalf("stream = %x, want %x", sink.bytes, want)
	}
}

func TestTypeStringMixedCase(t *testing.T) {
	sink := &captureSink{}
	kbd := New(sink)

	if err := kbd.TypeString("aA"); err != nil {
		t.Fatalf("TypeString error: %v", err)
	}
	want := []byte{
		0x1c, 0xf0, 0x1c, // a
		scancode.LeftShift,
		0x1c, 0xf0, 0x1c, // A
		0xf0, scancode.LeftShift,
	}
	if !bytes.Equal(sink.bytes, want) {
		t.Fatalf("stream = %x, want %x", sink.bytes, want)
	}
}

func TestTypeByteUnknownCharacter(t *testing.T) {
	kbd := New(&captureSink{})
	if err := kbd.TypeByte(0x07); err == nil {
		t.Fatal("expected error for untypeable character")
	}
}

func TestTypeByteSinkOverrun(t *testing.T) {
	sink := &captureSink{full: true}
	kbd := New(sink)
	if err := kbd.TypeByte('a'); err == nil {
		t.Fatal("expected overrun error from full sink")
	}
}
