package source

import (
	"bytes"
	"context"
	"testing"

	"github.com/lurk101/ps2kbd-lib/internal/fifo"
)

func TestReplayOrder(t *testing.T) {
	r := FromBytes([]byte{0x12, 0x1e, 0xf0, 0x12})

	var got []byte
	for !r.Empty() {
		got = append(got, r.PopByte())
	}
	want := []byte{0x12, 0x1e, 0xf0, 0x12}
	if !bytes.Equal(got, want) {
		t.Fatalf("replay = %x, want %x", got, want)
	}
	if r.PopByte() != 0 {
		t.Fatal("exhausted replay should return 0")
	}
}

func TestReplayCopiesInput(t *testing.T) {
	src := []byte{0x1c}
	r := FromBytes(src)
	src[0] = 0xff
	if got := r.PopByte(); got != 0x1c {
		t.Fatalf("replay aliased caller slice: got 0x%02x", got)
	}
}

func TestPumpCopiesUntilEOF(t *testing.T) {
	q := fifo.New(16)
	data := []byte{0x1c, 0xf0, 0x1c, 0x5a}

	if err := Pump(context.Background(), bytes.NewReader(data), q); err != nil {
		t.Fatalf("Pump error: %v", err)
	}

	var got []byte
	for !q.Empty() {
		got = append(got, q.PopByte())
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("pumped %x, want %x", got, data)
	}
}

func TestPumpHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Pump(ctx, bytes.NewReader([]byte{0x1c}), fifo.New(4))
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPumpDropsOnOverrun(t *testing.T) {
	q := fifo.New(2)
	data := []byte{1, 2, 3, 4}

	if err := Pump(context.Background(), bytes.NewReader(data), q); err != nil {
		t.Fatalf("Pump error: %v", err)
	}
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued bytes after overrun, got %d", q.Len())
	}
	if got := q.PopByte(); got != 1 {
		t.Fatalf("oldest byte displaced by overrun: got 0x%02x", got)
	}
}

func TestOpenSerialRequiresPath(t *testing.T) {
	if _, err := OpenSerial(SerialConfig{}, fifo.New(8)); err == nil {
		t.Fatal("expected error for empty port path")
	}
}
