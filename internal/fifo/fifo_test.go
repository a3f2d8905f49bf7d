package fifo

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	q := New(4)

	for _, b := range []byte{0x1c, 0xf0, 0x1c} {
		if !q.PushByte(b) {
			t.Fatalf("push 0x%02x failed on non-full queue", b)
		}
	}
	if q.Len() != 3 {
		t.Fatalf("expected 3 queued bytes, got %d", q.Len())
	}

	for _, want := range []byte{0x1c, 0xf0, 0x1c} {
		if q.Empty() {
			t.Fatal("queue empty before all bytes drained")
		}
		if got := q.PopByte(); got != want {
			t.Fatalf("expected 0x%02x, got 0x%02x", want, got)
		}
	}
	if !q.Empty() {
		t.Fatal("expected empty queue after drain")
	}
}

func TestQueueOverrunDropsByte(t *testing.T) {
	q := New(2)

	if !q.PushByte(0x01) || !q.PushByte(0x02) {
		t.Fatal("fill failed")
	}
	if q.PushByte(0x03) {
		t.Fatal("expected push to fail on full queue")
	}

	// The dropped byte must not displace queued data.
	if got := q.PopByte(); got != 0x01 {
		t.Fatalf("expected 0x01, got 0x%02x", got)
	}
	if got := q.PopByte(); got != 0x02 {
		t.Fatalf("expected 0x02, got 0x%02x", got)
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := New(3)

	for round := 0; round < 10; round++ {
		b := byte(round)
		if !q.PushByte(b) {
			t.Fatalf("round %d: push failed", round)
		}
		if got := q.PopByte(); got != b {
			t.Fatalf("round %d: expected 0x%02x, got 0x%02x", round, b, got)
		}
	}
	if !q.Empty() {
		t.Fatal("expected empty queue")
	}
}

func TestQueueDefaultDepth(t *testing.T) {
	if got := New(0).Cap(); got != DefaultDepth {
		t.Fatalf("expected default depth %d, got %d", DefaultDepth, got)
	}
	if got := New(-5).Cap(); got != DefaultDepth {
		t.Fatalf("expected default depth %d, got %d", DefaultDepth, got)
	}
	if got := New(32).Cap(); got != 32 {
		t.Fatalf("expected depth 32, got %d", got)
	}
}

func TestQueuePopEmptyReturnsZero(t *testing.T) {
	q := New(2)
	if got := q.PopByte(); got != 0 {
		t.Fatalf("expected 0 from empty queue, got 0x%02x", got)
	}
}

func TestQueueConcurrentProducer(t *testing.T) {
	q := New(1024)
	const n = 512

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			for !q.PushByte(byte(i)) {
			}
		}
	}()

	got := make([]byte, 0, n)
	for len(got) < n {
		if q.Empty() {
			continue
		}
		got = append(got, q.PopByte())
	}
	<-done

	for i, b := range got {
		if b != byte(i) {
			t.Fatalf("byte %d: expected 0x%02x, got 0x%02x", i, byte(i), b)
		}
	}
}
