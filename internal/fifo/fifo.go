// Package fifo provides the raw scan-code byte queue between the
// bit-level sampler and the decoder. It mirrors the RX FIFO of the
// sampling hardware: fixed depth, one producer, one consumer, and
// silent overrun when the consumer falls behind.
package fifo

import "sync"

// DefaultDepth matches the joined RX FIFO depth of the reference
// sampling hardware.
const DefaultDepth = 8

// Queue is a fixed-depth byte ring buffer safe for one concurrent
// producer and one consumer.
type Queue struct {
	mu sync.Mutex

	buf   []byte
	head  int
	count int
}

// New creates a Queue with the given depth. Depths below one fall back
// to DefaultDepth.
func New(depth int) *Queue {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Queue{buf: make([]byte, depth)}
}

// PushByte appends a byte to the queue. It reports whether the byte was
// stored; a full queue drops the byte, matching hardware overrun.
func (q *Queue) PushByte(b byte) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.count)%len(q.buf)] = b
	q.count++
	return true
}

// Empty reports whether no bytes are waiting.
func (q *Queue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count == 0
}

// PopByte removes and returns the oldest byte. It returns 0 when the
// queue is empty; callers are expected to check Empty first, as the
// decoder does.
func (q *Queue) PopByte() byte {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return 0
	}
	b := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return b
}

// Len returns the number of waiting bytes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the queue depth.
func (q *Queue) Cap() int {
	return len(q.buf)
}
