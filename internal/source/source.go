// Package source provides scan-code byte producers that feed the
// decoder's queue: in-memory replays for tests and tools, and pumps
// that model the asynchronous hardware sampler on top of an io.Reader
// or a serial port.
package source

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/lurk101/ps2kbd-lib/internal/fifo"
)

// Replay serves a fixed byte sequence. It implements the decoder's
// Source directly, with no producer goroutine.
type Replay struct {
	mu    sync.Mutex
	bytes []byte
}

// FromBytes creates a Replay over a copy of b.
func FromBytes(b []byte) *Replay {
	return &Replay{bytes: append([]byte(nil), b...)}
}

// Empty reports whether the replay is exhausted.
func (r *Replay) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bytes) == 0
}

// Len returns the number of bytes not yet served.
func (r *Replay) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bytes)
}

// PopByte returns the next byte, or 0 when exhausted.
func (r *Replay) PopByte() byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.bytes) == 0 {
		return 0
	}
	b := r.bytes[0]
	r.bytes = r.bytes[1:]
	return b
}

// Pump copies bytes from r into q until r is exhausted or ctx is
// cancelled. Bytes that arrive while the queue is full are dropped the
// way a hardware FIFO overruns; each drop is logged at debug level.
// Pump returns nil on EOF.
func Pump(ctx context.Context, r io.Reader, q *fifo.Queue) error {
	buf := make([]byte, 64)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if !q.PushByte(b) {
				slog.Debug("ps2 source: queue overrun, byte dropped", "byte", b)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
