// Package decoder converts a PS/2 scan code set 2 byte stream into
// ASCII characters, tracking make/break and shift state.
package decoder

import (
	"context"
	"runtime"
	"sync"

	"github.com/lurk101/ps2kbd-lib/internal/scancode"
)

// Source is the raw scan-code byte queue the decoder drains. The
// producer side runs asynchronously; reads happen one byte at a time
// and only after Empty reported false.
type Source interface {
	Empty() bool
	PopByte() byte
}

// Decoder is the scan-code interpreter. It holds at most one decoded
// character; while that character is undelivered no further raw bytes
// are consumed, so the Source keeps buffering independently.
type Decoder struct {
	mu sync.Mutex

	src  Source
	idle func()

	// Protocol state.
	releasePending bool
	shiftActive    bool
	pending        byte // 0 = none
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithIdle sets the cooperative idle function ReadChar invokes between
// polls while no character is available. The default yields to the
// scheduler.
func WithIdle(fn func()) Option {
	return func(d *Decoder) {
		if fn != nil {
			d.idle = fn
		}
	}
}

// New creates a Decoder draining the given source. The decoder starts
// with no release pending, shift inactive, and no pending character.
func New(src Source, opts ...Option) *Decoder {
	d := &Decoder{
		src:  src,
		idle: runtime.Gosched,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TryGetChar polls the decoder. It returns the pending character, or 0
// when none is available. The character is not consumed: repeated calls
// return the same value until ReadChar delivers it. At most one raw
// byte is drained from the source per call, and none while a character
// is pending.
func (d *Decoder) TryGetChar() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pollLocked()
}

func (d *Decoder) pollLocked() byte {
	if d.pending != 0 {
		return d.pending
	}
	if d.src.Empty() {
		return 0
	}
	d.stepLocked(d.src.PopByte())
	return d.pending
}

// stepLocked runs one transition of the protocol state machine.
func (d *Decoder) stepLocked(code byte) {
	switch code {
	case scancode.Break:
		// The next code is a key release. A run of break bytes
		// collapses into a single pending release.
		d.releasePending = true

	case scancode.LeftShift, scancode.RightShift:
		if d.releasePending {
			d.shiftActive = false
			d.releasePending = false
		} else {
			d.shiftActive = true
		}

	default:
		if !d.releasePending {
			d.pending = scancode.Lookup(code, d.shiftActive)
		}
		d.releasePending = false
	}
}

// ReadChar blocks until a character is available, consumes it, and
// returns it. It never returns a zero character: the only non-nil
// error is the context's, for callers that want cancellation. With a
// background context ReadChar waits indefinitely, yielding through the
// idle function on every empty poll.
func (d *Decoder) ReadChar(ctx context.Context) (byte, error) {
	for {
		d.mu.Lock()
		if c := d.pollLocked(); c != 0 {
			d.pending = 0
			d.mu.Unlock()
			return c, nil
		}
		d.mu.Unlock()

		if err := ctx.Err(); err != nil {
			return 0, err
		}
		d.idle()
	}
}

// ShiftActive reports whether a shift key is currently held.
func (d *Decoder) ShiftActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shiftActive
}
