// Package ps2kbd decodes a PS/2 scan code set 2 keyboard byte stream
// into ASCII characters. The hardware-specific half of a PS/2 stack (a
// bit sampler clocking 11-bit frames off the data/clock pair) lives
// outside this module; anything that can hand the decoder raw scan code
// bytes through the Source interface works, from a memory replay to a
// serial-port bridge.
package ps2kbd

import (
	"github.com/lurk101/ps2kbd-lib/internal/decoder"
	"github.com/lurk101/ps2kbd-lib/internal/encoder"
	"github.com/lurk101/ps2kbd-lib/internal/fifo"
	"github.com/lurk101/ps2kbd-lib/internal/scancode"
	"github.com/lurk101/ps2kbd-lib/internal/source"
)

// -----------------------------------------------------------------------------
// Type Aliases - These re-export types from the internal packages
// -----------------------------------------------------------------------------

// Decoder is the scan-code interpreter. TryGetChar polls it without
// blocking; ReadChar blocks until a character is available.
type Decoder = decoder.Decoder

// Source is the raw scan-code byte queue a Decoder drains.
type Source = decoder.Source

// Option configures a Decoder.
type Option = decoder.Option

// Queue is a fixed-depth byte FIFO safe for one concurrent producer and
// one consumer. It implements Source.
type Queue = fifo.Queue

// Keyboard emits scan code streams for key transitions; the producer
// counterpart of Decoder, used for loopback tools and tests.
type Keyboard = encoder.Keyboard

// Sink receives bytes emitted by a Keyboard. *Queue satisfies it.
type Sink = encoder.Sink

// Keystroke is a key transition (scan code plus shift) that produces a
// character.
type Keystroke = scancode.Keystroke

// Replay is an in-memory Source serving a fixed byte sequence.
type Replay = source.Replay

// SerialConfig describes a UART-attached PS/2 adapter.
type SerialConfig = source.SerialConfig

// Serial forwards scan code bytes from a serial port into a Queue.
type Serial = source.Serial

// Distinguished scan code values.
const (
	Break      = scancode.Break
	LeftShift  = scancode.LeftShift
	RightShift = scancode.RightShift
)

// DefaultQueueDepth is the depth of queues created by NewWithQueue,
// matching the RX FIFO of the reference sampling hardware.
const DefaultQueueDepth = fifo.DefaultDepth

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// New creates a Decoder draining src.
func New(src Source, opts ...Option) *Decoder {
	return decoder.New(src, opts...)
}

// NewWithQueue creates a Decoder together with the queue it drains. The
// queue is handed to whatever produces the raw byte stream.
func NewWithQueue(depth int, opts ...Option) (*Decoder, *Queue) {
	q := fifo.New(depth)
	return decoder.New(q, opts...), q
}

// NewQueue creates a raw byte queue of the given depth (values below
// one fall back to DefaultQueueDepth).
func NewQueue(depth int) *Queue {
	return fifo.New(depth)
}

// NewKeyboard creates a simulated keyboard writing scan codes to sink.
func NewKeyboard(sink Sink) *Keyboard {
	return encoder.New(sink)
}

// FromBytes creates a Replay source over a copy of b.
func FromBytes(b []byte) *Replay {
	return source.FromBytes(b)
}

// OpenSerial opens a serial-port source that feeds q until closed.
func OpenSerial(cfg SerialConfig, q *Queue) (*Serial, error) {
	return source.OpenSerial(cfg, q)
}

// WithIdle sets the cooperative idle function ReadChar invokes while no
// character is available.
func WithIdle(fn func()) Option {
	return decoder.WithIdle(fn)
}

// -----------------------------------------------------------------------------
// Table helpers
// -----------------------------------------------------------------------------

// Lookup translates a scan code through the unshifted or shifted US
// layout table. Unmapped and out-of-range codes return 0.
func Lookup(code byte, shifted bool) byte {
	return scancode.Lookup(code, shifted)
}

// KeystrokeFor returns the keystroke that types ch on the US layout.
func KeystrokeFor(ch byte) (Keystroke, bool) {
	return scancode.KeystrokeFor(ch)
}
