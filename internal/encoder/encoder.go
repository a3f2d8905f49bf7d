// Package encoder produces PS/2 scan code set 2 byte streams from key
// transitions. It is the counterpart of the decoder: a simulated
// keyboard for loopback tools and tests, emitting the same make/break
// framing real hardware clocks onto the wire.
package encoder

import (
	"fmt"

	"github.com/lurk101/ps2kbd-lib/internal/scancode"
)

// Sink receives the encoded byte stream. PushByte reports whether the
// byte was accepted; fifo.Queue satisfies this.
type Sink interface {
	PushByte(b byte) bool
}

// Keyboard emits scan codes for key transitions into a sink.
type Keyboard struct {
	sink Sink

	shiftDown bool
}

// New creates a Keyboard writing to the given sink.
func New(sink Sink) *Keyboard {
	return &Keyboard{sink: sink}
}

// Press emits the make code for a key.
func (k *Keyboard) Press(code byte) bool {
	return k.sink.PushByte(code)
}

// Release emits the break sequence for a key: the 0xF0 prefix followed
// by the key's code.
func (k *Keyboard) Release(code byte) bool {
	return k.sink.PushByte(scancode.Break) && k.sink.PushByte(code)
}

// Tap emits a press immediately followed by a release.
func (k *Keyboard) Tap(code byte) bool {
	return k.Press(code) && k.Release(code)
}

// TypeByte emits the keystrokes that produce ch, pressing and releasing
// the left shift key around shifted characters as needed.
func (k *Keyboard) TypeByte(ch byte) error {
	ks, ok := scancode.KeystrokeFor(ch)
	if !ok {
		return fmt.Errorf("encoder: no keystroke produces %q", ch)
	}

	if ks.Shifted != k.shiftDown {
		if ks.Shifted {
			if !k.Press(scancode.LeftShift) {
				return errOverrun(ch)
			}
		} else {
			if !k.Release(scancode.LeftShift) {
				return errOverrun(ch)
			}
		}
		k.shiftDown = ks.Shifted
	}

	if !k.Tap(ks.Code) {
		return errOverrun(ch)
	}
	return nil
}

// TypeString emits the keystrokes for every character of s, leaving the
// shift key released afterwards.
func (k *Keyboard) TypeString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := k.TypeByte(s[i]); err != nil {
			return err
		}
	}
	if k.shiftDown {
		k.shiftDown = false
		if !k.Release(scancode.LeftShift) {
			return fmt.Errorf("encoder: sink overrun releasing shift")
		}
	}
	return nil
}

func errOverrun(ch byte) error {
	return fmt.Errorf("encoder: sink overrun while typing %q", ch)
}
