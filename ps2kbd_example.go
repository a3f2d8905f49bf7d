//go:build ignore

// This file demonstrates every public API in the ps2kbd package.
// It is excluded from the build and serves as a reference and compile-time check.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	ps2kbd "github.com/lurk101/ps2kbd-lib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// =========================================================================
	// Replay sources - decode a captured scan code stream
	// =========================================================================
	capture := []byte{0x33, 0x24, 0x5a} // 'h', 'e', Enter

	dec := ps2kbd.New(ps2kbd.FromBytes(capture))

	// Non-blocking poll: 0 means no character yet. The character stays
	// pending until ReadChar consumes it.
	if c := dec.TryGetChar(); c != 0 {
		fmt.Printf("pending: %q\n", c)
	}

	// Blocking read with cancellation.
	readCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	for {
		c, err := dec.ReadChar(readCtx)
		if err != nil {
			break // context expired: capture exhausted
		}
		fmt.Printf("decoded: %q\n", c)
	}

	// =========================================================================
	// Queues - wire an asynchronous producer to the decoder
	// =========================================================================
	dec2, queue := ps2kbd.NewWithQueue(ps2kbd.DefaultQueueDepth,
		ps2kbd.WithIdle(func() { time.Sleep(time.Millisecond) }))

	// A standalone queue works too; *Queue implements both Source and Sink.
	spare := ps2kbd.NewQueue(64)
	_ = spare.PushByte(0x1c)
	_ = spare.Empty()
	_ = spare.PopByte()
	_, _ = spare.Len(), spare.Cap()

	// =========================================================================
	// Keyboard - produce scan code streams (loopback/testing)
	// =========================================================================
	kbd := ps2kbd.NewKeyboard(queue)
	kbd.Press(ps2kbd.LeftShift)
	kbd.Tap(0x1c) // 'A' while shift is down
	kbd.Release(ps2kbd.LeftShift)
	if err := kbd.TypeString("hi\n"); err != nil {
		return err
	}

	for !queue.Empty() {
		if c := dec2.TryGetChar(); c != 0 {
			fmt.Printf("loopback: %q\n", c)
			if _, err := dec2.ReadChar(ctx); err != nil {
				return err
			}
		}
	}

	// =========================================================================
	// Table helpers
	// =========================================================================
	_ = ps2kbd.Lookup(0x1e, false) // '2'
	_ = ps2kbd.Lookup(0x1e, true)  // '@'
	if ks, ok := ps2kbd.KeystrokeFor('@'); ok {
		fmt.Printf("'@' = code 0x%02x shifted=%v\n", ks.Code, ks.Shifted)
	}

	// Distinguished protocol bytes.
	_ = []byte{ps2kbd.Break, ps2kbd.LeftShift, ps2kbd.RightShift}

	// =========================================================================
	// Serial sources - a UART-attached PS/2 adapter
	// =========================================================================
	liveQueue := ps2kbd.NewQueue(256)
	serial, err := ps2kbd.OpenSerial(ps2kbd.SerialConfig{
		Path:     "/dev/ttyUSB0",
		BaudRate: 115200,
	}, liveQueue)
	if err == nil {
		defer serial.Close()
		live := ps2kbd.New(liveQueue)
		c, err := live.ReadChar(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("typed: %q\n", c)
	}

	return nil
}
