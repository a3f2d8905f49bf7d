// Command ps2term is an interactive loopback demo: every key typed on
// the local terminal is encoded into a PS/2 scan code set 2 byte
// stream, run through the decoder, and echoed back together with the
// raw bytes that crossed the simulated wire.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	ps2kbd "github.com/lurk101/ps2kbd-lib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ps2term: %v\n", err)
		os.Exit(1)
	}
}

// wireTap records the bytes pushed through it on their way to the queue.
type wireTap struct {
	sink  ps2kbd.Sink
	bytes []byte
}

func (t *wireTap) PushByte(b byte) bool {
	t.bytes = append(t.bytes, b)
	return t.sink.PushByte(b)
}

func run() error {
	showWire := flag.Bool("wire", true, "show the scan code bytes for each keystroke")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	dec, queue := ps2kbd.NewWithQueue(64)
	tap := &wireTap{sink: queue}
	kbd := ps2kbd.NewKeyboard(tap)

	dim := ansi.Style{}.Faint()
	fmt.Print(dim.Styled("ps2term: type away, Ctrl-C quits") + "\r\n")

	in := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(in); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		ch := in[0]
		switch ch {
		case 0x03: // Ctrl-C
			fmt.Print("\r\n")
			return nil
		case '\r':
			ch = '\n'
		}

		tap.bytes = tap.bytes[:0]
		if err := kbd.TypeByte(ch); err != nil {
			// Keys with no PS/2 translation are shown dimmed and skipped.
			fmt.Print(dim.Styled(fmt.Sprintf("<%02x>", in[0])))
			continue
		}

		for {
			c := dec.TryGetChar()
			if c == 0 {
				if queue.Empty() {
					break
				}
				continue
			}
			echo(c)
			if *showWire {
				fmt.Print(" " + dim.Styled(fmt.Sprintf("% x", tap.bytes)) + "\r\n")
			}
			// Consume the delivered character.
			if _, err := dec.ReadChar(context.Background()); err != nil {
				return err
			}
		}
	}
}

func echo(c byte) {
	switch c {
	case '\n':
		fmt.Print(ansi.EraseLineRight + "\r\n")
	case 0x08:
		fmt.Print("\b \b")
	default:
		fmt.Printf("%c", c)
	}
}
