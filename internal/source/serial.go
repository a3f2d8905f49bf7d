package source

import (
	"context"
	"fmt"
	"log/slog"

	"go.bug.st/serial"

	"github.com/lurk101/ps2kbd-lib/internal/fifo"
)

// SerialConfig describes a UART-attached PS/2 adapter that forwards raw
// scan code bytes over a serial port.
type SerialConfig struct {
	Path     string
	BaudRate int
}

// DefaultBaudRate is the rate the reference adapter firmware uses.
const DefaultBaudRate = 115200

// Serial pumps scan code bytes from a serial port into a queue.
type Serial struct {
	port   serial.Port
	cancel context.CancelFunc
	done   chan struct{}
}

// OpenSerial opens the configured port and starts forwarding its bytes
// into q until Close is called.
func OpenSerial(cfg SerialConfig, q *fifo.Queue) (*Serial, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("serial source: no port path configured")
	}
	baud := cfg.BaudRate
	if baud == 0 {
		baud = DefaultBaudRate
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Path, mode)
	if err != nil {
		return nil, fmt.Errorf("serial source: open %s: %w", cfg.Path, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Serial{
		port:   port,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		if err := Pump(ctx, port, q); err != nil && ctx.Err() == nil {
			slog.Error("serial source: pump stopped", "path", cfg.Path, "err", err)
		}
	}()
	return s, nil
}

// Close stops the pump and closes the port.
func (s *Serial) Close() error {
	s.cancel()
	err := s.port.Close()
	<-s.done
	return err
}
