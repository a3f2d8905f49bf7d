// Command ps2decode turns a PS/2 scan code set 2 byte stream into text.
// It decodes captured streams from a file or stdin (binary or hex) and
// can follow a live serial-port adapter.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	ps2kbd "github.com/lurk101/ps2kbd-lib"
)

// config is the optional YAML configuration file.
type config struct {
	Serial struct {
		Path     string `yaml:"path"`
		BaudRate int    `yaml:"baud_rate"`
	} `yaml:"serial"`
	QueueDepth int `yaml:"queue_depth"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ps2decode: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inPath     = flag.String("in", "-", "capture file to decode, - for stdin")
		hexInput   = flag.Bool("hex", false, "treat input as whitespace-separated hex bytes")
		serialPath = flag.String("serial", "", "decode live from a serial port instead of a capture")
		configPath = flag.String("config", "", "YAML configuration file")
		progress   = flag.Bool("progress", false, "show a progress bar while decoding a capture")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *serialPath != "" {
		cfg.Serial.Path = *serialPath
	}

	if cfg.Serial.Path != "" {
		return decodeSerial(cfg)
	}
	return decodeCapture(*inPath, *hexInput, *progress)
}

// decodeCapture replays a recorded scan code stream and writes the
// decoded text to stdout.
func decodeCapture(path string, hexInput, progress bool) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read capture: %w", err)
	}
	if hexInput {
		data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			return fmt.Errorf("parse hex capture: %w", err)
		}
	}
	slog.Debug("capture loaded", "bytes", len(data))

	replay := ps2kbd.FromBytes(data)
	dec := ps2kbd.New(replay)

	var pb *progressbar.ProgressBar
	if progress {
		pb = progressbar.DefaultBytes(int64(len(data)), "decoding")
		defer pb.Close()
	}

	out := os.Stdout
	ctx := context.Background()
	chars := 0
	remaining := replay.Len()
	for {
		c := dec.TryGetChar()
		if c != 0 {
			// ReadChar returns the pending character immediately.
			if c, err = dec.ReadChar(ctx); err != nil {
				return err
			}
			if _, err := out.Write([]byte{c}); err != nil {
				return err
			}
			chars++
		}
		if pb != nil {
			if n := replay.Len(); n != remaining {
				_ = pb.Add(remaining - n)
				remaining = n
			}
		}
		if c == 0 && replay.Empty() {
			break
		}
	}

	slog.Debug("capture decoded", "bytes", len(data), "chars", chars)
	return nil
}

// decodeSerial follows a live adapter until interrupted.
func decodeSerial(cfg config) error {
	queue := ps2kbd.NewQueue(cfg.QueueDepth)
	port, err := ps2kbd.OpenSerial(ps2kbd.SerialConfig{
		Path:     cfg.Serial.Path,
		BaudRate: cfg.Serial.BaudRate,
	}, queue)
	if err != nil {
		return err
	}
	defer port.Close()
	slog.Debug("serial port open", "path", cfg.Serial.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Scan codes arrive at human typing speed; sleeping between polls
	// keeps the wait cheap.
	dec := ps2kbd.New(queue, ps2kbd.WithIdle(func() {
		time.Sleep(time.Millisecond)
	}))
	for {
		c, err := dec.ReadChar(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if _, err := os.Stdout.Write([]byte{c}); err != nil {
			return err
		}
	}
}
