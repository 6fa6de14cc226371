package dispatch

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/blskeygen/pkg/blskeys"
)

// IOError is returned when a key pair cannot be written to its destination.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Dispatcher writes key pairs to their targets.
type Dispatcher struct {
	stdout io.Writer
	logger *slog.Logger
}

// New returns a Dispatcher which writes Stdout targets to stdout and logs each write to logger. A
// nil logger discards log output.
func New(stdout io.Writer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Dispatcher{stdout: stdout, logger: logger}
}

// Place serializes the key pair and writes it to the target, returning the path written to ("-" for
// standard output). For Directory targets, index selects the file name and the directory is created
// if it does not exist. Existing files are overwritten.
func (d *Dispatcher) Place(kp *blskeys.KeyPair, target Target, index int) (string, error) {
	b, err := Marshal(kp)
	if err != nil {
		return "", err
	}

	var path string

	switch t := target.(type) {
	case Stdout:
		path = "-"

		if _, err := d.stdout.Write(append(b, '\n')); err != nil {
			return "", &IOError{Op: "write", Path: path, Err: err}
		}
	case File:
		path = t.Path

		if err := writeFile(path, b); err != nil {
			return "", err
		}
	case Directory:
		path = t.Path(index)

		if err := os.MkdirAll(t.Dir, 0o700); err != nil {
			return "", &IOError{Op: "mkdir", Path: t.Dir, Err: err}
		}

		if err := writeFile(path, b); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown target %T", target)
	}

	d.logger.Debug("wrote key pair", "index", index, "id", kp.String(), "path", path)

	return path, nil
}

// Run derives the key pairs the target calls for, chaining from the given key material, and places
// each one as soon as it is derived. Files written before a failure are left in place.
func (d *Dispatcher) Run(e *blskeys.Engine, material *blskeys.KeyMaterial, target Target) error {
	return e.Chain(material, Count(target), func(i int, kp *blskeys.KeyPair) error {
		path, err := d.Place(kp, target, i)
		if err != nil {
			return fmt.Errorf("write key pair %d: %w", i, err)
		}

		if path != "-" {
			d.logger.Info("generated key pair", "index", i, "id", kp.String(), "path", path)
		}

		return nil
	})
}

func writeFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Write(b); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}

	return nil
}
