// Package dispatch resolves where generated key pairs go and writes them there.
package dispatch

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
)

const (
	// DefaultStem is the file name prefix used for multi-file output.
	DefaultStem = "bls_"

	// Suffix is appended to every multi-file output name after the index.
	Suffix = ".keys.json"

	// MaxCount is the largest number of key pairs a Directory target accepts.
	MaxCount = math.MaxInt32

	defaultDir = "."
)

var (
	// ErrConflictingOptions is returned when single-file output is combined with multi-file options.
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrMissingCount is returned when multi-file options are given without a count.
	ErrMissingCount = errors.New("missing count")

	// ErrInvalidCount is returned when a count of zero is requested.
	ErrInvalidCount = errors.New("invalid count")
)

// ConfigError is returned when output options are inconsistent. It matches its Kind with errors.Is.
type ConfigError struct {
	Kind error
	Msg  string
}

func (e *ConfigError) Error() string {
	return e.Kind.Error() + ": " + e.Msg
}

func (e *ConfigError) Is(target error) bool {
	return target == e.Kind
}

// Config is the set of output options as given by the caller.
type Config struct {
	Path       string
	OutputDir  string
	OutputStem string
	Number     *uint32
}

// Target is where key pairs are written: Stdout, File, or Directory.
type Target interface {
	count() int
}

// Stdout writes a single key pair to standard output.
type Stdout struct{}

func (Stdout) count() int { return 1 }

// File writes a single key pair to Path.
type File struct {
	Path string
}

func (File) count() int { return 1 }

// Directory writes Count key pairs to separate files in Dir.
type Directory struct {
	Dir   string
	Stem  string
	Count uint32
}

func (d Directory) count() int { return int(d.Count) }

// Path returns the path of the key file for the key pair at the given index.
func (d Directory) Path(index int) string {
	return filepath.Join(d.Dir, d.Stem+strconv.Itoa(index)+Suffix)
}

// Count returns the number of key pairs the target receives.
func Count(t Target) int {
	return t.count()
}

// ResolveTarget validates the combination of output options and returns the target they describe.
func ResolveTarget(cfg Config) (Target, error) {
	if cfg.Number != nil && *cfg.Number == 0 {
		return nil, &ConfigError{Kind: ErrInvalidCount, Msg: "--number must be at least 1"}
	}

	if cfg.Number != nil && *cfg.Number > MaxCount {
		return nil, &ConfigError{Kind: ErrInvalidCount, Msg: fmt.Sprintf("--number must be at most %d", MaxCount)}
	}

	if cfg.Path != "" {
		switch {
		case cfg.Number != nil:
			return nil, &ConfigError{Kind: ErrConflictingOptions, Msg: "--path cannot be used with --number"}
		case cfg.OutputDir != "":
			return nil, &ConfigError{Kind: ErrConflictingOptions, Msg: "--path cannot be used with --output-dir"}
		case cfg.OutputStem != "":
			return nil, &ConfigError{Kind: ErrConflictingOptions, Msg: "--path cannot be used with --output-stem"}
		}

		return File{Path: cfg.Path}, nil
	}

	if cfg.Number == nil {
		if cfg.OutputDir != "" || cfg.OutputStem != "" {
			return nil, &ConfigError{
				Kind: ErrMissingCount,
				Msg:  "--output-dir and --output-stem require --number",
			}
		}

		return Stdout{}, nil
	}

	d := Directory{Dir: cfg.OutputDir, Stem: cfg.OutputStem, Count: *cfg.Number}
	if d.Dir == "" {
		d.Dir = defaultDir
	}

	if d.Stem == "" {
		d.Stem = DefaultStem
	}

	return d, nil
}
