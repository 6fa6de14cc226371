package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/blskeygen/internal/dispatch"
	"github.com/codahale/blskeygen/pkg/blskeys"
	"golang.org/x/term"
)

const keyMaterialEnv = "BLS_KEY_MATERIAL"

type cli struct {
	KeyMaterial    optionalString `short:"k" placeholder:"HEX" help:"Hex string with 32 bytes of key material, or set BLS_KEY_MATERIAL."`
	AskKeyMaterial bool           `help:"Prompt for the key material instead of passing it as an argument."`
	Number         count          `short:"n" placeholder:"N" help:"Number of key pairs to generate, each derived from the previous one."`
	OutputDir      string         `short:"o" placeholder:"DIR" help:"Output directory for generated keys (default: current directory). Requires --number."`
	OutputStem     string         `placeholder:"STEM" help:"Output file stem (files are named <stem><i>.keys.json, default: bls_). Requires --number."`
	Path           string         `short:"p" placeholder:"FILE" help:"Output file path for a single key pair."`
	Verbose        bool           `short:"v" help:"Log each key pair written."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("bls-keygen"),
		kong.Description("Generate BLS12-381 key pairs."),
		kong.UsageOnError(),
	)

	err := cli.run(os.Stdout, newLogger(os.Stderr, cli.Verbose), askKeyMaterial)
	ctx.FatalIfErrorf(err)
}

func (cmd *cli) run(stdout io.Writer, logger *slog.Logger, prompt func(string) ([]byte, error)) error {
	// Validate the output options before doing anything else.
	target, err := dispatch.ResolveTarget(dispatch.Config{
		Path:       cmd.Path,
		OutputDir:  cmd.OutputDir,
		OutputStem: cmd.OutputStem,
		Number:     cmd.Number.value(),
	})
	if err != nil {
		return err
	}

	if cmd.AskKeyMaterial && cmd.KeyMaterial.set {
		return &dispatch.ConfigError{
			Kind: dispatch.ErrConflictingOptions,
			Msg:  "--ask-key-material cannot be used with --key-material",
		}
	}

	material, err := cmd.keyMaterial(prompt)
	if err != nil {
		return fmt.Errorf("decode key material: %w", err)
	}

	return dispatch.New(stdout, logger).Run(blskeys.NewEngine(), material, target)
}

func (cmd *cli) keyMaterial(prompt func(string) ([]byte, error)) (*blskeys.KeyMaterial, error) {
	var text string

	switch {
	case cmd.AskKeyMaterial:
		b, err := prompt("Enter key material: ")
		if err != nil {
			return nil, err
		}

		text = string(b)
	case cmd.KeyMaterial.set:
		text = cmd.KeyMaterial.s
	default:
		v, ok := os.LookupEnv(keyMaterialEnv)
		if !ok {
			// No key material means random key material.
			return nil, nil
		}

		text = v
	}

	// Supplied key material is always decoded, even when empty.
	m, err := blskeys.ParseKeyMaterial(text)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func askKeyMaterial(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
