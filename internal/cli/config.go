// SPDX-License-Identifier: MIT

// Package cli implements the scoremat command: listing, printing and
// converting substitution matrices.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Commands understood by Run.
const (
	CmdList = "list"
	CmdShow = "show"
	CmdInfo = "info"
)

// Output formats for CmdShow.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

var (
	commands = []string{CmdList, CmdShow, CmdInfo}
	formats  = []string{FormatText, FormatJSON, FormatCBOR}
)

// ErrUsage marks an invalid command line.
var ErrUsage = errors.New("usage")

// Config holds one invocation. Env supplies defaults, flags override them.
type Config struct {
	Command string
	Matrix  string `env:"SCOREMAT_MATRIX" envDefault:"BLOSUM62"`
	Format  string `env:"SCOREMAT_FORMAT" envDefault:"text"`
	Input   string
	Shuffle string
}

// ParseConfig reads environment defaults, then parses args into a Config.
// args is everything after the program name: COMMAND [flags].
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return Config{}, fmt.Errorf("%w: missing command (%s)", ErrUsage, strings.Join(commands, ", "))
	}
	cfg.Command = args[0]
	if !slices.Contains(commands, cfg.Command) {
		return Config{}, fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}

	fs.StringVar(&cfg.Matrix, "matrix", cfg.Matrix, "registry matrix name (env SCOREMAT_MATRIX)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text, json or cbor (env SCOREMAT_FORMAT)")
	fs.StringVar(&cfg.Input, "in", "", "read a textual matrix from this file instead of the registry ('-' for stdin)")
	fs.StringVar(&cfg.Shuffle, "shuffle", "", "reorder or subset the matrix to this alphabet")
	if err := fs.Parse(args[1:]); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if !slices.Contains(formats, cfg.Format) {
		return Config{}, fmt.Errorf("%w: unknown format %q", ErrUsage, cfg.Format)
	}
	if strings.TrimSpace(cfg.Matrix) == "" && cfg.Input == "" {
		return Config{}, fmt.Errorf("%w: -matrix or -in is required", ErrUsage)
	}

	return cfg, nil
}
