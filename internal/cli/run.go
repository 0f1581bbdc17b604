// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/scoremat/scoring"
)

// Run executes cfg, writing results to out. in backs "-in -".
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if out == nil {
		out = io.Discard
	}

	if cfg.Command == CmdList {
		for _, name := range scoring.Names() {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}

		return nil
	}

	m, err := load(cfg, in)
	if err != nil {
		return err
	}
	if cfg.Shuffle != "" {
		if m, err = m.Shuffle(cfg.Shuffle); err != nil {
			return err
		}
	}

	switch cfg.Command {
	case CmdInfo:
		return writeInfo(out, m)
	default:
		return writeMatrix(out, m, cfg.Format)
	}
}

func load(cfg Config, in io.Reader) (*scoring.Matrix, error) {
	switch cfg.Input {
	case "":
		return scoring.FromName(cfg.Matrix)
	case "-":
		if in == nil {
			in = os.Stdin
		}

		return scoring.FromReader(in)
	default:
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		m, err := scoring.FromReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Input, err)
		}

		return m, nil
	}
}

func writeMatrix(out io.Writer, m *scoring.Matrix, format string) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case FormatJSON:
		if b, err = m.MarshalJSON(); err == nil {
			b = append(b, '\n')
		}
	case FormatCBOR:
		b, err = m.MarshalBinary()
	default:
		b, err = m.MarshalText()
	}
	if err != nil {
		return err
	}
	_, err = out.Write(b)

	return err
}

func writeInfo(out io.Writer, m *scoring.Matrix) error {
	_, err := fmt.Fprintf(out,
		"alphabet:  %s\nsize:      %d\nsymmetric: %t\ninteger:   %t\nmin:       %g\nmax:       %g\n",
		m.Alphabet(), m.Len(), m.IsSymmetric(), m.IsInteger(), m.Min(), m.Max())

	return err
}
