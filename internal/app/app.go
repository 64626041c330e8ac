package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/minigrep/internal/search"
)

// App runs one search: read the target file, filter it, write the matches.
type App struct {
	cfg      Config
	settings Settings
	out      io.Writer
	matches  int
}

// New returns an App writing matches to out, or to stdout when out is nil.
func New(cfg Config, settings Settings, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{cfg: cfg, settings: settings, out: out}
}

// Matches is the number of lines written by the last Run.
func (a *App) Matches() int { return a.matches }

// Run reads the whole file before filtering. A read failure is returned as
// is and nothing is written.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.matches = 0

	contents, err := search.ReadFile(a.cfg.TargetPath(), a.settings.Encoding)
	if err != nil {
		return err
	}
	log.Debug().
		Str("path", a.cfg.TargetPath()).
		Int("bytes", len(contents)).
		Str("encoding", a.settings.Encoding).
		Msg("file read")

	lines := search.FilterLines(a.cfg.Query(), contents, a.cfg.CaseSensitive())

	w := bufio.NewWriter(a.out)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.matches = len(lines)

	log.Debug().
		Str("query", a.cfg.Query()).
		Bool("case_sensitive", a.cfg.CaseSensitive()).
		Int("matches", a.matches).
		Msg("search complete")
	return nil
}
