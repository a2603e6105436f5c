package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"cmtail/internal/filter"
	"cmtail/internal/parse"
	"cmtail/internal/record"
	"cmtail/internal/render"
	"cmtail/internal/source"
)

// Options configure one cmtail invocation.
type Options struct {
	Path string

	// Mode selection, mutually exclusive: TailLines > 0 reads the last N
	// lines, Follow keeps reading appended lines, neither reads the whole
	// file once.
	Follow    bool
	TailLines int

	Since              *time.Time
	Component          string
	ComponentIsPattern bool
	MinLevel           record.Level

	JSON    bool
	NoColor bool

	PollEvery time.Duration
	Out       io.Writer
	Logger    *zap.Logger
}

// Run streams the log at opts.Path through parse, filter, and render until
// the file is exhausted or ctx is cancelled. Records are emitted one at a
// time in file order; malformed lines degrade to fallback records and never
// stop the stream. Path and read failures do.
func Run(ctx context.Context, opts Options) error {
	if opts.Follow && opts.TailLines > 0 {
		return fmt.Errorf("follow and tail are mutually exclusive")
	}

	criteria, err := filter.New(opts.MinLevel, opts.Since, opts.Component, opts.ComponentIsPattern)
	if err != nil {
		return err
	}

	cfg := source.Config{
		Poll:   opts.PollEvery,
		Logger: opts.Logger,
	}
	switch {
	case opts.Follow:
		cfg.Mode = source.ModeFollow
	case opts.TailLines > 0:
		cfg.Mode = source.ModeTail
		cfg.TailLines = opts.TailLines
	default:
		cfg.Mode = source.ModeWhole
	}

	src, err := source.Open(opts.Path, cfg)
	if err != nil {
		return err
	}

	var out render.Renderer
	if opts.JSON {
		out = render.NewJSON(opts.Out)
	} else {
		out = render.NewText(opts.Out, opts.NoColor)
	}

	for line := range src.Lines(ctx) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec := parse.Line(line)
		if !criteria.Match(rec) {
			continue
		}
		if err := out.Render(rec); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("read %s: %w", opts.Path, err)
	}
	return nil
}
