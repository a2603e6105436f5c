package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Mode selects how much of the file is read and whether the source keeps
// following growth afterwards.
type Mode int

const (
	ModeWhole Mode = iota
	ModeTail
	ModeFollow
)

// ErrTruncated reports that the file shrank while being followed, i.e. it
// was truncated or rotated in place. Stale offsets are never reinterpreted
// as new content.
var ErrTruncated = errors.New("log file truncated")

const (
	defaultPoll = 500 * time.Millisecond
	scanBufInit = 64 * 1024
	scanBufMax  = 1024 * 1024
)

// Config controls a Source.
type Config struct {
	Mode      Mode
	TailLines int           // ModeTail only, must be > 0
	Poll      time.Duration // ModeFollow wait interval when no watch events arrive
	Logger    *zap.Logger   // diagnostics only, nil means silent
}

// Source produces the lines of one log file. It opens the file read-only and
// never writes it; at most one consumer may read a Source, and a consumed
// Source is not restartable.
type Source struct {
	path string
	cfg  Config
	log  *zap.Logger

	mu  sync.Mutex
	err error
}

// Open validates the path and mode and returns a Source. A missing path is
// reported here, before any lines are produced, wrapping os.ErrNotExist.
// Follow mode is rejected for gzip files since appended bytes would not be
// part of the compressed stream.
func Open(path string, cfg Config) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if cfg.Mode == ModeTail && cfg.TailLines <= 0 {
		return nil, fmt.Errorf("tail requires a positive line count, got %d", cfg.TailLines)
	}
	if cfg.Mode == ModeFollow && isGzip(path) {
		return nil, fmt.Errorf("cannot follow compressed log %s", filepath.Base(path))
	}
	if cfg.Poll <= 0 {
		cfg.Poll = defaultPoll
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{path: path, cfg: cfg, log: logger}, nil
}

// Lines starts the read and returns the channel lines arrive on, in file
// order. The channel closes when the file is exhausted (whole and tail
// modes), on cancellation, or on a read failure; call Err afterwards to
// distinguish a clean end from a failure.
func (s *Source) Lines(ctx context.Context) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		if s.cfg.Mode == ModeFollow {
			s.follow(ctx, out)
			return
		}
		s.scanOnce(ctx, out)
	}()
	return out
}

// Err returns the terminal error after the line channel has closed. It is
// nil for a clean end of stream and for cancellation.
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Source) setErr(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// scanOnce serves whole-file and tail modes: one pass over the file as it
// exists now, then done.
func (s *Source) scanOnce(ctx context.Context, out chan<- string) {
	f, err := os.Open(s.path)
	if err != nil {
		s.setErr(fmt.Errorf("open log: %w", err))
		return
	}
	defer f.Close()

	var r io.Reader = f
	if isGzip(s.path) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			s.setErr(fmt.Errorf("open gzip log: %w", err))
			return
		}
		defer zr.Close()
		r = zr
	}
	s.log.Debug("reading log", zap.String("path", s.path), zap.Int("mode", int(s.cfg.Mode)))

	if s.cfg.Mode == ModeTail {
		lines, err := lastLines(r, s.cfg.TailLines)
		if err != nil {
			s.setErr(fmt.Errorf("read log: %w", err))
			return
		}
		for _, line := range lines {
			select {
			case out <- line:
			case <-ctx.Done():
				return
			}
		}
		return
	}

	scanner := newScanner(r)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.setErr(fmt.Errorf("read log: %w", err))
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufInit), scanBufMax)
	return scanner
}

func isGzip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gz")
}
