package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// errStop signals that the consumer cancelled mid-send. It never reaches Err.
var errStop = errors.New("stopped")

// follow emits every existing line, then blocks for file growth until the
// context is cancelled. Growth is observed through fsnotify write events
// with a bounded poll ticker as fallback, never a busy loop. A shrinking
// file surfaces ErrTruncated rather than re-reading stale offsets.
func (s *Source) follow(ctx context.Context, out chan<- string) {
	f, err := os.Open(s.path)
	if err != nil {
		s.setErr(fmt.Errorf("open log: %w", err))
		return
	}
	defer f.Close()

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.log.Debug("fsnotify unavailable, polling only", zap.Error(err))
	} else {
		defer watcher.Close()
		if werr := watcher.Add(s.path); werr != nil {
			s.log.Debug("watch failed, polling only", zap.Error(werr))
		} else {
			events = watcher.Events
			watchErrs = watcher.Errors
		}
	}

	ticker := time.NewTicker(s.cfg.Poll)
	defer ticker.Stop()

	reader := bufio.NewReaderSize(f, scanBufInit)
	var partial strings.Builder

	for {
		if err := drain(ctx, reader, &partial, out); err != nil {
			if errors.Is(err, errStop) {
				return
			}
			if !errors.Is(err, io.EOF) {
				s.setErr(fmt.Errorf("read log: %w", err))
				return
			}
		}

		// Caught up. Remember how far into the file we are so truncation
		// is detectable after the wait.
		pos, err := f.Seek(0, io.SeekCurrent)
		if err != nil {
			s.setErr(fmt.Errorf("seek log: %w", err))
			return
		}
		offset := pos - int64(reader.Buffered())

		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				events = nil
			}
		case werr, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
			} else {
				s.log.Debug("watch error", zap.Error(werr))
			}
		case <-ticker.C:
		}

		info, err := os.Stat(s.path)
		if err != nil {
			s.setErr(fmt.Errorf("stat log: %w", err))
			return
		}
		if info.Size() < offset {
			s.log.Debug("log shrank",
				zap.Int64("size", info.Size()), zap.Int64("offset", offset))
			s.setErr(ErrTruncated)
			return
		}
	}
}

// drain reads complete lines until EOF, emitting each one and buffering any
// trailing partial line for the next pass. Returns io.EOF when caught up.
func drain(ctx context.Context, r *bufio.Reader, partial *strings.Builder, out chan<- string) error {
	for {
		chunk, err := r.ReadString('\n')
		if err != nil {
			partial.WriteString(chunk)
			return err
		}
		partial.WriteString(chunk)
		line := strings.TrimSuffix(partial.String(), "\n")
		line = strings.TrimSuffix(line, "\r")
		partial.Reset()
		select {
		case out <- line:
		case <-ctx.Done():
			return errStop
		}
	}
}
