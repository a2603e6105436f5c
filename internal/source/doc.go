// Package source produces the raw lines of a single log file.
//
// # Modes
//
// A Source runs in one of three mutually exclusive modes:
//
//   - ModeWhole: every line from start to end of file at open time, finite.
//   - ModeTail: the last N lines only, via a single-pass ring buffer, finite.
//   - ModeFollow: every existing line, then block for appended lines until
//     the context is cancelled, infinite.
//
// Lines are delivered over a channel in exact file order. A Source serves
// one consumer and one pass; it is not restartable.
//
// # Follow Semantics
//
// Follow waits on fsnotify write events for the file, with a bounded poll
// ticker as a fallback for filesystems where events are unreliable. There
// is no busy spin. Cancellation unblocks the wait promptly, emits nothing
// partial, and releases the file handle. When the file's size drops below
// the last known read offset the stream ends with ErrTruncated instead of
// reinterpreting stale offsets as fresh content.
//
// # Compressed Logs
//
// Paths ending in .gz are transparently decompressed in whole and tail
// modes, which covers reading rotated logs. Follow on a .gz path is
// rejected at Open.
//
// # Errors
//
// A missing path fails Open immediately, wrapping os.ErrNotExist. Failures
// mid-stream close the line channel; Err reports the terminal error, nil
// for a clean end of stream or cancellation. Lines already delivered before
// a failure stand.
package source
