// Package parse turns raw CMTrace-style log lines into structured records.
//
// # Line Grammar
//
// A conforming line carries a bracketed message body, optionally followed
// by a single attribute region:
//
//	<![LOG[Install starting]LOG]!><time="09:15:00.000-300" date="01-15-2025"
//	component="Win32App" type="1" thread="0x4" file="agent.go" line="42">
//
// Recognized attribute keys are time, date, component, type, thread, file,
// and line. Unknown keys are ignored. The message match is non-greedy so a
// close marker appearing once terminates the body without swallowing the
// attributes, and attributes are scanned only after the close marker, so
// quote characters inside the message are harmless.
//
// # Totality
//
// Line never fails. Input that does not match the grammar degrades to a
// fallback record: the trimmed line becomes the message, severity defaults
// to Info, and every other structured field stays absent. A log reader must
// not abort a multi-million-line file over one foreign line.
//
// # Timestamps
//
// The producing agent splits the instant across a date field and a time
// field, the latter suffixed with a signed UTC-offset minute count. The
// offset is stripped and discarded; the remaining value is interpreted as
// wall-clock local time, which matches what the agent actually writes. Four
// layouts are tried in order because the agent's zero-padding varies across
// versions. Reconstruction failure is not an error: the record is emitted
// without timestamps and a since-filter will not exclude it.
package parse
