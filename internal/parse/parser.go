package parse

import (
	"regexp"
	"strconv"
	"strings"

	"cmtail/internal/record"
)

var (
	// Non-greedy message match: the ]LOG]!> terminator may appear inside a
	// message only as the genuine close, so the first occurrence wins and the
	// attribute region stays intact.
	lineRe = regexp.MustCompile(`<!\[LOG\[(.*?)\]LOG\]!>(?:\s*<(.*)>)?\s*$`)
	attrRe = regexp.MustCompile(`(\w+)="([^"]*)"`)
)

// Line converts one raw log line into a Record. It is total: any input,
// including blank lines and binary garbage, yields exactly one Record.
// Lines that do not match the CMTrace grammar come back in the fallback
// shape with the trimmed line as the message and level defaulted to Info.
func Line(raw string) record.Record {
	m := lineRe.FindStringSubmatch(raw)
	if m == nil {
		return record.Record{
			Level:     record.LevelInfo,
			LevelName: record.LevelInfo.Name(),
			Message:   strings.TrimSpace(raw),
			Raw:       raw,
		}
	}

	// Attributes are extracted from the region after the message close
	// marker only; quotes inside the message cannot confuse this scan.
	attrs := make(map[string]string)
	for _, kv := range attrRe.FindAllStringSubmatch(m[2], -1) {
		attrs[kv[1]] = kv[2]
	}

	level := parseLevel(attrs["type"])
	rec := record.Record{
		DateRaw:    attrs["date"],
		Component:  attrs["component"],
		Level:      level,
		LevelName:  level.Name(),
		Thread:     attrs["thread"],
		SourceFile: attrs["file"],
		SourceLine: attrs["line"],
		Message:    m[1],
		Raw:        raw,
	}

	if local := Timestamp(attrs["date"], attrs["time"]); local != nil {
		utc := local.UTC()
		rec.TimestampLocal = local
		rec.TimestampUTC = &utc
	}
	return rec
}

// parseLevel coerces the type attribute to a severity. Absent, non-numeric,
// or out-of-range values default to Info rather than erroring.
func parseLevel(s string) record.Level {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return record.LevelInfo
	}
	if l := record.Level(n); l.Valid() {
		return l
	}
	return record.LevelInfo
}
