package filter

import (
	"testing"
	"time"

	"cmtail/internal/record"
)

func mkRecord(level record.Level, component string, ts *time.Time) record.Record {
	return record.Record{
		Level:          level,
		LevelName:      level.Name(),
		Component:      component,
		TimestampLocal: ts,
		Message:        "m",
		Raw:            "m",
	}
}

func TestMatch_ANDSemantics(t *testing.T) {
	ts := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	rec := mkRecord(record.LevelWarn, "Win32App", &ts)

	tests := []struct {
		name      string
		minLevel  record.Level
		component string
		want      bool
	}{
		{"min level above excludes", record.LevelError, "", false},
		{"min level met and component match", record.LevelWarn, "Win32App", true},
		{"component mismatch excludes regardless of level", record.LevelInfo, "OtherApp", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.minLevel, nil, tt.component, false)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := c.Match(rec); got != tt.want {
				t.Fatalf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatch_Since(t *testing.T) {
	since := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	c, err := New(record.LevelInfo, &since, "", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	before := since.Add(-time.Minute)
	after := since.Add(time.Minute)

	if c.Match(mkRecord(record.LevelInfo, "", &before)) {
		t.Fatal("record before since should be excluded")
	}
	if !c.Match(mkRecord(record.LevelInfo, "", &after)) {
		t.Fatal("record after since should pass")
	}
	if !c.Match(mkRecord(record.LevelInfo, "", &since)) {
		t.Fatal("record exactly at since should pass")
	}
}

func TestMatch_MissingTimestampExemptFromSince(t *testing.T) {
	for _, since := range []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.Local),
	} {
		c, err := New(record.LevelInfo, &since, "", false)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if !c.Match(mkRecord(record.LevelInfo, "", nil)) {
			t.Fatalf("record without timestamp excluded by since=%v", since)
		}
	}
}

func TestMatch_ComponentPattern(t *testing.T) {
	c, err := New(record.LevelInfo, nil, "Win32.*", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.Match(mkRecord(record.LevelInfo, "Win32App", nil)) {
		t.Fatal("pattern should match Win32App")
	}
	// Unanchored: substring match counts.
	if !c.Match(mkRecord(record.LevelInfo, "MyWin32Agent", nil)) {
		t.Fatal("pattern should match substring")
	}
	if c.Match(mkRecord(record.LevelInfo, "Scheduler", nil)) {
		t.Fatal("pattern should not match Scheduler")
	}
}

func TestMatch_AbsentComponentFailsCriterion(t *testing.T) {
	literal, err := New(record.LevelInfo, nil, "Win32App", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pattern, err := New(record.LevelInfo, nil, ".*", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fallback := mkRecord(record.LevelInfo, "", nil)

	if literal.Match(fallback) {
		t.Fatal("fallback record matched literal component criterion")
	}
	if pattern.Match(fallback) {
		t.Fatal("fallback record matched component pattern criterion")
	}
}

func TestMatch_CaseSensitiveLiteral(t *testing.T) {
	c, err := New(record.LevelInfo, nil, "Win32App", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Match(mkRecord(record.LevelInfo, "win32app", nil)) {
		t.Fatal("literal component match must be case-sensitive")
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	if _, err := New(record.LevelInfo, nil, "(", true); err == nil {
		t.Fatal("New accepted an invalid pattern")
	}
}

func TestMatch_ZeroCriteriaPassesEverything(t *testing.T) {
	c, err := New(0, nil, "", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.Match(mkRecord(record.LevelError, "Anything", nil)) {
		t.Fatal("empty criteria should pass every record")
	}
	if !c.Match(record.Record{Level: record.LevelInfo, Message: "noise", Raw: "noise"}) {
		t.Fatal("empty criteria should pass fallback records")
	}
}
