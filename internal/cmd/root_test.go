package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func resetFlags() {
	flagConfig = ""
	flagFollow = false
	flagTail = 0
	flagSince = ""
	flagComponent = ""
	flagRegex = false
	flagLevel = 1
	flagOutput = "text"
	flagNoColor = false
	flagPoll = 0
	flagVerbose = false
}

func emptyLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.log")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRootCmd_SpaceSeparatedTailValue(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetArgs([]string{"--no-color", "-n", "2", emptyLog(t)})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if flagTail != 2 {
		t.Fatalf("flagTail = %d, want 2", flagTail)
	}
}

func TestRootCmd_TailSentinelUsesConfigDefault(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetArgs([]string{"--tail=-1", emptyLog(t)})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestRootCmd_RejectsNegativeTail(t *testing.T) {
	resetFlags()
	t.Setenv("HOME", t.TempDir())

	rootCmd.SetArgs([]string{"--tail=-5", emptyLog(t)})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Execute accepted a negative tail count")
	}
	if !strings.Contains(err.Error(), "tail") {
		t.Fatalf("error = %v, want it to mention tail", err)
	}
}

func TestParseSince(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2025-01-15T09:00:00Z",
			want:  time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "local datetime",
			input: "2025-01-15 09:00:00",
			want:  time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local),
		},
		{
			name:  "local date",
			input: " 2025-01-15 ",
			want:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSince(tt.input)
			if err != nil {
				t.Fatalf("parseSince(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("parseSince(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSince_Invalid(t *testing.T) {
	for _, input := range []string{"yesterday", "15/01/2025", ""} {
		if _, err := parseSince(input); err == nil {
			t.Fatalf("parseSince(%q) returned nil error", input)
		}
	}
}
