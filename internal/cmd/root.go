// Package cmd defines the cmtail command-line surface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cmtail/internal/app"
	"cmtail/internal/config"
	"cmtail/internal/record"
)

var (
	flagConfig    string
	flagFollow    bool
	flagTail      int
	flagSince     string
	flagComponent string
	flagRegex     bool
	flagLevel     int
	flagOutput    string
	flagNoColor   bool
	flagPoll      time.Duration
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "cmtail [path]",
	Short: "Tail and parse CMTrace-style agent logs",
	Long: `cmtail reads the CMTrace-style log format written by endpoint-management
agents, parses each line into a structured record, and emits colorized text
or JSON. It can read the whole file, only the last N lines, or follow the
file live as the agent appends to it.

Lines that do not match the CMTrace grammar are passed through as plain
records rather than dropped, so every line of the file is accounted for.

Examples:
  cmtail /var/log/agent/AppEnforce.log
  cmtail -n 100 AppEnforce.log
  cmtail -f --component Win32App --level 2 AppEnforce.log
  cmtail --since "2025-01-15 09:00:00" --output json AppEnforce.log.gz`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cmtail: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagConfig, "config", "c", "", "config file (default: ~/.config/cmtail/config.toml)")
	f.BoolVarP(&flagFollow, "follow", "f", false, "keep reading as the file grows")
	f.IntVarP(&flagTail, "tail", "n", 0, "emit only the last N lines (0 reads the whole file, -1 uses config tail_lines)")
	f.StringVar(&flagSince, "since", "", "drop records older than this time (RFC3339 or local \"2006-01-02 15:04:05\")")
	f.StringVar(&flagComponent, "component", "", "only records from this component")
	f.BoolVar(&flagRegex, "regex", false, "treat --component as a regular expression")
	f.IntVarP(&flagLevel, "level", "l", 1, "minimum severity: 1 info, 2 warn, 3 error")
	f.StringVarP(&flagOutput, "output", "o", "text", "output format: text, json")
	f.BoolVar(&flagNoColor, "no-color", false, "disable colorized text output")
	f.DurationVar(&flagPoll, "poll", 0, "follow-mode poll interval (default from config, 500ms)")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log engine diagnostics to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if flagVerbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	if flagLevel < int(record.LevelInfo) || flagLevel > int(record.LevelError) {
		return fmt.Errorf("level must be 1, 2, or 3, got %d", flagLevel)
	}

	var jsonOut bool
	switch flagOutput {
	case "text":
	case "json":
		jsonOut = true
	default:
		return fmt.Errorf("output must be text or json, got %q", flagOutput)
	}

	var since *time.Time
	if strings.TrimSpace(flagSince) != "" {
		t, err := parseSince(flagSince)
		if err != nil {
			return err
		}
		since = &t
	}

	tail := flagTail
	switch {
	case tail == -1:
		tail = cfg.TailLines
	case tail < 0:
		return fmt.Errorf("tail must be a positive line count, got %d", tail)
	}
	poll := flagPoll
	if poll <= 0 {
		poll = cfg.PollInterval
	}

	return app.Run(ctx, app.Options{
		Path:               args[0],
		Follow:             flagFollow,
		TailLines:          tail,
		Since:              since,
		Component:          flagComponent,
		ComponentIsPattern: flagRegex,
		MinLevel:           record.Level(flagLevel),
		JSON:               jsonOut,
		NoColor:            flagNoColor || cfg.NoColor,
		PollEvery:          poll,
		Out:                os.Stdout,
		Logger:             logger,
	})
}

var sinceLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseSince accepts RFC3339 or a local wall-clock time.
func parseSince(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range sinceLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse --since value %q", s)
}
