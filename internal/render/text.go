package render

import (
	"fmt"
	"io"
	"strings"

	"cmtail/internal/record"

	"github.com/charmbracelet/lipgloss"
)

const stampLayout = "2006-01-02 15:04:05.000"

// Fixed-width placeholders keep columns aligned across mixed parsed and
// fallback lines.
var (
	noStamp     = strings.Repeat(".", len(stampLayout))
	noComponent = "-"
	noThread    = "-"
)

var (
	styleStamp = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleComp  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TextRenderer prints one human-readable line per record, with severity
// colors unless disabled.
type TextRenderer struct {
	w       io.Writer
	noColor bool
}

// NewText returns a Renderer writing formatted text lines to w.
func NewText(w io.Writer, noColor bool) *TextRenderer {
	return &TextRenderer{w: w, noColor: noColor}
}

func (r *TextRenderer) Render(rec record.Record) error {
	stamp := noStamp
	if rec.TimestampLocal != nil {
		stamp = rec.TimestampLocal.Format(stampLayout)
	}
	component := rec.Component
	if component == "" {
		component = noComponent
	}
	thread := rec.Thread
	if thread == "" {
		thread = noThread
	}
	level := rec.LevelName

	var srcloc string
	if rec.SourceFile != "" && rec.SourceLine != "" {
		srcloc = fmt.Sprintf(" (%s:%s)", rec.SourceFile, rec.SourceLine)
	}

	if !r.noColor {
		stamp = styleStamp.Render(stamp)
		component = styleComp.Render(component)
		level = levelStyle(rec.Level).Render(level)
	}

	_, err := fmt.Fprintf(r.w, "[%s] [%s] [%s] [%s]%s  %s\n",
		stamp, component, level, thread, srcloc, rec.Message)
	return err
}

func levelStyle(l record.Level) lipgloss.Style {
	switch l {
	case record.LevelWarn:
		return styleWarn
	case record.LevelError:
		return styleError
	default:
		return styleInfo
	}
}
