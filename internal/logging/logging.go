// Package logging builds the stderr logger used for diagnostics.
package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w.
// Only warnings and errors are shown unless verbose is set, so a
// successful run stays silent.
func New(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "assert-env",
		ReportTimestamp: false,
	})

	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	logger.SetStyles(styles())
	return logger
}

// styles gives each level a solid badge
func styles() *log.Styles {
	s := log.DefaultStyles()
	badge := func(label, bg, fg string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(fg)).
			Padding(0, 1)
	}
	s.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: badge("DEBUG", "63", "0"),
		log.InfoLevel:  badge("INFO", "86", "0"),
		log.WarnLevel:  badge("WARN", "192", "0"),
		log.ErrorLevel: badge("ERROR", "196", "0"),
		log.FatalLevel: badge("FATAL", "196", "15"),
	}
	return s
}
