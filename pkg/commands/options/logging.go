package options

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// GlobalOptions are the root level flags.
type GlobalOptions struct {
	LogLevel string
	NoColor  bool
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level: debug, info, warn or error. Overrides the settings file.")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false,
		"Disable colored output.")
}

// Logger builds the process logger. The flag wins over fallback.
func (o *GlobalOptions) Logger(w io.Writer, fallback slog.Level) *slog.Logger {
	level := fallback
	if s := strings.TrimSpace(o.LogLevel); s != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(s)); err == nil {
			level = lvl
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ApplyColor turns color off when asked to or when stdout is not a terminal.
func (o *GlobalOptions) ApplyColor() {
	if o.NoColor || !IsTerminal(os.Stdout) {
		color.NoColor = true
	}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
