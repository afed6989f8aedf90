// Package info reports where settings and documents are read from.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/store"
	"tableflip.dev/focuslog/pkg/timeutil"
)

type Info struct {
	Settings    config.Settings
	ConfigFile  string
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintln(n.Out, config.EnvConfigPath, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, config.EnvConfigPath, "env var not set")
	}
	if n.ConfigFile != "" {
		_, _ = fmt.Fprintln(n.Out, "Config file:", n.ConfigFile)
	} else {
		_, _ = fmt.Fprintln(n.Out, "Config file: none, using defaults")
	}

	_, _ = fmt.Fprintln(n.Out, "Vault:", n.Settings.BasePath())
	_, _ = fmt.Fprintf(n.Out, "Maps: %s / %s\n", n.Settings.DefaultRatingMap, n.Settings.DefaultFlagMap)
	_, _ = fmt.Fprintf(n.Out, "Window: %s past, %s future\n", timeutil.FormatDays(n.Settings.DaysInPast), timeutil.FormatDays(n.Settings.DaysInFuture))

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	_, _ = fmt.Fprintf(n.Out, "Items:\n")
	found := 0
	for _, it := range n.Persistence.ListCandidates(ctx) {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", it.Path)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", "no items")
	}
	return nil
}
