package commands

import (
	"errors"
	"log/slog"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/app"
	"tableflip.dev/focuslog/pkg/commands/options"
	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/store"
)

var (
	output = &options.OutputOptions{}
	global = &options.GlobalOptions{}
	env    = &environment{}
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: base.Wrap80("Focus logs for the notes in a markdown vault: a grid of daily ratings and flags on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			global.ApplyColor()
			return env.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, global)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addSet(topLevel)
	addStep(topLevel)
	addClear(topLevel)
	addLog(topLevel)
	addMaps(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// environment holds what every command derives from the settings file.
type environment struct {
	settings config.Settings
	logger   *slog.Logger
	loaded   bool
}

func (e *environment) load() error {
	if e.loaded {
		return nil
	}
	s, err := config.LoadSettings()
	e.settings = s
	e.logger = global.Logger(os.Stderr, s.Level())
	slog.SetDefault(e.logger)
	if err != nil {
		// Broken settings fall back to defaults; commands still run.
		e.logger.Warn("settings", "err", err)
	}
	e.loaded = true
	return nil
}

func (e *environment) persistence() (store.Persistence, error) {
	if !e.loaded {
		return nil, errors.New("settings not loaded")
	}
	return store.Load(e.settings, e.logger)
}

func (e *environment) service() (*app.Service, error) {
	p, err := e.persistence()
	if err != nil {
		return nil, err
	}
	return &app.Service{
		Persistence: p,
		Logger:      e.logger,
		Concurrency: e.settings.ReadConcurrency,
		Language:    e.settings.Language(),
	}, nil
}

// gridOptions resolves the options file and the grid flags into one
// config.Options. Invalid option files are reported and replaced by the
// defaults.
func (e *environment) gridOptions(src *options.SourceOptions, fo *options.FilterOptions, wo *options.WindowOptions) (config.Options, error) {
	opts, err := src.Load(e.settings)
	if err != nil {
		if !options.IsInvalid(err) {
			return opts, err
		}
		e.logger.Warn("options", "file", src.File, "err", err)
	}
	if fo != nil {
		if opts, err = fo.Apply(opts); err != nil {
			return opts, err
		}
	}
	if wo != nil {
		if opts, err = wo.Apply(opts, now()); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
