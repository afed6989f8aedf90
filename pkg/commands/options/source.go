package options

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/config"
)

// SourceOptions point at a YAML options file.
type SourceOptions struct {
	File string
}

func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().StringVarP(&o.File, "options", "o", "",
		"YAML file with grid options (paths, tags, daysInPast, sortBy, ...).")
}

// Load parses the options file. Invalid content yields the defaults and an
// error wrapping config.ErrInvalidOptions; callers may warn and continue.
// An unreadable file is a hard error.
func (o *SourceOptions) Load(s config.Settings) (config.Options, error) {
	if o.File == "" {
		return config.Defaults(s), nil
	}
	b, err := os.ReadFile(o.File)
	if err != nil {
		return config.Defaults(s), fmt.Errorf("read options: %w", err)
	}
	return config.ParseOptions(string(b), s)
}

// IsInvalid reports whether err only means the defaults were used.
func IsInvalid(err error) bool {
	return errors.Is(err, config.ErrInvalidOptions)
}
