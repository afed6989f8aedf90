package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the settings and where documents are read from.",
		Example: `
focus info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := env.persistence()
			if err != nil {
				return err
			}
			s := info.Info{
				Settings:    env.settings,
				ConfigFile:  config.ConfigFileUsed(),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
