package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/commands/options"
	"tableflip.dev/focuslog/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	fo := &options.FilterOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive focus grid.",
		Example: `
focus ui
focus ui --tag habit --past 3w
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := env.gridOptions(so, fo, wo)
			if err != nil {
				return err
			}
			svc, err := env.service()
			if err != nil {
				return err
			}
			return tui.Run(context.Background(), svc, opts)
		},
	}

	options.AddSourceArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
