package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/commands/options"
	"tableflip.dev/focuslog/pkg/runner/maps"
)

func addMaps(topLevel *cobra.Command) {
	m := &maps.Maps{}

	cmd := &cobra.Command{
		Use:   "maps",
		Short: "List the rating and flag symbol tables.",
		Example: `
focus maps
focus maps --rating-map moonPhases --flag-map default
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m.JSON = output.JSON
			return output.HandleError(m.Do(context.Background()))
		},
	}

	options.AddMapArgs(cmd, &m.Rating, &m.Flag)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
