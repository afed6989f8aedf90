package commands

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/commands/options"
	"tableflip.dev/focuslog/pkg/runner/show"
)

var now = time.Now

func addShow(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	fo := &options.FilterOptions{}
	wo := &options.WindowOptions{}
	remarks := false
	legend := false
	watch := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the focus grid.",
		Example: `
focus show
focus show --tag habit --past 2w --future 0
focus show --options ~/notes/.focus-grid.yaml --on 2024-02-28
focus show --property status=active --sort priority --desc
focus show --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts, err := env.gridOptions(so, fo, wo)
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := env.service()
			if err != nil {
				return output.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := show.Show{
				Service: svc,
				Options: opts,
				Now:     now,
				JSON:    output.JSON,
				Remarks: remarks,
				Legend:  legend,
				Watch:   watch,
				Clear:   options.IsTerminal(os.Stdout),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddSourceArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)
	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&remarks, "remarks", false,
		"List the remarks of visible cells under the grid.")
	cmd.Flags().BoolVar(&legend, "legend", false,
		"Print the symbol legend under the grid.")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Re-render whenever a document in the vault changes.")
	_ = cmd.RegisterFlagCompletionFunc("path", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return pathCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
