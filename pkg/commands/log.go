package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/commands/options"
	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	field := ""
	ratingMap, flagMap := "", ""

	cmd := &cobra.Command{
		Use:   "log <path>",
		Short: "Print the focus log of one item.",
		Example: `
focus log habits/run.md
focus log habits/run.md --json
focus log habits/run.md --field sleep-logs
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return pathCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := env.service()
			if err != nil {
				return output.HandleError(err)
			}
			opts := config.Defaults(env.settings).WithMaps(ratingMap, flagMap)
			if field != "" {
				opts.LogField = field
			}
			l := log.Log{
				Service: svc,
				Path:    args[0],
				Field:   opts.Field(),
				Ratings: opts.Ratings(),
				Flags:   opts.Flags(),
				JSON:    output.JSON,
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFieldArg(cmd, &field)
	options.AddMapArgs(cmd, &ratingMap, &flagMap)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
