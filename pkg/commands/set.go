package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/commands/options"
	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/runner/cell"
)

// cellFlags are shared by the commands that change one cell.
type cellFlags struct {
	on        options.OnOptions
	field     string
	ratingMap string
	flagMap   string
}

func (f *cellFlags) add(cmd *cobra.Command) {
	options.AddOnArgs(cmd, &f.on, "Day to change, default today.")
	options.AddFieldArg(cmd, &f.field)
	options.AddMapArgs(cmd, &f.ratingMap, &f.flagMap)
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return pathCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func (f *cellFlags) runner(path string) (*cell.Cell, error) {
	svc, err := env.service()
	if err != nil {
		return nil, err
	}
	date, err := f.on.Date(now())
	if err != nil {
		return nil, err
	}
	opts := config.Defaults(env.settings).WithMaps(f.ratingMap, f.flagMap)
	field := f.field
	if field == "" {
		field = opts.Field()
	}
	return &cell.Cell{
		Service: svc,
		Path:    path,
		Field:   field,
		Date:    date,
		Ratings: opts.Ratings(),
		Flags:   opts.Flags(),
		JSON:    output.JSON,
	}, nil
}

func addSet(topLevel *cobra.Command) {
	cf := &cellFlags{}
	rating := 0
	remarks := ""

	cmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Set the rating or remarks of one day.",
		Long: `Set the rating or remarks of one day of an item's focus log.

Positive ratings draw from the rating map, negative ones from the flag map
(-1 is the first flag). A rating of 0 clears the value; empty remarks are
removed.`,
		Example: `
focus set habits/run.md --rating 3
focus set habits/run.md --on yesterday --rating -2 --remarks "knee"
focus set habits/run.md --remarks ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var m focuslog.Mutation
			if cmd.Flags().Changed("rating") {
				m = focuslog.SetRating(rating)
			}
			if cmd.Flags().Changed("remarks") {
				s := focuslog.SetRemarks(remarks)
				m.Remarks = s.Remarks
			}
			if m.IsEmpty() {
				return output.HandleError(errors.New("nothing to set, use --rating and/or --remarks"))
			}
			c, err := cf.runner(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			c.Mutation = m
			return output.HandleError(c.Do(context.Background()))
		},
	}

	cf.add(cmd)
	options.AddOutputArg(cmd, output)
	cmd.Flags().IntVarP(&rating, "rating", "r", 0,
		"Value to store: positive for ratings, negative for flags, 0 to clear.")
	cmd.Flags().StringVarP(&remarks, "remarks", "m", "",
		"Free text remarks for the day.")

	topLevel.AddCommand(cmd)
}

func addStep(topLevel *cobra.Command) {
	cf := &cellFlags{}

	cmd := &cobra.Command{
		Use:   "step <path>",
		Short: "Advance the value of one day to the next symbol.",
		Long: `Advance the value of one day to the next symbol.

An empty day becomes rating 1. Ratings and flags move to the next symbol of
their map and wrap back to empty after the last one.`,
		Example: `
focus step habits/run.md
focus step habits/run.md --on 2024-02-28 --rating-map colors1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := cf.runner(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			c.Step = true
			return output.HandleError(c.Do(context.Background()))
		},
	}

	cf.add(cmd)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	cf := &cellFlags{}

	cmd := &cobra.Command{
		Use:   "clear <path>",
		Short: "Clear the value and remarks of one day.",
		Example: `
focus clear habits/run.md
focus clear habits/run.md --on 2/28
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := cf.runner(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			c.Mutation = focuslog.Clear()
			return output.HandleError(c.Do(context.Background()))
		},
	}

	cf.add(cmd)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
