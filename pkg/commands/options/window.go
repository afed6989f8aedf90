package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/config"
	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/item"
	"tableflip.dev/focuslog/pkg/timeutil"
)

// WindowOptions shape the grid: its days, its order and its symbols.
type WindowOptions struct {
	Past      string
	Future    string
	On        OnOptions
	SortBy    string
	Desc      bool
	RatingMap string
	FlagMap   string
	Title     string
	Field     string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Past, "past", "",
		`Days before the focal date, as a count or a span like "2w".`)
	cmd.Flags().StringVar(&o.Future, "future", "",
		`Days after the focal date, as a count or a span like "1w3d".`)
	AddOnArgs(cmd, &o.On, "Focal date of the grid.")
	cmd.Flags().StringVar(&o.SortBy, "sort", "",
		`Header property to sort rows by; "`+item.SortByLabel+`" sorts by label.`)
	cmd.Flags().BoolVar(&o.Desc, "desc", false,
		"Sort rows descending.")
	AddMapArgs(cmd, &o.RatingMap, &o.FlagMap)
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Header property used as the row label.")
	AddFieldArg(cmd, &o.Field)
}

// AddMapArgs registers the symbol table flags.
func AddMapArgs(cmd *cobra.Command, rating, flag *string) {
	cmd.Flags().StringVar(rating, "rating-map", "",
		"Rating symbol table, see `focus maps`.")
	cmd.Flags().StringVar(flag, "flag-map", "",
		"Flag symbol table, see `focus maps`.")
	_ = cmd.RegisterFlagCompletionFunc("rating-map", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, m := range glyph.RatingMaps() {
			names = append(names, m.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("flag-map", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, m := range glyph.FlagMaps() {
			names = append(names, m.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// AddFieldArg registers the header field flag.
func AddFieldArg(cmd *cobra.Command, field *string) {
	cmd.Flags().StringVar(field, "field", "",
		"Header field holding the focus log (default \"focus-logs\").")
}

// Apply overrides opts with every flag that was set.
func (o *WindowOptions) Apply(opts config.Options, now time.Time) (config.Options, error) {
	past, future := opts.DaysInPast, opts.DaysInFuture
	if o.Past != "" {
		n, err := timeutil.ParseDays(o.Past)
		if err != nil {
			return opts, err
		}
		past = n
	}
	if o.Future != "" {
		n, err := timeutil.ParseDays(o.Future)
		if err != nil {
			return opts, err
		}
		future = n
	}
	opts = opts.WithDays(past, future)

	on, err := o.On.GetOn(now)
	if err != nil {
		return opts, err
	}
	if !on.IsZero() {
		opts = opts.WithFocalDate(on)
	}

	if o.SortBy != "" || o.Desc {
		key := o.SortBy
		if key == "" {
			key = opts.SortBy
		}
		opts = opts.WithSort(key, o.Desc || opts.SortDescending)
	}
	opts = opts.WithMaps(o.RatingMap, o.FlagMap)
	if o.Title != "" {
		opts.TitleProperty = o.Title
	}
	if o.Field != "" {
		opts.LogField = o.Field
	}
	return opts, nil
}
