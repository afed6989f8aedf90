package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/focuslog/pkg/config"
)

// FilterOptions narrow the items shown as rows. Flags add to whatever the
// options file selects.
type FilterOptions struct {
	Paths         []string
	Tags          []string
	TagSet        []string
	ExcludeTags   []string
	ExcludeTagSet []string
	Properties    []string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringSliceVarP(&o.Paths, "path", "p", nil,
		"Only items whose path contains one of these.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Only items with at least one of these tags.")
	cmd.Flags().StringSliceVar(&o.TagSet, "tag-set", nil,
		"Only items with every one of these tags.")
	cmd.Flags().StringSliceVar(&o.ExcludeTags, "exclude-tag", nil,
		"Skip items with any of these tags.")
	cmd.Flags().StringSliceVar(&o.ExcludeTagSet, "exclude-tag-set", nil,
		"Skip items with every one of these tags.")
	cmd.Flags().StringArrayVar(&o.Properties, "property", nil,
		"Only items whose header has key=value. Repeatable.")
}

// Apply merges the flags into opts.
func (o *FilterOptions) Apply(opts config.Options) (config.Options, error) {
	opts.Paths = merge(opts.Paths, o.Paths)
	opts.Tags = merge(opts.Tags, o.Tags)
	opts.TagSet = merge(opts.TagSet, o.TagSet)
	opts.ExcludeTags = merge(opts.ExcludeTags, o.ExcludeTags)
	opts.ExcludeTagSet = merge(opts.ExcludeTagSet, o.ExcludeTagSet)
	if len(o.Properties) == 0 {
		return opts, nil
	}
	props := make(map[string]any, len(opts.Properties)+len(o.Properties))
	for k, v := range opts.Properties {
		props[k] = v
	}
	for _, kv := range o.Properties {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return opts, fmt.Errorf("--property %q: want key=value", kv)
		}
		props[k] = propertyValue(strings.TrimSpace(v))
	}
	opts.Properties = props
	return opts, nil
}

func merge(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	return append(append([]string(nil), a...), b...)
}

// propertyValue reads numbers and booleans the way a YAML header would.
func propertyValue(v string) any {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return int(n)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil && (v == "true" || v == "false") {
		return b
	}
	return v
}
