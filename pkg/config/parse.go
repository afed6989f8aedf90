package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/focuslog/pkg/timeutil"
)

// ErrInvalidOptions marks option text that could not be used. The options
// returned alongside it are the defaults.
var ErrInvalidOptions = errors.New("config: invalid options")

// rawOptions mirrors the written option names. Lists may be written as a
// single string and day counts as "2w"-style spans, so those stay untyped.
type rawOptions struct {
	Paths           any            `yaml:"paths"`
	Properties      map[string]any `yaml:"properties"`
	Tags            any            `yaml:"tags"`
	TagSet          any            `yaml:"tagSet"`
	ExcludeTags     any            `yaml:"excludeTags"`
	ExcludeTagSet   any            `yaml:"excludeTagSet"`
	LogPropertyName string         `yaml:"logPropertyName"`
	RatingMap       string         `yaml:"ratingMap"`
	FlagMap         string         `yaml:"flagMap"`
	DaysInPast      any            `yaml:"daysInPast"`
	DaysInFuture    any            `yaml:"daysInFuture"`
	FocalDate       string         `yaml:"focalDate"`
	SortBy          string         `yaml:"sortBy"`
	SortDescending  bool           `yaml:"sortDescending"`
	TitleProperty   string         `yaml:"titleProperty"`
}

// ParseOptions reads user-written option text. Any problem discards the
// whole text: the defaults are returned with an error wrapping
// ErrInvalidOptions, never a partial merge.
func ParseOptions(text string, s Settings) (Options, error) {
	def := Defaults(s)
	if strings.TrimSpace(text) == "" {
		return def, nil
	}

	var raw rawOptions
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return def, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	o := def
	var err error
	lists := []struct {
		name string
		in   any
		out  *[]string
	}{
		{"paths", raw.Paths, &o.Paths},
		{"tags", raw.Tags, &o.Tags},
		{"tagSet", raw.TagSet, &o.TagSet},
		{"excludeTags", raw.ExcludeTags, &o.ExcludeTags},
		{"excludeTagSet", raw.ExcludeTagSet, &o.ExcludeTagSet},
	}
	for _, l := range lists {
		if *l.out, err = stringList(l.in); err != nil {
			return def, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, l.name, err)
		}
	}
	o.Properties = raw.Properties

	if raw.LogPropertyName != "" {
		o.LogField = strings.TrimSpace(raw.LogPropertyName)
	}
	if raw.RatingMap != "" {
		o.RatingMap = raw.RatingMap
	}
	if raw.FlagMap != "" {
		o.FlagMap = raw.FlagMap
	}
	if raw.DaysInPast != nil {
		if o.DaysInPast, err = days(raw.DaysInPast); err != nil {
			return def, fmt.Errorf("%w: daysInPast: %v", ErrInvalidOptions, err)
		}
	}
	if raw.DaysInFuture != nil {
		if o.DaysInFuture, err = days(raw.DaysInFuture); err != nil {
			return def, fmt.Errorf("%w: daysInFuture: %v", ErrInvalidOptions, err)
		}
	}
	if raw.FocalDate != "" {
		if o.FocalDate, err = timeutil.ParseDate(raw.FocalDate); err != nil {
			return def, fmt.Errorf("%w: focalDate: %v", ErrInvalidOptions, err)
		}
	}
	if raw.SortBy != "" {
		o.SortBy = raw.SortBy
	}
	o.SortDescending = raw.SortDescending
	o.TitleProperty = raw.TitleProperty

	return o.floor(), nil
}

func stringList(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			switch s := e.(type) {
			case string:
				out = append(out, s)
			case int, float64, bool:
				out = append(out, fmt.Sprint(s))
			default:
				return nil, fmt.Errorf("unsupported list element %T", e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a string or a list, got %T", v)
	}
}

func days(v any) (int, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, fmt.Errorf("negative day count %d", n)
		}
		return n, nil
	case string:
		return timeutil.ParseDays(n)
	default:
		return 0, fmt.Errorf("expected a day count, got %T", v)
	}
}
