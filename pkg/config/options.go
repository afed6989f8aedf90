package config

import (
	"time"

	"tableflip.dev/focuslog/pkg/focuslog"
	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/item"
	"tableflip.dev/focuslog/pkg/timeutil"
)

// Options describe one focus grid. An Options value is never changed after
// it is built: the With* methods return modified copies, and callers derive
// a fresh grid from the copy.
type Options struct {
	Paths          []string
	Properties     map[string]any
	Tags           []string
	TagSet         []string
	ExcludeTags    []string
	ExcludeTagSet  []string
	LogField       string
	RatingMap      string
	FlagMap        string
	DaysInPast     int
	DaysInFuture   int
	FocalDate      time.Time
	SortBy         string
	SortDescending bool
	TitleProperty  string

	// minimums the window counts are floored to, from Settings.
	minPast   int
	minFuture int
	// table fallbacks for unknown map names, from Settings.
	defaultRatingMap string
	defaultFlagMap   string
}

// Defaults returns the options used when nothing, or nothing valid, was
// written. FocalDate is left zero, meaning today.
func Defaults(s Settings) Options {
	o := Options{
		LogField:         focuslog.DefaultField,
		RatingMap:        s.DefaultRatingMap,
		FlagMap:          s.DefaultFlagMap,
		DaysInPast:       s.DaysInPast,
		DaysInFuture:     s.DaysInFuture,
		SortBy:           item.SortByLabel,
		minPast:          s.MinDaysInPast,
		minFuture:        s.MinDaysInFuture,
		defaultRatingMap: s.DefaultRatingMap,
		defaultFlagMap:   s.DefaultFlagMap,
	}
	return o.floor()
}

func (o Options) floor() Options {
	if o.DaysInPast < o.minPast {
		o.DaysInPast = o.minPast
	}
	if o.DaysInFuture < o.minFuture {
		o.DaysInFuture = o.minFuture
	}
	if o.DaysInPast < 0 {
		o.DaysInPast = 0
	}
	if o.DaysInFuture < 0 {
		o.DaysInFuture = 0
	}
	return o
}

// Filter is the item filter described by o.
func (o Options) Filter() item.FilterSpec {
	return item.FilterSpec{
		Paths:          clone(o.Paths),
		TagsAny:        item.TagPatterns(o.Tags),
		TagsAll:        item.TagPatterns(o.TagSet),
		ExcludeTagsAny: item.TagPatterns(o.ExcludeTags),
		ExcludeTagsAll: item.TagPatterns(o.ExcludeTagSet),
		PropertyEquals: cloneMap(o.Properties),
	}
}

// Focal resolves FocalDate against today.
func (o Options) Focal(today time.Time) time.Time {
	if o.FocalDate.IsZero() {
		return timeutil.Civil(today)
	}
	return timeutil.Civil(o.FocalDate)
}

// Window lays out the grid days for o.
func (o Options) Window(today time.Time) timeutil.Window {
	return timeutil.Generate(o.Focal(today), o.DaysInPast, o.DaysInFuture, today)
}

// Ratings is the rating table for o, falling back to the configured default.
func (o Options) Ratings() glyph.RatingMap {
	return glyph.RatingMapFor(o.RatingMap, o.defaultRatingMap)
}

// Flags is the flag table for o, falling back to the configured default.
func (o Options) Flags() glyph.FlagMap {
	return glyph.FlagMapFor(o.FlagMap, o.defaultFlagMap)
}

// Field is the header field holding the logs.
func (o Options) Field() string {
	if o.LogField == "" {
		return focuslog.DefaultField
	}
	return o.LogField
}

// WithFocalDate returns o centred on d; the zero time means today.
func (o Options) WithFocalDate(d time.Time) Options {
	if !d.IsZero() {
		d = timeutil.Civil(d)
	}
	o.FocalDate = d
	return o.copyRefs()
}

// ShiftFocal moves the focal date by n days from its resolved value.
func (o Options) ShiftFocal(n int, today time.Time) Options {
	return o.WithFocalDate(timeutil.AddDays(o.Focal(today), n))
}

// WithSort returns o sorted by key.
func (o Options) WithSort(key string, descending bool) Options {
	if key == "" {
		key = item.SortByLabel
	}
	o.SortBy = key
	o.SortDescending = descending
	return o.copyRefs()
}

// WithDays returns o with new window counts, floored to the minimums.
func (o Options) WithDays(past, future int) Options {
	o.DaysInPast = past
	o.DaysInFuture = future
	return o.floor().copyRefs()
}

// WithMaps returns o drawn with other symbol tables.
func (o Options) WithMaps(rating, flag string) Options {
	if rating != "" {
		o.RatingMap = rating
	}
	if flag != "" {
		o.FlagMap = flag
	}
	return o.copyRefs()
}

// copyRefs detaches slices and maps so copies never share storage.
func (o Options) copyRefs() Options {
	o.Paths = clone(o.Paths)
	o.Tags = clone(o.Tags)
	o.TagSet = clone(o.TagSet)
	o.ExcludeTags = clone(o.ExcludeTags)
	o.ExcludeTagSet = clone(o.ExcludeTagSet)
	o.Properties = cloneMap(o.Properties)
	return o
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
