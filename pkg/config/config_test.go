package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/focuslog/pkg/glyph"
	"tableflip.dev/focuslog/pkg/item"
)

func TestParseOptionsEmptyIsDefaults(t *testing.T) {
	s := DefaultSettings()
	o, err := ParseOptions("  \n", s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(o, Defaults(s)) {
		t.Fatalf("expected defaults, got %+v", o)
	}
	if o.Field() != "focus-logs" || o.SortBy != "track" {
		t.Fatalf("unexpected defaults %+v", o)
	}
	if !o.Filter().IsEmpty() {
		t.Fatalf("default filter must be empty")
	}
}

func TestParseOptions(t *testing.T) {
	text := `
paths: projects/
tags: [work, urgent]
tagSet: [home]
excludeTags: archived
excludeTagSet: [a, b]
properties:
  status: active
logPropertyName: habits
ratingMap: moonPhases
flagMap: default
daysInPast: 2w
daysInFuture: 3
focalDate: 2024-03-05
sortBy: status
sortDescending: true
titleProperty: title
`
	o, err := ParseOptions(text, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := o.Filter()
	if !reflect.DeepEqual(f.Paths, []string{"projects/"}) ||
		!reflect.DeepEqual(f.TagsAny, []string{"work", "urgent"}) ||
		!reflect.DeepEqual(f.TagsAll, []string{"home"}) ||
		!reflect.DeepEqual(f.ExcludeTagsAny, []string{"archived"}) ||
		!reflect.DeepEqual(f.ExcludeTagsAll, []string{"a", "b"}) ||
		f.PropertyEquals["status"] != "active" {
		t.Fatalf("unexpected filter %+v", f)
	}
	if o.Field() != "habits" || o.Ratings().Name != "moonPhases" || o.Flags().Name != "default" {
		t.Fatalf("unexpected tables/field %+v", o)
	}
	if o.DaysInPast != 14 || o.DaysInFuture != 3 {
		t.Fatalf("days = %d/%d", o.DaysInPast, o.DaysInFuture)
	}
	if got := o.Focal(time.Now()); got != time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("focal = %v", got)
	}
	if o.SortBy != "status" || !o.SortDescending || o.TitleProperty != "title" {
		t.Fatalf("unexpected sort %+v", o)
	}
}

func TestParseOptionsInvalidFallsBackToDefaults(t *testing.T) {
	s := DefaultSettings()
	for _, text := range []string{
		"paths: [unterminated",
		"daysInPast: soon",
		"focalDate: yesterday",
		"tags: {a: b}",
		"unknownOption: 1",
		"daysInFuture: -2",
	} {
		o, err := ParseOptions(text, s)
		if !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("%q: expected ErrInvalidOptions, got %v", text, err)
		}
		if !reflect.DeepEqual(o, Defaults(s)) {
			t.Fatalf("%q: expected defaults, got %+v", text, o)
		}
	}
}

func TestDaysAreFlooredToMinimums(t *testing.T) {
	s := DefaultSettings()
	s.MinDaysInPast = 3
	s.MinDaysInFuture = 1
	o, err := ParseOptions("daysInPast: 1\ndaysInFuture: 0", s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.DaysInPast != 3 || o.DaysInFuture != 1 {
		t.Fatalf("days = %d/%d", o.DaysInPast, o.DaysInFuture)
	}
	if o = o.WithDays(0, 5); o.DaysInPast != 3 || o.DaysInFuture != 5 {
		t.Fatalf("WithDays = %d/%d", o.DaysInPast, o.DaysInFuture)
	}
}

func TestUnknownMapsFallBackToConfiguredDefault(t *testing.T) {
	s := DefaultSettings()
	s.DefaultRatingMap = "colors1"
	o, err := ParseOptions("ratingMap: sparkles\nflagMap: nope", s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Ratings().Name != "colors1" || o.Flags().Name != glyph.DefaultFlagMap {
		t.Fatalf("unexpected maps %s/%s", o.Ratings().Name, o.Flags().Name)
	}
}

func TestOptionsAreValues(t *testing.T) {
	today := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)
	base, err := ParseOptions("tags: [a]", DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shifted := base.ShiftFocal(-3, today)
	if !base.FocalDate.IsZero() {
		t.Fatalf("base options changed")
	}
	if got := shifted.Focal(today); got != time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("shifted focal = %v", got)
	}

	shifted.Tags[0] = "changed"
	if base.Tags[0] != "a" {
		t.Fatalf("copies share tag storage")
	}

	sorted := base.WithSort("", true)
	if sorted.SortBy != "track" || !sorted.SortDescending || base.SortDescending {
		t.Fatalf("unexpected sort options %+v", sorted)
	}

	w := base.Window(today)
	if len(w) != base.DaysInPast+base.DaysInFuture+1 || !w[base.DaysInPast].IsToday {
		t.Fatalf("default window must centre on today")
	}

	if m := base.WithMaps("moonPhases", ""); m.Ratings().Name != "moonPhases" || m.Flags().Name != base.Flags().Name {
		t.Fatalf("unexpected maps")
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "vault: " + filepath.Join(dir, "vault") + "\ndaysInPast: 3\nlocale: de\nreadConcurrency: 0\n"
	if err := os.WriteFile(filepath.Join(dir, ".focus.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	t.Setenv("FOCUS_CONFIG_PATH", dir)

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.BasePath() != filepath.Join(dir, "vault") {
		t.Fatalf("vault = %q", s.BasePath())
	}
	if s.DaysInPast != 3 || s.DaysInFuture != 7 {
		t.Fatalf("days = %d/%d", s.DaysInPast, s.DaysInFuture)
	}
	if s.Language() != language.German {
		t.Fatalf("language = %v", s.Language())
	}
	if s.ReadConcurrency != 1 {
		t.Fatalf("read concurrency should be at least 1, got %d", s.ReadConcurrency)
	}
}

func TestSettingsHelpers(t *testing.T) {
	s := DefaultSettings()
	s.Locale = "!!"
	if s.Language() != language.Und {
		t.Fatalf("expected root language for bad locale")
	}
	s.LogLevel = "debug"
	if s.Level().String() != "DEBUG" {
		t.Fatalf("level = %v", s.Level())
	}
	s.LogLevel = "loud"
	if s.Level().String() != "INFO" {
		t.Fatalf("level = %v", s.Level())
	}
}

func TestTagPatternsAcceptHash(t *testing.T) {
	o, err := ParseOptions("tags: \"#work\"\nexcludeTagSet: ['#draft', '#old']", DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := []item.Item{
		item.New("a.md", []string{"work"}, nil),
		item.New("b.md", []string{"work", "draft", "old"}, nil),
		item.New("c.md", []string{"home"}, nil),
	}
	got := item.Filter(items, o.Filter())
	if len(got) != 1 || got[0].Path != "a.md" {
		t.Fatalf("filter = %v", got)
	}
	if o.Tags[0] != "#work" {
		t.Fatalf("options should keep the authored pattern, got %q", o.Tags[0])
	}
}
