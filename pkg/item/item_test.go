package item

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func paths(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path
	}
	return out
}

func TestFilterByTagAny(t *testing.T) {
	items := []Item{
		{Path: "a/b.md", Tags: []string{"x"}},
		{Path: "c/d.md", Tags: []string{"y"}},
	}
	got := Filter(items, FilterSpec{TagsAny: []string{"x"}})
	if !reflect.DeepEqual(paths(got), []string{"a/b.md"}) {
		t.Fatalf("unexpected result %v", paths(got))
	}
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	items := []Item{{Path: "z.md"}, {Path: "a.md", Tags: []string{"t"}}, {Path: "m.md"}}
	got := Filter(items, FilterSpec{})
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected input unchanged, got %v", paths(got))
	}
	if !(FilterSpec{}).IsEmpty() {
		t.Fatalf("expected empty spec")
	}
}

func TestFilterClauses(t *testing.T) {
	items := []Item{
		{Path: "projects/alpha.md", Tags: []string{"work", "urgent"}, Properties: map[string]any{"status": "active", "prio": 1}},
		{Path: "projects/beta.md", Tags: []string{"work"}, Properties: map[string]any{"status": "paused"}},
		{Path: "home/garden.md", Tags: []string{"home", "outdoor"}, Properties: map[string]any{"prio": 2.0}},
		{Path: "home/taxes.md", Tags: []string{"home", "work/admin"}},
	}

	tests := []struct {
		name string
		spec FilterSpec
		want []string
	}{
		{"path substring", FilterSpec{Paths: []string{"projects/"}}, []string{"projects/alpha.md", "projects/beta.md"}},
		{"path any", FilterSpec{Paths: []string{"alpha", "garden"}}, []string{"projects/alpha.md", "home/garden.md"}},
		{"path is case sensitive", FilterSpec{Paths: []string{"Projects"}}, []string{}},
		{"empty pattern matches all", FilterSpec{Paths: []string{""}}, []string{"projects/alpha.md", "projects/beta.md", "home/garden.md", "home/taxes.md"}},
		{"tags any substring", FilterSpec{TagsAny: []string{"work"}}, []string{"projects/alpha.md", "projects/beta.md", "home/taxes.md"}},
		{"tags all", FilterSpec{TagsAll: []string{"home", "work"}}, []string{"home/taxes.md"}},
		{"exclude any", FilterSpec{ExcludeTagsAny: []string{"urgent", "outdoor"}}, []string{"projects/beta.md", "home/taxes.md"}},
		{"exclude all needs every pattern", FilterSpec{ExcludeTagsAll: []string{"work", "urgent"}}, []string{"projects/beta.md", "home/garden.md", "home/taxes.md"}},
		{"property any", FilterSpec{PropertyEquals: map[string]any{"status": "active", "prio": 2}}, []string{"projects/alpha.md", "home/garden.md"}},
		{"property missing", FilterSpec{PropertyEquals: map[string]any{"owner": "me"}}, []string{}},
		{"clauses combine", FilterSpec{Paths: []string{"projects"}, ExcludeTagsAny: []string{"urgent"}}, []string{"projects/beta.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths(Filter(items, tt.spec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(3, 3.0) || !Equal(int64(2), uint64(2)) {
		t.Fatalf("numbers should compare by value")
	}
	if Equal(3, "3") || Equal("a", "A") {
		t.Fatalf("unexpected equality")
	}
	if !Equal([]any{"a", "b"}, []any{"a", "b"}) {
		t.Fatalf("lists should compare deeply")
	}
}

func TestSortByLabelIgnoresCase(t *testing.T) {
	items := []Item{{Path: "1", Label: "banana"}, {Path: "2", Label: "Apple"}, {Path: "3", Label: "cherry"}}
	got := paths(Sort(items, SortByLabel, false, language.English))
	if !reflect.DeepEqual(got, []string{"2", "1", "3"}) {
		t.Fatalf("ascending = %v", got)
	}
	got = paths(Sort(items, SortByLabel, true, language.English))
	if !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Fatalf("descending = %v", got)
	}
	if items[0].Path != "1" {
		t.Fatalf("input was reordered")
	}
}

func TestSortIsStable(t *testing.T) {
	items := []Item{
		{Path: "1", Label: "same"},
		{Path: "2", Label: "Same"},
		{Path: "3", Label: "a"},
		{Path: "4", Label: "SAME"},
	}
	asc := paths(Sort(items, SortByLabel, false, language.Und))
	if !reflect.DeepEqual(asc, []string{"3", "1", "2", "4"}) {
		t.Fatalf("ascending = %v", asc)
	}
	desc := paths(Sort(items, SortByLabel, true, language.Und))
	if !reflect.DeepEqual(desc, []string{"1", "2", "4", "3"}) {
		t.Fatalf("descending = %v", desc)
	}

	first := Sort(items, SortByLabel, false, language.Und)
	again := Sort(Sort(Sort(first, SortByLabel, true, language.Und), SortByLabel, false, language.Und), SortByLabel, false, language.Und)
	if !reflect.DeepEqual(paths(first), paths(again)) {
		t.Fatalf("toggling direction changed order: %v vs %v", paths(first), paths(again))
	}
}

func TestSortByProperty(t *testing.T) {
	items := []Item{
		{Path: "1", Properties: map[string]any{"area": []any{"work", "ops"}}},
		{Path: "2"},
		{Path: "3", Properties: map[string]any{"area": "Home"}},
	}
	got := paths(Sort(items, "area", false, language.English))
	if !reflect.DeepEqual(got, []string{"2", "3", "1"}) {
		t.Fatalf("got %v", got)
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{[]any{"a", 1, nil}, "a • 1 • "},
		{[]string{"p", "q"}, "p • q"},
		{42, "42"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := DisplayString(tt.in); got != tt.want {
			t.Fatalf("DisplayString(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewAndLabels(t *testing.T) {
	it := New("notes/Daily Focus.md", []string{"#work", "work", " ", "home"}, map[string]any{"title": "Focus"})
	if it.Label != "Daily Focus" {
		t.Fatalf("label = %q", it.Label)
	}
	if !reflect.DeepEqual(it.Tags, []string{"home", "work"}) {
		t.Fatalf("tags = %v", it.Tags)
	}
	if got := it.WithLabelFrom("title").Label; got != "Focus" {
		t.Fatalf("label from property = %q", got)
	}
	if got := it.WithLabelFrom("missing").Label; got != "Daily Focus" {
		t.Fatalf("missing property should keep label, got %q", got)
	}
}

func TestTagPatterns(t *testing.T) {
	got := TagPatterns([]string{"#work", " home ", "#", "##deep"})
	if want := []string{"work", "home", "deep"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("TagPatterns = %v, want %v", got, want)
	}
	if TagPatterns(nil) != nil {
		t.Fatalf("nil patterns should stay nil")
	}
}
