// Package item selects and orders the tracked items shown as grid rows.
package item

import (
	"path"
	"sort"
	"strings"
)

// Item is a tracked document. Path is its identity; Label is resolved by the
// caller and only used for display and sorting.
type Item struct {
	Path       string         `json:"path"`
	Label      string         `json:"label"`
	Tags       []string       `json:"tags,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// New builds an item labelled with its base name.
func New(p string, tags []string, props map[string]any) Item {
	return Item{
		Path:       p,
		Label:      BaseLabel(p),
		Tags:       NormalizeTags(tags),
		Properties: props,
	}
}

// BaseLabel is the file name of p without its extension.
func BaseLabel(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// WithLabelFrom returns it labelled by the named property, when present and
// not blank.
func (it Item) WithLabelFrom(property string) Item {
	if property == "" {
		return it
	}
	if v, ok := it.Properties[property]; ok {
		if s := strings.TrimSpace(DisplayString(v)); s != "" {
			it.Label = s
		}
	}
	return it
}

// TagPatterns strips a leading '#' from tag filter patterns the same way
// NormalizeTags does for tags, keeping order. Blank patterns are dropped.
func TagPatterns(patterns []string) []string {
	if patterns == nil {
		return nil
	}
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimLeft(strings.TrimSpace(p), "#"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeTags strips leading '#', drops blanks and duplicates and sorts.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimLeft(strings.TrimSpace(t), "#")
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
