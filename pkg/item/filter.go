package item

import (
	"reflect"
	"strings"
)

// FilterSpec narrows the candidate items. Every empty list or map imposes no
// constraint.
type FilterSpec struct {
	// Paths: the path must match at least one pattern.
	Paths []string `json:"paths,omitempty"`
	// TagsAny: at least one pattern must match some tag.
	TagsAny []string `json:"tagsAny,omitempty"`
	// TagsAll: every pattern must match some tag.
	TagsAll []string `json:"tagsAll,omitempty"`
	// ExcludeTagsAny: the item is dropped when any pattern matches some tag.
	ExcludeTagsAny []string `json:"excludeTagsAny,omitempty"`
	// ExcludeTagsAll: the item is dropped when every pattern matches some tag.
	ExcludeTagsAll []string `json:"excludeTagsAll,omitempty"`
	// PropertyEquals: at least one listed property must be present with an
	// equal value.
	PropertyEquals map[string]any `json:"propertyEquals,omitempty"`
}

// IsEmpty reports whether s lets every item through.
func (s FilterSpec) IsEmpty() bool {
	return len(s.Paths) == 0 && len(s.TagsAny) == 0 && len(s.TagsAll) == 0 &&
		len(s.ExcludeTagsAny) == 0 && len(s.ExcludeTagsAll) == 0 && len(s.PropertyEquals) == 0
}

// Match reports whether pattern occurs anywhere in target. Matching is case
// sensitive and the empty pattern matches everything.
func Match(pattern, target string) bool {
	return strings.Contains(target, pattern)
}

// Filter returns the items accepted by s, in input order.
func Filter(items []Item, s FilterSpec) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if s.Accepts(it) {
			out = append(out, it)
		}
	}
	return out
}

// Accepts evaluates the clauses of s against it in order, stopping at the
// first one that fails.
func (s FilterSpec) Accepts(it Item) bool {
	if len(s.Paths) > 0 && !anyPattern(s.Paths, func(p string) bool { return Match(p, it.Path) }) {
		return false
	}
	if len(s.TagsAny) > 0 && !anyPattern(s.TagsAny, it.matchesTag) {
		return false
	}
	if len(s.TagsAll) > 0 && !allPatterns(s.TagsAll, it.matchesTag) {
		return false
	}
	if len(s.ExcludeTagsAny) > 0 && anyPattern(s.ExcludeTagsAny, it.matchesTag) {
		return false
	}
	if len(s.ExcludeTagsAll) > 0 && allPatterns(s.ExcludeTagsAll, it.matchesTag) {
		return false
	}
	if len(s.PropertyEquals) > 0 && !it.hasAnyProperty(s.PropertyEquals) {
		return false
	}
	return true
}

func (it Item) matchesTag(pattern string) bool {
	for _, t := range it.Tags {
		if Match(pattern, t) {
			return true
		}
	}
	return false
}

// hasAnyProperty is satisfied by a single matching property.
// TODO: decide with users whether required properties should all match, like
// tag sets do; stored option files rely on the current behaviour.
func (it Item) hasAnyProperty(want map[string]any) bool {
	for k, v := range want {
		got, ok := it.Properties[k]
		if ok && Equal(got, v) {
			return true
		}
	}
	return false
}

func anyPattern(patterns []string, ok func(string) bool) bool {
	for _, p := range patterns {
		if ok(p) {
			return true
		}
	}
	return false
}

func allPatterns(patterns []string, ok func(string) bool) bool {
	for _, p := range patterns {
		if !ok(p) {
			return false
		}
	}
	return true
}

// Equal compares property values exactly, except that numbers compare by
// value whatever their Go type (YAML may decode 3 as int and 3.0 as float64).
func Equal(a, b any) bool {
	if af, ok := number(a); ok {
		bf, ok := number(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
