package item

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByLabel is the sort key that orders items by their label; any other key
// names a property.
const SortByLabel = "track"

// ListSeparator joins list property values for display and sorting.
const ListSeparator = " • "

// Sort returns items ordered by key using case-insensitive collation for
// lang. Equal keys keep their input order; descending reverses the
// comparison, not the input.
func Sort(items []Item, key string, descending bool, lang language.Tag) []Item {
	out := append([]Item(nil), items...)
	keys := make([]string, len(out))
	for i, it := range out {
		keys[i] = it.SortKey(key)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}

	c := collate.New(lang, collate.IgnoreCase)
	sort.SliceStable(idx, func(i, j int) bool {
		cmp := c.CompareString(keys[idx[i]], keys[idx[j]])
		if descending {
			cmp = -cmp
		}
		return cmp < 0
	})

	sorted := make([]Item, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}

// SortKey returns the string it is compared by under key.
func (it Item) SortKey(key string) string {
	if key == "" || key == SortByLabel {
		return it.Label
	}
	return DisplayString(it.Properties[key])
}

// DisplayString renders a property value: lists are joined with
// ListSeparator, nil is empty and everything else is formatted as is.
func DisplayString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ListSeparator)
	case []any:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = DisplayString(p)
		}
		return strings.Join(parts, ListSeparator)
	default:
		return fmt.Sprint(val)
	}
}
