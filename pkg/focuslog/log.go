// Package focuslog holds the ordered per-item log of daily entries: how it is
// read from its stored form, how a single day is changed, and how it is
// written back.
package focuslog

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"tableflip.dev/focuslog/pkg/entry"
)

// DefaultField is the header field holding the log when none is configured.
const DefaultField = "focus-logs"

// Log maps YYYY-MM-DD keys to entries, keeping key order. The zero value is
// an empty log. A Log is never modified in place; Apply returns a new one.
type Log struct {
	dates   []string
	entries map[string]entry.Entry
}

// Len returns the number of dates in the log.
func (l Log) Len() int {
	return len(l.dates)
}

// Dates returns the keys in log order.
func (l Log) Dates() []string {
	return append([]string(nil), l.dates...)
}

// Get returns the entry stored under date.
func (l Log) Get(date string) (entry.Entry, bool) {
	e, ok := l.entries[date]
	return e, ok
}

// Entry returns the entry stored under date or the zero entry.
func (l Log) Entry(date string) entry.Entry {
	return l.entries[date]
}

// Ratings returns every stored scale value in log order.
func (l Log) Ratings() []int {
	out := make([]int, 0, len(l.dates))
	for _, d := range l.dates {
		out = append(out, l.entries[d].Rating)
	}
	return out
}

// With returns a copy of l with date set to e. New dates are appended.
func (l Log) With(date string, e entry.Entry) Log {
	out := Log{
		dates:   make([]string, 0, len(l.dates)+1),
		entries: make(map[string]entry.Entry, len(l.entries)+1),
	}
	out.dates = append(out.dates, l.dates...)
	for k, v := range l.entries {
		out.entries[k] = v
	}
	if _, ok := out.entries[date]; !ok {
		out.dates = append(out.dates, date)
	}
	out.entries[date] = e
	return out
}

func (l *Log) put(date string, e entry.Entry) {
	if l.entries == nil {
		l.entries = make(map[string]entry.Entry)
	}
	if _, ok := l.entries[date]; !ok {
		l.dates = append(l.dates, date)
	}
	l.entries[date] = e
}

// MarshalJSON writes the log as an object in log order.
func (l Log) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range l.dates {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(l.entries[d])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts every historical value shape.
func (l *Log) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*l = Normalize(raw)
	return nil
}

// MarshalYAML writes the log as a mapping in log order, each value in the
// structured {rating, remarks} form.
func (l Log) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, d := range l.dates {
		var v yaml.Node
		if err := v.Encode(l.entries[d]); err != nil {
			return nil, err
		}
		v.Style = yaml.FlowStyle
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: d},
			&v,
		)
	}
	return node, nil
}

// UnmarshalYAML accepts every historical value shape and keeps document
// order.
func (l *Log) UnmarshalYAML(value *yaml.Node) error {
	*l = NormalizeNode(value)
	return nil
}
