package store

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var errUnterminated = errors.New("store: unterminated frontmatter")

// splitFrontmatter separates a leading "---" delimited YAML block from the
// body. ok is false when the document has no header.
func splitFrontmatter(content []byte) (header, body []byte, ok bool, err error) {
	lines := bytes.SplitAfter(content, []byte("\n"))
	if len(lines) == 0 || strings.TrimSpace(string(lines[0])) != delimiter {
		return nil, content, false, nil
	}
	offset := len(lines[0])
	for _, line := range lines[1:] {
		if strings.TrimSpace(string(line)) == delimiter {
			return content[len(lines[0]):offset], content[offset+len(line):], true, nil
		}
		offset += len(line)
	}
	return nil, content, false, errUnterminated
}

// parseHeader decodes the frontmatter into a plain map. Parse failures
// return an empty map and the error.
func parseHeader(content []byte) (map[string]any, error) {
	header, _, ok, err := splitFrontmatter(content)
	if err != nil {
		return map[string]any{}, err
	}
	out := map[string]any{}
	if !ok {
		return out, nil
	}
	if err := yaml.Unmarshal(header, &out); err != nil {
		return map[string]any{}, fmt.Errorf("store: parse frontmatter: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// parseHeaderNode decodes the frontmatter into a mapping node, keeping key
// order. A document without a header yields an empty mapping.
func parseHeaderNode(content []byte) (*yaml.Node, []byte, error) {
	header, body, ok, err := splitFrontmatter(content)
	if err != nil {
		return nil, nil, err
	}
	empty := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if !ok || len(bytes.TrimSpace(header)) == 0 {
		return empty, body, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(header, &doc); err != nil {
		return nil, nil, fmt.Errorf("store: parse frontmatter: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return empty, body, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("store: frontmatter is not a mapping")
	}
	return root, body, nil
}

// setField replaces or appends field in the document header, leaving the
// other fields, their order and the body untouched.
func setField(content []byte, field string, value any) ([]byte, error) {
	root, body, err := parseHeaderNode(content)
	if err != nil {
		return nil, err
	}

	var v yaml.Node
	if err := v.Encode(value); err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", field, err)
	}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == field {
			root.Content[i+1] = &v
			replaced = true
			break
		}
	}
	if !replaced {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field},
			&v,
		)
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("store: encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString(delimiter + "\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

var inlineTag = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_/-]+)`)

// documentTags collects the header "tags" field (a list, or a comma or space
// separated string) and inline #tags from the body.
func documentTags(header map[string]any, content []byte) []string {
	var tags []string
	switch v := header["tags"].(type) {
	case string:
		tags = append(tags, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' '
		})...)
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
	}

	_, body, _, err := splitFrontmatter(content)
	if err != nil {
		body = content
	}
	for _, m := range inlineTag.FindAllSubmatch(body, -1) {
		tags = append(tags, string(m[1]))
	}
	return tags
}
