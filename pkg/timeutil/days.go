package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	spanUnits   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseDays parses a day count. Plain integers are days; otherwise the
// input is a run of week/day segments such as "2w" or "1w3d".
func ParseDays(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, fmt.Errorf("timeutil: empty day count")
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("timeutil: negative day count %d", n)
		}
		return n, nil
	}

	remaining := trimmed
	total := 0
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("timeutil: invalid day segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid day value %q: %w", matches[1], err)
		}
		unit, ok := spanUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unsupported unit %q", matches[2])
		}
		total += value * unit
		remaining = remaining[len(matches[0]):]
	}
	return total, nil
}

// FormatDays renders n as week/day tokens, e.g. 10 -> "1w3d".
func FormatDays(n int) string {
	if n <= 0 {
		return "0d"
	}
	var parts []string
	if w := n / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := n % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return strings.Join(parts, "")
}
