package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decode upgrades any historical stored shape to an Entry.
//
// Stored values are bare numbers (rating only), bare strings (numeric
// strings are ratings, anything else is remarks with rating 0) or mappings
// shaped like Entry. Values of any other shape decode to the zero Entry.
func Decode(raw any) Entry {
	switch v := raw.(type) {
	case nil:
		return Entry{}
	case map[string]any:
		return fromMap(func(k string) (any, bool) {
			val, ok := v[k]
			return val, ok
		})
	case map[any]any:
		return fromMap(func(k string) (any, bool) {
			val, ok := v[k]
			return val, ok
		})
	case Entry:
		return v
	case *Entry:
		if v == nil {
			return Entry{}
		}
		return *v
	case string:
		return fromString(v)
	default:
		if n, ok := toInt(raw); ok {
			return Entry{Rating: n}
		}
		return Entry{}
	}
}

func fromString(s string) Entry {
	if strings.TrimSpace(s) == "" {
		return Entry{}
	}
	n, err := parseNumber(s)
	switch {
	case err == nil:
		return Entry{Rating: n}
	case errors.Is(err, errOutOfRange):
		return Entry{}
	default:
		return Entry{Remarks: s}
	}
}

func fromMap(get func(string) (any, bool)) Entry {
	var e Entry
	if r, ok := get("rating"); ok {
		switch rv := r.(type) {
		case string:
			e.Rating, _ = parseNumber(rv)
		default:
			e.Rating, _ = toInt(rv)
		}
	}
	if r, ok := get("remarks"); ok && r != nil {
		switch rv := r.(type) {
		case string:
			e.Remarks = rv
		default:
			e.Remarks = fmt.Sprint(rv)
		}
	}
	return e
}

var (
	errNotNumber  = errors.New("not a number")
	errOutOfRange = errors.New("number out of range")
)

// parseNumber reads a trimmed integer or decimal string, truncating fractions.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errNotNumber
	}
	n, ok := truncate(f)
	if !ok {
		return 0, errOutOfRange
	}
	return n, nil
}

// toInt accepts every numeric type the YAML and JSON decoders produce.
// Values that do not fit in an int are rejected so the sign never flips.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return truncate(float64(n))
	case float64:
		return truncate(n)
	case json.Number:
		n2, err := parseNumber(n.String())
		return n2, err == nil
	default:
		return 0, false
	}
}

// truncate drops any fraction; NaN and infinities decode to 0 and finite
// values beyond the int range are rejected.
func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true
	}
	f = math.Trunc(f)
	if f >= math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}
