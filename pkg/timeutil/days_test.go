package timeutil

import "testing"

func TestParseDays(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 0 ", 0},
		{"2w", 14},
		{"1w3d", 10},
		{"3 days", 3},
		{"1 Week", 7},
	}
	for _, tt := range tests {
		got, err := ParseDays(tt.in)
		if err != nil {
			t.Fatalf("ParseDays(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDays(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDaysInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "-3", "2h"} {
		if _, err := ParseDays(in); err == nil {
			t.Fatalf("ParseDays(%q): expected error", in)
		}
	}
}

func TestFormatDays(t *testing.T) {
	for n, want := range map[int]string{0: "0d", 3: "3d", 7: "1w", 10: "1w3d", 14: "2w"} {
		if got := FormatDays(n); got != want {
			t.Fatalf("FormatDays(%d) = %q, want %q", n, got, want)
		}
	}
}
