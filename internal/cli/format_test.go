package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{7_990_000, "$7,990,000"},
		{96_843_000, "$96,843,000"},
		{399_500.4, "$399,500"},
		{399_500.5, "$399,501"}, // rounds to nearest whole dollar
		{-1_234.6, "-$1,235"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompactMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{950, "$950"},
		{45_000, "$45K"},
		{7_990_000, "$8.0M"},
		{96_843_000, "$96.8M"},
		{1_200_000_000, "$1.2B"},
	}

	for _, tt := range tests {
		if got := FormatCompactMoney(tt.in); got != tt.want {
			t.Errorf("FormatCompactMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-45_000, "-45,000"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got, want := FormatPercent(37.42), "37.4%"; got != want {
		t.Errorf("FormatPercent(37.42) = %q, want %q", got, want)
	}
	if got, want := FormatPercent(100), "100.0%"; got != want {
		t.Errorf("FormatPercent(100) = %q, want %q", got, want)
	}
}
