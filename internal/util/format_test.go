package util

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{18, 0, "18"},
		{1.5, 2, "1.5"},
		{0.25, 2, "0.25"},
		{2.0, 2, "2"},
		{-0.001, 2, "0"},
		{3.14159, -1, "3"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v, tt.decimals); got != tt.want {
			t.Fatalf("FormatNumber(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatHue(t *testing.T) {
	tests := map[float64]string{0: "0°", 1.0 / 3: "120°", 0.999999: "0°", -0.25: "270°"}
	for in, want := range tests {
		if got := FormatHue(in); got != want {
			t.Fatalf("FormatHue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPattern(t *testing.T) {
	if got := FormatPattern([]string{"Red", "White"}, "white"); got != "Red, White" {
		t.Fatalf("unexpected pattern %q", got)
	}
	if got := FormatPattern(nil, "white"); got != "(white)" {
		t.Fatalf("unexpected empty pattern %q", got)
	}
}

func TestFormatFrameTime(t *testing.T) {
	if got := FormatFrameTime(30); got != "33ms" {
		t.Fatalf("expected 33ms, got %q", got)
	}
	if got := FormatFrameTime(0); got != "-" {
		t.Fatalf("expected dash, got %q", got)
	}
}
