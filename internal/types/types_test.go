package types

import "testing"

func TestWindowAround(t *testing.T) {
	m := Match{Start: 12, End: 20}

	w := WindowAround(m, 5, 5)
	if w.Start != 7 || w.End != 25 {
		t.Fatalf("unexpected window: %+v", w)
	}

	// Before-padding never pushes the window below zero.
	w = WindowAround(Match{Start: 2, End: 8}, 5, 1)
	if w.Start != 0 || w.End != 9 {
		t.Fatalf("expected floored window [0,9], got %+v", w)
	}
}

func TestClipWindowDuration(t *testing.T) {
	if d := (ClipWindow{Start: 3, End: 10}).Duration(); d != 7 {
		t.Fatalf("expected duration 7, got %v", d)
	}
	if d := (ClipWindow{Start: 10, End: 3}).Duration(); d != 0 {
		t.Fatalf("inverted window should have zero duration, got %v", d)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := map[float64]string{
		0:       "00:00:00.000",
		-1:      "00:00:00.000",
		1.25:    "00:00:01.250",
		61:      "00:01:01.000",
		3661.5:  "01:01:01.500",
		7322.75: "02:02:02.750",
	}
	for in, want := range tests {
		if got := FormatTimestamp(in); got != want {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", in, got, want)
		}
	}
}
