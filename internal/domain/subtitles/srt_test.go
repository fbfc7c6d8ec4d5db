package subtitles

import (
	"testing"

	"ytclip/internal/types"
)

func TestSlice_ReTimesToClipStart(t *testing.T) {
	win := types.ClipWindow{Start: 5, End: 15}
	segs := []types.Segment{
		{Text: "before the clip", Start: 0, End: 5},
		{Text: "straddles the start", Start: 3, End: 7},
		{Text: "inside", Start: 8, End: 10},
		{Text: "straddles the end", Start: 14, End: 20},
		{Text: "after the clip", Start: 15, End: 18},
	}

	entries := Slice(segs, win)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Start != 0 || entries[0].End != 2 {
		t.Fatalf("expected [3,7) clipped+shifted to [0,2), got [%v,%v)", entries[0].Start, entries[0].End)
	}
	if entries[1].Start != 3 || entries[1].End != 5 {
		t.Fatalf("unexpected inside entry: %+v", entries[1])
	}
	if entries[2].Start != 9 || entries[2].End != 10 {
		t.Fatalf("expected [14,20) clipped to [9,10), got %+v", entries[2])
	}
}

func TestSlice_DropsDegenerate(t *testing.T) {
	win := types.ClipWindow{Start: 0, End: 10}
	segs := []types.Segment{
		{Text: "   ", Start: 1, End: 2},
		{Text: "kept", Start: 2, End: 3},
	}
	entries := Slice(segs, win)
	if len(entries) != 1 || entries[0].Text != "kept" {
		t.Fatalf("expected only the non-empty entry, got %+v", entries)
	}
}

func TestSlice_NothingSurvives(t *testing.T) {
	win := types.ClipWindow{Start: 100, End: 110}
	segs := []types.Segment{{Text: "early", Start: 0, End: 5}}
	if entries := Slice(segs, win); len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestRenderSRT(t *testing.T) {
	entries := []Entry{
		{Start: 0, End: 2, Text: "hello there"},
		{Start: 3.5, End: 5.25, Text: "friend of mine"},
	}
	want := "1\n" +
		"00:00:00,000 --> 00:00:02,000\n" +
		"hello there\n\n" +
		"2\n" +
		"00:00:03,500 --> 00:00:05,250\n" +
		"friend of mine\n\n"
	if got := RenderSRT(entries); got != want {
		t.Fatalf("unexpected SRT output:\n%q\nwant:\n%q", got, want)
	}
}

func TestTimestamp(t *testing.T) {
	tests := map[float64]string{
		0:       "00:00:00,000",
		-3:      "00:00:00,000",
		1.5:     "00:00:01,500",
		3661.25: "01:01:01,250",
		59.9996: "00:01:00,000",
	}
	for in, want := range tests {
		if got := Timestamp(in); got != want {
			t.Fatalf("Timestamp(%v) = %q, want %q", in, got, want)
		}
	}
}
