package subtitles

import (
	"fmt"
	"math"
	"strings"

	"ytclip/internal/domain/transcript"
	"ytclip/internal/types"
)

// Entry is one caption line re-timed relative to the clip start.
type Entry struct {
	Start float64
	End   float64
	Text  string
}

// Slice re-windows the transcript to the clip. A segment survives when it
// overlaps the window; its boundaries are clipped to the window and
// shifted by -win.Start so the emitted captions start near zero. Segments
// left with a zero-or-negative span, or with no text after whitespace
// normalization, are dropped. An empty result is a normal outcome — the
// caller writes no caption file at all.
func Slice(segs []types.Segment, win types.ClipWindow) []Entry {
	var out []Entry
	for _, s := range segs {
		if s.End <= win.Start || s.Start >= win.End {
			continue
		}
		start := math.Max(s.Start, win.Start) - win.Start
		end := math.Min(s.End, win.End) - win.Start
		if end <= start {
			continue
		}
		text := transcript.CollapseWhitespace(s.Text)
		if text == "" {
			continue
		}
		out = append(out, Entry{Start: start, End: end, Text: text})
	}
	return out
}

// RenderSRT emits entries in SubRip form: 1-based index line, comma-
// millisecond timing line, text, blank separator.
func RenderSRT(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d\n", i+1)
		b.WriteString(Timestamp(e.Start))
		b.WriteString(" --> ")
		b.WriteString(Timestamp(e.End))
		b.WriteString("\n")
		b.WriteString(e.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Timestamp renders seconds as HH:MM:SS,mmm with millisecond rounding
// carried into the seconds field.
func Timestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int64(math.Round(sec * 1000))
	hours := ms / 3600000
	ms -= hours * 3600000
	minutes := ms / 60000
	ms -= minutes * 60000
	seconds := ms / 1000
	ms -= seconds * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}
