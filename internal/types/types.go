package types

import "fmt"

// Segment is one timestamped unit of transcript text. Times are seconds
// from the start of the source media.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Match is the best-scoring run of consecutive segments for a query.
// Score is a similarity ratio in [0,1] plus an optional exact-substring
// bonus, so it is not capped at 1.
type Match struct {
	Text         string
	Start        float64
	End          float64
	Score        float64
	StartSegment int
	SegmentCount int
}

// ClipWindow is the time range to extract from the source media. The
// acquisition step and the caption slicer must both use the same window.
type ClipWindow struct {
	Start float64
	End   float64
}

// WindowAround widens a match by the caller's padding. The start is
// floored at zero.
func WindowAround(m Match, before, after float64) ClipWindow {
	start := m.Start - before
	if start < 0 {
		start = 0
	}
	return ClipWindow{Start: start, End: m.End + after}
}

func (w ClipWindow) Duration() float64 {
	d := w.End - w.Start
	if d < 0 {
		return 0
	}
	return d
}

// ClipRequest is one acquisition attempt handed to the media-fetch
// service. OutputTemplate uses the service's %(ext)s placeholder so the
// service picks the container; MergeFormat pins the final extension.
type ClipRequest struct {
	URL            string
	Window         ClipWindow
	OutputTemplate string
	MergeFormat    string
	Format         string
}

// AcquisitionOutcome reports where an acquired file landed and whether its
// on-disk duration already satisfies the requested window, so no local
// trim is needed.
type AcquisitionOutcome struct {
	Path    string
	Precise bool
}

// FormatTimestamp renders seconds as HH:MM:SS.mmm, the form the fetch
// service's legacy section expressions use.
func FormatTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	hours := int(sec) / 3600
	minutes := (int(sec) % 3600) / 60
	rem := sec - float64(hours*3600+minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, rem)
}
