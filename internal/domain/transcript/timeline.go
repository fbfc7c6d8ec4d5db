package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ytclip/internal/types"
)

// ErrEmptyTranscript means the caption payload yielded no usable segments.
var ErrEmptyTranscript = errors.New("transcript contains no usable segments")

const (
	// Degenerate events get this synthetic duration so End > Start holds
	// for every segment.
	minSegmentSeconds = 0.5
	// Events carrying neither a duration nor an end offset default to one
	// second.
	defaultEventMs = 1000
)

// payload mirrors the fetch service's json3 caption document.
type payload struct {
	Events []event `json:"events"`
}

type event struct {
	StartMs    *int64     `json:"tStartMs"`
	DurationMs *int64     `json:"dDurationMs"`
	EndMs      *int64     `json:"tEndMs"`
	Segs       []fragment `json:"segs"`
}

type fragment struct {
	UTF8 string `json:"utf8"`
}

// BuildTimeline converts a raw json3 caption payload into an ordered,
// non-overlapping segment sequence. Events without a start offset or
// without text are dropped. The result satisfies, for every segment,
// End > Start and Start >= previous End.
func BuildTimeline(raw []byte) ([]types.Segment, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode caption payload: %w", err)
	}
	segs := segmentsFromEvents(p.Events)
	if len(segs) == 0 {
		return nil, ErrEmptyTranscript
	}
	return segs, nil
}

func segmentsFromEvents(events []event) []types.Segment {
	var out []types.Segment
	for _, ev := range events {
		if ev.StartMs == nil {
			continue
		}
		startMs := *ev.StartMs

		var endMs int64
		switch {
		case ev.DurationMs != nil && *ev.DurationMs > 0:
			endMs = startMs + *ev.DurationMs
		case ev.EndMs != nil:
			endMs = *ev.EndMs
		default:
			endMs = startMs + defaultEventMs
		}

		var parts []string
		for _, f := range ev.Segs {
			if f.UTF8 != "" {
				parts = append(parts, f.UTF8)
			}
		}
		text := CollapseWhitespace(strings.Join(parts, ""))
		if text == "" {
			continue
		}

		out = append(out, types.Segment{
			Text:  text,
			Start: float64(startMs) / 1000.0,
			End:   float64(endMs) / 1000.0,
		})
	}
	clampTimeline(out)
	return out
}

// clampTimeline enforces the increasing-timeline invariant in a single
// forward pass: a start preceding the previous end is clamped up, and a
// zero-or-negative span gets the minimum synthetic duration.
func clampTimeline(segs []types.Segment) {
	for i := range segs {
		if i > 0 && segs[i].Start < segs[i-1].End {
			segs[i].Start = segs[i-1].End
		}
		if segs[i].End <= segs[i].Start {
			segs[i].End = segs[i].Start + minSegmentSeconds
		}
	}
}
