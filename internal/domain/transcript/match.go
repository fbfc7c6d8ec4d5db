package transcript

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"ytclip/internal/types"
)

// DefaultMaxWindow bounds how many consecutive segments are joined into
// one candidate when the caller does not say otherwise.
const DefaultMaxWindow = 4

// exactSubstringBonus is added when the normalized query appears verbatim
// inside the normalized window text, so exact hits beat merely similar
// windows.
const exactSubstringBonus = 0.5

// BestMatch slides windows of 1..maxWindow consecutive segments over the
// timeline and returns the highest-scoring candidate. Iteration is
// width-ascending then start-ascending with a strict greater-than maximum,
// so on ties the narrower and earlier window wins. That ordering is what
// makes output deterministic; do not reorder the loops.
//
// Returns ok=false when the segment list is empty or the query normalizes
// to nothing.
func BestMatch(segs []types.Segment, query string, maxWindow int) (types.Match, bool) {
	if len(segs) == 0 {
		return types.Match{}, false
	}
	if maxWindow <= 0 {
		maxWindow = DefaultMaxWindow
	}
	target := Normalize(query)
	if target == "" {
		return types.Match{}, false
	}

	var best types.Match
	found := false
	for width := 1; width <= maxWindow; width++ {
		for start := 0; start+width <= len(segs); start++ {
			win := segs[start : start+width]
			parts := make([]string, len(win))
			for i, s := range win {
				parts[i] = s.Text
			}
			combined := strings.Join(parts, " ")
			normalized := Normalize(combined)
			if normalized == "" {
				continue
			}

			score := similarity(target, normalized)
			if strings.Contains(normalized, target) {
				score += exactSubstringBonus
			}
			if !found || score > best.Score {
				best = types.Match{
					Text:         combined,
					Start:        win[0].Start,
					End:          win[len(win)-1].End,
					Score:        score,
					StartSegment: start,
					SegmentCount: width,
				}
				found = true
			}
		}
	}
	return best, found
}

// similarity is a symmetric edit-distance-derived ratio in [0,1] over rune
// sequences.
func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
