package clip

import "math"

// Tolerance is the allowed drift between a requested clip duration and the
// produced file's duration: at least one second, or 10% of the request,
// whichever is larger. Service-side cuts land on keyframes, so some drift
// is expected and acceptable.
func Tolerance(requested float64) float64 {
	return math.Max(1.0, requested*0.1)
}

// WithinTolerance reports whether an actual duration satisfies the
// requested one. A zero request is handled by the strategist (any
// non-empty file passes) before this is consulted.
func WithinTolerance(requested, actual float64) bool {
	return math.Abs(actual-requested) <= Tolerance(requested)
}
