package clip

// AcquisitionError means even the full-download fallback failed; the run
// cannot produce a clip. Tier-1 and tier-2 failures never surface as this.
type AcquisitionError struct {
	Err error
}

func (e *AcquisitionError) Error() string { return "acquire clip: " + e.Err.Error() }
func (e *AcquisitionError) Unwrap() error { return e.Err }

// TrimError means the local trim utility is missing or exited non-zero.
type TrimError struct {
	Err error
}

func (e *TrimError) Error() string { return "trim clip: " + e.Err.Error() }
func (e *TrimError) Unwrap() error { return e.Err }
