package ports

import (
	"context"

	"ytclip/internal/types"
)

// MediaFetcher is the boundary to the external media-fetch service. The
// three download methods map to the ordered acquisition tiers.
type MediaFetcher interface {
	// FetchCaptions stages a raw caption payload for the source into
	// destDir and returns the staged file's path.
	FetchCaptions(ctx context.Context, url, lang, destDir string) (string, error)

	// DownloadRange materializes only the requested window, addressed as
	// an explicit start/end pair in seconds.
	DownloadRange(ctx context.Context, req types.ClipRequest) error

	// DownloadSection materializes the same window through the legacy
	// *HH:MM:SS.mmm-HH:MM:SS.mmm range syntax older service versions
	// understand.
	DownloadSection(ctx context.Context, req types.ClipRequest) error

	// DownloadFull materializes the entire source; req.Window is ignored.
	DownloadFull(ctx context.Context, req types.ClipRequest) error
}

// VideoTool wraps the local probe and trim utilities.
type VideoTool interface {
	// ProbeDuration reports a file's duration in seconds. An error means
	// the duration is unknown, not that the file is bad.
	ProbeDuration(ctx context.Context, path string) (float64, error)

	// Trim stream-copies [start, start+duration) out of src into dest.
	Trim(ctx context.Context, src string, start, duration float64, dest string) error
}

// Transcriber converts audio at a path into timed transcript segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) ([]types.Segment, error)
}
