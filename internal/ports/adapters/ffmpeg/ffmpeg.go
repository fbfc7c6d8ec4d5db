package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

// ProbeDuration reads a file's container duration in seconds. Any failure
// (tool missing, non-zero exit, unparseable output) is returned as an
// error; callers treat that as "duration unknown".
func (a *Adapter) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

// Trim stream-copies [start, start+duration) from src into dest without
// re-encoding. It writes to a temporary sibling first and renames into
// place, so a failed trim never displaces an existing valid output.
func (a *Adapter) Trim(ctx context.Context, src string, start, duration float64, dest string) error {
	if duration <= 0 {
		return errors.New("clip end must be after clip start")
	}

	tmp := dest + ".tmp"
	_ = os.Remove(tmp)

	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-ss", fmtSeconds(start),
		"-i", src,
		"-t", fmtSeconds(duration),
		"-c", "copy",
		tmp,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("ffmpeg trim: %w\n%s", err, string(b))
	}

	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("finalize trimmed clip: %w", err)
	}
	return nil
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
