package clip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"ytclip/internal/ports"
	"ytclip/internal/types"
)

// Deps are the external collaborators the strategist drives.
type Deps struct {
	Fetcher ports.MediaFetcher
	Video   ports.VideoTool
}

// Strategist acquires a clip through three ordered tiers: a precise
// seconds range, the legacy section expression, then a full download.
// The first two are expected to fail on older service versions and fall
// through; only a failing full download is fatal.
type Strategist struct {
	d   Deps
	log *zap.Logger
}

func NewStrategist(d Deps, log *zap.Logger) *Strategist {
	if log == nil {
		log = zap.NewNop()
	}
	return &Strategist{d: d, log: log}
}

// Acquire materializes the window from the source at dest. The returned
// outcome's Precise flag tells the caller whether a local trim must still
// run on Path. A full-download outcome is never precise.
func (s *Strategist) Acquire(ctx context.Context, url string, win types.ClipWindow, dest, format string) (types.AcquisitionOutcome, error) {
	if win.End <= win.Start {
		return types.AcquisitionOutcome{}, errors.New("clip end must be after clip start")
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.AcquisitionOutcome{}, err
		}
	}
	// A stale file at dest would be mistaken for this run's output.
	_ = os.Remove(dest)

	ext := strings.TrimPrefix(filepath.Ext(dest), ".")
	if ext == "" {
		ext = "mp4"
	}
	base := strings.TrimSuffix(dest, filepath.Ext(dest))
	req := types.ClipRequest{
		URL:            url,
		Window:         win,
		OutputTemplate: base + ".%(ext)s",
		MergeFormat:    ext,
		Format:         format,
	}

	if err := s.d.Fetcher.DownloadRange(ctx, req); err != nil {
		s.log.Info("precise range download failed; trying section expression",
			zap.Error(err))
	} else {
		path, err := reconcile(base+"."+ext, dest)
		if err != nil {
			return types.AcquisitionOutcome{}, err
		}
		return s.assess(ctx, path, win, "download_ranges"), nil
	}

	if err := s.d.Fetcher.DownloadSection(ctx, req); err != nil {
		s.log.Info("section download failed; falling back to full download",
			zap.Error(err))
	} else {
		path, err := reconcile(base+"."+ext, dest)
		if err != nil {
			return types.AcquisitionOutcome{}, err
		}
		return s.assess(ctx, path, win, "download_sections"), nil
	}

	s.log.Info("downloading full source; this may take longer")
	fullBase := base + "_full"
	req.OutputTemplate = fullBase + ".%(ext)s"
	if err := s.d.Fetcher.DownloadFull(ctx, req); err != nil {
		return types.AcquisitionOutcome{}, &AcquisitionError{Err: err}
	}
	// Full downloads always carry the whole source, so a trim must follow
	// no matter what a probe would report.
	return types.AcquisitionOutcome{Path: fullBase + "." + ext, Precise: false}, nil
}

// TrimLocal stream-copies the window out of src into dest. Only called for
// imprecise outcomes.
func (s *Strategist) TrimLocal(ctx context.Context, src string, win types.ClipWindow, dest string) error {
	if err := s.d.Video.Trim(ctx, src, win.Start, win.Duration(), dest); err != nil {
		return &TrimError{Err: err}
	}
	return nil
}

// assess probes the produced file. An unverifiable duration is accepted as
// precise: the service already cut something, and trimming an unknown file
// risks making it worse.
func (s *Strategist) assess(ctx context.Context, path string, win types.ClipWindow, tier string) types.AcquisitionOutcome {
	requested := win.Duration()

	if requested == 0 {
		if fi, err := os.Stat(path); err == nil && fi.Size() > 0 {
			return types.AcquisitionOutcome{Path: path, Precise: true}
		}
		return types.AcquisitionOutcome{Path: path, Precise: false}
	}

	actual, err := s.d.Video.ProbeDuration(ctx, path)
	if err != nil {
		s.log.Info("duration probe failed; accepting clip as-is",
			zap.String("tier", tier), zap.Error(err))
		return types.AcquisitionOutcome{Path: path, Precise: true}
	}
	if WithinTolerance(requested, actual) {
		s.log.Info("service-side cut within tolerance",
			zap.String("tier", tier),
			zap.Float64("actual_sec", actual),
			zap.Float64("requested_sec", requested))
		return types.AcquisitionOutcome{Path: path, Precise: true}
	}
	s.log.Info("service-side cut outside tolerance; will trim locally",
		zap.String("tier", tier),
		zap.Float64("actual_sec", actual),
		zap.Float64("requested_sec", requested))
	return types.AcquisitionOutcome{Path: path, Precise: false}
}

// reconcile moves a service-produced file onto the exact destination the
// caller asked for.
func reconcile(produced, dest string) (string, error) {
	if produced == dest {
		return dest, nil
	}
	if err := os.Rename(produced, dest); err != nil {
		return "", fmt.Errorf("rename output to %s: %w", dest, err)
	}
	return dest, nil
}
