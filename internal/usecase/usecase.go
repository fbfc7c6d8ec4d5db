package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"ytclip/internal/clip"
	"ytclip/internal/domain/subtitles"
	"ytclip/internal/domain/transcript"
	"ytclip/internal/ports"
	"ytclip/internal/types"
)

// ErrNoMatch means the query matched nothing: it normalized to empty text
// or the transcript had no segments to search.
var ErrNoMatch = errors.New("no transcript window matches the query")

// FetchError means no usable caption payload was retrieved.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch transcript: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

type Deps struct {
	Fetcher ports.MediaFetcher
	Video   ports.VideoTool
	Log     *zap.Logger
}

type Usecase struct {
	d          Deps
	strategist *clip.Strategist
	log        *zap.Logger
}

func New(d Deps) Usecase {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return Usecase{
		d:          d,
		strategist: clip.NewStrategist(clip.Deps{Fetcher: d.Fetcher, Video: d.Video}, log),
		log:        log,
	}
}

type Input struct {
	URL       string
	Query     string
	Before    float64
	After     float64
	Lang      string
	MaxWindow int
	// Output is the clip destination; empty derives a name from the query.
	Output string
	Format string
	// ScratchDir is this invocation's private staging directory.
	ScratchDir string
}

type Result struct {
	Match        types.Match
	Window       types.ClipWindow
	SegmentCount int
	ClipPath     string
	// CaptionPath is empty when no captions survived slicing.
	CaptionPath string
}

// Run executes one sequential pipeline invocation: fetch transcript,
// match, acquire clip, trim when imprecise, slice captions.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	u.log.Info("fetching transcript", zap.String("lang", in.Lang))
	segs, err := u.fetchTimeline(ctx, in)
	if err != nil {
		// A payload that parses to zero segments is a search problem, not a
		// retrieval one: there is nothing to match against.
		if errors.Is(err, transcript.ErrEmptyTranscript) {
			return Result{}, ErrNoMatch
		}
		return Result{}, &FetchError{Err: err}
	}
	u.log.Info("searching transcript", zap.Int("segments", len(segs)))

	m, ok := transcript.BestMatch(segs, in.Query, in.MaxWindow)
	if !ok {
		return Result{}, ErrNoMatch
	}
	win := types.WindowAround(m, in.Before, in.After)
	u.log.Info("matched transcript window",
		zap.Float64("score", m.Score),
		zap.Float64("start_sec", win.Start),
		zap.Float64("end_sec", win.End))

	dest := in.Output
	if dest == "" {
		dest = defaultOutputName(in.Query, win)
	}

	outcome, err := u.strategist.Acquire(ctx, in.URL, win, dest, in.Format)
	if err != nil {
		return Result{}, err
	}

	final := outcome.Path
	if !outcome.Precise {
		u.log.Info("trimming acquired file locally", zap.String("src", outcome.Path))
		if err := u.strategist.TrimLocal(ctx, outcome.Path, win, dest); err != nil {
			return Result{}, err
		}
		final = dest
		if outcome.Path != dest {
			if err := os.Remove(outcome.Path); err != nil {
				u.log.Warn("could not remove intermediate download",
					zap.String("path", outcome.Path), zap.Error(err))
			}
		}
	}

	res := Result{
		Match:        m,
		Window:       win,
		SegmentCount: len(segs),
		ClipPath:     final,
	}

	entries := subtitles.Slice(segs, win)
	if len(entries) == 0 {
		u.log.Info("no captions for this clip")
		return res, nil
	}
	capPath := strings.TrimSuffix(final, filepath.Ext(final)) + ".srt"
	if err := os.WriteFile(capPath, []byte(subtitles.RenderSRT(entries)), 0o644); err != nil {
		return Result{}, fmt.Errorf("write caption file: %w", err)
	}
	res.CaptionPath = capPath
	return res, nil
}

func (u Usecase) fetchTimeline(ctx context.Context, in Input) ([]types.Segment, error) {
	path, err := u.d.Fetcher.FetchCaptions(ctx, in.URL, in.Lang, in.ScratchDir)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	u.cleanupStaged(in.ScratchDir)
	if err != nil {
		return nil, err
	}
	return transcript.BuildTimeline(raw)
}

// cleanupStaged removes staged caption payloads; failures only warn since
// the scratch directory is removed wholesale at the end of the run anyway.
func (u Usecase) cleanupStaged(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json3"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			u.log.Warn("could not remove staged caption payload",
				zap.String("path", m), zap.Error(err))
		}
	}
}

// defaultOutputName derives a clip filename from the query and the clip
// start, e.g. "never gonna give_212.mp4".
func defaultOutputName(query string, win types.ClipWindow) string {
	name := sanitizeForFilename(query)
	if r := []rune(name); len(r) > 40 {
		name = string(r[:40])
	}
	if name == "" {
		name = "clip"
	}
	return fmt.Sprintf("%s_%d.mp4", name, int(win.Start))
}

func sanitizeForFilename(s string) string {
	var b strings.Builder
	prevSep := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
			prevSep = false
		case unicode.IsSpace(r):
			if !prevSep {
				b.WriteByte('_')
				prevSep = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
