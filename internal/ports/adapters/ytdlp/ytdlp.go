package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"ytclip/internal/types"
)

// Adapter drives the yt-dlp CLI. One instance is safe for concurrent use;
// all state lives in the Handle.
type Adapter struct {
	h       *Handle
	verbose bool
}

func New(h *Handle, verbose bool) *Adapter {
	if h == nil {
		h = NewHandle("")
	}
	return &Adapter{h: h, verbose: verbose}
}

// FetchCaptions stages the source's caption payload (json3) into destDir
// and returns the staged file. Language fallbacks cover auto-translated
// tracks that carry .orig / -orig suffixes.
func (a *Adapter) FetchCaptions(ctx context.Context, url, lang, destDir string) (string, error) {
	langs := strings.Join([]string{lang, lang + ".orig", lang + "-orig"}, ",")
	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "json3",
		"--sub-langs", langs,
		"-o", filepath.Join(destDir, "%(id)s.%(ext)s"),
	}
	args = a.appendQuiet(args)
	args = append(args, url)
	if err := a.run(ctx, args); err != nil {
		return "", err
	}
	return newestPayload(destDir)
}

// DownloadRange requests exactly the window as a start/end pair in
// seconds.
func (a *Adapter) DownloadRange(ctx context.Context, req types.ClipRequest) error {
	expr := fmt.Sprintf("*%.3f-%.3f", req.Window.Start, req.Window.End)
	args := append(a.clipArgs(req), "--download-sections", expr, req.URL)
	return a.run(ctx, args)
}

// DownloadSection requests the window through the legacy timestamp range
// syntax older service versions understand.
func (a *Adapter) DownloadSection(ctx context.Context, req types.ClipRequest) error {
	expr := fmt.Sprintf("*%s-%s",
		types.FormatTimestamp(req.Window.Start),
		types.FormatTimestamp(req.Window.End),
	)
	args := append(a.clipArgs(req), "--download-sections", expr, req.URL)
	return a.run(ctx, args)
}

// DownloadFull materializes the whole source; the window is ignored.
func (a *Adapter) DownloadFull(ctx context.Context, req types.ClipRequest) error {
	args := append(a.clipArgs(req), req.URL)
	return a.run(ctx, args)
}

func (a *Adapter) clipArgs(req types.ClipRequest) []string {
	args := []string{
		"--force-keyframes-at-cuts",
		"--merge-output-format", req.MergeFormat,
		"-o", req.OutputTemplate,
	}
	if req.Format != "" {
		args = append(args, "-f", req.Format)
	}
	return a.appendQuiet(args)
}

func (a *Adapter) appendQuiet(args []string) []string {
	if a.verbose {
		return args
	}
	return append(args, "-q", "--no-warnings")
}

func (a *Adapter) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, a.h.Bin(), args...)
	if a.verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("yt-dlp: %w", err)
		}
		return nil
	}
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("yt-dlp: %w\n%s", err, string(b))
	}
	return nil
}

// newestPayload picks the most recently modified staged payload. Each run
// stages into its own scratch directory, so this cannot observe another
// invocation's files.
func newestPayload(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json3"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.New("no subtitles were downloaded; try a different language code or video")
	}
	sort.Slice(matches, func(i, j int) bool {
		fi, erri := os.Stat(matches[i])
		fj, errj := os.Stat(matches[j])
		if erri != nil || errj != nil {
			return matches[i] < matches[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})
	return matches[0], nil
}
