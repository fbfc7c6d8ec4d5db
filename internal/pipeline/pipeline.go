package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ytclip/internal/ports"
	"ytclip/internal/ports/adapters/ffmpeg"
	"ytclip/internal/ports/adapters/ytdlp"
	"ytclip/internal/usecase"
)

type Config struct {
	URL       string
	Query     string
	Before    float64
	After     float64
	Lang      string
	MaxWindow int
	Output    string
	Format    string
	Verbose   bool

	// ScratchRoot is the base under which each invocation gets its own
	// staging subdirectory. If empty, defaults to ".ytclip_tmp".
	ScratchRoot string

	YtdlpPath   string
	FFmpegPath  string
	FFprobePath string

	Logger *zap.Logger
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is empty")
	}
	if c.Query == "" {
		return errors.New("query is empty")
	}
	if c.Before < 0 {
		return fmt.Errorf("before padding must be >= 0")
	}
	if c.After < 0 {
		return fmt.Errorf("after padding must be >= 0")
	}
	if c.MaxWindow <= 0 {
		return fmt.Errorf("max window must be > 0")
	}
	if c.Lang == "" {
		return errors.New("language code is empty")
	}
	return nil
}

// Run wires the adapters and executes one pipeline invocation.
func Run(ctx context.Context, cfg Config) (usecase.Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	handle := ytdlp.NewHandle(cfg.YtdlpPath)
	fetcher := ytdlp.New(handle, cfg.Verbose)
	video := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)

	scratch, err := newScratchDir(cfg.ScratchRoot)
	if err != nil {
		return usecase.Result{}, err
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("could not remove scratch directory",
				zap.String("path", scratch), zap.Error(err))
		}
	}()
	log.Debug("scratch directory ready", zap.String("path", scratch))

	uc := usecase.New(usecase.Deps{
		Fetcher: fetcher,
		Video:   video,
		Log:     log,
	})
	return uc.Run(ctx, usecase.Input{
		URL:        cfg.URL,
		Query:      cfg.Query,
		Before:     cfg.Before,
		After:      cfg.After,
		Lang:       cfg.Lang,
		MaxWindow:  cfg.MaxWindow,
		Output:     cfg.Output,
		Format:     cfg.Format,
		ScratchDir: scratch,
	})
}

// newScratchDir creates an invocation-scoped staging directory. The uuid
// keeps concurrent invocations sharing one root from ever seeing each
// other's staged files.
func newScratchDir(root string) (string, error) {
	if root == "" {
		root = ".ytclip_tmp"
	}
	dir := filepath.Join(root, "run-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create scratch directory: %w", err)
	}
	return dir, nil
}

// ensure adapters implement ports
var _ ports.MediaFetcher = (*ytdlp.Adapter)(nil)
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
