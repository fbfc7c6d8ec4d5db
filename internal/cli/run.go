package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ytclip/internal/clip"
	"ytclip/internal/config"
	"ytclip/internal/logger"
	"ytclip/internal/pipeline"
	"ytclip/internal/stt"
	"ytclip/internal/task"
	"ytclip/internal/types"
	"ytclip/internal/usecase"
)

// Exit statuses keep failure classes distinguishable for scripting: 1 for
// transcript fetch problems, 2 for no match, 3 for acquisition/trim.
func exitCode(err error) int {
	var fetchErr *usecase.FetchError
	var acqErr *clip.AcquisitionError
	var trimErr *clip.TrimError
	switch {
	case errors.As(err, &fetchErr):
		return 1
	case errors.Is(err, usecase.ErrNoMatch):
		return 2
	case errors.As(err, &acqErr), errors.As(err, &trimErr):
		return 3
	default:
		return 1
	}
}

func run(cmd *cobra.Command, cfg *config.Configuration, url, query string) error {
	before, _ := cmd.Flags().GetFloat64("before")
	after, _ := cmd.Flags().GetFloat64("after")
	lang, _ := cmd.Flags().GetString("lang")
	maxWindow, _ := cmd.Flags().GetInt("max-window")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	providerName, _ := cmd.Flags().GetString("stt-provider")

	log, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Captions are the transcript source today; the provider surface is
	// validated up front so a placeholder selection fails fast instead of
	// after a long download.
	if providerName != "" {
		provider, err := stt.New(providerName)
		if err != nil {
			return err
		}
		if provider.Placeholder() {
			log.Warn("selected speech-to-text provider is a placeholder",
				zap.String("provider", provider.Name()))
		}
	}

	runCfg := pipeline.Config{
		URL:         url,
		Query:       query,
		Before:      before,
		After:       after,
		Lang:        lang,
		MaxWindow:   maxWindow,
		Output:      output,
		Format:      format,
		Verbose:     verbose,
		ScratchRoot: cfg.ScratchRoot(),
		YtdlpPath:   cfg.YtdlpPath(),
		FFmpegPath:  cfg.FFmpegPath(),
		FFprobePath: cfg.FFprobePath(),
		Logger:      log,
	}
	if err := runCfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var res usecase.Result
	t := task.New(func(ctx context.Context) error {
		var err error
		res, err = pipeline.Run(ctx, runCfg)
		return err
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Info("cancellation requested")
		t.Cancel()
	}()

	if err := t.Start(cmd.Context()); err != nil {
		return err
	}
	if err := t.Wait(); err != nil {
		return err
	}

	printSummary(cmd, res)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return logger.NewDevelopment()
	}
	return logger.NewProduction()
}

func printSummary(cmd *cobra.Command, res usecase.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Matched transcript snippet:")
	fmt.Fprintf(out, "  %s\n", res.Match.Text)
	fmt.Fprintf(out, "Match score: %.3f\n", res.Match.Score)
	fmt.Fprintf(out, "Transcript time span: %s - %s\n",
		types.FormatTimestamp(res.Match.Start), types.FormatTimestamp(res.Match.End))
	fmt.Fprintf(out, "Clip time span      : %s - %s\n",
		types.FormatTimestamp(res.Window.Start), types.FormatTimestamp(res.Window.End))
	fmt.Fprintf(out, "Clip saved to       : %s\n", res.ClipPath)
	if res.CaptionPath != "" {
		fmt.Fprintf(out, "Subtitles saved to  : %s\n", res.CaptionPath)
	}
}
