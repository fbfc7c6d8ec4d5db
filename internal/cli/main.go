package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ytclip/internal/config"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	cfg := config.New()

	root := &cobra.Command{
		Use:          "ytclip <url> <query>",
		Short:        "Find a phrase in a video's transcript and clip that portion",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args[0], args[1])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().Float64("before", cfg.BeforePadding(), "Seconds to include before the matched transcript")
	root.Flags().Float64("after", cfg.AfterPadding(), "Seconds to include after the matched transcript")
	root.Flags().String("lang", cfg.Language(), "Subtitle language code to search")
	root.Flags().Int("max-window", cfg.MaxWindow(), "Maximum subtitle segments to join when searching")
	root.Flags().String("output", "", "Destination file for the clip (default: derived from the query)")
	root.Flags().String("format", cfg.Format(), "Fetch-service format selector (e.g. 'bestvideo+bestaudio/best')")
	root.Flags().Bool("verbose", false, "Show external tool output while downloading")
	root.Flags().String("stt-provider", "", "Speech-to-text provider for sources without captions")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
