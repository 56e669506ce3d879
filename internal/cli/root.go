package cli

import (
	"time"

	"github.com/spf13/cobra"

	"srt2vtt/internal/batch"
	"srt2vtt/internal/logging"
	"srt2vtt/internal/subtitle"
)

var (
	offsetMs  int
	outputDir string
	recursive bool
	quiet     bool
	verbose   bool

	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt2vtt [input]",
	Short: "Convert SubRip subtitles to WebVTT",
	Long: `srt2vtt converts SubRip (.srt) subtitle files to the WebVTT (.vtt)
format used by HTML5 video players.

The input may be a single .srt file or a directory to search for .srt
files (the current directory by default). Cue timestamps can be shifted
by a fixed millisecond offset during conversion.

Examples:
  srt2vtt movie.srt
  srt2vtt /media/subs --recursive --output-dir /media/vtt
  srt2vtt episode.srt --offset -2500`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose, quiet)
	},
	RunE: runConvert,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().IntVarP(&offsetMs, "offset", "t", 0,
		"Milliseconds to shift every cue timestamp (may be negative)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "",
		"Directory to write converted files to (created if missing)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"Search subdirectories for .srt files")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"Suppress all progress and error messages")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := "."
	if len(args) == 1 {
		input = args[0]
	}

	cfg := subtitle.Config{
		TimeOffset: time.Duration(offsetMs) * time.Millisecond,
	}

	runner := batch.NewRunner(cfg, outputDir, recursive, logger)
	if err := runner.Run(input); err != nil {
		logger.Errorw("Conversion failed", "input", input, "error", err)
		return err
	}
	return nil
}
