package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/nkarpov/ytscript/internal/extractor"
	"github.com/nkarpov/ytscript/internal/logging"
	"github.com/nkarpov/ytscript/internal/output"
	"github.com/nkarpov/ytscript/internal/transcript"
	"github.com/nkarpov/ytscript/internal/youtube"
	"github.com/spf13/cobra"
)

const previewLimit = 500

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ytscript [url]",
	Short: "Extract transcripts from YouTube videos",
	Long: `Ytscript fetches the spoken-text transcript of a YouTube video and
saves it as plain or timestamped text.

The best available caption track is selected from your language
preferences: manually created tracks win over auto-generated ones,
with English as the final fallback.

Examples:
  ytscript https://www.youtube.com/watch?v=dQw4w9WgXcQ
  ytscript dQw4w9WgXcQ -l es -l en -o transcript.txt
  ytscript dQw4w9WgXcQ --no-timestamps --chunk-size 4000
  ytscript dQw4w9WgXcQ --info`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE:         run,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().
		StringSliceP("languages", "l", nil, "Preferred language codes in priority order (default en)")
	rootCmd.Flags().
		StringP("output", "o", "", "Output file path")
	rootCmd.Flags().
		Bool("no-timestamps", false, "Exclude timestamps from output")
	rootCmd.Flags().
		Int("chunk-size", 0, "Split plain text into chunks of this many characters")
	rootCmd.Flags().
		Bool("info", false, "Show available transcripts and exit")
}

func run(cmd *cobra.Command, args []string) error {
	url := args[0]

	languages, _ := cmd.Flags().GetStringSlice("languages")
	outputPath, _ := cmd.Flags().GetString("output")
	noTimestamps, _ := cmd.Flags().GetBool("no-timestamps")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	showInfo, _ := cmd.Flags().GetBool("info")

	if len(languages) == 0 {
		if env := os.Getenv("YTSCRIPT_LANGUAGES"); env != "" {
			for _, code := range strings.Split(env, ",") {
				if code = strings.TrimSpace(code); code != "" {
					languages = append(languages, code)
				}
			}
		} else {
			languages = transcript.DefaultLanguages()
		}
	}

	videoID, err := youtube.ExtractVideoID(url)
	if err != nil {
		return err
	}
	fmt.Printf("Processing video ID: %s\n", videoID)

	ext := extractor.New(youtube.NewClient())
	ctx := cmd.Context()

	if showInfo {
		return runInfo(cmd, ext, url)
	}

	logger.Infow("Fetching transcript",
		"video_id", videoID,
		"languages", languages,
	)

	result, err := ext.Extract(ctx, url, extractor.Options{
		Languages:         languages,
		IncludeTimestamps: !noTimestamps,
		ChunkSize:         chunkSize,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Found transcript in '%s' (%s)\n", result.Language, result.Source)

	writer := output.NewWriter()

	if result.Chunked() {
		fmt.Printf("Text split into %d chunks\n", len(result.Chunks))
		saved, err := writer.SaveChunks(result.Chunks, outputPath, result.VideoID)
		for i, path := range saved {
			fmt.Printf("Chunk %d saved to: %s\n", i+1, path)
		}
		if err != nil {
			return err
		}
		return nil
	}

	saved, err := writer.Save(result.Text, outputPath, result.VideoID)
	if err != nil {
		return err
	}
	fmt.Printf("Transcript saved to: %s\n", saved)

	fmt.Printf("\nPreview:\n%s\n", preview(result.Text))
	return nil
}

// first 500 characters of the transcript, with an ellipsis when truncated
func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return text
}
