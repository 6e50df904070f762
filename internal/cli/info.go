package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nkarpov/ytscript/internal/extractor"
	"github.com/nkarpov/ytscript/internal/transcript"
	"github.com/nkarpov/ytscript/internal/youtube"
	"github.com/spf13/cobra"
)

// lists every available caption track for the video without fetching any
// transcript text
func runInfo(cmd *cobra.Command, ext *extractor.Extractor, url string) error {
	videoID, catalog, err := ext.ListTracks(cmd.Context(), url)
	if err != nil {
		return err
	}

	fmt.Printf("Video URL: %s\n", youtube.WatchURL(videoID))
	fmt.Println("Available transcripts:")
	fmt.Println(renderCatalog(catalog))
	return nil
}

func renderCatalog(catalog transcript.Catalog) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Language", "Code", "Type"})

	for _, track := range catalog {
		status := "Manual"
		if track.IsGenerated {
			status = "Auto-generated"
		}
		tw.AppendRow(table.Row{track.LanguageName, track.LanguageCode, status})
	}

	return tw.Render()
}
