package extractor

import (
	"context"
	"fmt"

	"github.com/nkarpov/ytscript/internal/transcript"
	"github.com/nkarpov/ytscript/internal/youtube"
)

// holds extraction parameters
type Options struct {
	Languages         []string // ordered preference list; nil means ["en"]
	IncludeTimestamps bool
	ChunkSize         int // splits plain output when positive; ignored with timestamps
}

// the outcome of an extraction, free of any process-level I/O
type Result struct {
	Text     string            // unchunked output (empty when chunked)
	Chunks   []string          // chunked output (nil when unchunked)
	Language string            // language code of the selected track
	Source   transcript.Source // how the track was selected
	VideoID  string
}

// Chunked reports whether the output was split into chunks.
func (r *Result) Chunked() bool {
	return r.Chunks != nil
}

// lists and fetches caption tracks; satisfied by youtube.Client
type Provider interface {
	ListTracks(ctx context.Context, videoID string) (transcript.Catalog, error)
	FetchEntries(ctx context.Context, track transcript.Track) ([]transcript.Entry, error)
}

// Extractor runs the full pipeline: resolve, list, select, fetch, format.
type Extractor struct {
	provider Provider
}

func New(provider Provider) *Extractor {
	return &Extractor{provider: provider}
}

// Extract retrieves and formats the transcript for a YouTube URL or video ID.
func (e *Extractor) Extract(ctx context.Context, url string, opts Options) (*Result, error) {
	videoID, err := youtube.ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	languages := opts.Languages
	if len(languages) == 0 {
		languages = transcript.DefaultLanguages()
	}

	catalog, err := e.provider.ListTracks(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("error fetching transcript: %w", err)
	}

	track, source, err := transcript.Select(catalog, languages)
	if err != nil {
		return nil, fmt.Errorf("error fetching transcript: %w", err)
	}

	entries, err := e.provider.FetchEntries(ctx, track)
	if err != nil {
		return nil, fmt.Errorf("error fetching transcript: %w", err)
	}

	text := transcript.Format(entries, opts.IncludeTimestamps)

	result := &Result{
		Language: track.LanguageCode,
		Source:   source,
		VideoID:  videoID,
	}

	if opts.ChunkSize > 0 && !opts.IncludeTimestamps {
		result.Chunks = transcript.Chunk(text, opts.ChunkSize)
	} else {
		result.Text = text
	}

	return result, nil
}

// ListTracks resolves the input and returns the catalog without fetching
// any transcript text. Backs the CLI's --info listing.
func (e *Extractor) ListTracks(ctx context.Context, url string) (string, transcript.Catalog, error) {
	videoID, err := youtube.ExtractVideoID(url)
	if err != nil {
		return "", nil, err
	}

	catalog, err := e.provider.ListTracks(ctx, videoID)
	if err != nil {
		return "", nil, fmt.Errorf("error getting video info: %w", err)
	}

	return videoID, catalog, nil
}
