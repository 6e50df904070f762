package transcript

import "errors"

// single timed text entry within a track
type Entry struct {
	Start    float64 // seconds from video start
	Duration float64 // seconds
	Text     string
}

// one language/provenance variant of a video's transcript
type Track struct {
	LanguageName string
	LanguageCode string
	IsGenerated  bool
	BaseURL      string // provider URL for fetching the track's entries
}

// the full set of tracks available for a video; iteration order is
// provider-defined and not guaranteed stable
type Catalog []Track

// classifies how a selected track was obtained
type Source string

const (
	SourceManual    Source = "manual"
	SourceGenerated Source = "auto-generated"
	SourceFallback  Source = "fallback"
	SourceAvailable Source = "available"
)

var (
	// no track could be selected because the catalog is empty,
	// or the provider has no transcript for the video
	ErrNoTranscript = errors.New("no transcripts available")
)
