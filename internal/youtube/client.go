package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/nkarpov/ytscript/internal/transcript"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

// Client fetches transcript catalogs and track entries from YouTube's
// public watch pages. No API key is required.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: http.DefaultClient,
	}
}

// shape of the player captions JSON embedded in the watch page
type captionsPayload struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []struct {
			BaseURL string `json:"baseUrl"`
			Name    struct {
				SimpleText string `json:"simpleText"`
			} `json:"name"`
			LanguageCode string `json:"languageCode"`
			Kind         string `json:"kind"` // "asr" marks auto-generated tracks
		} `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

// timedtext XML returned by a track's base URL
type timedText struct {
	Texts []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Value string  `xml:",chardata"`
	} `xml:"text"`
}

// ListTracks returns the catalog of caption tracks available for a video.
// Track entries are not fetched here; use FetchEntries on the chosen track.
func (c *Client) ListTracks(ctx context.Context, videoID string) (transcript.Catalog, error) {
	body, err := c.get(ctx, WatchURL(videoID))
	if err != nil {
		return nil, fmt.Errorf("failed to load watch page for %s: %w", videoID, err)
	}

	catalog, err := parseCaptionTracks(body)
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", videoID, err)
	}

	return catalog, nil
}

// FetchEntries downloads and parses the timed text for one track.
func (c *Client) FetchEntries(ctx context.Context, track transcript.Track) ([]transcript.Entry, error) {
	if track.BaseURL == "" {
		return nil, fmt.Errorf("track %s has no transcript URL", track.LanguageCode)
	}

	body, err := c.get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s transcript: %w", track.LanguageCode, err)
	}

	return parseTimedText(body)
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// extracts the caption track list from the watch page HTML
func parseCaptionTracks(page string) (transcript.Catalog, error) {
	_, after, found := strings.Cut(page, `"captions":`)
	if !found {
		if strings.Contains(page, `class="g-recaptcha"`) {
			return nil, fmt.Errorf("YouTube is rate limiting this IP (captcha required): %w", transcript.ErrNoTranscript)
		}
		if !strings.Contains(page, `"playabilityStatus":`) {
			return nil, fmt.Errorf("video is unavailable: %w", transcript.ErrNoTranscript)
		}
		return nil, fmt.Errorf("transcripts are disabled: %w", transcript.ErrNoTranscript)
	}

	end := strings.Index(after, `,"videoDetails`)
	if end < 0 {
		return nil, fmt.Errorf("malformed captions payload")
	}

	var payload captionsPayload
	if err := json.Unmarshal([]byte(after[:end]), &payload); err != nil {
		return nil, fmt.Errorf("malformed captions payload: %w", err)
	}

	tracks := payload.PlayerCaptionsTracklistRenderer.CaptionTracks
	catalog := make(transcript.Catalog, 0, len(tracks))
	for _, t := range tracks {
		catalog = append(catalog, transcript.Track{
			LanguageName: t.Name.SimpleText,
			LanguageCode: t.LanguageCode,
			IsGenerated:  t.Kind == "asr",
			BaseURL:      t.BaseURL,
		})
	}

	return catalog, nil
}

// parses timedtext XML into timed entries, unescaping HTML entities
func parseTimedText(body string) ([]transcript.Entry, error) {
	var doc timedText
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse transcript XML: %w", err)
	}

	entries := make([]transcript.Entry, 0, len(doc.Texts))
	for _, text := range doc.Texts {
		entries = append(entries, transcript.Entry{
			Start:    text.Start,
			Duration: text.Dur,
			Text:     html.UnescapeString(text.Value),
		})
	}

	return entries, nil
}
