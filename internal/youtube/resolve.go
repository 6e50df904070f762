package youtube

import (
	"errors"
	"fmt"
	"regexp"
)

// the input is neither a recognized YouTube URL nor a bare video ID
var ErrInvalidInput = errors.New("invalid YouTube URL or video ID")

// recognized URL shapes, tried in priority order
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{11}$`)

// ExtractVideoID normalizes a YouTube URL or bare video ID into the canonical
// 11-character identifier. No network access.
func ExtractVideoID(input string) (string, error) {
	for _, pattern := range urlPatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1], nil
		}
	}

	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidInput, input)
}

// WatchURL returns the canonical watch page URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
