package transcript

import "strings"

// DefaultLanguages returns a fresh preference list so callers can append
// without mutating shared state.
func DefaultLanguages() []string {
	return []string{"en"}
}

// Select picks exactly one track from the catalog for the given ordered
// language preference list. Rules are tried in strict priority order and the
// first match wins:
//
//  1. manually created track matching a preferred code
//  2. auto-generated track matching a preferred code
//  3. any English track, allowing regional variants (en-US, en-GB, ...)
//  4. first track in catalog order
//
// A miss for one preference entry never aborts the scan; the next entry is
// tried. Only an empty catalog yields ErrNoTranscript.
func Select(catalog Catalog, languages []string) (Track, Source, error) {
	if len(languages) == 0 {
		languages = DefaultLanguages()
	}

	for _, lang := range languages {
		if track, ok := catalog.findByCode(lang, false); ok {
			return track, SourceManual, nil
		}
	}

	for _, lang := range languages {
		if track, ok := catalog.findByCode(lang, true); ok {
			return track, SourceGenerated, nil
		}
	}

	if track, ok := catalog.findEnglish(); ok {
		return track, SourceFallback, nil
	}

	if len(catalog) > 0 {
		return catalog[0], SourceAvailable, nil
	}

	return Track{}, "", ErrNoTranscript
}

// returns the first track with an exact language code match and the
// requested provenance
func (c Catalog) findByCode(code string, generated bool) (Track, bool) {
	for _, track := range c {
		if track.IsGenerated == generated && track.LanguageCode == code {
			return track, true
		}
	}
	return Track{}, false
}

// returns any English track, accepting regional variants the way the
// provider's own language matching does
func (c Catalog) findEnglish() (Track, bool) {
	for _, track := range c {
		if track.LanguageCode == "en" {
			return track, true
		}
	}
	for _, track := range c {
		if strings.HasPrefix(track.LanguageCode, "en-") {
			return track, true
		}
	}
	return Track{}, false
}
