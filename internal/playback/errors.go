package playback

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel playback errors
var (
	// ErrUnplayableSource indicates a bare local filesystem path with no
	// browser-accessible origin; distinct from a generic load failure so the
	// viewer gets an actionable message
	ErrUnplayableSource = errors.New("source is a local file path with no playable origin")

	// ErrLoadFailed indicates the source is missing, unsupported, or corrupt
	ErrLoadFailed = errors.New("source failed to load")

	// ErrAutoplayBlocked indicates the runtime rejected unsolicited playback;
	// recoverable by a user click, not fatal
	ErrAutoplayBlocked = errors.New("autoplay blocked")
)

// Source prefixes a video element can play directly
var playablePrefixes = []string{"http://", "https://", "blob:", "data:"}

// PlayableSource reports whether the path can be assigned to a video surface
// directly. Anything else is a local-style path that needs a file-picker
// grant the player does not have.
func PlayableSource(path string) bool {
	for _, prefix := range playablePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ErrorMessage renders a playback error as the human-readable overlay text.
// The unplayable-source case gets its own wording so it is never mistaken
// for a missing or corrupt file.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnplayableSource):
		return "This file is stored as a local path and cannot be played directly. Re-add it from a playable source."
	case errors.Is(err, ErrAutoplayBlocked):
		return "Click to play"
	case err != nil:
		return fmt.Sprintf("Unable to play this file: %v", err)
	default:
		return ""
	}
}
