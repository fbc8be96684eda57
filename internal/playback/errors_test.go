package playback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayableSource(t *testing.T) {
	playable := []string{
		"http://media.local/heist.mp4",
		"https://cdn.example.com/heist.mp4",
		"blob:https://app.example.com/3f2b",
		"data:video/mp4;base64,AAAA",
	}
	for _, src := range playable {
		assert.True(t, PlayableSource(src), "source %q should be playable", src)
	}

	unplayable := []string{
		"/media/movies/heist.mp4",
		"C:\\media\\heist.mp4",
		"file:///media/heist.mp4",
		"heist.mp4",
		"",
	}
	for _, src := range unplayable {
		assert.False(t, PlayableSource(src), "source %q should not be playable", src)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, ErrorMessage(ErrUnplayableSource), "local path")
	assert.Equal(t, "Click to play", ErrorMessage(ErrAutoplayBlocked))
	assert.Contains(t, ErrorMessage(ErrLoadFailed), "Unable to play this file")
	assert.Contains(t, ErrorMessage(errors.New("decode failure")), "decode failure")
	assert.Empty(t, ErrorMessage(nil))
}
