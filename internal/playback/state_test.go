package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateIsValid(t *testing.T) {
	valid := []State{
		StateLoading, StatePlayingMain, StateCommercialBreak,
		StatePaddingCommercials, StateEnded, StateError, StateNoFile, StateOffAir,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "state %s should be valid", s)
	}

	assert.False(t, State("").IsValid())
	assert.False(t, State("rewinding").IsValid())
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateEnded.Terminal())
	assert.True(t, StateError.Terminal())
	assert.True(t, StateNoFile.Terminal())
	assert.True(t, StateOffAir.Terminal())

	assert.False(t, StateLoading.Terminal())
	assert.False(t, StatePlayingMain.Terminal())
	assert.False(t, StateCommercialBreak.Terminal())
	assert.False(t, StatePaddingCommercials.Terminal())
}

func TestStateCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		to       State
		expected bool
	}{
		{"loading to playing", StateLoading, StatePlayingMain, true},
		{"loading to error", StateLoading, StateError, true},
		{"loading skips to break", StateLoading, StateCommercialBreak, false},
		{"playing to break", StatePlayingMain, StateCommercialBreak, true},
		{"playing to padding", StatePlayingMain, StatePaddingCommercials, true},
		{"playing to ended", StatePlayingMain, StateEnded, true},
		{"playing to error", StatePlayingMain, StateError, true},
		{"break resumes main", StateCommercialBreak, StatePlayingMain, true},
		{"break cannot end directly", StateCommercialBreak, StateEnded, false},
		{"padding continues padding", StatePaddingCommercials, StatePaddingCommercials, true},
		{"padding to ended", StatePaddingCommercials, StateEnded, true},
		{"padding cannot resume main", StatePaddingCommercials, StatePlayingMain, false},
		{"ended is terminal", StateEnded, StatePlayingMain, false},
		{"error is terminal", StateError, StatePlayingMain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStateCanTransitionTo_ResetAlwaysAllowed(t *testing.T) {
	// A channel switch or grid boundary resets the pipeline from any state
	all := []State{
		StateLoading, StatePlayingMain, StateCommercialBreak,
		StatePaddingCommercials, StateEnded, StateError, StateNoFile, StateOffAir,
	}
	for _, from := range all {
		assert.True(t, from.CanTransitionTo(StateLoading), "from %s", from)
		assert.True(t, from.CanTransitionTo(StateOffAir), "from %s", from)
		assert.True(t, from.CanTransitionTo(StateNoFile), "from %s", from)
	}
}

func TestStateShowsCommercial(t *testing.T) {
	assert.True(t, StateCommercialBreak.ShowsCommercial())
	assert.True(t, StatePaddingCommercials.ShowsCommercial())

	assert.False(t, StateLoading.ShowsCommercial())
	assert.False(t, StatePlayingMain.ShowsCommercial())
	assert.False(t, StateEnded.ShowsCommercial())
	assert.False(t, StateError.ShowsCommercial())
}
