// Package playback drives the two-surface virtual TV pipeline: it plays the
// resolved program on the main surface, cuts to filler at each break
// timecode, and pads the tail of the scheduled block with commercials when
// the main title runs short.
package playback

// State represents the current state of the playback controller
type State string

// Playback state constants
const (
	// StateLoading means the main surface is loading the resolved program
	StateLoading State = "loading"
	// StatePlayingMain means the main program is on screen
	StatePlayingMain State = "playing_main"
	// StateCommercialBreak means the main program is paused at a break
	// timecode while filler plays on the secondary surface
	StateCommercialBreak State = "commercial_break"
	// StatePaddingCommercials means the main program ended early and filler
	// is filling the remainder of the scheduled block
	StatePaddingCommercials State = "padding_commercials"
	// StateEnded means the program and any padding have finished
	StateEnded State = "ended"
	// StateError means the program's source failed to load or play
	StateError State = "error"
	// StateNoFile means the program resolved but carries no playable path
	StateNoFile State = "no_file"
	// StateOffAir means no schedule entry covers the current moment (static)
	StateOffAir State = "off_air"
)

// String returns the string representation of the playback state
func (s State) String() string {
	return string(s)
}

// IsValid checks if the playback state is a known valid value
func (s State) IsValid() bool {
	switch s {
	case StateLoading, StatePlayingMain, StateCommercialBreak, StatePaddingCommercials,
		StateEnded, StateError, StateNoFile, StateOffAir:
		return true
	default:
		return false
	}
}

// Terminal reports whether the state ends the current playback attempt.
// Terminal states are only left by a program change, which re-enters loading.
func (s State) Terminal() bool {
	switch s {
	case StateEnded, StateError, StateNoFile, StateOffAir:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a transition from current state to newState is
// valid. Every state may re-enter loading: a channel switch or grid boundary
// crossing resets the pipeline no matter what it was doing.
func (s State) CanTransitionTo(newState State) bool {
	if newState == StateLoading || newState == StateOffAir || newState == StateNoFile {
		return true
	}

	switch s {
	case StateLoading:
		return newState == StatePlayingMain || newState == StateError
	case StatePlayingMain:
		return newState == StateCommercialBreak || newState == StatePaddingCommercials ||
			newState == StateEnded || newState == StateError
	case StateCommercialBreak:
		return newState == StatePlayingMain
	case StatePaddingCommercials:
		return newState == StatePaddingCommercials || newState == StateEnded
	case StateEnded, StateError, StateNoFile, StateOffAir:
		return false
	default:
		return false
	}
}

// ShowsCommercial reports whether the secondary surface is the visible,
// audible one. Exactly one surface is live at any instant; visibility is
// derived from the state label so the two can never drift apart.
func (s State) ShowsCommercial() bool {
	return s == StateCommercialBreak || s == StatePaddingCommercials
}
