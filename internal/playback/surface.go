package playback

// EventType identifies a video surface event
type EventType string

// Surface event constants, mirroring the media element events the
// controller reacts to
const (
	EventCanPlay    EventType = "canplay"
	EventTimeUpdate EventType = "timeupdate"
	EventEnded      EventType = "ended"
	EventError      EventType = "error"
)

// Event is a single occurrence on a video surface. Position carries the
// current play position for timeupdate events; Err carries the load or
// decode failure for error events.
type Event struct {
	Type     EventType
	Position float64
	Err      error
}

// VideoSurface is the capability interface over a single video element.
// The controller owns two of these (main program, commercial) and never
// touches real media playback directly, so the whole state machine is
// testable with fakes.
type VideoSurface interface {
	// Load points the surface at a new source and begins fetching it
	Load(src string)
	// Play starts or resumes playback. The runtime may reject unsolicited
	// autoplay; that surfaces as an error return, not an event.
	Play() error
	// Pause halts playback, retaining the current position for exact resume
	Pause()
	// Seek moves the play position to the given second
	Seek(seconds float64)
	// Position returns the current play position in seconds
	Position() float64
	// Duration returns the total source duration in seconds, 0 if unknown
	Duration() float64
	// SetVisible toggles whether this surface is the visible, audible one
	SetVisible(visible bool)
	// Subscribe registers the event handler and returns a cancel function.
	// Cancel must fully detach the handler: a superseded program's events
	// must never reach the controller after a reset.
	Subscribe(handler func(Event)) (cancel func())
}
