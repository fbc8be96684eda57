package playback

import (
	"sync"
	"time"
)

// OverlayKind identifies an auto-dismissing information overlay
type OverlayKind string

// Overlay kind constants
const (
	OverlayChannelInfo OverlayKind = "channel_info"
	OverlayMediaInfo   OverlayKind = "media_info"
)

// Overlays schedules the channel-info and media-info banners: each shows for
// a fixed duration and dismisses itself. Re-showing an overlay cancels the
// previous timer first, so a dismissal scheduled for an earlier program can
// never race a newer display.
type Overlays struct {
	mu        sync.Mutex
	visible   map[OverlayKind]bool
	timers    map[OverlayKind]*time.Timer
	durations map[OverlayKind]time.Duration
	onChange  func(kind OverlayKind, visible bool)
}

// NewOverlays creates an overlay scheduler with the given display durations
func NewOverlays(channelInfo, mediaInfo time.Duration, onChange func(OverlayKind, bool)) *Overlays {
	return &Overlays{
		visible: make(map[OverlayKind]bool),
		timers:  make(map[OverlayKind]*time.Timer),
		durations: map[OverlayKind]time.Duration{
			OverlayChannelInfo: channelInfo,
			OverlayMediaInfo:   mediaInfo,
		},
		onChange: onChange,
	}
}

// Show displays the overlay and schedules its dismissal
func (o *Overlays) Show(kind OverlayKind) {
	o.mu.Lock()
	if timer, ok := o.timers[kind]; ok {
		timer.Stop()
	}
	o.visible[kind] = true
	duration := o.durations[kind]
	o.timers[kind] = time.AfterFunc(duration, func() {
		o.dismiss(kind)
	})
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(kind, true)
	}
}

// Visible reports whether the overlay is currently showing
func (o *Overlays) Visible(kind OverlayKind) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible[kind]
}

// Reset cancels all pending dismissals and hides everything. Called on every
// program identity change before the new overlays are shown.
func (o *Overlays) Reset() {
	o.mu.Lock()
	for kind, timer := range o.timers {
		timer.Stop()
		delete(o.timers, kind)
	}
	for kind := range o.visible {
		o.visible[kind] = false
	}
	o.mu.Unlock()
}

func (o *Overlays) dismiss(kind OverlayKind) {
	o.mu.Lock()
	o.visible[kind] = false
	delete(o.timers, kind)
	onChange := o.onChange
	o.mu.Unlock()

	if onChange != nil {
		onChange(kind, false)
	}
}
