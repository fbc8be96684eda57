package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlays_ShowAndAutoDismiss(t *testing.T) {
	var mu sync.Mutex
	var changes []bool
	overlays := NewOverlays(20*time.Millisecond, time.Minute, func(kind OverlayKind, visible bool) {
		mu.Lock()
		defer mu.Unlock()
		if kind == OverlayChannelInfo {
			changes = append(changes, visible)
		}
	})

	overlays.Show(OverlayChannelInfo)
	assert.True(t, overlays.Visible(OverlayChannelInfo))
	assert.False(t, overlays.Visible(OverlayMediaInfo))

	assert.Eventually(t, func() bool {
		return !overlays.Visible(OverlayChannelInfo)
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, changes)
}

func TestOverlays_ReshowReschedulesDismissal(t *testing.T) {
	overlays := NewOverlays(40*time.Millisecond, time.Minute, nil)

	overlays.Show(OverlayChannelInfo)
	time.Sleep(25 * time.Millisecond)
	overlays.Show(OverlayChannelInfo)

	// The first timer would have fired by now; the re-show pushed it out
	time.Sleep(25 * time.Millisecond)
	assert.True(t, overlays.Visible(OverlayChannelInfo))

	assert.Eventually(t, func() bool {
		return !overlays.Visible(OverlayChannelInfo)
	}, time.Second, 5*time.Millisecond)
}

func TestOverlays_IndependentKinds(t *testing.T) {
	overlays := NewOverlays(20*time.Millisecond, time.Minute, nil)

	overlays.Show(OverlayChannelInfo)
	overlays.Show(OverlayMediaInfo)

	assert.Eventually(t, func() bool {
		return !overlays.Visible(OverlayChannelInfo)
	}, time.Second, 5*time.Millisecond)
	assert.True(t, overlays.Visible(OverlayMediaInfo))
}

func TestOverlays_ResetHidesAndCancels(t *testing.T) {
	fired := make(chan struct{}, 4)
	overlays := NewOverlays(30*time.Millisecond, 30*time.Millisecond, func(OverlayKind, bool) {
		fired <- struct{}{}
	})

	overlays.Show(OverlayChannelInfo)
	overlays.Show(OverlayMediaInfo)
	<-fired
	<-fired

	overlays.Reset()
	assert.False(t, overlays.Visible(OverlayChannelInfo))
	assert.False(t, overlays.Visible(OverlayMediaInfo))

	// The canceled dismissal timers stay silent
	select {
	case <-fired:
		t.Fatal("dismissal fired after reset")
	case <-time.After(60 * time.Millisecond):
	}
}
