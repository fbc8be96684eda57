package playback

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/rabbitears/internal/commercials"
	"github.com/stwalsh4118/rabbitears/internal/guide"
	"github.com/stwalsh4118/rabbitears/internal/models"
)

// fakeSurface is a scripted video surface. It records every call and lets
// tests emit events by hand. Events are only emitted from test code, never
// from inside a controller call, matching the asynchronous delivery the
// controller requires of real surfaces.
type fakeSurface struct {
	src      string
	playing  bool
	visible  bool
	position float64
	duration float64
	playErr  error
	handler  func(Event)
	loads    []string
	seeks    []float64
	pauses   int
}

func (f *fakeSurface) Load(src string) {
	f.src = src
	f.loads = append(f.loads, src)
}

func (f *fakeSurface) Play() error {
	if f.playErr != nil {
		return f.playErr
	}
	f.playing = true
	return nil
}

func (f *fakeSurface) Pause() {
	f.playing = false
	f.pauses++
}

func (f *fakeSurface) Seek(seconds float64) {
	f.position = seconds
	f.seeks = append(f.seeks, seconds)
}

func (f *fakeSurface) Position() float64 { return f.position }
func (f *fakeSurface) Duration() float64 { return f.duration }

func (f *fakeSurface) SetVisible(visible bool) { f.visible = visible }

func (f *fakeSurface) Subscribe(handler func(Event)) (cancel func()) {
	f.handler = handler
	return func() { f.handler = nil }
}

func (f *fakeSurface) emit(ev Event) {
	if f.handler != nil {
		f.handler(ev)
	}
}

// testHarness wires a controller over two fakes with a settable clock
type testHarness struct {
	controller *Controller
	main       *fakeSurface
	second     *fakeSurface
	now        time.Time
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{
		main:   &fakeSurface{duration: 3480},
		second: &fakeSurface{duration: 30},
		now:    time.Date(2026, time.August, 31, 20, 25, 0, 0, time.UTC),
	}
	picker := commercials.NewPicker(rand.New(rand.NewSource(1)))
	h.controller = NewController(h.main, h.second, picker, Options{
		Clock: func() time.Time { return h.now },
	})
	return h
}

func testDescriptor() *guide.Descriptor {
	return &guide.Descriptor{
		Title:     "Big Heist",
		Type:      models.MediaTypeMovie,
		StartTime: "8:00 PM",
		EndTime:   "9:00 PM",
		FilePath:  "https://cdn.example.com/heist.mp4",
		Breaks:    "00:20:00.00,00:40:00.00",
	}
}

func testPool() []*models.Media {
	ad := models.NewMedia(models.MediaTypeFiller, "toy-ad", "https://cdn.example.com/toy.mp4")
	return []*models.Media{ad}
}

func TestController_InitialState(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, StateOffAir, h.controller.State())
}

func TestController_NilProgramGoesOffAir(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(nil, 0, nil)

	assert.Equal(t, StateOffAir, h.controller.State())
	assert.Empty(t, h.main.loads)
}

func TestController_ProgramWithoutFile(t *testing.T) {
	h := newHarness(t)
	d := testDescriptor()
	d.FilePath = ""

	h.controller.SetProgram(d, 0, nil)

	assert.Equal(t, StateNoFile, h.controller.State())
	assert.Empty(t, h.main.loads)
}

func TestController_LocalPathIsDistinctError(t *testing.T) {
	h := newHarness(t)
	d := testDescriptor()
	d.FilePath = "C:\\media\\heist.mp4"

	h.controller.SetProgram(d, 0, nil)

	assert.Equal(t, StateError, h.controller.State())
	assert.Contains(t, h.controller.Notice(), "local path")
	// The doomed load is never attempted
	assert.Empty(t, h.main.loads)
}

func TestController_LoadFailureIsGenericError(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, nil)
	require.Equal(t, StateLoading, h.controller.State())

	h.main.emit(Event{Type: EventError})

	assert.Equal(t, StateError, h.controller.State())
	assert.Contains(t, h.controller.Notice(), "Unable to play this file")
	assert.NotContains(t, h.controller.Notice(), "local path")
}

func TestController_CanPlaySeeksToStartOffset(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 1500*time.Second, nil)
	h.main.emit(Event{Type: EventCanPlay})

	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, []float64{1500}, h.main.seeks)
	assert.True(t, h.main.playing)
	assert.True(t, h.main.visible)
	assert.False(t, h.second.visible)
}

func TestController_ZeroOffsetDoesNotSeek(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, nil)
	h.main.emit(Event{Type: EventCanPlay})

	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Empty(t, h.main.seeks)
}

func TestController_OffsetBeyondDurationDoesNotSeek(t *testing.T) {
	h := newHarness(t)
	h.main.duration = 600

	h.controller.SetProgram(testDescriptor(), 1500*time.Second, nil)
	h.main.emit(Event{Type: EventCanPlay})

	assert.Empty(t, h.main.seeks)
}

func TestController_StartOffsetConsumesPastBreaks(t *testing.T) {
	h := newHarness(t)

	// Tuning in 1500s into the program, the 1200s break has already aired
	h.controller.SetProgram(testDescriptor(), 1500*time.Second, testPool())

	assert.Equal(t, 1, h.controller.NextBreakIndex())
}

func TestController_AutoplayBlockedNotice(t *testing.T) {
	h := newHarness(t)
	h.main.playErr = ErrAutoplayBlocked

	h.controller.SetProgram(testDescriptor(), 0, nil)
	h.main.emit(Event{Type: EventCanPlay})

	// Recoverable: state advances, the viewer is prompted to click
	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, "Click to play", h.controller.Notice())
}

func TestController_ClickStartsPlaybackAfterAutoplayBlock(t *testing.T) {
	h := newHarness(t)
	h.main.playErr = ErrAutoplayBlocked

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	require.False(t, h.main.playing)

	// The click is the gesture the browser was waiting for: the first one
	// must start playback and clear the prompt, never pause
	h.main.playErr = nil
	h.controller.Click()

	assert.True(t, h.main.playing)
	assert.Empty(t, h.controller.Notice())
	assert.Equal(t, StatePlayingMain, h.controller.State())
}

func TestController_ClickWhileStillBlockedKeepsPrompt(t *testing.T) {
	h := newHarness(t)
	h.main.playErr = ErrAutoplayBlocked

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})

	h.controller.Click()

	assert.False(t, h.main.playing)
	assert.Equal(t, "Click to play", h.controller.Notice())
}

func TestController_BreakTriggersAtTolerance(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})

	// Just outside the 0.25s tolerance window: no break yet
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1199.70})
	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, 0, h.controller.NextBreakIndex())

	// Inside the window: break fires
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1199.80})
	assert.Equal(t, StateCommercialBreak, h.controller.State())
	assert.Equal(t, 1, h.controller.NextBreakIndex())
	assert.False(t, h.main.playing)
	assert.Equal(t, []string{"https://cdn.example.com/toy.mp4"}, h.second.loads)
	assert.True(t, h.second.visible)
	assert.False(t, h.main.visible)
}

func TestController_BreakFiresOnce(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})
	require.Equal(t, StateCommercialBreak, h.controller.State())

	// Finish the commercial, then replay a clustered timeupdate at the same
	// position: the consumed break must not fire again
	h.second.emit(Event{Type: EventEnded})
	require.Equal(t, StatePlayingMain, h.controller.State())

	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200.1})
	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, 1, h.controller.NextBreakIndex())
}

func TestController_EmptyPoolSkipsBreak(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, nil)
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})

	// Fail open: the cursor advances past the break but playback continues
	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, 1, h.controller.NextBreakIndex())
	assert.True(t, h.main.playing)
}

func TestController_CommercialEndsResumesMain(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})
	require.Equal(t, StateCommercialBreak, h.controller.State())

	h.second.emit(Event{Type: EventCanPlay})
	assert.True(t, h.second.playing)

	h.second.emit(Event{Type: EventEnded})

	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.True(t, h.main.playing)
	assert.True(t, h.main.visible)
	assert.False(t, h.second.visible)
}

func TestController_CommercialErrorAlsoResumesMain(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})
	require.Equal(t, StateCommercialBreak, h.controller.State())

	h.second.emit(Event{Type: EventError, Err: ErrLoadFailed})

	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.True(t, h.main.playing)
}

func TestController_MainEndsNearBlockEndGoesToEnded(t *testing.T) {
	h := newHarness(t)
	// 4 seconds remain in the block: below the padding threshold
	h.now = time.Date(2026, time.August, 31, 20, 59, 56, 0, time.UTC)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventEnded})

	assert.Equal(t, StateEnded, h.controller.State())
	assert.Empty(t, h.second.loads)
}

func TestController_MainEndsEarlyStartsPadding(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventEnded})

	// 35 minutes of block remain
	assert.Equal(t, StatePaddingCommercials, h.controller.State())
	assert.Len(t, h.second.loads, 1)
	assert.True(t, h.second.visible)
}

func TestController_MainEndsEarlyWithEmptyPoolEnds(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, nil)
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventEnded})

	assert.Equal(t, StateEnded, h.controller.State())
}

func TestController_PaddingChainsUntilBlockEnd(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventEnded})
	require.Equal(t, StatePaddingCommercials, h.controller.State())

	// Plenty of time left: another commercial chains on
	h.second.emit(Event{Type: EventEnded})
	assert.Equal(t, StatePaddingCommercials, h.controller.State())
	assert.Len(t, h.second.loads, 2)

	// Clock reaches the block tail: padding stops
	h.now = time.Date(2026, time.August, 31, 20, 59, 58, 0, time.UTC)
	h.second.emit(Event{Type: EventEnded})
	assert.Equal(t, StateEnded, h.controller.State())
	assert.Len(t, h.second.loads, 2)
}

func TestController_ClickSwallowedDuringCommercial(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})
	h.second.emit(Event{Type: EventCanPlay})
	require.Equal(t, StateCommercialBreak, h.controller.State())

	h.controller.Click()

	// Commercials are not skippable or pausable
	assert.Equal(t, StateCommercialBreak, h.controller.State())
	assert.True(t, h.second.playing)
}

func TestController_ClickTogglesMainPlayback(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	require.True(t, h.main.playing)

	h.controller.Click()
	assert.False(t, h.main.playing)
	assert.Equal(t, StatePlayingMain, h.controller.State())

	h.controller.Click()
	assert.True(t, h.main.playing)
}

func TestController_UserPauseSuppressesBreaks(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.controller.Click() // pause

	// Stray timeupdates while paused must not trigger a break
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})
	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, 0, h.controller.NextBreakIndex())
}

func TestController_ResetDetachesListeners(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})
	h.main.emit(Event{Type: EventTimeUpdate, Position: 1200})
	require.Equal(t, StateCommercialBreak, h.controller.State())

	h.controller.SetProgram(nil, 0, nil)

	assert.Equal(t, StateOffAir, h.controller.State())
	assert.Nil(t, h.main.handler)
	assert.Nil(t, h.second.handler)
	assert.False(t, h.main.playing)
	assert.False(t, h.second.playing)
}

func TestController_ResetClearsBreakCursor(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 1500*time.Second, testPool())
	require.Equal(t, 1, h.controller.NextBreakIndex())

	h.controller.SetProgram(testDescriptor(), 0, testPool())

	assert.Equal(t, 0, h.controller.NextBreakIndex())
}

func TestController_OnStateChange(t *testing.T) {
	h := newHarness(t)
	var seen []State
	h.controller.OnStateChange(func(s State) { seen = append(seen, s) })

	h.controller.SetProgram(testDescriptor(), 0, testPool())
	h.main.emit(Event{Type: EventCanPlay})

	assert.Equal(t, []State{StateLoading, StatePlayingMain}, seen)
}

// Full mid-program tune-in walkthrough: tune in 25 minutes into an hour
// block, hit the remaining break, finish early, pad to the block tail.
func TestController_MidProgramTuneIn(t *testing.T) {
	h := newHarness(t)

	h.controller.SetProgram(testDescriptor(), 1500*time.Second, testPool())
	assert.Equal(t, StateLoading, h.controller.State())
	assert.Equal(t, 1, h.controller.NextBreakIndex())

	h.main.emit(Event{Type: EventCanPlay})
	assert.Equal(t, StatePlayingMain, h.controller.State())
	assert.Equal(t, []float64{1500}, h.main.seeks)

	// The first break at 1200s already aired; 2375s is short of the second
	h.main.emit(Event{Type: EventTimeUpdate, Position: 2375})
	assert.Equal(t, StatePlayingMain, h.controller.State())

	h.main.emit(Event{Type: EventTimeUpdate, Position: 2400})
	assert.Equal(t, StateCommercialBreak, h.controller.State())
	assert.Equal(t, 2, h.controller.NextBreakIndex())

	h.second.emit(Event{Type: EventCanPlay})
	h.second.emit(Event{Type: EventEnded})
	assert.Equal(t, StatePlayingMain, h.controller.State())

	// The movie runs out with about 25 minutes of block left
	h.now = time.Date(2026, time.August, 31, 20, 35, 0, 0, time.UTC)
	h.main.emit(Event{Type: EventEnded})
	assert.Equal(t, StatePaddingCommercials, h.controller.State())

	h.now = time.Date(2026, time.August, 31, 20, 59, 58, 0, time.UTC)
	h.second.emit(Event{Type: EventEnded})
	assert.Equal(t, StateEnded, h.controller.State())
}
