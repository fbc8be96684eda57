package playback

import (
	"sync"
	"time"

	"github.com/stwalsh4118/rabbitears/internal/commercials"
	"github.com/stwalsh4118/rabbitears/internal/guide"
	"github.com/stwalsh4118/rabbitears/internal/logger"
	"github.com/stwalsh4118/rabbitears/internal/models"
	"github.com/stwalsh4118/rabbitears/internal/timecode"
)

const (
	// defaultBreakTolerance triggers a break slightly before its timecode so
	// coarse timeupdate granularity cannot overshoot it
	defaultBreakTolerance = 0.25
	// defaultPaddingThreshold is the minimum remaining block time worth
	// filling with commercials after the main title ends
	defaultPaddingThreshold = 5 * time.Second
)

// Options tunes controller behavior. Zero values fall back to defaults.
type Options struct {
	BreakTolerance   float64
	PaddingThreshold time.Duration
	// Clock returns the current time; injected for deterministic tests
	Clock func() time.Time
}

// Controller is the playback state machine. It owns the two video surfaces,
// the break cursor for the current program, and the scheduled block-end
// instant that bounds end-of-program padding.
//
// Surfaces must deliver events asynchronously with respect to controller
// calls; the controller holds its lock while invoking surface methods.
type Controller struct {
	mu sync.Mutex

	main   VideoSurface
	second VideoSurface
	picker *commercials.Picker
	opts   Options

	state  State
	notice string

	program     *guide.Descriptor
	startOffset time.Duration
	pool        []*models.Media

	breaks         []float64
	nextBreak      int
	pausedForBreak bool
	blockEnd       time.Time
	userPaused     bool
	playBlocked    bool

	cancelMain   func()
	cancelSecond func()

	onChange func(State)
}

// NewController creates a playback controller over the two video surfaces.
// picker draws commercials for break insertion and padding.
func NewController(main, second VideoSurface, picker *commercials.Picker, opts Options) *Controller {
	if opts.BreakTolerance <= 0 {
		opts.BreakTolerance = defaultBreakTolerance
	}
	if opts.PaddingThreshold <= 0 {
		opts.PaddingThreshold = defaultPaddingThreshold
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Controller{
		main:   main,
		second: second,
		picker: picker,
		opts:   opts,
		state:  StateOffAir,
	}
}

// OnStateChange registers a callback invoked after every state transition,
// for driving overlays (spinner, error text, commercial label)
func (c *Controller) OnStateChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// State returns the current playback state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Notice returns the current viewer-facing message (error text or
// autoplay prompt), empty when there is none
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// NextBreakIndex returns the cursor of the next unconsumed break timecode
func (c *Controller) NextBreakIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextBreak
}

// SetProgram resets the pipeline for a newly resolved program. Every reset
// tears down both surfaces' listeners and reinitializes the break cursor and
// pause flag before any new event can be handled, so stale break indices
// from the previous title can never fire.
//
// A nil descriptor puts the channel off air (static). A descriptor without a
// file enters the dedicated no-file state; the channel stays tunable.
func (c *Controller) SetProgram(descriptor *guide.Descriptor, startOffset time.Duration, pool []*models.Media) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()

	c.program = descriptor
	c.startOffset = startOffset
	c.pool = pool
	c.nextBreak = 0
	c.pausedForBreak = false
	c.userPaused = false
	c.playBlocked = false
	c.notice = ""
	c.breaks = nil
	c.blockEnd = time.Time{}

	if descriptor == nil {
		c.transitionLocked(StateOffAir)
		return
	}
	if !descriptor.HasFile() {
		c.transitionLocked(StateNoFile)
		return
	}

	now := c.opts.Clock()
	c.breaks = timecode.ParseBreaks(descriptor.Breaks)
	if end, err := timecode.BlockEnd(descriptor.EndTime, now); err == nil {
		c.blockEnd = end
	} else {
		logger.Log.Warn().
			Str("title", descriptor.Title).
			Str("end_time", descriptor.EndTime).
			Msg("Program has no parseable end time, padding disabled")
	}

	// Breaks the start offset has already sailed past are consumed up front
	offsetSeconds := startOffset.Seconds()
	for c.nextBreak < len(c.breaks) && c.breaks[c.nextBreak] <= offsetSeconds {
		c.nextBreak++
	}

	c.transitionLocked(StateLoading)

	if !PlayableSource(descriptor.FilePath) {
		c.notice = ErrorMessage(ErrUnplayableSource)
		c.transitionLocked(StateError)
		return
	}

	c.cancelMain = c.main.Subscribe(c.handleMainEvent)
	c.main.Load(descriptor.FilePath)
}

// Click handles a tap on the video surface. Commercials are not skippable or
// pausable, matching linear TV; during a break or padding the click is
// swallowed. Otherwise it toggles the main program's playback without
// changing the logical state label.
func (c *Controller) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.ShowsCommercial() {
		return
	}
	if c.state != StatePlayingMain {
		return
	}

	// An autoplay rejection leaves the surface stopped with the prompt
	// showing; the first click must start playback, not pause it
	if c.playBlocked || c.userPaused {
		c.userPaused = false
		c.notice = ""
		c.playMainLocked()
	} else {
		c.userPaused = true
		c.main.Pause()
	}
}

// playMainLocked attempts to start the main surface, recording an autoplay
// rejection so the next click retries it
func (c *Controller) playMainLocked() {
	if err := c.main.Play(); err != nil {
		c.playBlocked = true
		c.notice = ErrorMessage(ErrAutoplayBlocked)
		return
	}
	c.playBlocked = false
}

// handleMainEvent reacts to events from the main program surface
func (c *Controller) handleMainEvent(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case EventCanPlay:
		if c.state != StateLoading {
			return
		}
		offset := c.startOffset.Seconds()
		if offset > 0 && offset < c.main.Duration() {
			c.main.Seek(offset)
		}
		c.transitionLocked(StatePlayingMain)
		c.playMainLocked()

	case EventTimeUpdate:
		c.checkBreaksLocked(ev.Position)

	case EventEnded:
		if c.state != StatePlayingMain {
			return
		}
		c.finishMainLocked()

	case EventError:
		if c.state != StateLoading && c.state != StatePlayingMain {
			return
		}
		err := ev.Err
		if err == nil {
			err = ErrLoadFailed
		}
		logger.Log.Error().
			Err(err).
			Str("title", c.programTitle()).
			Msg("Main program failed to load or play")
		c.notice = ErrorMessage(err)
		c.transitionLocked(StateError)
	}
}

// checkBreaksLocked advances the monotonic break cursor. Each break fires
// exactly once, in ascending order, even when timeupdate samples cluster
// around the same position.
func (c *Controller) checkBreaksLocked(position float64) {
	if c.state != StatePlayingMain || c.pausedForBreak || c.userPaused {
		return
	}
	if c.nextBreak >= len(c.breaks) {
		return
	}
	if position < c.breaks[c.nextBreak]-c.opts.BreakTolerance {
		return
	}

	c.nextBreak++

	item := c.picker.Pick(c.pool)
	if item == nil {
		// No eligible commercial: skip the insertion, never stall playback
		logger.Log.Debug().
			Str("title", c.programTitle()).
			Msg("No eligible commercial at break, continuing main program")
		return
	}

	c.pausedForBreak = true
	c.main.Pause()
	c.transitionLocked(StateCommercialBreak)
	c.playCommercialLocked(item)
}

// finishMainLocked decides between ending and padding once the main title
// reaches its natural end
func (c *Controller) finishMainLocked() {
	remaining := c.blockEnd.Sub(c.opts.Clock())
	if remaining <= c.opts.PaddingThreshold {
		c.transitionLocked(StateEnded)
		return
	}

	item := c.picker.Pick(c.pool)
	if item == nil {
		c.transitionLocked(StateEnded)
		return
	}

	logger.Log.Info().
		Str("title", c.programTitle()).
		Dur("remaining", remaining).
		Msg("Main program ended early, padding block with commercials")
	c.transitionLocked(StatePaddingCommercials)
	c.playCommercialLocked(item)
}

// handleSecondEvent reacts to events from the commercial surface
func (c *Controller) handleSecondEvent(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Type {
	case EventCanPlay:
		if !c.state.ShowsCommercial() {
			return
		}
		if err := c.second.Play(); err != nil {
			// Treat an unplayable commercial like a finished one
			c.commercialDoneLocked()
		}

	case EventEnded, EventError:
		if !c.state.ShowsCommercial() {
			return
		}
		c.commercialDoneLocked()
	}
}

// commercialDoneLocked routes the end (or failure) of an inserted commercial:
// resume the paused main program after a break, or keep padding while the
// block still has meaningful time left.
func (c *Controller) commercialDoneLocked() {
	c.detachSecondLocked()

	if c.state == StateCommercialBreak {
		c.pausedForBreak = false
		c.transitionLocked(StatePlayingMain)
		if !c.userPaused {
			c.playMainLocked()
		}
		return
	}

	// Padding: recompute remaining time and continue or end
	remaining := c.blockEnd.Sub(c.opts.Clock())
	if remaining <= c.opts.PaddingThreshold {
		c.transitionLocked(StateEnded)
		return
	}
	item := c.picker.Pick(c.pool)
	if item == nil {
		c.transitionLocked(StateEnded)
		return
	}
	c.transitionLocked(StatePaddingCommercials)
	c.playCommercialLocked(item)
}

// playCommercialLocked loads one filler item into the secondary surface.
// Any listeners from a previous insertion are detached first so a superseded
// commercial's events cannot fire against the new one.
func (c *Controller) playCommercialLocked(item *models.Media) {
	c.detachSecondLocked()
	c.cancelSecond = c.second.Subscribe(c.handleSecondEvent)
	c.second.Load(item.FilePath)
}

// transitionLocked applies a state change, deriving surface visibility from
// the new label and notifying the observer
func (c *Controller) transitionLocked(next State) {
	if c.state == next && next != StatePaddingCommercials {
		return
	}
	if !c.state.CanTransitionTo(next) {
		logger.Log.Warn().
			Str("from", c.state.String()).
			Str("to", next.String()).
			Msg("Unexpected playback state transition")
	}

	c.state = next
	showCommercial := next.ShowsCommercial()
	c.main.SetVisible(!showCommercial)
	c.second.SetVisible(showCommercial)

	if c.onChange != nil {
		c.onChange(next)
	}
}

// teardownLocked detaches all surface listeners and stops both surfaces
func (c *Controller) teardownLocked() {
	if c.cancelMain != nil {
		c.cancelMain()
		c.cancelMain = nil
	}
	c.detachSecondLocked()
	c.main.Pause()
	c.second.Pause()
}

func (c *Controller) detachSecondLocked() {
	if c.cancelSecond != nil {
		c.cancelSecond()
		c.cancelSecond = nil
	}
}

func (c *Controller) programTitle() string {
	if c.program == nil {
		return ""
	}
	return c.program.Title
}
