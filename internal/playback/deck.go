package playback

import (
	"time"

	"github.com/stwalsh4118/rabbitears/internal/commercials"
	"github.com/stwalsh4118/rabbitears/internal/config"
)

// OptionsFromConfig maps the playback config section onto controller options.
// Zero values still fall back to the controller defaults.
func OptionsFromConfig(cfg config.PlaybackConfig) Options {
	return Options{
		BreakTolerance:   cfg.BreakTolerance,
		PaddingThreshold: cfg.PaddingThreshold(),
	}
}

// Deck bundles one viewing session's playback pipeline: the two-surface
// controller, the channel tuner, and the info overlays, all tuned from the
// playback config section.
type Deck struct {
	Controller *Controller
	Tuner      *Tuner
	Overlays   *Overlays
}

// NewDeck assembles a deck over the given surfaces. onTune fires after
// every successful channel change; onOverlay fires on every overlay
// visibility change.
func NewDeck(
	main, second VideoSurface,
	picker *commercials.Picker,
	cfg config.PlaybackConfig,
	onTune func(number int),
	onOverlay func(OverlayKind, bool),
) *Deck {
	return &Deck{
		Controller: NewController(main, second, picker, OptionsFromConfig(cfg)),
		Tuner:      NewTuner(nil, cfg.ChannelEntryTimeout(), onTune),
		Overlays: NewOverlays(
			time.Duration(cfg.ChannelInfoDurationSeconds)*time.Second,
			time.Duration(cfg.MediaInfoDurationSeconds)*time.Second,
			onOverlay,
		),
	}
}
