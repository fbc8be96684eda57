package playback

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/stwalsh4118/rabbitears/internal/logger"
)

// defaultEntryTimeout is how long a partially typed channel number survives
// before the digit buffer clears itself
const defaultEntryTimeout = 2 * time.Second

// Tuner tracks the current channel number and handles the three channel
// inputs: up, down, and direct numeric entry through a digit buffer.
type Tuner struct {
	mu           sync.Mutex
	numbers      []int
	current      int
	buffer       string
	clearTimer   *time.Timer
	entryTimeout time.Duration
	onTune       func(number int)
}

// NewTuner creates a tuner over the given channel numbers. onTune is invoked
// with the new channel number after every successful tune; the caller
// cascades it into a schedule re-resolution and a playback reset.
func NewTuner(numbers []int, entryTimeout time.Duration, onTune func(number int)) *Tuner {
	if entryTimeout <= 0 {
		entryTimeout = defaultEntryTimeout
	}
	t := &Tuner{
		entryTimeout: entryTimeout,
		onTune:       onTune,
	}
	t.SetNumbers(numbers)
	return t
}

// SetNumbers replaces the known channel numbers, keeping the current tune
// when it still exists
func (t *Tuner) SetNumbers(numbers []int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)
	t.numbers = sorted

	if len(sorted) == 0 {
		t.current = 0
		return
	}
	if !t.hasNumberLocked(t.current) {
		t.current = sorted[0]
	}
}

// Current returns the currently tuned channel number, 0 when no channels exist
func (t *Tuner) Current() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Up tunes to the next higher channel number, wrapping past the top
func (t *Tuner) Up() {
	t.step(1)
}

// Down tunes to the next lower channel number, wrapping past the bottom
func (t *Tuner) Down() {
	t.step(-1)
}

func (t *Tuner) step(direction int) {
	t.mu.Lock()
	if len(t.numbers) == 0 {
		t.mu.Unlock()
		return
	}

	idx := 0
	for i, n := range t.numbers {
		if n == t.current {
			idx = i
			break
		}
	}
	idx = (idx + direction + len(t.numbers)) % len(t.numbers)
	t.current = t.numbers[idx]
	number := t.current
	onTune := t.onTune
	t.mu.Unlock()

	if onTune != nil {
		onTune(number)
	}
}

// Digit feeds one typed digit into the entry buffer. When the buffered
// number matches an existing channel it tunes immediately; otherwise the
// buffer clears itself after the entry timeout with no match.
func (t *Tuner) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}

	t.mu.Lock()
	t.buffer += strconv.Itoa(d)
	if t.clearTimer != nil {
		t.clearTimer.Stop()
	}

	number, err := strconv.Atoi(t.buffer)
	if err == nil && t.hasNumberLocked(number) {
		t.buffer = ""
		t.current = number
		onTune := t.onTune
		t.mu.Unlock()

		logger.Log.Debug().Int("channel", number).Msg("Direct channel entry")
		if onTune != nil {
			onTune(number)
		}
		return
	}

	t.clearTimer = time.AfterFunc(t.entryTimeout, t.clearBuffer)
	t.mu.Unlock()
}

// Buffer returns the pending digit entry, for on-screen display
func (t *Tuner) Buffer() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffer
}

func (t *Tuner) clearBuffer() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer = ""
}

func (t *Tuner) hasNumberLocked(number int) bool {
	for _, n := range t.numbers {
		if n == number {
			return true
		}
	}
	return false
}
