package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTuner_DefaultsToLowestChannel(t *testing.T) {
	tuner := NewTuner([]int{7, 3, 11}, 0, nil)

	assert.Equal(t, 3, tuner.Current())
}

func TestTuner_UpDownWrap(t *testing.T) {
	var tuned []int
	tuner := NewTuner([]int{3, 7, 11}, 0, func(n int) { tuned = append(tuned, n) })

	tuner.Up()
	assert.Equal(t, 7, tuner.Current())
	tuner.Up()
	assert.Equal(t, 11, tuner.Current())
	tuner.Up()
	assert.Equal(t, 3, tuner.Current(), "up from the top wraps to the bottom")

	tuner.Down()
	assert.Equal(t, 11, tuner.Current(), "down from the bottom wraps to the top")

	assert.Equal(t, []int{7, 11, 3, 11}, tuned)
}

func TestTuner_NoChannels(t *testing.T) {
	tuner := NewTuner(nil, 0, nil)

	assert.Equal(t, 0, tuner.Current())
	tuner.Up()
	tuner.Down()
	assert.Equal(t, 0, tuner.Current())
}

func TestTuner_DigitTunesOnExactMatch(t *testing.T) {
	var tuned []int
	tuner := NewTuner([]int{3, 7, 42}, time.Minute, func(n int) { tuned = append(tuned, n) })

	tuner.Digit(4)
	assert.Equal(t, "4", tuner.Buffer())
	assert.Equal(t, 3, tuner.Current(), "partial entry does not tune")

	tuner.Digit(2)
	assert.Empty(t, tuner.Buffer())
	assert.Equal(t, 42, tuner.Current())
	assert.Equal(t, []int{42}, tuned)
}

func TestTuner_DigitIgnoresOutOfRange(t *testing.T) {
	tuner := NewTuner([]int{3}, time.Minute, nil)

	tuner.Digit(-1)
	tuner.Digit(10)

	assert.Empty(t, tuner.Buffer())
}

func TestTuner_BufferClearsAfterTimeout(t *testing.T) {
	tuner := NewTuner([]int{3, 7}, 20*time.Millisecond, nil)

	tuner.Digit(9)
	assert.Equal(t, "9", tuner.Buffer())

	assert.Eventually(t, func() bool {
		return tuner.Buffer() == ""
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, tuner.Current(), "no match leaves the tune unchanged")
}

func TestTuner_SetNumbersKeepsCurrentWhenStillPresent(t *testing.T) {
	tuner := NewTuner([]int{3, 7}, 0, nil)
	tuner.Up()
	assert.Equal(t, 7, tuner.Current())

	tuner.SetNumbers([]int{5, 7, 9})
	assert.Equal(t, 7, tuner.Current())

	tuner.SetNumbers([]int{5, 9})
	assert.Equal(t, 5, tuner.Current(), "vanished channel falls back to the lowest")
}

func TestTuner_SetNumbersEmptyResetsCurrent(t *testing.T) {
	tuner := NewTuner([]int{3, 7}, 0, nil)
	assert.Equal(t, 3, tuner.Current())

	tuner.SetNumbers(nil)
	assert.Equal(t, 0, tuner.Current(), "no channels means no tune")

	tuner.Up()
	assert.Equal(t, 0, tuner.Current())
}
