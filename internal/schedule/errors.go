package schedule

import "errors"

var (
	// ErrChannelNotFound is returned when no channel exists at the requested number
	ErrChannelNotFound = errors.New("channel not found")
)

// IsChannelNotFound checks if the error is a channel not found error
func IsChannelNotFound(err error) bool {
	return errors.Is(err, ErrChannelNotFound)
}
