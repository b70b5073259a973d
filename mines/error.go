package mines

import "errors"

var (
	ErrInvalidSettings = errors.New("invalid game settings")
	ErrOutOfBounds     = errors.New("cell out of bounds")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
