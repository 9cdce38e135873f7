package moving

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowSize is returned for a window size below 1.
	ErrWindowSize = errors.New("window size must be >= 1")
	// ErrEvenWindow is returned when a median window has no unique middle element.
	ErrEvenWindow = errors.New("median window size must be odd")
)

func validateWindow(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: %d", ErrWindowSize, k)
	}
	return nil
}

func validateMedianWindow(k int) error {
	if err := validateWindow(k); err != nil {
		return err
	}
	if k%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenWindow, k)
	}
	return nil
}
