package quizgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before generation starts when the
	// selection, count or profile is unusable.
	ErrInvalidInput = errors.New("invalid generation input")

	// ErrGenerationExhausted is returned when the global attempt budget runs
	// out before enough questions were accepted.
	ErrGenerationExhausted = errors.New("question generation exhausted")

	// ErrGenerationTimeout is returned by the chunked variant when the
	// caller's time budget elapses first.
	ErrGenerationTimeout = errors.New("question generation timed out")
)

// GenerationError carries progress information for a failed generation.
type GenerationError struct {
	Err      error // ErrGenerationExhausted or ErrGenerationTimeout
	Produced int   // questions accepted before failure
	Wanted   int   // questions requested
	Attempts int   // attempts consumed
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%v: produced %d of %d questions after %d attempts",
		e.Err, e.Produced, e.Wanted, e.Attempts)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err is a generation failure the caller can
// retry with different parameters.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrGenerationExhausted) ||
		errors.Is(err, ErrGenerationTimeout) ||
		errors.Is(err, ErrInvalidInput)
}
