package quizgen

import (
	"context"
	"errors"
	"runtime"
	"time"
)

// errAbandoned is returned by a worker that saw the stop signal.
var errAbandoned = errors.New("generation abandoned")

// GenerateChunked runs generation on a worker goroutine, a chunk of
// attempts at a time, calling yield between chunks. It races the work
// against timeout and returns whichever finishes first. A result that
// arrives after the deadline is reported as ErrGenerationTimeout.
// A timeout of zero or less means no time limit beyond ctx.
//
// The abandoned worker stops at its next chunk boundary and never touches
// the Generator again. A nil yield defaults to runtime.Gosched.
func (g *Generator) GenerateChunked(ctx context.Context, req Request, timeout time.Duration, yield func()) ([]Question, error) {
	job, err := g.NewJob(req)
	if err != nil {
		return nil, err
	}
	if yield == nil {
		yield = runtime.Gosched
	}

	qs, err := firstToComplete(ctx, timeout, func(stop <-chan struct{}) ([]Question, error) {
		for {
			select {
			case <-stop:
				return nil, errAbandoned
			default:
			}
			done, err := job.Step()
			if err != nil {
				return nil, err
			}
			if done {
				return job.Questions(), nil
			}
			yield()
		}
	})
	if errors.Is(err, context.DeadlineExceeded) {
		produced, wanted, attempts := job.Progress()
		return nil, &GenerationError{
			Err:      ErrGenerationTimeout,
			Produced: produced,
			Wanted:   wanted,
			Attempts: attempts,
		}
	}
	return qs, err
}

type outcome[T any] struct {
	value T
	err   error
}

// firstToComplete runs work on its own goroutine and waits for it or the
// deadline, whichever comes first. On deadline the stop channel is closed
// and context.DeadlineExceeded is returned.
func firstToComplete[T any](ctx context.Context, timeout time.Duration, work func(stop <-chan struct{}) (T, error)) (T, error) {
	var zero T
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	stop := make(chan struct{})
	results := make(chan outcome[T], 1)
	go func() {
		v, err := work(stop)
		results <- outcome[T]{value: v, err: err}
	}()

	select {
	case r := <-results:
		if err := expired(ctx); err != nil {
			return zero, err
		}
		return r.value, r.err
	case <-ctx.Done():
		close(stop)
		return zero, ctx.Err()
	}
}

// expired returns the context error, or DeadlineExceeded when the deadline
// has passed but the context has not noticed yet.
func expired(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dl, ok := ctx.Deadline(); ok && !time.Now().Before(dl) {
		return context.DeadlineExceeded
	}
	return nil
}
