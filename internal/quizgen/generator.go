package quizgen

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Generator produces multiplication question sequences.
//
// A Generator keeps no state between calls apart from its random source.
// It is not safe for concurrent use; give each goroutine its own Generator.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed seeds a PCG random source so generation is reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithConfig replaces the generator configuration. Zero fields take defaults.
func WithConfig(cfg Config) Option {
	return func(g *Generator) { g.cfg = cfg.withDefaults() }
}

// WithValidators replaces the validator chain.
func WithValidators(validators ...Validator) Option {
	return func(g *Generator) { g.cfg.Validators = validators }
}

// New creates a Generator. Without WithRand or WithSeed it uses a
// time-seeded source.
func New(opts ...Option) *Generator {
	g := &Generator{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		now := uint64(time.Now().UnixNano())
		g.rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return g
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate produces exactly req.Count questions, or fails with
// ErrInvalidInput or ErrGenerationExhausted. It runs to completion without
// yielding.
func (g *Generator) Generate(req Request) ([]Question, error) {
	job, err := g.NewJob(req)
	if err != nil {
		return nil, err
	}
	for {
		done, err := job.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return job.Questions(), nil
		}
	}
}

// Validate runs the generator's validator chain on a question that did not
// come from this generator, such as one loaded from a worksheet file.
func (g *Generator) Validate(q *Question) error {
	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

// validateRequest rejects unusable input and returns a copy of the
// selection with duplicates removed.
func validateRequest(req Request) ([]int, error) {
	if len(req.Selection) == 0 {
		return nil, fmt.Errorf("%w: selection is empty", ErrInvalidInput)
	}
	if req.Count <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive, got %d", ErrInvalidInput, req.Count)
	}
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(req.Selection))
	selection := make([]int, 0, len(req.Selection))
	for _, n := range req.Selection {
		if n <= 0 {
			return nil, fmt.Errorf("%w: base numbers must be positive, got %d", ErrInvalidInput, n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selection = append(selection, n)
	}
	return selection, nil
}
