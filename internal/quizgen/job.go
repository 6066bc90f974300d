package quizgen

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
)

// Job is one generation run that can be advanced a chunk at a time.
// Each Job owns its random source, split from the Generator's at creation,
// so an abandoned Job never touches shared state.
type Job struct {
	req       Request
	cfg       Config
	rng       *rand.Rand
	selection []int
	nonEasy   []int
	budget    int

	state     generationState
	questions []Question
	done      bool
	err       error

	produced atomic.Int64
	attempts atomic.Int64
}

// generationState is the transient bookkeeping of a single run.
type generationState struct {
	used             map[combination]bool
	previous         *Question
	consecutiveEasy  int
	totalAttempts    int
	questionAttempts int
	chunkAttempts    int
}

// NewJob validates req and prepares a run. Invalid input is reported here,
// before any attempt is made.
func (g *Generator) NewJob(req Request) (*Job, error) {
	selection, err := validateRequest(req)
	if err != nil {
		return nil, err
	}
	return &Job{
		req:       req,
		cfg:       g.cfg,
		rng:       rand.New(rand.NewPCG(g.rng.Uint64(), g.rng.Uint64())),
		selection: selection,
		nonEasy:   req.Profile.nonEasyPool(),
		budget:    attemptBudget(g.cfg.AttemptBudgetFactor, req.Count),
		state: generationState{
			used: make(map[combination]bool, min(req.Count, maxPrealloc)),
		},
		questions: make([]Question, 0, min(req.Count, maxPrealloc)),
	}, nil
}

// maxPrealloc caps up-front allocation; larger runs grow as they go.
const maxPrealloc = 1024

// attemptBudget is factor×count, saturating at math.MaxInt.
func attemptBudget(factor, count int) int {
	if count > math.MaxInt/factor {
		return math.MaxInt
	}
	return factor * count
}

// Step runs at most ChunkSize attempts. It returns done once Count
// questions are accepted, or ErrGenerationExhausted (wrapped in a
// *GenerationError) when the global budget is spent.
func (j *Job) Step() (bool, error) {
	if j.done || j.err != nil {
		return j.done, j.err
	}

	j.state.chunkAttempts = 0
	for j.state.chunkAttempts < j.cfg.ChunkSize {
		if len(j.questions) == j.req.Count {
			j.done = true
			return true, nil
		}
		if j.state.totalAttempts >= j.budget {
			j.err = j.failure(ErrGenerationExhausted)
			return false, j.err
		}

		j.state.chunkAttempts++
		j.state.totalAttempts++
		j.state.questionAttempts++
		j.attempts.Store(int64(j.state.totalAttempts))

		if q, ok := j.attempt(); ok {
			j.accept(q)
			continue
		}
		if j.state.questionAttempts >= j.cfg.MaxAttemptsPerQuestion {
			if err := j.recover(); err != nil {
				j.err = err
				return false, err
			}
		}
	}

	if len(j.questions) == j.req.Count {
		j.done = true
	}
	return j.done, nil
}

// Questions returns the accepted questions so far.
func (j *Job) Questions() []Question {
	out := make([]Question, len(j.questions))
	copy(out, j.questions)
	return out
}

// Progress reports accepted questions, requested count and attempts used.
// It is safe to call from another goroutine while Step runs.
func (j *Job) Progress() (produced, wanted, attempts int) {
	return int(j.produced.Load()), j.req.Count, int(j.attempts.Load())
}

// attempt draws one candidate and builds a question from it when it
// satisfies the uniqueness and anti-repeat rules.
func (j *Job) attempt() (Question, bool) {
	c, ok := j.draw()
	if !ok || !j.allowed(c) {
		return Question{}, false
	}
	return j.build(c)
}

// draw picks a base uniformly from the selection and a multiplier per the
// difficulty profile.
func (j *Job) draw() (combination, bool) {
	base := j.selection[j.rng.IntN(len(j.selection))]
	easyAllowed := j.state.consecutiveEasy < j.req.Profile.ConsecutiveEasyLimit

	switch {
	case easyAllowed && j.rng.Float64() < j.req.Profile.EasyMultiplierChance:
		return combination{base: base, multiplier: easyMultipliers[j.rng.IntN(len(easyMultipliers))]}, true
	case len(j.nonEasy) > 0:
		return combination{base: base, multiplier: j.nonEasy[j.rng.IntN(len(j.nonEasy))]}, true
	case easyAllowed:
		// The range holds only easy values.
		return combination{base: base, multiplier: easyMultipliers[j.rng.IntN(len(easyMultipliers))]}, true
	}
	return combination{}, false
}

// allowed checks uniqueness and the anti-repeat rules.
func (j *Job) allowed(c combination) bool {
	if j.state.used[c] {
		return false
	}
	if prev := j.state.previous; prev != nil {
		p := prev.pair()
		if c == p || c == p.swapped() {
			return false
		}
	}
	return true
}

// build synthesizes options and runs the validator chain.
func (j *Job) build(c combination) (Question, bool) {
	options, kinds := synthesizeOptions(j.rng, c.base, c.multiplier)
	q := Question{
		BaseNumber:    c.base,
		Multiplier:    c.multiplier,
		CorrectAnswer: c.base * c.multiplier,
		Options:       options,
		OptionKinds:   kinds,
	}
	for _, v := range j.cfg.Validators {
		if verr := v.Validate(&q); verr != nil {
			return Question{}, false
		}
	}
	return q, true
}

func (j *Job) accept(q Question) {
	j.questions = append(j.questions, q)
	j.produced.Store(int64(len(j.questions)))
	j.state.used[q.pair()] = true
	prev := q
	j.state.previous = &prev
	if q.IsEasy() {
		j.state.consecutiveEasy++
	} else {
		j.state.consecutiveEasy = 0
	}
	j.state.questionAttempts = 0
}

// recover applies the configured policy after MaxAttemptsPerQuestion
// failed draws for the current question.
func (j *Job) recover() error {
	j.state.questionAttempts = 0

	if j.cfg.Recovery == RecoveryReset {
		clear(j.state.used)
		return nil
	}

	candidates := j.enumerate()
	if len(candidates) == 0 {
		// Nothing can ever satisfy the constraints again.
		j.state.totalAttempts = j.budget
		j.attempts.Store(int64(j.budget))
		return j.failure(ErrGenerationExhausted)
	}
	j.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	for _, c := range candidates {
		if q, ok := j.build(c); ok {
			j.accept(q)
			return nil
		}
	}
	return nil
}

// enumerate lists every combination still admissible for the next question.
func (j *Job) enumerate() []combination {
	multipliers := append([]int(nil), j.nonEasy...)
	if j.state.consecutiveEasy < j.req.Profile.ConsecutiveEasyLimit {
		multipliers = append(multipliers, easyMultipliers...)
	}

	var out []combination
	for _, base := range j.selection {
		for _, m := range multipliers {
			c := combination{base: base, multiplier: m}
			if j.allowed(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (j *Job) failure(kind error) *GenerationError {
	return &GenerationError{
		Err:      kind,
		Produced: len(j.questions),
		Wanted:   j.req.Count,
		Attempts: j.state.totalAttempts,
	}
}
