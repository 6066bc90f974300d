package quizgen

// RecoveryPolicy decides what happens when a single question cannot be
// placed within MaxAttemptsPerQuestion random draws.
type RecoveryPolicy string

const (
	// RecoveryWiden enumerates every candidate that still satisfies all
	// constraints and picks one uniformly. Sequence-wide uniqueness is kept.
	RecoveryWiden RecoveryPolicy = "widen"

	// RecoveryReset forgets the combinations used so far and keeps sampling.
	// Adjacent-repeat and easy-run rules still apply; sequence-wide
	// uniqueness is relaxed.
	RecoveryReset RecoveryPolicy = "reset"
)

// Config controls the behavior of the Generator.
type Config struct {
	// MaxAttemptsPerQuestion bounds the random draws spent on one question
	// before the recovery policy kicks in.
	MaxAttemptsPerQuestion int

	// AttemptBudgetFactor sets the global attempt budget to
	// AttemptBudgetFactor * count.
	AttemptBudgetFactor int

	// ChunkSize is the number of attempts a Job runs per Step.
	ChunkSize int

	// Recovery is the per-question exhaustion policy.
	Recovery RecoveryPolicy

	// Validators run in order on every accepted question; the first failure
	// discards the candidate.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended budgets.
func DefaultConfig() Config {
	return Config{
		MaxAttemptsPerQuestion: 20,
		AttemptBudgetFactor:    10,
		ChunkSize:              20,
		Recovery:               RecoveryWiden,
		Validators: []Validator{
			&StructuralValidator{},
			&ProductValidator{},
		},
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxAttemptsPerQuestion <= 0 {
		c.MaxAttemptsPerQuestion = d.MaxAttemptsPerQuestion
	}
	if c.AttemptBudgetFactor <= 0 {
		c.AttemptBudgetFactor = d.AttemptBudgetFactor
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = d.ChunkSize
	}
	if c.Recovery == "" {
		c.Recovery = d.Recovery
	}
	if c.Validators == nil {
		c.Validators = d.Validators
	}
	return c
}
