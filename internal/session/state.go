package session

import (
	"time"

	"github.com/abhisek/timesdrill/internal/diagnosis"
	"github.com/abhisek/timesdrill/internal/quizgen"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Waiting for an answer
	PhaseFeedback                     // Showing answer feedback
	PhaseFinished                     // All questions answered
)

// StreakBadgeThreshold is the run of correct answers that shows the badge.
const StreakBadgeThreshold = 3

// AnswerRecord captures one answered (or timed-out) question.
type AnswerRecord struct {
	Question     quizgen.Question
	Selected     int  // Chosen option; zero when Answered is false
	Answered     bool // False when the question timed out
	Correct      bool
	ResponseTime time.Duration
	Diagnosis    *diagnosis.DiagnosisResult // nil for correct answers
	AnsweredAt   time.Time
}

// QuizSession tracks the runtime state of one quiz.
type QuizSession struct {
	// ID is the UUID for this session.
	ID string

	Settings Settings
	Profile  quizgen.DifficultyProfile

	// Questions is the generated sequence, fixed for the session.
	Questions []quizgen.Question

	// Index points at the current question.
	Index int

	// Records holds one entry per answered question.
	Records []AnswerRecord

	Correct       int
	Streak        int
	LongestStreak int

	// AverageResponseSeconds is the running mean response time.
	AverageResponseSeconds float64

	StartTime         time.Time
	QuestionStartTime time.Time
	EndTime           time.Time

	Phase SessionPhase

	// DiagnosisService classifies wrong answers (nil if diagnosis disabled).
	DiagnosisService *diagnosis.Service
}

// NewQuizSession creates a session positioned on the first question.
func NewQuizSession(id string, settings Settings, profile quizgen.DifficultyProfile, questions []quizgen.Question, now time.Time) *QuizSession {
	phase := PhaseActive
	if len(questions) == 0 {
		phase = PhaseFinished
	}
	return &QuizSession{
		ID:                id,
		Settings:          settings,
		Profile:           profile,
		Questions:         questions,
		Records:           make([]AnswerRecord, 0, len(questions)),
		StartTime:         now,
		QuestionStartTime: now,
		Phase:             phase,
	}
}
