package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/timesdrill/internal/quizgen"
)

// Bounds for quiz settings.
const (
	MinBase  = 1
	MaxBase  = 99
	MaxCount = 100
)

// Settings are the learner's choices for one quiz.
type Settings struct {
	Selection []int         `validate:"required,min=1,dive,gte=1,lte=99"`
	Count     int           `validate:"gte=1,lte=100"`
	Level     quizgen.Level `validate:"oneof=easy medium hard"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings. Failures wrap quizgen.ErrInvalidInput.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", quizgen.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", quizgen.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s must not be empty", strings.ToLower(fe.Field()))
	case "gte", "lte":
		return fmt.Sprintf("%s %v out of range", strings.ToLower(fe.Field()), fe.Value())
	case "oneof":
		return fmt.Sprintf("unknown level %q", fe.Value())
	}
	return fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag())
}

// Request builds the generator request for these settings.
func (s Settings) Request(profile quizgen.DifficultyProfile) quizgen.Request {
	return quizgen.Request{
		Selection: append([]int(nil), s.Selection...),
		Count:     s.Count,
		Profile:   profile,
	}
}
