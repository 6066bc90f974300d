package screen

import (
	"errors"
	"time"

	"github.com/abhisek/timesdrill/internal/i18n"
	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/store"
)

// BestScoreText renders the best score, or the placeholder when none was
// recorded yet.
func BestScoreText(p *i18n.Printer, st store.Stats) string {
	if !st.HasBestScore {
		return p.T("home.none")
	}
	return p.T("home.pct_value", st.BestScorePercent)
}

// AverageTimeText renders the stored average response time.
func AverageTimeText(p *i18n.Printer, st store.Stats) string {
	if !st.HasAverageResponseTime {
		return p.T("home.none")
	}
	return p.T("home.avg_value", st.AverageResponseTimeSeconds)
}

// GenerationErrorText maps generator failures to a localized message with
// advice. ok is false for errors the learner cannot fix by changing the
// settings.
func GenerationErrorText(p *i18n.Printer, err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, quizgen.ErrInvalidInput):
		return p.T("err.invalid_input"), true
	case errors.Is(err, quizgen.ErrGenerationExhausted):
		wanted := 0
		var gerr *quizgen.GenerationError
		if errors.As(err, &gerr) {
			wanted = gerr.Wanted
		}
		return p.T("err.exhausted", wanted), true
	case errors.Is(err, quizgen.ErrGenerationTimeout):
		return p.T("err.timeout"), true
	}
	return err.Error(), false
}

// SessionDateLayout formats session timestamps in history listings.
const SessionDateLayout = "2006-01-02 15:04"

// SessionRowText renders one history line in local time.
func SessionRowText(p *i18n.Printer, rec store.SessionEventRecord) string {
	return p.T("history.row",
		rec.Timestamp.In(time.Local).Format(SessionDateLayout),
		p.T("level."+rec.Level),
		rec.ScorePercent,
		p.T("grade."+rec.Grade),
	)
}
