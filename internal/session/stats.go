package session

import "github.com/abhisek/timesdrill/internal/store"

// UpdateStats folds a finished session into the stored statistics.
// The best score only ever rises; the average time is replaced by this
// session's rounded average.
func UpdateStats(prev store.Stats, summary *SessionSummary) store.Stats {
	next := prev
	if !prev.HasBestScore || summary.ScorePercent > prev.BestScorePercent {
		next.BestScorePercent = summary.ScorePercent
		next.HasBestScore = true
	}
	next.AverageResponseTimeSeconds = summary.AverageResponseSeconds()
	next.HasAverageResponseTime = true
	return next
}
