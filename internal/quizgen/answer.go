package quizgen

// CheckAnswer reports whether selected is the question's correct answer.
// The selection must be one of the question's options.
func CheckAnswer(selected int, q *Question) bool {
	for _, o := range q.Options {
		if o == selected {
			return selected == q.CorrectAnswer
		}
	}
	return false
}
