package quizgen

// QuestionRecord is one generated multiple-choice question. Invariant:
// exactly one option carries the model's stated correct answer, and Answer
// names its shuffled position.
type QuestionRecord struct {
	Question string `json:"Question"`
	OptionA  string `json:"Option A"`
	OptionB  string `json:"Option B"`
	OptionC  string `json:"Option C"`
	OptionD  string `json:"Option D"`
	Answer   string `json:"Answer"`
	Source   string `json:"Source"`
}

// QuizDocument is the per-category daily quiz. Date uses the YYYY-MM-DD UTC
// convention both when stamping and when comparing freshness.
type QuizDocument struct {
	Date      string           `json:"date"`
	Category  string           `json:"category"`
	Questions []QuestionRecord `json:"questions"`
}

// Options returns the four option texts in display order.
func (q QuestionRecord) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// CorrectText returns the text of the option the Answer letter points to.
func (q QuestionRecord) CorrectText() string {
	switch q.Answer {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
