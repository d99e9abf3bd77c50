package attempt

import (
	"time"

	"github.com/google/uuid"
)

type SubmitDTO struct {
	Category string   `json:"category"`
	Answers  []string `json:"answers"`
}

// AnswerReview is one graded question, kept for the review screen.
type AnswerReview struct {
	Question string `json:"question"`
	Selected string `json:"selected"`
	Correct  string `json:"correct"`
	Right    bool   `json:"right"`
	Source   string `json:"source"`
}

type AttemptResponse struct {
	ID        uuid.UUID      `json:"id"`
	Category  string         `json:"category"`
	QuizDate  string         `json:"quiz_date"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Answers   []AnswerReview `json:"answers"`
	CreatedAt time.Time      `json:"created_at"`
}
