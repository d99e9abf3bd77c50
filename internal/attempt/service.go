package attempt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

var ErrNoQuiz = errors.New("no quiz available to grade against")

// QuizSource delivers today's quiz for a category. Satisfied by the dailyquiz
// service.
type QuizSource interface {
	GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error)
}

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, dto SubmitDTO) (*AttemptResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]AttemptResponse, error)
}

type service struct {
	repo    Repository
	quizzes QuizSource
}

func NewService(repo Repository, quizzes QuizSource) Service {
	return &service{repo: repo, quizzes: quizzes}
}

// Submit grades the submitted letters against today's quiz for the category
// and persists the attempt with its per-question review. Unanswered questions
// count as wrong.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, dto SubmitDTO) (*AttemptResponse, error) {
	log := config.WithContext(ctx)

	doc, err := s.quizzes.GetQuiz(ctx, dto.Category)
	if err != nil {
		return nil, err
	}
	if len(doc.Questions) == 0 {
		return nil, ErrNoQuiz
	}

	reviews := make([]AnswerReview, 0, len(doc.Questions))
	score := 0
	for i, q := range doc.Questions {
		selected := ""
		if i < len(dto.Answers) {
			selected = strings.ToUpper(strings.TrimSpace(dto.Answers[i]))
		}

		right := selected == q.Answer
		if right {
			score++
		}
		reviews = append(reviews, AnswerReview{
			Question: q.Question,
			Selected: selected,
			Correct:  q.Answer,
			Right:    right,
			Source:   q.Source,
		})
	}

	answersJSON, err := json.Marshal(reviews)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}

	a := &Attempt{
		ID:       uuid.New(),
		UserID:   userID,
		Category: doc.Category,
		QuizDate: doc.Date,
		Score:    score,
		Total:    len(doc.Questions),
		Answers:  answersJSON,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}

	log.Infof("Recorded attempt %s: %d/%d on %s %s", a.ID, a.Score, a.Total, a.Category, a.QuizDate)
	return s.toResponse(a)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]AttemptResponse, error) {
	attempts, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]AttemptResponse, 0, len(attempts))
	for i := range attempts {
		resp, err := s.toResponse(&attempts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *service) toResponse(a *Attempt) (*AttemptResponse, error) {
	var reviews []AnswerReview
	if err := json.Unmarshal(a.Answers, &reviews); err != nil {
		return nil, fmt.Errorf("decoding answers of attempt %s: %w", a.ID, err)
	}

	return &AttemptResponse{
		ID:        a.ID,
		Category:  a.Category,
		QuizDate:  a.QuizDate,
		Score:     a.Score,
		Total:     a.Total,
		Answers:   reviews,
		CreatedAt: a.CreatedAt,
	}, nil
}
