package dailyquiz

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

type ClearDetail struct {
	Key    string `json:"key"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type ClearSummary struct {
	Total   int `json:"total"`
	Cleared int `json:"cleared"`
	Errors  int `json:"errors"`
}

type ClearResult struct {
	Summary ClearSummary  `json:"summary"`
	Details []ClearDetail `json:"details"`
}

type Service interface {
	GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error)
	Clear(ctx context.Context, category string) (*ClearResult, error)
}

type service struct {
	store         Store
	assembler     quizgen.QuizAssembler
	questionCount int
	group         singleflight.Group
	now           func() time.Time
}

func NewService(store Store, assembler quizgen.QuizAssembler, questionCount int) Service {
	return &service{
		store:         store,
		assembler:     assembler,
		questionCount: questionCount,
		now:           time.Now,
	}
}

func (s *service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// GetQuiz returns the cached quiz for the category when it was generated
// today, regenerating and overwriting it otherwise. Unknown categories are
// coerced to the default. Concurrent stale requests for one category share a
// single regeneration.
func (s *service) GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error) {
	log := config.WithContext(ctx)

	feedURL, category := feed.Resolve(category)
	today := s.today()

	if doc := s.cachedFresh(ctx, category, today); doc != nil {
		log.Infof("Returning cached %s quiz from %s with %d questions", category, doc.Date, len(doc.Questions))
		return doc, nil
	}

	v, err, _ := s.group.Do(category, func() (interface{}, error) {
		// A concurrent caller may have finished the regeneration already.
		if doc := s.cachedFresh(ctx, category, today); doc != nil {
			return doc, nil
		}

		doc, err := s.assembler.Assemble(ctx, s.questionCount, feedURL, category)
		if err != nil {
			return nil, err
		}

		// A failed write is logged and the fresh document still returned;
		// the next request simply regenerates again.
		if err := s.store.Set(ctx, category, doc); err != nil {
			log.WithError(err).Errorf("Failed to save %s quiz", category)
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*quizgen.QuizDocument), nil
}

func (s *service) cachedFresh(ctx context.Context, category, today string) *quizgen.QuizDocument {
	doc, err := s.store.Get(ctx, category)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			config.WithContext(ctx).WithError(err).Warnf("Failed to read cached %s quiz", category)
		}
		return nil
	}
	if doc.Date != today {
		return nil
	}
	return doc
}

// Clear deletes the stored quiz for one category, or for every category when
// the argument is empty, and reports a per-key breakdown. An empty store
// yields a zero-count summary without error.
func (s *service) Clear(ctx context.Context, category string) (*ClearResult, error) {
	log := config.WithContext(ctx)

	var categories []string
	if category != "" {
		categories = []string{category}
	} else {
		var err error
		categories, err = s.store.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	result := &ClearResult{
		Summary: ClearSummary{Total: len(categories)},
		Details: make([]ClearDetail, 0, len(categories)),
	}

	for _, c := range categories {
		detail := ClearDetail{Key: keyPrefix + c, Status: "cleared"}
		if err := s.store.Delete(ctx, c); err != nil {
			log.WithError(err).Errorf("Failed to clear %s quiz", c)
			detail.Status = "error"
			detail.Error = err.Error()
			result.Summary.Errors++
		} else {
			result.Summary.Cleared++
		}
		result.Details = append(result.Details, detail)
	}

	log.Infof("Clear completed: %d cleared, %d errors", result.Summary.Cleared, result.Summary.Errors)
	return result, nil
}
