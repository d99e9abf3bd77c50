package dailyquiz_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/dailyquiz"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

type stubService struct {
	doc      *quizgen.QuizDocument
	getErr   error
	clearRes *dailyquiz.ClearResult
}

func (s *stubService) GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.doc, nil
}

func (s *stubService) Clear(ctx context.Context, category string) (*dailyquiz.ClearResult, error) {
	return s.clearRes, nil
}

func TestGetQuizHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		doc := &quizgen.QuizDocument{
			Date:     "2024-01-01",
			Category: "world",
			Questions: []quizgen.QuestionRecord{
				{Question: "q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Answer: "B", Source: "https://example.org"},
			},
		}
		h := dailyquiz.NewHandler(&stubService{doc: doc})

		req := httptest.NewRequest(http.MethodGet, "/?category=world", nil)
		rec := httptest.NewRecorder()
		h.GetQuiz(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("want 200, got %d", rec.Code)
		}

		var got quizgen.QuizDocument
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if got.Date != "2024-01-01" || len(got.Questions) != 1 {
			t.Errorf("unexpected body: %+v", got)
		}
	})

	t.Run("GenerationFailureListsCategories", func(t *testing.T) {
		h := dailyquiz.NewHandler(&stubService{getErr: quizgen.ErrGenerationFailed})

		req := httptest.NewRequest(http.MethodGet, "/?category=world", nil)
		rec := httptest.NewRecorder()
		h.GetQuiz(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("want 502, got %d", rec.Code)
		}

		var body struct {
			Error               string   `json:"error"`
			AvailableCategories []string `json:"available_categories"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(body.AvailableCategories) != len(feed.Keys()) {
			t.Errorf("failure payload should list the category registry, got %d entries", len(body.AvailableCategories))
		}
	})
}

func TestClearQuizHandler(t *testing.T) {
	h := dailyquiz.NewHandler(&stubService{clearRes: &dailyquiz.ClearResult{
		Summary: dailyquiz.ClearSummary{Total: 1, Cleared: 1},
		Details: []dailyquiz.ClearDetail{{Key: "quiz-world", Status: "cleared"}},
	}})

	req := httptest.NewRequest(http.MethodDelete, "/?category=world", nil)
	rec := httptest.NewRecorder()
	h.ClearQuiz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body struct {
		Summary dailyquiz.ClearSummary `json:"summary"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Summary.Cleared != 1 {
		t.Errorf("want 1 cleared, got %+v", body.Summary)
	}
}
