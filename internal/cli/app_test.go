package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

type stubFetcher struct {
	doc *quizgen.QuizDocument
	err error
}

func (s *stubFetcher) GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func twoQuestionQuiz() *quizgen.QuizDocument {
	return &quizgen.QuizDocument{
		Date:     "2025-03-01",
		Category: "world",
		Questions: []quizgen.QuestionRecord{
			{
				Question: "Which river flows through Cairo?",
				OptionA:  "Nile", OptionB: "Danube", OptionC: "Amazon", OptionD: "Seine",
				Answer: "A",
				Source: "https://example.com/cairo",
			},
			{
				Question: "Which planet is known as the red planet?",
				OptionA:  "Venus", OptionB: "Mars", OptionC: "Jupiter", OptionD: "Mercury",
				Answer: "B",
				Source: "https://example.com/mars",
			},
		},
	}
}

func TestRunScoresAnswers(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("a\nD\n")

	err := Run(context.Background(), &stubFetcher{doc: twoQuestionQuiz()}, "world", in, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Final score: 1/2") {
		t.Fatalf("expected score 1/2 in output, got:\n%s", output)
	}
	if !strings.Contains(output, "Correct answer was B. Mars") {
		t.Fatalf("expected correction for Q2, got:\n%s", output)
	}
	if !strings.Contains(output, "https://example.com/mars") {
		t.Fatalf("expected source links, got:\n%s", output)
	}
}

func TestRunRetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("x\n7\nA\nB\n")

	err := Run(context.Background(), &stubFetcher{doc: twoQuestionQuiz()}, "world", in, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Invalid input") {
		t.Fatalf("expected retry prompt, got:\n%s", output)
	}
	if !strings.Contains(output, "Final score: 2/2") {
		t.Fatalf("expected score 2/2 in output, got:\n%s", output)
	}
}

func TestRunUnknownCategoryFallsBack(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("A\nB\n")

	err := Run(context.Background(), &stubFetcher{doc: twoQuestionQuiz()}, "sports!", in, &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `playing "world" instead`) {
		t.Fatalf("expected fallback notice, got:\n%s", out.String())
	}
}

func TestRunFetchFailure(t *testing.T) {
	var out bytes.Buffer
	wantErr := errors.New("service down")

	err := Run(context.Background(), &stubFetcher{err: wantErr}, "world", strings.NewReader(""), &out)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}
