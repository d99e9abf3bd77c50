package quizgen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.reply, p.err
}

const goodReply = `Here is your question:
` + "```json" + `
{
  "Question": "Which organization announced the new climate accord?",
  "CorrectAnswer": "The United Nations",
  "WrongAnswer1": "The World Bank",
  "WrongAnswer2": "The European Commission",
  "WrongAnswer3": "The G7"
}
` + "```"

var testArticle = feed.Article{
	Title:       "Climate accord announced",
	Link:        "https://www.bbc.co.uk/news/articles/42",
	Description: "A new climate accord was announced on Monday.",
}

func TestSynthesize(t *testing.T) {
	t.Run("ValidReply", func(t *testing.T) {
		synth := quizgen.NewSynthesizer(&stubProvider{reply: goodReply})

		record, err := synth.Synthesize(context.Background(), testArticle)
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}

		if record.Question != "Which organization announced the new climate accord?" {
			t.Errorf("wrong question: %s", record.Question)
		}
		if record.Source != testArticle.Link {
			t.Errorf("wrong source: %s", record.Source)
		}

		// Exactly one option must carry the correct answer, and the Answer
		// letter must point to it.
		matches := 0
		for _, option := range record.Options() {
			if option == "The United Nations" {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("want the correct answer among the options exactly once, got %d", matches)
		}
		if record.CorrectText() != "The United Nations" {
			t.Errorf("Answer %s does not point at the correct option", record.Answer)
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		synth := quizgen.NewSynthesizer(&stubProvider{err: errors.New("rate limited")})

		if _, err := synth.Synthesize(context.Background(), testArticle); err == nil {
			t.Fatal("want error when the provider fails")
		}
	})

	t.Run("NoJSONInReply", func(t *testing.T) {
		synth := quizgen.NewSynthesizer(&stubProvider{reply: "I cannot answer that."})

		if _, err := synth.Synthesize(context.Background(), testArticle); err == nil {
			t.Fatal("want error when the reply has no JSON object")
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		synth := quizgen.NewSynthesizer(&stubProvider{reply: `{"Question": "broken`})

		if _, err := synth.Synthesize(context.Background(), testArticle); err == nil {
			t.Fatal("want error when the JSON does not parse")
		}
	})

	t.Run("MissingKeys", func(t *testing.T) {
		synth := quizgen.NewSynthesizer(&stubProvider{reply: `{"Question": "Only a question?"}`})

		if _, err := synth.Synthesize(context.Background(), testArticle); err == nil {
			t.Fatal("want error when required keys are blank")
		}
	})
}

func TestShuffleFairness(t *testing.T) {
	synth := quizgen.NewSynthesizer(&stubProvider{reply: goodReply})

	const runs = 800
	counts := map[string]int{}
	for i := 0; i < runs; i++ {
		record, err := synth.Synthesize(context.Background(), testArticle)
		if err != nil {
			t.Fatalf("Synthesize failed: %v", err)
		}
		counts[record.Answer]++
	}

	// Uniform expectation is runs/4 per letter; allow a wide statistical
	// margin so the test stays stable.
	for _, letter := range []string{"A", "B", "C", "D"} {
		if counts[letter] < runs/8 || counts[letter] > runs/2 {
			t.Errorf("letter %s drawn %d times out of %d, outside the expected range", letter, counts[letter], runs)
		}
	}
}
