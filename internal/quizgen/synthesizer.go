package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
)

var letters = [4]string{"A", "B", "C", "D"}

// modelReply is the JSON object the prompt instructs the model to emit.
type modelReply struct {
	Question      string `json:"Question"`
	CorrectAnswer string `json:"CorrectAnswer"`
	WrongAnswer1  string `json:"WrongAnswer1"`
	WrongAnswer2  string `json:"WrongAnswer2"`
	WrongAnswer3  string `json:"WrongAnswer3"`
}

func (r modelReply) validate() error {
	for _, field := range []string{r.Question, r.CorrectAnswer, r.WrongAnswer1, r.WrongAnswer2, r.WrongAnswer3} {
		if strings.TrimSpace(field) == "" {
			return errors.New("model reply is missing required fields")
		}
	}
	return nil
}

// QuestionSynthesizer turns one article into one question, or fails.
type QuestionSynthesizer interface {
	Synthesize(ctx context.Context, article feed.Article) (*QuestionRecord, error)
}

type Synthesizer struct {
	provider Provider
}

func NewSynthesizer(provider Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

func (s *Synthesizer) Synthesize(ctx context.Context, article feed.Article) (*QuestionRecord, error) {
	raw, err := s.provider.Generate(ctx, BuildPrompt(article))
	if err != nil {
		return nil, fmt.Errorf("asking model about %q: %w", article.Title, err)
	}

	payload, ok := extractJSON(raw)
	if !ok {
		return nil, errors.New("no JSON object in model reply")
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return nil, fmt.Errorf("decoding model reply: %w", err)
	}
	if err := reply.validate(); err != nil {
		return nil, err
	}

	type answer struct {
		text    string
		correct bool
	}
	answers := []answer{
		{reply.CorrectAnswer, true},
		{reply.WrongAnswer1, false},
		{reply.WrongAnswer2, false},
		{reply.WrongAnswer3, false},
	}

	// Fisher-Yates over the four options.
	for i := len(answers) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		answers[i], answers[j] = answers[j], answers[i]
	}

	correctIndex := 0
	for i, a := range answers {
		if a.correct {
			correctIndex = i
			break
		}
	}

	return &QuestionRecord{
		Question: reply.Question,
		OptionA:  answers[0].text,
		OptionB:  answers[1].text,
		OptionC:  answers[2].text,
		OptionD:  answers[3].text,
		Answer:   letters[correctIndex],
		Source:   article.Link,
	}, nil
}

// extractJSON returns the first brace-delimited substring of s, spanning from
// the first "{" to the last "}".
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
