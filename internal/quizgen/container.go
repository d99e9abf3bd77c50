package quizgen

import (
	"context"
	"log"
	"os"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
)

type QuizGenContainer struct {
	Assembler *Assembler
}

func NewQuizGenContainer() *QuizGenContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to create Gemini provider: %v", err)
	}

	synthesizer := NewSynthesizer(provider)
	filter := os.Getenv("CONTENT_FILTER") == "true"
	assembler := NewAssembler(feed.NewRSSFetcher(), synthesizer, filter)

	return &QuizGenContainer{
		Assembler: assembler,
	}
}
