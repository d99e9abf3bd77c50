package quizgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
)

var ErrGenerationFailed = errors.New("quiz generation failed")

const (
	// oversample is how many extra candidates beyond n are attempted, to
	// absorb synthesis failures.
	oversample = 5
	// synthesisAttempts bounds the retries per article. On exhaustion the
	// article is skipped, not substituted.
	synthesisAttempts = 2
)

// QuizAssembler builds one dated quiz document for a category.
type QuizAssembler interface {
	Assemble(ctx context.Context, n int, feedURL, category string) (*QuizDocument, error)
}

type Assembler struct {
	fetcher     feed.Fetcher
	synthesizer QuestionSynthesizer
	filter      bool
	now         func() time.Time
}

func NewAssembler(fetcher feed.Fetcher, synthesizer QuestionSynthesizer, filter bool) *Assembler {
	return &Assembler{
		fetcher:     fetcher,
		synthesizer: synthesizer,
		filter:      filter,
		now:         time.Now,
	}
}

// Assemble fetches the feed, synthesizes questions concurrently over the
// first n+5 articles with bounded per-article retry, and stamps the result
// with today's UTC date. Fewer than n questions is degraded output, not an
// error; only a feed failure is terminal.
func (a *Assembler) Assemble(ctx context.Context, n int, feedURL, category string) (*QuizDocument, error) {
	log := config.WithContext(ctx)
	log.Infof("Generating new %s quiz with up to %d questions", category, n)

	articles, err := a.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	log.Infof("Fetched %d articles from feed", len(articles))

	candidates := articles
	if len(candidates) > n+oversample {
		candidates = candidates[:n+oversample]
	}

	var wg sync.WaitGroup
	results := make(chan *QuestionRecord, len(candidates))

	for _, article := range candidates {
		wg.Add(1)
		go func(article feed.Article) {
			defer wg.Done()
			if record := a.trySynthesize(ctx, article); record != nil {
				results <- record
			}
		}(article)
	}

	wg.Wait()
	close(results)

	// Question order follows completion order of the synthesis calls.
	questions := make([]QuestionRecord, 0, n)
	for record := range results {
		if len(questions) == n {
			break
		}
		questions = append(questions, *record)
	}

	log.Infof("Generated %d of %d requested questions for %s", len(questions), n, category)

	return &QuizDocument{
		Date:      a.now().UTC().Format("2006-01-02"),
		Category:  category,
		Questions: questions,
	}, nil
}

func (a *Assembler) trySynthesize(ctx context.Context, article feed.Article) *QuestionRecord {
	log := config.WithContext(ctx)

	for attempt := 1; attempt <= synthesisAttempts; attempt++ {
		record, err := a.synthesizer.Synthesize(ctx, article)
		if err != nil {
			log.WithError(err).Debugf("Synthesis attempt %d failed for %q", attempt, article.Title)
			continue
		}
		if a.filter && IsSensitive(*record) {
			log.Debugf("Dropping sensitive question for %q", article.Title)
			return nil
		}
		return record
	}
	return nil
}
