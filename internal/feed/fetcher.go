package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

var ErrFeedUnavailable = errors.New("feed unavailable")

// Article is one feed item. Articles are ephemeral: they exist only between
// fetching a feed and synthesizing questions.
type Article struct {
	Title       string
	Link        string
	Description string
}

type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]Article, error)
}

type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser()}
}

// Fetch retrieves and parses an RSS feed in a single attempt. An empty feed
// yields an empty slice, not an error.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]Article, error) {
	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrFeedUnavailable, feedURL, err)
	}

	articles := make([]Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link == "" {
			continue
		}
		articles = append(articles, Article{
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Description: strings.TrimSpace(item.Description),
		})
	}
	return articles, nil
}
