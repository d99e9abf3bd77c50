package quizclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultCacheTTL = time.Hour
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// Client fetches daily quizzes and keeps a time-boxed local copy per
// category, so repeated requests within the hour skip the network and an
// unreachable server falls back to stale local data.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cacheDir   string
	ttl        time.Duration
	now        func() time.Time
}

type cachedQuiz struct {
	FetchedAt time.Time             `json:"fetched_at"`
	Quiz      *quizgen.QuizDocument `json:"quiz"`
}

func New(baseURL, cacheDir string) (*Client, error) {
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolving cache dir: %w", err)
		}
		cacheDir = filepath.Join(base, "newsquiz")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		cacheDir:   cacheDir,
		ttl:        defaultCacheTTL,
		now:        time.Now,
	}, nil
}

func (c *Client) GetQuiz(ctx context.Context, category string) (*quizgen.QuizDocument, error) {
	if cached, ok := c.loadCache(category); ok && c.now().Sub(cached.FetchedAt) < c.ttl {
		return cached.Quiz, nil
	}

	doc, err := c.fetch(ctx, category)
	if err != nil {
		// Past its validity window the local copy still beats nothing when
		// the service cannot be reached.
		if errors.Is(err, ErrServiceUnavailable) {
			if cached, ok := c.loadCache(category); ok {
				return cached.Quiz, nil
			}
		}
		return nil, err
	}

	c.saveCache(category, doc)
	return doc, nil
}

// Clear removes the local copy for a category.
func (c *Client) Clear(category string) error {
	err := os.Remove(c.cacheFile(category))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, category string) (*quizgen.QuizDocument, error) {
	endpoint := c.baseURL + "/quiz?category=" + url.QueryEscape(category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	var doc quizgen.QuizDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding quiz: %w", err)
	}
	return &doc, nil
}

func (c *Client) cacheFile(category string) string {
	return filepath.Join(c.cacheDir, "quiz-"+category+".json")
}

func (c *Client) loadCache(category string) (*cachedQuiz, bool) {
	data, err := os.ReadFile(c.cacheFile(category))
	if err != nil {
		return nil, false
	}

	var cached cachedQuiz
	if err := json.Unmarshal(data, &cached); err != nil || cached.Quiz == nil {
		// A corrupt cache file is dropped rather than surfaced.
		_ = os.Remove(c.cacheFile(category))
		return nil, false
	}
	return &cached, true
}

func (c *Client) saveCache(category string, doc *quizgen.QuizDocument) {
	data, err := json.Marshal(cachedQuiz{FetchedAt: c.now(), Quiz: doc})
	if err != nil {
		return
	}
	_ = os.WriteFile(c.cacheFile(category), data, 0o644)
}
