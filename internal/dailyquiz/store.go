package dailyquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

var ErrNotFound = errors.New("quiz not found")

const keyPrefix = "quiz-"

// Store persists one quiz document per category, keyed "quiz-<category>".
type Store interface {
	Get(ctx context.Context, category string) (*quizgen.QuizDocument, error)
	Set(ctx context.Context, category string, doc *quizgen.QuizDocument) error
	Delete(ctx context.Context, category string) error
	List(ctx context.Context) ([]string, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, category string) (*quizgen.QuizDocument, error) {
	val, err := s.client.Get(ctx, keyPrefix+category).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading quiz blob: %w", err)
	}

	var doc quizgen.QuizDocument
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, fmt.Errorf("decoding quiz blob: %w", err)
	}
	return &doc, nil
}

func (s *RedisStore) Set(ctx context.Context, category string, doc *quizgen.QuizDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding quiz blob: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+category, data, 0).Err(); err != nil {
		return fmt.Errorf("writing quiz blob: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, category string) error {
	if err := s.client.Del(ctx, keyPrefix+category).Err(); err != nil {
		return fmt.Errorf("deleting quiz blob: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var categories []string
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		categories = append(categories, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing quiz blobs: %w", err)
	}
	return categories, nil
}
