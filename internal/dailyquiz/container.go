package dailyquiz

import (
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

const defaultQuestionCount = 10

type DailyQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewDailyQuizContainer(client *redis.Client, assembler quizgen.QuizAssembler) *DailyQuizContainer {
	questionCount := defaultQuestionCount
	if raw := os.Getenv("QUIZ_QUESTION_COUNT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			questionCount = n
		}
	}

	store := NewRedisStore(client)
	service := NewService(store, assembler, questionCount)
	handler := NewHandler(service)

	return &DailyQuizContainer{
		Handler: handler,
		Service: service,
	}
}
