package container

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/attempt"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/dailyquiz"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	DailyQuizContainer *dailyquiz.DailyQuizContainer
	AttemptContainer   *attempt.AttemptContainer
	QuizGenContainer   *quizgen.QuizGenContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &attempt.Attempt{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})

	quizGenContainer := quizgen.NewQuizGenContainer()
	dailyQuizContainer := dailyquiz.NewDailyQuizContainer(redisClient, quizGenContainer.Assembler)
	userContainer := user.NewUserContainer(config.DB)
	attemptContainer := attempt.NewAttemptContainer(config.DB, dailyQuizContainer.Service)

	return &Container{
		UserContainer:      userContainer,
		DailyQuizContainer: dailyQuizContainer,
		AttemptContainer:   attemptContainer,
		QuizGenContainer:   quizGenContainer,
	}
}
