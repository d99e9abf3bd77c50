package attempt

import "gorm.io/gorm"

type AttemptContainer struct {
	Handler *Handler
	Service Service
}

func NewAttemptContainer(db *gorm.DB, quizzes QuizSource) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizzes)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
	}
}
