package user

import "gorm.io/gorm"

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, NewGoogleAuthenticator())
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
