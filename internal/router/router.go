package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/attempt"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/dailyquiz"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/middlewares"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	DailyQuizHandler *dailyquiz.Handler
	AttemptHandler   *attempt.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/quiz", func(r chi.Router) {
		r.Mount("/", dailyquiz.Routes(cfg.DailyQuizHandler))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.UserHandler.Signup)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
	})
	return r
}
