package dailyquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetQuiz)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Delete("/", h.ClearQuiz)
	})

	return r
}
