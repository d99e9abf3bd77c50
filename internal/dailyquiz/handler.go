package dailyquiz

import (
	"net/http"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/feed"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	category := r.URL.Query().Get("category")

	doc, err := h.service.GetQuiz(r.Context(), category)
	if err != nil {
		log.WithError(err).Errorf("Failed to deliver %s quiz", category)
		config.JSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":                "failed to generate quiz",
			"available_categories": feed.Keys(),
		})
		return
	}

	config.JSON(w, http.StatusOK, doc)
}

func (h *Handler) ClearQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	category := r.URL.Query().Get("category")

	result, err := h.service.Clear(r.Context(), category)
	if err != nil {
		log.WithError(err).Error("Failed to clear quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "quiz clearing operation completed",
		"summary": result.Summary,
		"details": result.Details,
	})
}
