package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/quizgen"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoQuiz):
			http.Error(w, "no quiz available for this category today", http.StatusConflict)
		case errors.Is(err, quizgen.ErrGenerationFailed):
			http.Error(w, "quiz is unavailable right now", http.StatusBadGateway)
		default:
			log.WithError(err).Error("Failed to record attempt")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	responses, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}
