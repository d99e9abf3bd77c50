package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dailynewsquiz/newsquiz-lambda/internal/auth"
	"github.com/dailynewsquiz/newsquiz-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Signup(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "name, email and a password of at least 8 characters are required", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to sign up user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	setAuthCookie(w, resp.Token)
	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to log in user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, resp.Token)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Code == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		log.WithError(err).Error("Failed to log in with Google")
		http.Error(w, "google login failed", http.StatusUnauthorized)
		return
	}

	setAuthCookie(w, resp.Token)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	tokenStr := auth.TokenFromRequest(r)
	if tokenStr == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(tokenStr)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := h.service.Refresh(r.Context(), claims)
	if err != nil {
		log.WithError(err).Error("Failed to refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, token)
	config.JSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := callerID(w, r)
	if !ok {
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateName(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := callerID(w, r)
	if !ok {
		return
	}

	var dto UpdateNameDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.UpdateName(r.Context(), id, dto.Name)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to update name")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := callerID(w, r)
	if !ok {
		return
	}

	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ChangePassword(r.Context(), id, dto); err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "current password is incorrect", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "new password must be at least 8 characters", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to change password")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		Expires:  time.Now().Add(72 * time.Hour),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
