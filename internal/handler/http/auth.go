package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/service"
	"github.com/dfcastellanos/clientes-api/internal/store"
	"github.com/dfcastellanos/clientes-api/internal/utils"
	"github.com/dfcastellanos/clientes-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername) || errors.Is(err, service.ErrInvalidPassword):
			log.Err(err).Msg("invalid credentials provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			http.Error(w, "username already registered", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UserResponse{Username: registeredUser.Username}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Str("username", req.Username).Msg("wrong credentials")
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, service.ErrWrongCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context after auth middleware")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.UserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to load current user")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UserResponse{Username: user.Username}, http.StatusOK)
}
