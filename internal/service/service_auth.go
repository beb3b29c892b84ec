// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/dfcastellanos/clientes-api/internal/config"
	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/store"
	"github.com/dfcastellanos/clientes-api/internal/utils"
	"github.com/dfcastellanos/clientes-api/models"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
)

// dummyPasswordHash is a valid bcrypt hash compared against when the
// username is unknown, so that login takes roughly the same time whether or
// not the account exists.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type authService struct {
	users  store.UserRepository
	auth   config.Auth
	logger *logger.Logger
}

// NewAuthService returns an [AuthService] backed by the given user repository.
func NewAuthService(users store.UserRepository, auth config.Auth, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		auth:   auth,
		logger: log.GetChildLogger(),
	}
}

func (s *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return models.User{}, ErrInvalidUsername
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return models.User{}, ErrInvalidPassword
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// burn a comparison anyway, see dummyPasswordHash
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Info().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.auth.TokenIssuer, user.UserID, s.auth.TokenDuration, s.auth.TokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to sign token")
		return models.Token{}, ErrTokenCreationFailed
	}
	return token, nil
}

func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.auth.TokenSignKey, s.auth.TokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

func (s *authService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	return s.users.FindUserByID(ctx, userID)
}
