package http

import (
	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/ratelimit"
	"github.com/dfcastellanos/clientes-api/internal/service"
)

type Handler struct {
	services *service.Services

	authLimiter ratelimit.Limiter
	apiLimiter  ratelimit.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, authLimiter, apiLimiter ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		authLimiter: authLimiter,
		apiLimiter:  apiLimiter,
		logger:      logger,
	}
}
