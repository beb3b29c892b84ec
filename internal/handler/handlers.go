package handler

import (
	"github.com/dfcastellanos/clientes-api/internal/config"
	"github.com/dfcastellanos/clientes-api/internal/handler/http"
	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/ratelimit"
	"github.com/dfcastellanos/clientes-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		authLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindow)
		apiLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.APILimit, cfg.RateLimit.APIWindow)
		handlers.HTTP = http.NewHandler(services, authLimiter, apiLimiter, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
