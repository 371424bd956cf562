package handler

import (
	"errors"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/config"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/handler/http"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/service"
)

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP listen
// address is provided in the server configuration. This is treated as a fatal
// misconfiguration and causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
