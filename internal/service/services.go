package service

import (
	"github.com/4GeeksAcademy/jwt-jaime35/internal/config"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages, cfg.Auth, logger),
	}
}
