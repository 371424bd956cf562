package service

import (
	"github.com/4GeeksAcademy/jwt-jaime35/internal/adapter"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
)

type ClientServices struct {
	AuthClient AuthClient
}

func NewClientServices(sessions store.SessionStore, backendAdapter adapter.BackendAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthClient: NewAuthClient(sessions, backendAdapter, logger),
	}
}
