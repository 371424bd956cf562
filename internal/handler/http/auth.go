package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/4GeeksAcademy/jwt-jaime35/internal/app"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/logger"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/service"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/store"
	"github.com/4GeeksAcademy/jwt-jaime35/internal/utils"
	"github.com/4GeeksAcademy/jwt-jaime35/models"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HelloResponse{Message: app.MsgHello}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("signup body could not be decoded")
		utils.WriteJSON(w, models.APIError{Error: app.MsgMissingData}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailPasswordRequired):
			utils.WriteJSON(w, models.APIError{Error: app.MsgEmailPasswordRequired}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidEmailFormat):
			utils.WriteJSON(w, models.APIError{Error: app.MsgInvalidEmailFormat}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			utils.WriteJSON(w, models.APIError{Error: app.MsgPasswordTooShort}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Error().Str("email", creds.Email).Msg("email already exists")
			utils.WriteJSON(w, models.APIError{Error: app.MsgEmailAlreadyExists}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.SignupResponse{
		Msg:  app.MsgUserCreated,
		User: registeredUser.Profile(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("login body could not be decoded")
		utils.WriteJSON(w, models.APIError{Msg: app.MsgEmailPasswordRequired}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailPasswordRequired):
			utils.WriteJSON(w, models.APIError{Msg: app.MsgEmailPasswordRequired}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidEmailOrPassword):
			log.Error().Str("email", creds.Email).Msg("login rejected")
			utils.WriteJSON(w, models.APIError{Msg: app.MsgInvalidEmailOrPassword}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Session{
		Token:  token.SignedString,
		UserID: foundUser.ID,
		Email:  foundUser.Email,
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Int64("id", userID).Msg("token references a missing account")
			utils.WriteJSON(w, models.APIError{Msg: app.MsgUserNotFound}, http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during profile lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: foundUser.Profile()}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jti, ok := utils.GetJTIFromContext(ctx)
	if !ok {
		log.Error().Msg("no token id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.RevokeToken(ctx, jti); err != nil {
		log.Err(err).Str("jti", jti).Msg("token revocation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LogoutResponse{Msg: app.MsgLoggedOut}, http.StatusOK)
}
