package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/limbo/serenity/pkg/httputil"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
}

// tokenIdentity is what the request token tells about its owner.
// Used when the workspace has no stored user.
func tokenIdentity(r *http.Request, uid string) *entity.User {
	claims := getClaimsFromContext(r)
	if claims == nil || claims.IsGuest {
		return service.GuestUser(uid)
	}
	return &entity.User{
		ID:   uid,
		Name: claims.Username,
	}
}

// userWorkspace resolves workspace of authorized user. Writes 401 and returns false otherwise.
func (s *Server) userWorkspace(w http.ResponseWriter, r *http.Request, op string) (*service.Workspace, string, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return nil, "", false
	}
	return s.workspaces.Get(r.Context(), uid), uid, true
}

// issue stores user as workspace identity and answers with a fresh token.
func (s *Server) issue(w http.ResponseWriter, r *http.Request, user *entity.User, status int, op string) {
	logger := GetLoggerFromCtx(r.Context())
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error(op+" error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	ws := s.workspaces.Get(r.Context(), user.ID)
	ws.Do(func() error {
		ws.SetUser(r.Context(), user)
		return nil
	})
	httputil.WriteJSONResponse(w, status, AuthResponse{
		User:  user,
		Token: token,
	})
	logger.Info("token issued", slog.String("op", op), slog.String("uid", user.ID))
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignUpRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("sign up error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.SignUp(ctx, &service.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("sign up error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid sign up data", err)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("sign up error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such email already exists", nil)
		default:
			logger.Error("sign up error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sign up", nil)
		}
		return
	}
	s.issue(w, r, user, http.StatusCreated, "sign up")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	err := decodeBody(r, &req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, &service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("login error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid login data", err)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	s.issue(w, r, user, http.StatusOK, "login")
}

func (s *Server) GuestLogin(w http.ResponseWriter, r *http.Request) {
	s.issue(w, r, s.userService.Guest(), http.StatusCreated, "guest login")
}

// Logout forgets stored identity and hands out a new guest identity.
// The workspace stays registered, so requests still carrying the old token share its lock.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := s.userWorkspace(w, r, "logout")
	if !ok {
		return
	}
	ws.Do(func() error {
		ws.RemoveUser(r.Context())
		return nil
	})
	s.issue(w, r, s.userService.Guest(), http.StatusOK, "logout")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	ws, uid, ok := s.userWorkspace(w, r, "me")
	if !ok {
		return
	}
	var user *entity.User
	ws.Do(func() error {
		user = ws.CurrentUser(r.Context(), tokenIdentity(r, uid))
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// DeleteAccount removes account of registered user along with all workspace data.
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, uid, ok := s.userWorkspace(w, r, "account deletion")
	if !ok {
		return
	}
	if service.IsGuestID(uid) {
		logger.Error("account deletion error: guest has no account")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "guest has no account, use data clearing instead", nil)
		return
	}
	var req DeleteAccountRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := ws.Do(func() error {
		if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
			return err
		}
		return ws.ClearAllData(ctx, true)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("account deletion error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*3)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage unavailable", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.appVersion,
	})
}

func (s *Server) GetCrisisResources(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, service.CrisisResources())
}
