package handlers

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/Rakhulsr/cloth-cafe/app/utils/sessions"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth         services.Authenticator
	sessionStore sessions.SessionStore
	metrics      *metrics.Metrics
	render       *render.Render
}

func NewAuthHandler(auth services.Authenticator, sessionStore sessions.SessionStore, m *metrics.Metrics, r *render.Render) *AuthHandler {
	return &AuthHandler{auth: auth, sessionStore: sessionStore, metrics: m, render: r}
}

type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	err := h.auth.Authenticate(r.Context(), req.Passphrase)
	h.metrics.RecordAdminLogin(err)
	if err != nil {
		logger.FromContext(r.Context()).Warn("admin login failed", zap.Error(err))
		helpers.RespondError(h.render, w, r, err)
		return
	}

	if err := h.sessionStore.SetAdmin(w, r); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("admin logged in")
	h.render.JSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"authenticated": false})
}
