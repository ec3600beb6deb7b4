package middlewares

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/Rakhulsr/cloth-cafe/app/utils/sessions"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

func AdminAuthMiddleware(sessionStore sessions.SessionStore, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionStore.IsAdmin(r) {
				logger.FromContext(r.Context()).Info("AdminAuthMiddleware: rejected request without admin session",
					zap.String("path", r.URL.Path),
				)
				rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "admin login required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
