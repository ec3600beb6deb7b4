package middlewares

import (
	"net/http"
	"strings"

	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"go.uber.org/zap"
)

const MethodOverrideHeader = "X-HTTP-Method-Override"

// RecoverMiddleware turns a handler panic into a 500 so one bad request does
// not take the process down.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("panic while serving request",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// MethodOverrideMiddleware lets clients limited to GET/POST reach PUT, PATCH
// and DELETE routes. It must wrap the router, since mux matches methods
// before route middleware runs.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch override := strings.ToUpper(r.Header.Get(MethodOverrideHeader)); override {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
