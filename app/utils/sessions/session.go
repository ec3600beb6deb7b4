package sessions

import (
	"net/http"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "cloth-cafe-session"

	adminSessionKey    = "admin"
	adminSinceKey      = "admin_since"
	defaultAdminMaxAge = 12 * time.Hour
)

type SessionStore interface {
	IsAdmin(r *http.Request) bool
	SetAdmin(w http.ResponseWriter, r *http.Request) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(secure bool, keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(defaultAdminMaxAge / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
	return &CookieSessionStore{store: store}
}

// getSession never fails: a cookie that cannot be decoded yields a fresh
// session.
func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		logger.FromContext(r.Context()).Warn("failed to decode session cookie", zap.Error(err))
	}
	return session
}

func (c *CookieSessionStore) IsAdmin(r *http.Request) bool {
	session := c.getSession(r)
	if session == nil {
		return false
	}
	admin, ok := session.Values[adminSessionKey].(bool)
	return ok && admin
}

func (c *CookieSessionStore) SetAdmin(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values[adminSessionKey] = true
	session.Values[adminSinceKey] = time.Now().Unix()
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
