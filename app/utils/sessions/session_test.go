package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCookieSessionStore_AdminFlag(t *testing.T) {
	store := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, store.IsAdmin(req))

	rr := httptest.NewRecorder()
	require.NoError(t, store.SetAdmin(rr, req))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	authed := httptest.NewRequest(http.MethodGet, "/", nil)
	authed.AddCookie(cookies[0])
	assert.True(t, store.IsAdmin(authed))

	rr = httptest.NewRecorder()
	require.NoError(t, store.ClearSession(rr, authed))
	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestCookieSessionStore_ForeignCookie(t *testing.T) {
	issuer := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64))
	other := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64))

	rr := httptest.NewRecorder()
	require.NoError(t, issuer.SetAdmin(rr, httptest.NewRequest(http.MethodGet, "/", nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	assert.False(t, other.IsAdmin(req))
}

func TestCookieSessionStore_BadCookieIsLogged(t *testing.T) {
	store := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64))
	core, logs := observer.New(zap.WarnLevel)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	req = req.WithContext(logger.WithContext(req.Context(), zap.New(core)))

	assert.False(t, store.IsAdmin(req))
	require.Equal(t, 1, logs.FilterMessage("failed to decode session cookie").Len())
}
