package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/karankatare99/uber/internal/api/middleware"
	"github.com/karankatare99/uber/internal/auth"
	"github.com/karankatare99/uber/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedHandler(t *testing.T, codec *auth.TokenCodec) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dashboard"))
	})
	return middleware.SessionGate(codec, false)(next)
}

func TestSessionGate_NoCookie(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("gate-secret", time.Hour)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	gatedHandler(t, codec).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSessionGate_InvalidToken(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("gate-secret", time.Hour)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})

	gatedHandler(t, codec).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// The invalid cookie is cleared on the way out
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSessionGate_ValidToken(t *testing.T) {
	t.Parallel()

	codec := auth.NewTokenCodec("gate-secret", time.Hour)
	token, err := codec.Issue(&domain.User{
		ID:        uuid.New(),
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		UserType:  domain.UserTypeRider,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})

	gatedHandler(t, codec).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies(), "gate must not touch a valid cookie")
}

func TestSessionGate_ExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenCodec("gate-secret", time.Nanosecond)
	token, err := issuer.Issue(&domain.User{ID: uuid.New(), UserType: domain.UserTypeRider})
	require.NoError(t, err)

	codec := auth.NewTokenCodec("gate-secret", time.Hour)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})

	gatedHandler(t, codec).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
