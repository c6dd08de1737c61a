package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-secret", time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager()
	session := domain.Session{Username: "ivan", Role: domain.RoleUser}

	token, err := tm.Issue(session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, session, parsed)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestTokenManager().Issue(domain.Session{Username: "ivan", Role: domain.RoleUser})
	require.NoError(t, err)

	other := NewTokenManager("other-secret", time.Hour)
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	expired := NewTokenManager("test-secret", -time.Minute)
	token, err := expired.Issue(domain.Session{Username: "ivan", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = newTestTokenManager().Parse(token)
	require.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager()

	var gotSession domain.Session
	handler := Auth(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		gotSession = session
		w.WriteHeader(http.StatusOK)
	}))

	token, err := tm.Issue(domain.Session{Username: "ivan", Role: domain.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.Session{Username: "ivan", Role: domain.RoleUser}, gotSession)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager()
	handler := Auth(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "Token abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/slots", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(tm)(RequireAdmin(next))

	adminToken, err := tm.Issue(domain.Session{Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)
	userToken, err := tm.Issue(domain.Session{Username: "ivan", Role: domain.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
