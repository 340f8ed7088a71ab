package mwauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetease/internal/identity"
	"meetease/internal/lib/logger/handlers/slogdiscard"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub, role string) string {
	t.Helper()

	claims := identity.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return token
}

func echoIdentity(t *testing.T, got *identity.Identity) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.FromContext(r.Context())
		require.True(t, ok)
		*got = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	t.Parallel()

	var got identity.Identity
	mw := New(slogdiscard.NewDiscardLogger(), identity.NewProvider(testSecret))
	h := mw(echoIdentity(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", identity.RoleVisitor))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, identity.Identity{ID: "user-1", Role: identity.RoleVisitor}, got)
}

func TestAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	mw := New(slogdiscard.NewDiscardLogger(), identity.NewProvider(testSecret))
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing bearer token")
}

func TestAuth_BadToken(t *testing.T) {
	t.Parallel()

	mw := New(slogdiscard.NewDiscardLogger(), identity.NewProvider(testSecret))
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid token")
}

func TestRequireHost_AllowsHost(t *testing.T) {
	t.Parallel()

	h := RequireHost(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(identity.ToContext(req.Context(),
		identity.Identity{ID: "host-1", Role: identity.RoleHost}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireHost_RejectsVisitor(t *testing.T) {
	t.Parallel()

	h := RequireHost(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(identity.ToContext(req.Context(),
		identity.Identity{ID: "visitor-1", Role: identity.RoleVisitor}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "access denied")
}
