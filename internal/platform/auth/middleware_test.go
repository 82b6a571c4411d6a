package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-secret")

func signToken(t *testing.T, key []byte, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedEcho() (*echo.Echo, *string) {
	e := echo.New()
	var seenUser string
	e.POST("/protected", func(c echo.Context) error {
		seenUser = UserFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}, Middleware(Config{SigningKey: testKey}))
	return e, &seenUser
}

func TestMiddleware_MissingHeader(t *testing.T) {
	e, _ := protectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	e, _ := protectedEcho()

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	e, _ := protectedEcho()

	token := signToken(t, []byte("wrong-secret"), &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user1"},
	})
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	e, _ := protectedEcho()

	token := signToken(t, testKey, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	e, seenUser := protectedEcho()

	token := signToken(t, testKey, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *seenUser != "user1" {
		t.Errorf("expected identity 'user1', got %q", *seenUser)
	}
}

func TestMiddleware_UsernameClaimPreferred(t *testing.T) {
	e, seenUser := protectedEcho()

	token := signToken(t, testKey, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "abc123"},
		Username:         "user1",
	})
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *seenUser != "user1" {
		t.Errorf("expected username claim, got %q", *seenUser)
	}
}

func TestUserFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if user := UserFromContext(req.Context()); user != "" {
		t.Errorf("expected empty identity, got %q", user)
	}
}
