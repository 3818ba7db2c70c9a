package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, claims)
	var key any = []byte(secret)
	signed, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "42",
		"email": "alice@example.com",
		"jti":   "jti-1",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

type stubRevoker struct {
	revoked map[string]bool
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

func runAuth(t *testing.T, authHeader string, revoker TokenRevoker) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(testSecret, revoker)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, rec, handler(c)
}

func TestAuth_ValidTokenInjectsIdentity(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims())

	c, rec, err := runAuth(t, "Bearer "+token, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if userID, _ := c.Get("user_id").(int64); userID != 42 {
		t.Errorf("expected user_id 42, got %v", c.Get("user_id"))
	}
	if jti, _ := c.Get("jti").(string); jti != "jti-1" {
		t.Errorf("expected jti-1, got %v", c.Get("jti"))
	}
	if exp, ok := c.Get("exp").(time.Time); !ok || exp.Before(time.Now()) {
		t.Errorf("expected a future exp, got %v", c.Get("exp"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := runAuth(t, "", nil)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, _, err := runAuth(t, "Token abc", nil)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.SigningMethodHS256, validClaims())
	_, _, err := runAuth(t, "Bearer "+token, nil)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token := signToken(t, testSecret, jwt.SigningMethodHS256, claims)

	_, _, err := runAuth(t, "Bearer "+token, nil)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_MissingSubjectClaim(t *testing.T) {
	claims := validClaims()
	delete(claims, "sub")
	token := signToken(t, testSecret, jwt.SigningMethodHS256, claims)

	_, _, err := runAuth(t, "Bearer "+token, nil)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_RevokedToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims())
	revoker := &stubRevoker{revoked: map[string]bool{"jti-1": true}}

	_, _, err := runAuth(t, "Bearer "+token, revoker)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_NotRevokedTokenPasses(t *testing.T) {
	token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims())
	revoker := &stubRevoker{revoked: map[string]bool{}}

	_, rec, err := runAuth(t, "Bearer "+token, revoker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}
