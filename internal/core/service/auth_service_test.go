package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/task-tracker/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now().UTC()
	clone := *user
	r.byEmail[user.Email] = &clone
	return &clone, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, discardLogger)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == 0 {
		t.Error("expected an id to be assigned")
	}
	if user.PasswordHash == "hunter22" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestAuthService_Register_RejectsEmptyFields(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), newStubRevoker(), "secret", time.Hour, discardLogger)

	for _, args := range [][3]string{
		{"", "a@example.com", "pw"},
		{"Alice", "", "pw"},
		{"Alice", "a@example.com", ""},
	} {
		_, err := svc.Register(context.Background(), args[0], args[1], args[2])
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Register(%q, %q, %q): expected ErrInvalidCredentials, got %v", args[0], args[1], args[2], err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, discardLogger)

	if _, err := svc.Register(context.Background(), "Alice", "a@example.com", "pw123456"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), "Alice Again", "a@example.com", "pw123456")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_ReturnsSignedToken(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, discardLogger)

	registered, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %d, got %d", registered.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != "1" {
		t.Errorf("expected sub claim %q, got %v", "1", claims["sub"])
	}
	if claims["email"] != "alice@example.com" {
		t.Errorf("unexpected email claim: %v", claims["email"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("expected a non-empty jti claim")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatal("expected an exp claim")
	}
	if time.Until(exp.Time) > time.Hour+time.Minute {
		t.Errorf("exp further out than the configured TTL: %v", exp.Time)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, discardLogger)
	_, _ = svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), newStubRevoker(), "secret", time.Hour, discardLogger)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), newStubRevoker(), "secret", time.Hour, discardLogger)

	_, _, err := svc.Login(context.Background(), "", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout tests
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubAuthRepo(), revoker, "secret", time.Hour, discardLogger)

	exp := time.Now().Add(30 * time.Minute)
	if err := svc.Logout(context.Background(), "jti-1", exp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ttl, ok := revoker.revoked["jti-1"]
	if !ok {
		t.Fatal("token was not revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Errorf("unexpected ttl %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubAuthRepo(), revoker, "secret", time.Hour, discardLogger)

	if err := svc.Logout(context.Background(), "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Error("an already-expired token must not be stored")
	}
}

func TestAuthService_Logout_StoreError(t *testing.T) {
	revoker := newStubRevoker()
	revoker.err = errors.New("redis down")
	svc := NewAuthService(newStubAuthRepo(), revoker, "secret", time.Hour, discardLogger)

	if err := svc.Logout(context.Background(), "jti-3", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("expected error when store fails, got nil")
	}
}
