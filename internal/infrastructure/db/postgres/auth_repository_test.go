package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/task-tracker/internal/core/domain"
)

func TestAuthRepository_CreateAndFindByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuthRepository(db)

	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Grace",
		Email:        "grace@example.com",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}

	found, err := repo.FindByEmail(context.Background(), "grace@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != created.ID || found.Name != "Grace" {
		t.Errorf("unexpected user: %+v", found)
	}
	if found.PasswordHash != "$2a$10$hash" {
		t.Error("password hash did not round-trip")
	}
}

func TestAuthRepository_Create_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuthRepository(db)

	seedUser(t, db, "taken@example.com")

	_, err := repo.Create(context.Background(), &domain.User{
		Name:         "Latecomer",
		Email:        "taken@example.com",
		PasswordHash: "x",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthRepository_FindByEmail_Unknown(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuthRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthRepository_FindByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuthRepository(db)
	user := seedUser(t, db, "byid@example.com")

	found, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Email != "byid@example.com" {
		t.Errorf("unexpected email %q", found.Email)
	}

	_, err = repo.FindByID(context.Background(), 9999)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
