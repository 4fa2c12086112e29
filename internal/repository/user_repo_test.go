package repository

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"petsitter/internal/domain"
)

func seedUser(t *testing.T, repo *UserRepository, email string, role domain.UserRole) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
		Status:       domain.UserActive,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return u
}

func TestUserRepository_UpdateStatusTargetsOneColumn(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := seedUser(t, repo, "user@pet.com", domain.RoleUser)

	if err := repo.UpdateStatus(ctx, u.ID, domain.UserInactive); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != domain.UserInactive {
		t.Fatalf("expected inactive, got %s", got.Status)
	}
	if got.Role != domain.RoleUser || got.Email != "user@pet.com" {
		t.Fatalf("expected other columns untouched, got %+v", got)
	}

	if err := repo.UpdateStatus(ctx, 9999, domain.UserActive); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for missing user, got %v", err)
	}
}

func TestUserRepository_UpdateRole(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	u := seedUser(t, repo, "user@pet.com", domain.RoleUser)

	if err := repo.UpdateRole(ctx, u.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %s", got.Role)
	}
	if got.Status != domain.UserActive {
		t.Fatalf("expected status untouched, got %s", got.Status)
	}
}

func TestUserRepository_DeleteSkipsAdmins(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	regular := seedUser(t, repo, "user@pet.com", domain.RoleUser)
	admin := seedUser(t, repo, "admin@pet.com", domain.RoleAdmin)

	if err := repo.Delete(ctx, regular.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.GetByID(ctx, regular.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}

	// The role condition in the delete guards admin rows at the store
	// level, not just in the service check above it.
	if err := repo.Delete(ctx, admin.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for admin account, got %v", err)
	}
	if _, err := repo.GetByID(ctx, admin.ID); err != nil {
		t.Fatalf("expected admin to survive, got %v", err)
	}
}
