package admin

import (
	"context"

	"petsitter/internal/domain"
)

// UserStore is the slice of the user repository the admin module needs.
// The mutations are targeted single-column writes and report
// gorm.ErrRecordNotFound when no row matched.
type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
	Delete(ctx context.Context, id int64) error
}

// BookingCounter reports per-user booking totals. Counts are computed
// on demand so a freshly created booking shows up immediately.
type BookingCounter interface {
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

// SitterActivator toggles sitter visibility in the catalog.
type SitterActivator interface {
	SetActive(ctx context.Context, id int64, active bool) error
}

// SitterLister reads the full roster, inactive sitters included.
type SitterLister interface {
	List(ctx context.Context) ([]domain.Sitter, error)
}
