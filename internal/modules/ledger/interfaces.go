package ledger

import (
	"context"

	"petsitter/internal/domain"
)

// BookingReader is the read-only slice of the booking store the ledger
// aggregates over. The ledger never owns or mutates records.
type BookingReader interface {
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	SumSpentByUser(ctx context.Context, userID int64) (float64, error)
	Count(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
}

// UserCounter counts users by role
type UserCounter interface {
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

// SitterCounter counts active sitters
type SitterCounter interface {
	CountActive(ctx context.Context) (int64, error)
}
