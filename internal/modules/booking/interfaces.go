package booking

import (
	"context"

	"petsitter/internal/domain"
)

// BookingRepository defines the storage operations for bookings
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// SitterFinder resolves sitters from the catalog
type SitterFinder interface {
	Find(ctx context.Context, id int64) (*domain.Sitter, error)
}

// UserReader resolves the booking owner for the receipt snapshot
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ReceiptMailer delivers the e-receipt after a booking is persisted.
// Delivery is best-effort: a failure never rolls the booking back.
type ReceiptMailer interface {
	SendBookingReceipt(ctx context.Context, toEmail, toName string, b *domain.Booking) error
}
