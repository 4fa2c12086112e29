package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"petsitter/internal/database"
	"petsitter/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func sampleBooking(userID int64) *domain.Booking {
	return &domain.Booking{
		Reference:     "ref-abc",
		UserID:        userID,
		SitterID:      1,
		SitterName:    "Sarah Johnson",
		ServiceType:   domain.ServiceWalking,
		PetName:       "Rex",
		PetType:       "dog",
		Date:          "2026-12-01",
		Time:          "10:00",
		Duration:      3,
		TotalPrice:    75,
		PaymentMethod: domain.PaymentCash,
		Status:        domain.BookingUpcoming,
	}
}

func TestBookingRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	first := sampleBooking(101)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second := sampleBooking(101)
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if first.ID == 0 {
		t.Fatal("expected first booking to get an id")
	}
	if second.ID <= first.ID {
		t.Fatalf("expected ids to increase, got %d then %d", first.ID, second.ID)
	}
}

func TestBookingRepository_RoundTrip(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	b := sampleBooking(101)
	b.SpecialInstructions = "knock twice"
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.SitterName != "Sarah Johnson" || got.TotalPrice != 75 {
		t.Fatalf("unexpected booking: %+v", got)
	}
	if got.SpecialInstructions != "knock twice" {
		t.Fatalf("expected instructions to round-trip, got %q", got.SpecialInstructions)
	}
	if got.Status != domain.BookingUpcoming {
		t.Fatalf("expected upcoming status, got %s", got.Status)
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	b := sampleBooking(101)
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.UpdateStatus(ctx, b.ID, domain.BookingCompleted); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != domain.BookingCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}

	if err := repo.UpdateStatus(ctx, 9999, domain.BookingCancelled); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for missing booking, got %v", err)
	}
}

func TestBookingRepository_UpdateStatusOnlyMatchesUpcoming(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	b := sampleBooking(101)
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := repo.UpdateStatus(ctx, b.ID, domain.BookingCompleted); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	// A second transition sees no upcoming row, even when both writers
	// read the booking as upcoming before the first write landed.
	if err := repo.UpdateStatus(ctx, b.ID, domain.BookingCancelled); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for completed booking, got %v", err)
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.Status != domain.BookingCompleted {
		t.Fatalf("expected status to stay completed, got %s", got.Status)
	}
}

func TestBookingRepository_CountsAndSums(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, sampleBooking(101)); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}
	other := sampleBooking(202)
	other.TotalPrice = 40
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	count, err := repo.CountByUser(ctx, 101)
	if err != nil {
		t.Fatalf("CountByUser returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 bookings for user 101, got %d", count)
	}

	spent, err := repo.SumSpentByUser(ctx, 101)
	if err != nil {
		t.Fatalf("SumSpentByUser returned error: %v", err)
	}
	if spent != 225 {
		t.Fatalf("expected 225 spent, got %v", spent)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 bookings total, got %d", total)
	}

	revenue, err := repo.SumRevenue(ctx)
	if err != nil {
		t.Fatalf("SumRevenue returned error: %v", err)
	}
	if revenue != 265 {
		t.Fatalf("expected 265 revenue, got %v", revenue)
	}
}

func TestBookingRepository_SumSpentByUserEmpty(t *testing.T) {
	repo := NewBookingRepository(setupTestDB(t))

	spent, err := repo.SumSpentByUser(context.Background(), 101)
	if err != nil {
		t.Fatalf("SumSpentByUser returned error: %v", err)
	}
	if spent != 0 {
		t.Fatalf("expected 0 for a user with no bookings, got %v", spent)
	}
}
