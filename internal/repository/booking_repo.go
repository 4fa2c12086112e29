package repository

import (
	"context"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                  int64     `gorm:"column:id;primaryKey"`
	Reference           string    `gorm:"column:reference"`
	UserID              int64     `gorm:"column:user_id;index"`
	SitterID            int64     `gorm:"column:sitter_id;index"`
	SitterName          string    `gorm:"column:sitter_name"`
	ServiceType         string    `gorm:"column:service_type"`
	PetName             string    `gorm:"column:pet_name"`
	PetType             string    `gorm:"column:pet_type"`
	Date                string    `gorm:"column:date"`
	Time                string    `gorm:"column:time"`
	Duration            int       `gorm:"column:duration"`
	TotalPrice          float64   `gorm:"column:total_price"`
	PaymentMethod       string    `gorm:"column:payment_method"`
	SpecialInstructions *string   `gorm:"column:special_instructions;type:text"`
	Status              string    `gorm:"column:status"`
	CreatedAt           time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var instructions string
	if m.SpecialInstructions != nil {
		instructions = *m.SpecialInstructions
	}

	return &domain.Booking{
		ID:                  m.ID,
		Reference:           m.Reference,
		UserID:              m.UserID,
		SitterID:            m.SitterID,
		SitterName:          m.SitterName,
		ServiceType:         domain.ServiceKind(m.ServiceType),
		PetName:             m.PetName,
		PetType:             m.PetType,
		Date:                m.Date,
		Time:                m.Time,
		Duration:            m.Duration,
		TotalPrice:          m.TotalPrice,
		PaymentMethod:       domain.PaymentMethod(m.PaymentMethod),
		SpecialInstructions: instructions,
		Status:              domain.BookingStatus(m.Status),
		CreatedAt:           m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var instructions *string
	if b.SpecialInstructions != "" {
		v := b.SpecialInstructions
		instructions = &v
	}

	return bookingModel{
		ID:                  b.ID,
		Reference:           b.Reference,
		UserID:              b.UserID,
		SitterID:            b.SitterID,
		SitterName:          b.SitterName,
		ServiceType:         string(b.ServiceType),
		PetName:             b.PetName,
		PetType:             b.PetType,
		Date:                b.Date,
		Time:                b.Time,
		Duration:            b.Duration,
		TotalPrice:          b.TotalPrice,
		PaymentMethod:       string(b.PaymentMethod),
		SpecialInstructions: instructions,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListByUser returns the user's bookings in creation order.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, nil
}

// List returns every booking in creation order.
func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	bookings := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, *toDomainBooking(m))
	}
	return bookings, nil
}

// UpdateStatus finalizes an upcoming booking. The status condition makes
// the transition atomic: once a booking is terminal the update matches no
// row, so two concurrent transitions cannot both succeed.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(domain.BookingUpcoming)).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	return count, tx.Error
}

func (r *BookingRepository) SumSpentByUser(ctx context.Context, userID int64) (float64, error) {
	var total float64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total)
	return total, tx.Error
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&count)
	return count, tx.Error
}

func (r *BookingRepository) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total)
	return total, tx.Error
}
