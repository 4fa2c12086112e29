package booking

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"petsitter/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var nonDigits = regexp.MustCompile(`\D`)

type Service struct {
	bookings BookingRepository
	sitters  SitterFinder
	users    UserReader
	mailer   ReceiptMailer
}

func NewService(
	bookings BookingRepository,
	sitters SitterFinder,
	users UserReader,
	mailer ReceiptMailer,
) *Service {
	return &Service{
		bookings: bookings,
		sitters:  sitters,
		users:    users,
		mailer:   mailer,
	}
}

// Quote computes rate × duration for a sitter's service. It is pure:
// the same arithmetic runs again in Create, and the persisted total is
// always this server-side result, never a client-supplied value.
func (s *Service) Quote(ctx context.Context, sitterID int64, kind domain.ServiceKind, duration int) (float64, error) {
	if duration < 1 {
		return 0, ErrInvalidDuration
	}

	rate, err := s.sitterRate(ctx, sitterID, kind)
	if err != nil {
		return 0, err
	}
	return rate * float64(duration), nil
}

func (s *Service) sitterRate(ctx context.Context, sitterID int64, kind domain.ServiceKind) (float64, error) {
	sitter, err := s.sitters.Find(ctx, sitterID)
	if err != nil {
		return 0, ErrSitterUnavailable
	}
	if !sitter.Active {
		return 0, ErrSitterUnavailable
	}
	if !sitter.Offers(kind) {
		return 0, ErrServiceNotOffered
	}
	rate, ok := sitter.Rates[kind]
	if !ok {
		return 0, ErrServiceNotOffered
	}
	return rate, nil
}

// CreateBooking validates every precondition before touching storage,
// so any failure leaves the booking store unchanged.
func (s *Service) CreateBooking(ctx context.Context, actor Actor, req CreateBookingRequest) (*domain.Booking, error) {
	if actor.UserID == 0 || actor.Role != string(domain.RoleUser) {
		return nil, ErrNotAuthenticated
	}

	kind, err := domain.ParseServiceKind(req.ServiceType)
	if err != nil {
		return nil, ErrValidation
	}

	if req.Duration < 1 {
		return nil, ErrInvalidDuration
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrValidation
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrPastDate
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, ErrValidation
	}
	if method.RequiresVerification() && !validMobileNumber(req.PaymentNumber) {
		return nil, ErrInvalidPaymentVerification
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	sitter, err := s.sitters.Find(ctx, req.SitterID)
	if err != nil {
		return nil, ErrSitterUnavailable
	}
	if !sitter.Active {
		return nil, ErrSitterUnavailable
	}
	if !sitter.Offers(kind) {
		return nil, ErrServiceNotOffered
	}
	rate, ok := sitter.Rates[kind]
	if !ok {
		return nil, ErrServiceNotOffered
	}

	b := &domain.Booking{
		Reference:           uuid.NewString(),
		UserID:              user.ID,
		SitterID:            sitter.ID,
		SitterName:          sitter.Name,
		ServiceType:         kind,
		PetName:             req.PetName,
		PetType:             req.PetType,
		Date:                req.Date,
		Time:                req.Time,
		Duration:            req.Duration,
		TotalPrice:          rate * float64(req.Duration),
		PaymentMethod:       method,
		SpecialInstructions: req.SpecialInstructions,
		Status:              domain.BookingUpcoming,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	// E-receipt is fire-and-forget: the booking is already durable and
	// the caller gets a success regardless of mail delivery.
	if s.mailer != nil {
		receipt := *b
		go func() {
			if err := s.mailer.SendBookingReceipt(context.Background(), user.Email, user.Name, &receipt); err != nil {
				log.Printf("receipt_email_failed booking_id=%d to=%s error=%q", receipt.ID, user.Email, err)
			}
		}()
	}

	return b, nil
}

// UpdateStatus moves an upcoming booking to one of the two terminal
// states. Terminal states are final: re-setting the same status or
// hopping between completed and cancelled is rejected.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus string, actor Actor) (*domain.Booking, error) {
	if actor.Role != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	status, err := domain.ParseBookingStatus(newStatus)
	if err != nil || !status.Terminal() {
		return nil, ErrInvalidTransition
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		// The update only matches upcoming rows. A no-match here means a
		// concurrent transition finalized the booking between our read and
		// write, since GetByID just proved the row exists.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	b.Status = status
	return b, nil
}

// GetByID returns a booking to its owner or to an admin.
func (s *Service) GetByID(ctx context.Context, bookingID int64, actor Actor) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.UserID != actor.UserID && actor.Role != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return b, nil
}

// validMobileNumber checks the wallet verification pattern: after
// stripping non-digits, exactly 11 digits starting with 09.
func validMobileNumber(raw string) bool {
	digits := nonDigits.ReplaceAllString(raw, "")
	return len(digits) == 11 && digits[0] == '0' && digits[1] == '9'
}
