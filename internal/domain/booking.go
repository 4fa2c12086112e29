package domain

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var ErrUnknownBookingStatus = errors.New("unknown booking status")

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingUpcoming, BookingCompleted, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrUnknownBookingStatus
}

// Terminal reports whether the status permits no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentGCash PaymentMethod = "gcash"
	PaymentMaya  PaymentMethod = "maya"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentGCash, PaymentMaya:
		return PaymentMethod(s), nil
	}
	return "", ErrUnknownPaymentMethod
}

// RequiresVerification reports whether the method needs a verified
// mobile wallet number at booking time.
func (m PaymentMethod) RequiresVerification() bool {
	return m == PaymentGCash || m == PaymentMaya
}

// Label returns the display name shown on receipts and history rows.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentGCash:
		return "GCash (Online)"
	case PaymentMaya:
		return "Maya (Online)"
	default:
		return "Cash (Upon Service)"
	}
}

// Booking is a scheduled engagement between a user and a sitter.
// SitterName and TotalPrice are snapshots taken at creation time, so a
// booking keeps its details even after the sitter is deactivated or the
// sitter's rates change. Only Status may change after creation.
type Booking struct {
	ID                  int64         `json:"id"`
	Reference           string        `json:"reference"`
	UserID              int64         `json:"userId" validate:"required"`
	SitterID            int64         `json:"sitterId" validate:"required"`
	SitterName          string        `json:"sitterName"`
	ServiceType         ServiceKind   `json:"serviceType" validate:"required"`
	PetName             string        `json:"petName"`
	PetType             string        `json:"petType"`
	Date                string        `json:"date" validate:"required"`
	Time                string        `json:"time"`
	Duration            int           `json:"duration" validate:"required,gte=1"`
	TotalPrice          float64       `json:"totalPrice"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
	Status              BookingStatus `json:"status"`
	CreatedAt           time.Time     `json:"dateCreated"`
}
