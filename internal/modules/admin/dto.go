package admin

import "time"

// UserRow is a user record augmented with a live booking count.
type UserRow struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	BookingCount int64     `json:"bookingCount"`
	DateCreated  time.Time `json:"dateCreated"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

type UpdateSitterActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
