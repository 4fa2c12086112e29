package admin

import (
	"context"
	"errors"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

// Service covers the user and sitter management side of the admin panel.
// Booking status changes and aggregate stats go through the booking and
// ledger services directly.
type Service struct {
	users    UserStore
	bookings BookingCounter
	sitters  SitterActivator
	roster   SitterLister
}

func NewService(users UserStore, bookings BookingCounter, sitters SitterActivator, roster SitterLister) *Service {
	return &Service{users: users, bookings: bookings, sitters: sitters, roster: roster}
}

// ListUsers returns every account with its current booking count.
func (s *Service) ListUsers(ctx context.Context) ([]UserRow, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		count, err := s.bookings.CountByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, UserRow{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Role:         string(u.Role),
			Status:       string(u.Status),
			BookingCount: count,
			DateCreated:  u.CreatedAt,
		})
	}
	return rows, nil
}

// SetUserStatus activates or deactivates an account. Admins cannot
// change their own account. The write touches only the status column,
// so concurrent admin actions on the same user cannot undo each other.
func (s *Service) SetUserStatus(ctx context.Context, actorID, targetID int64, status string) (*domain.User, error) {
	if actorID == targetID {
		return nil, ErrSelfChange
	}

	var newStatus domain.UserStatus
	switch status {
	case string(domain.UserActive):
		newStatus = domain.UserActive
	case string(domain.UserInactive):
		newStatus = domain.UserInactive
	default:
		return nil, ErrUnknownStatus
	}

	if err := s.users.UpdateStatus(ctx, targetID, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.users.GetByID(ctx, targetID)
}

// SetUserRole promotes or demotes an account. Admins cannot change
// their own role, so there is always at least one admin left.
func (s *Service) SetUserRole(ctx context.Context, actorID, targetID int64, role string) (*domain.User, error) {
	if actorID == targetID {
		return nil, ErrSelfChange
	}

	var newRole domain.UserRole
	switch role {
	case string(domain.RoleUser):
		newRole = domain.RoleUser
	case string(domain.RoleAdmin):
		newRole = domain.RoleAdmin
	default:
		return nil, ErrUnknownRole
	}

	if err := s.users.UpdateRole(ctx, targetID, newRole); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.users.GetByID(ctx, targetID)
}

// DeleteUser removes a regular account. Admin accounts are never
// deletable, which also protects the bootstrap admin.
func (s *Service) DeleteUser(ctx context.Context, targetID int64) error {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.Role == domain.RoleAdmin {
		return ErrAdminDelete
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListSitters returns the whole roster, so deactivated sitters stay
// visible to admins.
func (s *Service) ListSitters(ctx context.Context) ([]domain.Sitter, error) {
	return s.roster.List(ctx)
}

// SetSitterActive hides or restores a sitter in the public catalog.
// Existing bookings keep their snapshotted sitter details.
func (s *Service) SetSitterActive(ctx context.Context, sitterID int64, active bool) error {
	return s.sitters.SetActive(ctx, sitterID, active)
}
