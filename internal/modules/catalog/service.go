package catalog

import (
	"context"
	"errors"
	"strings"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	sitters SitterRepository
}

func NewService(sitters SitterRepository) *Service {
	return &Service{sitters: sitters}
}

// Find returns a sitter by id regardless of active flag, so bookings
// that reference a deactivated sitter still resolve.
func (s *Service) Find(ctx context.Context, id int64) (*domain.Sitter, error) {
	sitter, err := s.sitters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sitter, nil
}

// Rate returns the per-hour price for one of the sitter's offered
// services. Inactive or missing sitters are not bookable.
func (s *Service) Rate(ctx context.Context, sitterID int64, kind domain.ServiceKind) (float64, error) {
	sitter, err := s.Find(ctx, sitterID)
	if err != nil {
		return 0, err
	}
	if !sitter.Active {
		return 0, ErrNotFound
	}
	if !sitter.Offers(kind) {
		return 0, ErrInvalidService
	}

	rate, ok := sitter.Rates[kind]
	if !ok {
		return 0, ErrInvalidService
	}
	return rate, nil
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	if err := s.sitters.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Search filters the active sitters by name/location substring, offered
// service and price bracket. All given predicates must match.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]domain.Sitter, error) {
	sitters, err := s.sitters.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var serviceFilter domain.ServiceKind
	if q.Service != "" {
		serviceFilter, err = domain.ParseServiceKind(q.Service)
		if err != nil {
			return nil, ErrInvalidService
		}
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Sitter, 0, len(sitters))
	for _, sitter := range sitters {
		if term != "" &&
			!strings.Contains(strings.ToLower(sitter.Name), term) &&
			!strings.Contains(strings.ToLower(sitter.Location), term) {
			continue
		}
		if serviceFilter != "" && !sitter.Offers(serviceFilter) {
			continue
		}
		if !matchesPriceBracket(&sitter, q.Price) {
			continue
		}
		out = append(out, sitter)
	}
	return out, nil
}

func matchesPriceBracket(s *domain.Sitter, bracket string) bool {
	min := s.MinRate()
	max := s.MaxRate()

	switch bracket {
	case "0-20":
		return max <= 20
	case "20-40":
		return min >= 20 && max <= 40
	case "40-60":
		return min >= 40 && max <= 60
	default:
		return true
	}
}
