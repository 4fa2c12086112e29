package ledger

import (
	"context"
	"sort"
	"strings"

	"petsitter/internal/domain"
)

// Service computes read-side views over the booking store. Nothing here
// is cached: every call recomputes from storage so the numbers can
// never drift from the records they summarize.
type Service struct {
	bookings BookingReader
	users    UserCounter
	sitters  SitterCounter
}

func NewService(bookings BookingReader, users UserCounter, sitters SitterCounter) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		sitters:  sitters,
	}
}

// StatsFor returns the live booking count and spend for one user,
// across all statuses.
func (s *Service) StatsFor(ctx context.Context, userID int64) (*UserStats, error) {
	count, err := s.bookings.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	spent, err := s.bookings.SumSpentByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserStats{Count: count, TotalSpent: spent}, nil
}

func (s *Service) GlobalStats(ctx context.Context) (*GlobalStats, error) {
	totalUsers, err := s.users.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	activeSitters, err := s.sitters.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.bookings.SumRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &GlobalStats{
		TotalUsers:         totalUsers,
		TotalActiveSitters: activeSitters,
		TotalBookings:      totalBookings,
		TotalRevenue:       revenue,
	}, nil
}

// PopularServices ranks services by booking count, descending. Ties
// keep the order in which the service was first seen in the store.
func (s *Service) PopularServices(ctx context.Context, topN int) ([]ServiceCount, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.ServiceKind]int)
	order := make([]domain.ServiceKind, 0, len(domain.AllServiceKinds))
	for _, b := range bookings {
		if _, seen := counts[b.ServiceType]; !seen {
			order = append(order, b.ServiceType)
		}
		counts[b.ServiceType]++
	}

	out := make([]ServiceCount, 0, len(order))
	for _, kind := range order {
		out = append(out, ServiceCount{Service: kind, Count: counts[kind]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

// UserHistory returns one user's bookings, filtered.
func (s *Service) UserHistory(ctx context.Context, userID int64, opts FilterOptions) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Filter(bookings, opts), nil
}

// AllBookings returns every booking, filtered.
func (s *Service) AllBookings(ctx context.Context, opts FilterOptions) ([]domain.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(bookings, opts), nil
}

// Filter applies the status and search predicates, AND-combined. The
// search term matches case-insensitively against the sitter name, pet
// name or service label. No filters means identity.
func Filter(bookings []domain.Booking, opts FilterOptions) []domain.Booking {
	if opts.Status == "" && opts.Search == "" {
		return bookings
	}

	term := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if opts.Status != "" && string(b.Status) != opts.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.SitterName), term) &&
			!strings.Contains(strings.ToLower(b.PetName), term) &&
			!strings.Contains(strings.ToLower(string(b.ServiceType)), term) {
			continue
		}
		out = append(out, b)
	}
	return out
}
