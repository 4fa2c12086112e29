package ledger

import (
	"context"
	"testing"

	"petsitter/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingReader) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingReader) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingReader) SumSpentByUser(ctx context.Context, userID int64) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBookingReader) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingReader) SumRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type MockUserCounter struct {
	mock.Mock
}

func (m *MockUserCounter) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockSitterCounter struct {
	mock.Mock
}

func (m *MockSitterCounter) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func bookingOf(service domain.ServiceKind) domain.Booking {
	return domain.Booking{ServiceType: service, Status: domain.BookingUpcoming}
}

func TestService_PopularServices_Ranking(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("List", mock.Anything).Return([]domain.Booking{
		bookingOf(domain.ServiceSitting),
		bookingOf(domain.ServiceWalking),
		bookingOf(domain.ServiceWalking),
		bookingOf(domain.ServiceGrooming),
		bookingOf(domain.ServiceWalking),
		bookingOf(domain.ServiceSitting),
	}, nil)

	service := NewService(bookings, new(MockUserCounter), new(MockSitterCounter))

	got, err := service.PopularServices(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, []ServiceCount{
		{Service: domain.ServiceWalking, Count: 3},
		{Service: domain.ServiceSitting, Count: 2},
		{Service: domain.ServiceGrooming, Count: 1},
	}, got)
}

func TestService_PopularServices_TiesKeepFirstSeenOrder(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("List", mock.Anything).Return([]domain.Booking{
		bookingOf(domain.ServiceGrooming),
		bookingOf(domain.ServiceWalking),
		bookingOf(domain.ServiceWalking),
		bookingOf(domain.ServiceGrooming),
	}, nil)

	service := NewService(bookings, new(MockUserCounter), new(MockSitterCounter))

	got, err := service.PopularServices(context.Background(), 3)

	assert.NoError(t, err)
	// grooming appeared first, so the 2-2 tie resolves in its favor
	assert.Equal(t, []ServiceCount{
		{Service: domain.ServiceGrooming, Count: 2},
		{Service: domain.ServiceWalking, Count: 2},
	}, got)
}

func TestService_PopularServices_TopNTruncates(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("List", mock.Anything).Return([]domain.Booking{
		bookingOf(domain.ServiceWalking),
		bookingOf(domain.ServiceSitting),
		bookingOf(domain.ServiceBoarding),
		bookingOf(domain.ServiceGrooming),
	}, nil)

	service := NewService(bookings, new(MockUserCounter), new(MockSitterCounter))

	got, err := service.PopularServices(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_PopularServices_EmptyStore(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("List", mock.Anything).Return([]domain.Booking{}, nil)

	service := NewService(bookings, new(MockUserCounter), new(MockSitterCounter))

	got, err := service.PopularServices(context.Background(), 3)

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_StatsFor(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("CountByUser", mock.Anything, int64(101)).Return(int64(4), nil)
	bookings.On("SumSpentByUser", mock.Anything, int64(101)).Return(260.0, nil)

	service := NewService(bookings, new(MockUserCounter), new(MockSitterCounter))

	stats, err := service.StatsFor(context.Background(), 101)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Count)
	assert.Equal(t, 260.0, stats.TotalSpent)
}

func TestService_GlobalStats(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("Count", mock.Anything).Return(int64(12), nil)
	bookings.On("SumRevenue", mock.Anything).Return(980.0, nil)

	users := new(MockUserCounter)
	users.On("CountByRole", mock.Anything, domain.RoleUser).Return(int64(7), nil)

	sitters := new(MockSitterCounter)
	sitters.On("CountActive", mock.Anything).Return(int64(4), nil)

	service := NewService(bookings, users, sitters)

	stats, err := service.GlobalStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &GlobalStats{
		TotalUsers:         7,
		TotalActiveSitters: 4,
		TotalBookings:      12,
		TotalRevenue:       980.0,
	}, stats)
}

func TestFilter(t *testing.T) {
	bookings := []domain.Booking{
		{ID: 1, SitterName: "Sarah Johnson", PetName: "Rex", ServiceType: domain.ServiceWalking, Status: domain.BookingUpcoming},
		{ID: 2, SitterName: "Mike Chen", PetName: "Whiskers", ServiceType: domain.ServiceSitting, Status: domain.BookingCompleted},
		{ID: 3, SitterName: "Sarah Johnson", PetName: "Buddy", ServiceType: domain.ServiceGrooming, Status: domain.BookingCancelled},
	}

	ids := func(got []domain.Booking) []int64 {
		out := make([]int64, 0, len(got))
		for _, b := range got {
			out = append(out, b.ID)
		}
		return out
	}

	// no filters is identity
	assert.Equal(t, []int64{1, 2, 3}, ids(Filter(bookings, FilterOptions{})))

	// status only
	assert.Equal(t, []int64{2}, ids(Filter(bookings, FilterOptions{Status: "completed"})))

	// search matches sitter name, pet name and service, case-insensitive
	assert.Equal(t, []int64{1, 3}, ids(Filter(bookings, FilterOptions{Search: "SARAH"})))
	assert.Equal(t, []int64{2}, ids(Filter(bookings, FilterOptions{Search: "whisk"})))
	assert.Equal(t, []int64{3}, ids(Filter(bookings, FilterOptions{Search: "groom"})))

	// combined predicates AND together
	assert.Equal(t, []int64{3}, ids(Filter(bookings, FilterOptions{Status: "cancelled", Search: "sarah"})))
	assert.Empty(t, Filter(bookings, FilterOptions{Status: "upcoming", Search: "mike"}))
}

func TestService_UserHistory_AppliesFilters(t *testing.T) {
	bookings := new(MockBookingReader)
	bookings.On("ListByUser", mock.Anything, int64(101)).Return([]domain.Booking{
		{ID: 1, SitterName: "Sarah Johnson", Status: domain.BookingUpcoming},
		{ID: 2, SitterName: "Mike Chen", Status: domain.BookingCompleted},
	}, nil)

	service := NewService(bookings, new(MockUserCounter), new(MockSitterCounter))

	got, err := service.UserHistory(context.Background(), 101, FilterOptions{Status: "completed"})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
