package ledger

import "petsitter/internal/domain"

// FilterOptions narrows a booking listing. Empty fields pass everything.
type FilterOptions struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

type UserStats struct {
	Count      int64   `json:"count"`
	TotalSpent float64 `json:"totalSpent"`
}

type GlobalStats struct {
	TotalUsers         int64   `json:"totalUsers"`
	TotalActiveSitters int64   `json:"totalActiveSitters"`
	TotalBookings      int64   `json:"totalBookings"`
	TotalRevenue       float64 `json:"totalRevenue"`
}

type ServiceCount struct {
	Service domain.ServiceKind `json:"service"`
	Count   int                `json:"count"`
}

// HistoryRow is a booking plus its payment display label.
type HistoryRow struct {
	domain.Booking
	PaymentLabel string `json:"paymentLabel"`
}
