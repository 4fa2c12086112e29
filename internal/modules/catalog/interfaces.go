package catalog

import (
	"context"

	"petsitter/internal/domain"
)

// SitterRepository defines the storage operations the catalog needs
type SitterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Sitter, error)
	ListActive(ctx context.Context) ([]domain.Sitter, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
