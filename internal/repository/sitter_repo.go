package repository

import (
	"context"
	"encoding/json"
	"time"

	"petsitter/internal/domain"

	"gorm.io/gorm"
)

type SitterRepository struct {
	db *gorm.DB
}

func NewSitterRepository(db *gorm.DB) *SitterRepository {
	return &SitterRepository{db: db}
}

// Services and rates are stored as JSON text so the schema works the
// same on SQLite and PostgreSQL.
type sitterModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Rating    float64   `gorm:"column:rating"`
	Reviews   int       `gorm:"column:reviews"`
	Location  string    `gorm:"column:location"`
	Bio       *string   `gorm:"column:bio;type:text"`
	Avatar    *string   `gorm:"column:avatar"`
	Services  string    `gorm:"column:services;type:text"`
	Rates     string    `gorm:"column:rates;type:text"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sitterModel) TableName() string { return "sitters" }

func toDomainSitter(m sitterModel) (*domain.Sitter, error) {
	var bio, avatar string
	if m.Bio != nil {
		bio = *m.Bio
	}
	if m.Avatar != nil {
		avatar = *m.Avatar
	}

	var services []domain.ServiceKind
	if m.Services != "" {
		if err := json.Unmarshal([]byte(m.Services), &services); err != nil {
			return nil, err
		}
	}
	rates := domain.RateMap{}
	if m.Rates != "" {
		if err := json.Unmarshal([]byte(m.Rates), &rates); err != nil {
			return nil, err
		}
	}

	return &domain.Sitter{
		ID:        m.ID,
		Name:      m.Name,
		Rating:    m.Rating,
		Reviews:   m.Reviews,
		Location:  m.Location,
		Bio:       bio,
		Avatar:    avatar,
		Services:  services,
		Rates:     rates,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func toSitterModel(s *domain.Sitter) (sitterModel, error) {
	servicesJSON, err := json.Marshal(s.Services)
	if err != nil {
		return sitterModel{}, err
	}
	ratesJSON, err := json.Marshal(s.Rates)
	if err != nil {
		return sitterModel{}, err
	}

	var bio, avatar *string
	if s.Bio != "" {
		v := s.Bio
		bio = &v
	}
	if s.Avatar != "" {
		v := s.Avatar
		avatar = &v
	}

	return sitterModel{
		ID:        s.ID,
		Name:      s.Name,
		Rating:    s.Rating,
		Reviews:   s.Reviews,
		Location:  s.Location,
		Bio:       bio,
		Avatar:    avatar,
		Services:  string(servicesJSON),
		Rates:     string(ratesJSON),
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

func (r *SitterRepository) Create(ctx context.Context, s *domain.Sitter) error {
	m, err := toSitterModel(s)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainSitter(m)
	if err != nil {
		return err
	}
	*s = *out
	return nil
}

func (r *SitterRepository) GetByID(ctx context.Context, id int64) (*domain.Sitter, error) {
	var m sitterModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSitter(m)
}

// ListActive returns active sitters in insertion order.
func (r *SitterRepository) ListActive(ctx context.Context) ([]domain.Sitter, error) {
	var models []sitterModel
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	sitters := make([]domain.Sitter, 0, len(models))
	for _, m := range models {
		s, err := toDomainSitter(m)
		if err != nil {
			return nil, err
		}
		sitters = append(sitters, *s)
	}
	return sitters, nil
}

// List returns every sitter, active or not, in insertion order.
func (r *SitterRepository) List(ctx context.Context) ([]domain.Sitter, error) {
	var models []sitterModel
	tx := r.db.WithContext(ctx).Order("id ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	sitters := make([]domain.Sitter, 0, len(models))
	for _, m := range models {
		s, err := toDomainSitter(m)
		if err != nil {
			return nil, err
		}
		sitters = append(sitters, *s)
	}
	return sitters, nil
}

func (r *SitterRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).Model(&sitterModel{}).
		Where("id = ?", id).
		Update("active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SitterRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&sitterModel{}).
		Where("active = ?", true).
		Count(&count)
	return count, tx.Error
}
