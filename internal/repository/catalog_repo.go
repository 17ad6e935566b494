package repository

import (
	"context"
	"errors"

	"github.com/NickolasCage52/School-MVP/internal/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetDirections returns all directions with their program cards, both
// ordered by order_num.
func (r *CatalogRepository) GetDirections(ctx context.Context) ([]domain.Direction, error) {
	var directions []domain.Direction
	err := r.db.WithContext(ctx).
		Order("order_num ASC").
		Preload("Programs", func(db *gorm.DB) *gorm.DB {
			return db.Order("programs.order_num ASC")
		}).
		Find(&directions).Error
	return directions, err
}

// GetProgramByID returns one program with its direction and packages, or
// nil when it does not exist.
func (r *CatalogRepository) GetProgramByID(ctx context.Context, id string) (*domain.Program, error) {
	var program domain.Program
	err := r.db.WithContext(ctx).
		Preload("Direction").
		Preload("Packages", func(db *gorm.DB) *gorm.DB {
			return db.Order("packages.order_num ASC")
		}).
		First(&program, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// ListProgramRefs returns id+title pairs for the admin filter dropdown,
// ordered by order_num.
func (r *CatalogRepository) ListProgramRefs(ctx context.Context) ([]domain.Program, error) {
	var programs []domain.Program
	err := r.db.WithContext(ctx).
		Select("id", "title").
		Order("order_num ASC").
		Find(&programs).Error
	return programs, err
}
