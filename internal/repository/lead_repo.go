package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NickolasCage52/School-MVP/internal/domain"

	"gorm.io/gorm"
)

// LeadPageSize is the fixed admin list page size.
const LeadPageSize = 50

type LeadFilters struct {
	ProgramID string
	Status    string
	From      *time.Time
	To        *time.Time
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead row. Timestamps are set by the store.
func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// CountRecentByTelegramUser counts leads from one telegram user created at
// or after since. Feeds the per-user abuse limit.
func (r *LeadRepository) CountRecentByTelegramUser(ctx context.Context, telegramUserID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("telegram_user_id = ? AND created_at >= ?", telegramUserID, since).
		Count(&count).Error
	return count, err
}

// FindRecentDuplicate returns the most recent lead on the same program
// created at or after since that matches telegramUserID or phone. Only the
// identifiers that are non-empty participate in the OR. Returns nil when
// nothing matches.
func (r *LeadRepository) FindRecentDuplicate(ctx context.Context, programID, telegramUserID, phone string, since time.Time) (*domain.Lead, error) {
	q := r.db.WithContext(ctx).
		Where("program_id = ? AND created_at >= ?", programID, since)

	switch {
	case telegramUserID != "" && phone != "":
		q = q.Where("telegram_user_id = ? OR phone = ?", telegramUserID, phone)
	case telegramUserID != "":
		q = q.Where("telegram_user_id = ?", telegramUserID)
	case phone != "":
		q = q.Where("phone = ?", phone)
	default:
		return nil, nil
	}

	var lead domain.Lead
	err := q.Order("created_at DESC").First(&lead).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByID fetches one lead.
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns one page of leads newest-first plus the filtered total.
func (r *LeadRepository) List(ctx context.Context, f LeadFilters, page int) ([]domain.Lead, int64, error) {
	var leads []domain.Lead
	var total int64

	q := r.filtered(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("created_at DESC").
		Limit(LeadPageSize).
		Offset(page * LeadPageSize).
		Find(&leads).Error
	return leads, total, err
}

// ListAll returns every matching lead newest-first, for export.
func (r *LeadRepository) ListAll(ctx context.Context, f LeadFilters) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.filtered(ctx, f).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// UpdateStatus sets the lead status and returns the updated row.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *LeadRepository) filtered(ctx context.Context, f LeadFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Lead{})
	if f.ProgramID != "" {
		q = q.Where("program_id = ?", f.ProgramID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	return q
}
