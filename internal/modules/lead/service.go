package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NickolasCage52/School-MVP/internal/config"
	"github.com/NickolasCage52/School-MVP/internal/domain"
	"github.com/NickolasCage52/School-MVP/internal/pkg/logger"
	"github.com/NickolasCage52/School-MVP/internal/pkg/phone"
	"github.com/NickolasCage52/School-MVP/internal/repository"
)

// Result is what a handled submission yields: the id of the stored lead,
// which may be a pre-existing one when deduplication fired.
type Result struct {
	ID        string
	Duplicate bool
}

// Service turns an untrusted submission into a stored lead. Exactly one
// store write on the success path, none on reject or duplicate. The
// rate-limit and dedup checks are read-then-act without a transaction; a
// concurrent race can slip a duplicate through, which is accepted.
type Service struct {
	repo *repository.LeadRepository
	cfg  config.Intake
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo *repository.LeadRepository, cfg config.Intake, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  log,
		now:  time.Now,
	}
}

// Submit runs the intake pipeline over a raw request body.
func (s *Service) Submit(ctx context.Context, body map[string]any) (*Result, error) {
	sub := ParseSubmission(body)

	// Bots fill the hidden field; humans never see it.
	if sub.Honeypot != "" {
		return nil, ErrInvalidRequest
	}

	if sub.Phone != "" && !phone.IsValid(sub.Phone) {
		return nil, ErrInvalidPhone
	}

	if sub.ProgramID == "" || sub.ProgramName == "" {
		return nil, ErrMissingRequiredFields
	}

	if !sub.HasContact() {
		return nil, ErrMissingContact
	}

	now := s.now()

	if sub.TelegramUserID != "" {
		since := now.Add(-s.cfg.UserRateWindow)
		count, err := s.repo.CountRecentByTelegramUser(ctx, sub.TelegramUserID, since)
		if err != nil {
			return nil, fmt.Errorf("count recent leads: %w", err)
		}
		if count >= int64(s.cfg.UserRateMax) {
			return nil, ErrRateLimited
		}
	}

	if sub.TelegramUserID != "" || sub.Phone != "" {
		since := now.Add(-s.cfg.DedupWindow)
		existing, err := s.repo.FindRecentDuplicate(ctx, sub.ProgramID, sub.TelegramUserID, sub.Phone, since)
		if err != nil {
			return nil, fmt.Errorf("find duplicate: %w", err)
		}
		if existing != nil {
			s.log.Info("duplicate lead suppressed",
				logger.String("lead_id", existing.ID),
				logger.String("program_id", sub.ProgramID))
			return &Result{ID: existing.ID, Duplicate: true}, nil
		}
	}

	entity := &domain.Lead{
		ID:                uuid.NewString(),
		ProgramID:         sub.ProgramID,
		ProgramName:       sub.ProgramName,
		Direction:         sub.Direction,
		SelectedPackage:   sub.SelectedPackage,
		PriceShown:        sub.PriceShown,
		ClientName:        sub.ClientName,
		Email:             sub.Email,
		Phone:             sub.Phone,
		TelegramUserID:    sub.TelegramUserID,
		TelegramUsername:  sub.TelegramUsername,
		TelegramFirstName: sub.TelegramFirstName,
		TelegramLastName:  sub.TelegramLastName,
		UTMSource:         sub.UTMSource,
		UTMMedium:         sub.UTMMedium,
		UTMCampaign:       sub.UTMCampaign,
		UTMContent:        sub.UTMContent,
		UTMTerm:           sub.UTMTerm,
		Answers:           sub.Answers,
		Device:            sub.Device,
		Payload:           buildPayload(now, sub.InitDataSubset),
		Status:            domain.LeadStatusNew,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	return &Result{ID: entity.ID}, nil
}

// buildPayload produces the server-generated blob: submission timestamp
// plus the bounded initDataSubset pass-through. An oversized subset falls
// back to the timestamp alone.
func buildPayload(now time.Time, subset map[string]any) string {
	payload := map[string]any{
		"timestamp": now.UTC().Format(time.RFC3339),
	}
	if subset != nil {
		payload["initDataSubset"] = subset
	}
	raw, err := json.Marshal(payload)
	if err != nil || len(raw) > MaxPayloadJSON {
		raw, _ = json.Marshal(map[string]any{
			"timestamp": now.UTC().Format(time.RFC3339),
		})
	}
	return string(raw)
}
