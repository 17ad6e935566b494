package domain

import "time"

type LeadStatus string

const (
	LeadStatusNew     LeadStatus = "New"
	LeadStatusInWork  LeadStatus = "In work"
	LeadStatusDone    LeadStatus = "Done"
	LeadStatusInvalid LeadStatus = "Invalid"
)

// Lead is one stored contact-form submission. Everything except Status is
// immutable after creation; intake always writes StatusNew and only the
// admin side mutates Status afterwards.
type Lead struct {
	ID string `json:"id" gorm:"primaryKey"`

	ProgramID   string `json:"programId" gorm:"index;not null"`
	ProgramName string `json:"programName" gorm:"not null"`

	Direction       string `json:"direction,omitempty"`
	SelectedPackage string `json:"selectedPackage,omitempty"`
	PriceShown      *int   `json:"priceShown,omitempty"`

	ClientName string `json:"clientName,omitempty"`
	Email      string `json:"email,omitempty"`
	// Phone is stored normalized: digits only, no leading "+".
	Phone string `json:"phone,omitempty" gorm:"index"`

	TelegramUserID    string `json:"telegramUserId,omitempty" gorm:"index"`
	TelegramUsername  string `json:"telegramUsername,omitempty"`
	TelegramFirstName string `json:"telegramFirstName,omitempty"`
	TelegramLastName  string `json:"telegramLastName,omitempty"`

	UTMSource   string `json:"utmSource,omitempty"`
	UTMMedium   string `json:"utmMedium,omitempty"`
	UTMCampaign string `json:"utmCampaign,omitempty"`
	UTMContent  string `json:"utmContent,omitempty"`
	UTMTerm     string `json:"utmTerm,omitempty"`

	// Serialized JSON blobs, size-capped at intake.
	Answers string `json:"answers,omitempty" gorm:"type:text"`
	Device  string `json:"device,omitempty" gorm:"type:text"`
	// Payload is server-generated: submission timestamp plus the optional
	// initDataSubset pass-through.
	Payload string `json:"payload,omitempty" gorm:"type:text"`

	Status LeadStatus `json:"status" gorm:"index;default:New"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
