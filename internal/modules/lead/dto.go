package lead

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/NickolasCage52/School-MVP/internal/pkg/phone"
)

const (
	MaxString      = 200
	MaxComment     = 1000
	MaxAnswersJSON = 2000
	MaxDeviceJSON  = 500
	MaxPayloadJSON = 2000
)

// Submission is a client body parsed into known, sanitized fields. The raw
// body is an arbitrary JSON object: wrong-typed or oversized values degrade
// to empty/absent here instead of failing the request.
type Submission struct {
	Honeypot string

	ProgramID       string
	ProgramName     string
	Direction       string
	SelectedPackage string
	PriceShown      *int

	ClientName string
	Email      string
	// RawPhone is the sanitized client string; Phone is its normalized form.
	RawPhone string
	Phone    string

	TelegramUserID    string
	TelegramUsername  string
	TelegramFirstName string
	TelegramLastName  string

	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	UTMContent  string
	UTMTerm     string

	Answers string
	Device  string

	// InitDataSubset is the only client-controlled content allowed into the
	// server-generated payload blob.
	InitDataSubset map[string]any
}

// ParseSubmission maps an untrusted body onto a Submission. Never fails.
func ParseSubmission(body map[string]any) Submission {
	s := Submission{
		Honeypot:          sanitize(body["website"]),
		ProgramID:         sanitize(body["programId"]),
		ProgramName:       sanitize(body["programName"]),
		Direction:         sanitize(body["direction"]),
		SelectedPackage:   sanitize(body["selectedPackage"]),
		PriceShown:        sanitizePrice(body["priceShown"]),
		ClientName:        sanitize(body["clientName"]),
		Email:             sanitize(body["email"]),
		RawPhone:          sanitize(body["phone"]),
		TelegramUserID:    sanitize(body["telegramUserId"]),
		TelegramUsername:  sanitize(body["telegramUsername"]),
		TelegramFirstName: sanitize(body["telegramFirstName"]),
		TelegramLastName:  sanitize(body["telegramLastName"]),
		UTMSource:         sanitize(body["utmSource"]),
		UTMMedium:         sanitize(body["utmMedium"]),
		UTMCampaign:       sanitize(body["utmCampaign"]),
		UTMContent:        sanitize(body["utmContent"]),
		UTMTerm:           sanitize(body["utmTerm"]),
		Answers:           sanitizeAnswers(body["answers"]),
		Device:            sanitizeJSON(body["device"], MaxDeviceJSON),
	}

	// Older clients send the name under "name".
	if s.ClientName == "" {
		s.ClientName = sanitize(body["name"])
	}

	if subset, ok := body["initDataSubset"].(map[string]any); ok {
		s.InitDataSubset = subset
	}

	if s.RawPhone != "" {
		s.Phone = phone.Normalize(s.RawPhone)
	}

	return s
}

// HasContact reports whether at least one contact channel is populated.
func (s Submission) HasContact() bool {
	return s.ClientName != "" || s.Email != "" || len(s.Phone) >= 10 || s.TelegramUserID != ""
}

// sanitize accepts only actual strings, truncates, then trims.
func sanitize(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return truncateTrim(s, MaxString)
}

func sanitizeComment(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return truncateTrim(s, MaxComment)
}

func truncateTrim(s string, max int) string {
	if runes := []rune(s); len(runes) > max {
		s = string(runes[:max])
	}
	return strings.TrimSpace(s)
}

// sanitizePrice accepts only non-negative JSON numbers, floored.
func sanitizePrice(v any) *int {
	f, ok := v.(float64)
	if !ok || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Floor(f))
	return &n
}

// sanitizeAnswers caps the free-text comment carried inside the answers
// object before the whole blob is serialized.
func sanitizeAnswers(v any) string {
	if obj, ok := v.(map[string]any); ok {
		if _, has := obj["comment"]; has {
			obj["comment"] = sanitizeComment(obj["comment"])
		}
	}
	return sanitizeJSON(v, MaxAnswersJSON)
}

// sanitizeJSON re-serializes a non-null object (or array) value. Anything
// over maxLen is dropped entirely, not truncated: a cut JSON string would
// no longer parse.
func sanitizeJSON(v any, maxLen int) string {
	switch v.(type) {
	case map[string]any, []any:
	default:
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil || len(raw) > maxLen {
		return ""
	}
	return string(raw)
}
