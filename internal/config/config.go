package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Intake holds the tunables of the lead intake pipeline. The three limits
// are independent knobs, not derived from each other.
type Intake struct {
	// Per-telegram-user abuse limit: at most UserRateMax leads within
	// UserRateWindow for the same telegram user.
	UserRateWindow time.Duration
	UserRateMax    int

	// DedupWindow is the idempotency window: a repeat submission for the
	// same program from the same identity inside it returns the existing
	// lead instead of creating a new one.
	DedupWindow time.Duration

	// Blanket per-client limit applied in front of the handler.
	GlobalRateWindow time.Duration
	GlobalRateMax    int
}

type Config struct {
	ServiceName string
	AppPort     int

	DatabaseURL string
	AdminToken  string
	CORSOrigins string

	Intake Intake
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "school-mvp"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("PORT", 3001))

	cfg.DatabaseURL = cast.ToString(getOrReturnDefault("DATABASE_URL", "school.db"))
	cfg.AdminToken = cast.ToString(getOrReturnDefault("ADMIN_TOKEN", ""))
	cfg.CORSOrigins = cast.ToString(getOrReturnDefault("CORS_ALLOWED_ORIGINS", ""))

	cfg.Intake.UserRateWindow = cast.ToDuration(getOrReturnDefault("LEAD_USER_RATE_WINDOW", "10m"))
	cfg.Intake.UserRateMax = cast.ToInt(getOrReturnDefault("LEAD_USER_RATE_MAX", 3))
	cfg.Intake.DedupWindow = cast.ToDuration(getOrReturnDefault("LEAD_DEDUP_WINDOW", "15m"))
	cfg.Intake.GlobalRateWindow = cast.ToDuration(getOrReturnDefault("LEAD_GLOBAL_RATE_WINDOW", "60s"))
	cfg.Intake.GlobalRateMax = cast.ToInt(getOrReturnDefault("LEAD_GLOBAL_RATE_MAX", 10))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
