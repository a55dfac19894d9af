package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	primarySecretVar = "PRIMARY_SECRET"
	primaryTTLVar    = "PRIMARY_TTL"
	refreshSecretVar = "REFRESH_SECRET"
	refreshTTLVar    = "REFRESH_TTL"

	defaultPrimaryTTL = "15m"
	defaultRefreshTTL = "7d"
)

type TokenConfig interface {
	GetPrimarySecret() string
	GetPrimaryTTL() time.Duration
	GetRefreshSecret() string
	GetRefreshTTL() time.Duration
}

type Tokens struct{}

var _ TokenConfig = Tokens{}

func (Tokens) GetPrimarySecret() string {
	return GetEnv(primarySecretVar, "")
}

func (Tokens) GetPrimaryTTL() time.Duration {
	return ttlFromEnv(primaryTTLVar, defaultPrimaryTTL)
}

func (Tokens) GetRefreshSecret() string {
	return GetEnv(refreshSecretVar, "")
}

func (Tokens) GetRefreshTTL() time.Duration {
	return ttlFromEnv(refreshTTLVar, defaultRefreshTTL)
}

func ttlFromEnv(envVar, defaultValue string) time.Duration {
	raw := GetEnv(envVar, defaultValue)
	ttl, err := ParseTTL(raw)
	if err != nil {
		log.Warn().Str("var", envVar).Str("value", raw).Msg("Invalid TTL, using default")
		ttl, _ = ParseTTL(defaultValue)
	}
	return ttl
}

// ParseTTL parses a duration literal. On top of the standard unit suffixes
// ("15m", "24h") it accepts a day suffix ("7d"), which refresh lifetimes
// are conventionally written with.
func ParseTTL(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(value, "d"))
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(value)
}
