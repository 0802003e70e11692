package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds engine configuration
type Config struct {
	LogLevel             string
	TaxRatePercent       int
	PartnerSharePercents []int
	DefaultHorizonDays   int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	taxRate, err := strconv.Atoi(getEnv("TAX_RATE_PERCENT", "22"))
	if err != nil || taxRate < 0 {
		return nil, fmt.Errorf("invalid TAX_RATE_PERCENT: %q", getEnv("TAX_RATE_PERCENT", "22"))
	}

	shares, err := parseShares(getEnv("PARTNER_SHARES", "10,20"))
	if err != nil {
		return nil, err
	}

	horizon, err := strconv.Atoi(getEnv("DEFAULT_HORIZON_DAYS", "90"))
	if err != nil || horizon <= 0 {
		return nil, fmt.Errorf("invalid DEFAULT_HORIZON_DAYS: %q", getEnv("DEFAULT_HORIZON_DAYS", "90"))
	}

	return &Config{
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		TaxRatePercent:       taxRate,
		PartnerSharePercents: shares,
		DefaultHorizonDays:   horizon,
	}, nil
}

// parseShares parses a comma-separated list of partner share percentages.
// The shares must leave something available, so their sum stays under 100.
func parseShares(raw string) ([]int, error) {
	var shares []int
	sum := 0
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		share, err := strconv.Atoi(part)
		if err != nil || share < 0 {
			return nil, fmt.Errorf("invalid PARTNER_SHARES entry: %q", part)
		}
		shares = append(shares, share)
		sum += share
	}
	if sum >= 100 {
		return nil, fmt.Errorf("PARTNER_SHARES sum to %d%%, must stay under 100%%", sum)
	}
	return shares, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
