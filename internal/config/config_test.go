package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.TaxRatePercent)
	assert.Equal(t, []int{10, 20}, cfg.PartnerSharePercents)
	assert.Equal(t, 90, cfg.DefaultHorizonDays)
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("TAX_RATE_PERCENT", "19")
	t.Setenv("PARTNER_SHARES", "15, 5,10")
	t.Setenv("DEFAULT_HORIZON_DAYS", "120")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 19, cfg.TaxRatePercent)
	assert.Equal(t, []int{15, 5, 10}, cfg.PartnerSharePercents)
	assert.Equal(t, 120, cfg.DefaultHorizonDays)
}

func TestNewConfigRejectsBadValues(t *testing.T) {
	t.Run("tax rate", func(t *testing.T) {
		t.Setenv("TAX_RATE_PERCENT", "twenty")
		_, err := NewConfig()
		require.Error(t, err)
	})

	t.Run("shares over 100", func(t *testing.T) {
		t.Setenv("PARTNER_SHARES", "60,40")
		_, err := NewConfig()
		require.Error(t, err)
	})

	t.Run("negative share", func(t *testing.T) {
		t.Setenv("PARTNER_SHARES", "-10,20")
		_, err := NewConfig()
		require.Error(t, err)
	})

	t.Run("horizon", func(t *testing.T) {
		t.Setenv("DEFAULT_HORIZON_DAYS", "0")
		_, err := NewConfig()
		require.Error(t, err)
	})
}
