package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BSCSCAN_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.BSCScanAPIKey)
	assert.Equal(t, "https://api.bscscan.com/api", cfg.BSCScanURL)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.CoinGeckoURL)
	assert.InDelta(t, 100_000, cfg.WhaleThresholdUSD, 0.001)
	assert.Equal(t, 60, cfg.CheckIntervalSeconds)
	assert.Equal(t, 4, cfg.MaxCallsPerSecond)
	assert.InDelta(t, 1_000_000, cfg.GemMinMarketCap, 0.001)
	assert.InDelta(t, 100_000_000, cfg.GemMaxMarketCap, 0.001)
	assert.Equal(t, "info", cfg.LogLevel)

	// Weights default to the tuned split and sum to 1.0
	sum := cfg.SocialWeight + cfg.OnChainWeight + cfg.DevWeight + cfg.LiquidityWeight + cfg.HolderWeight
	assert.InDelta(t, 1.0, sum, 0.001)

	// Defaults watch the BSC stablecoin contracts
	assert.Equal(t, []string{BSCUSDTContract, BSCBUSDContract}, cfg.WatchedContracts)

	assert.Equal(t, "Binance", cfg.ExchangeAddresses["0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be"])
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BSCSCAN_API_KEY", "test-key")
	t.Setenv("WHALE_THRESHOLD_USD", "500000")
	t.Setenv("MAX_API_CALLS_PER_SECOND", "2")
	t.Setenv("WATCHED_CONTRACTS", "0xaaa, 0xbbb")
	t.Setenv("SOCIAL_SCORE_WEIGHT", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 500_000, cfg.WhaleThresholdUSD, 0.001)
	assert.Equal(t, 2, cfg.MaxCallsPerSecond)
	assert.Equal(t, []string{"0xaaa", "0xbbb"}, cfg.WatchedContracts)
	assert.InDelta(t, 0.5, cfg.SocialWeight, 0.001)
}

func TestValidate(t *testing.T) {
	t.Run("missing API key is fatal", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("weight drift only warns", func(t *testing.T) {
		cfg := &Config{
			BSCScanAPIKey: "key",
			SocialWeight:  0.9,
			OnChainWeight: 0.9,
		}
		assert.NoError(t, cfg.Validate())
	})
}
