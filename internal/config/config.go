package config

import (
	"errors"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Known BSC stablecoin contracts watched by default.
const (
	BSCUSDTContract = "0x55d398326f99059fF775485246999027B3197955"
	BSCBUSDContract = "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56"
)

// Config holds all application configuration
type Config struct {
	BSCScanAPIKey string
	BSCScanURL    string
	CoinGeckoURL  string

	TelegramBotToken string
	TelegramChatID   int64
	DatabaseURL      string

	WhaleThresholdUSD    float64
	CheckIntervalSeconds int
	MaxCallsPerSecond    int
	RequestTimeout       int // seconds

	GemMinMarketCap float64
	GemMaxMarketCap float64
	GemMinVolume24h float64
	GemMinHolders   int
	GemMinAgeDays   int
	GemMaxAgeDays   int

	SocialWeight    float64
	OnChainWeight   float64
	DevWeight       float64
	LiquidityWeight float64
	HolderWeight    float64

	LogLevel string
	LogFile  string

	// WatchedContracts are the token contracts scanned for whale activity.
	WatchedContracts []string

	// ExchangeAddresses maps lowercase hex addresses to exchange names.
	ExchangeAddresses map[string]string
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		BSCScanAPIKey: os.Getenv("BSCSCAN_API_KEY"),
		BSCScanURL:    getEnvWithDefault("BSCSCAN_API_URL", "https://api.bscscan.com/api"),
		CoinGeckoURL:  getEnvWithDefault("COINGECKO_API_URL", "https://api.coingecko.com/api/v3"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0),
		DatabaseURL:      os.Getenv("DATABASE_URL"),

		WhaleThresholdUSD:    getEnvFloatWithDefault("WHALE_THRESHOLD_USD", 100_000),
		CheckIntervalSeconds: getEnvIntWithDefault("CHECK_INTERVAL_SECONDS", 60),
		MaxCallsPerSecond:    getEnvIntWithDefault("MAX_API_CALLS_PER_SECOND", 4),
		RequestTimeout:       getEnvIntWithDefault("REQUEST_TIMEOUT", 30),

		GemMinMarketCap: getEnvFloatWithDefault("GEM_MIN_MARKET_CAP", 1_000_000),
		GemMaxMarketCap: getEnvFloatWithDefault("GEM_MAX_MARKET_CAP", 100_000_000),
		GemMinVolume24h: getEnvFloatWithDefault("GEM_MIN_VOLUME_24H", 100_000),
		GemMinHolders:   getEnvIntWithDefault("GEM_MIN_HOLDERS", 1000),
		GemMinAgeDays:   getEnvIntWithDefault("GEM_MIN_AGE_DAYS", 7),
		GemMaxAgeDays:   getEnvIntWithDefault("GEM_MAX_AGE_DAYS", 90),

		SocialWeight:    getEnvFloatWithDefault("SOCIAL_SCORE_WEIGHT", 0.3),
		OnChainWeight:   getEnvFloatWithDefault("ONCHAIN_SCORE_WEIGHT", 0.25),
		DevWeight:       getEnvFloatWithDefault("DEV_SCORE_WEIGHT", 0.2),
		LiquidityWeight: getEnvFloatWithDefault("LIQUIDITY_SCORE_WEIGHT", 0.15),
		HolderWeight:    getEnvFloatWithDefault("HOLDER_SCORE_WEIGHT", 0.1),

		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),

		WatchedContracts:  getEnvListWithDefault("WATCHED_CONTRACTS", []string{BSCUSDTContract, BSCBUSDContract}),
		ExchangeAddresses: defaultExchangeAddresses(),
	}

	return cfg, nil
}

// Validate checks required configuration and warns on a weight sum drifting
// away from 1.0 (soft invariant, scoring still proceeds).
func (c *Config) Validate() error {
	if c.BSCScanAPIKey == "" {
		return errors.New("BSCSCAN_API_KEY is required")
	}

	total := c.SocialWeight + c.OnChainWeight + c.DevWeight + c.LiquidityWeight + c.HolderWeight
	if math.Abs(total-1.0) > 0.01 {
		log.Warn().Float64("sum", total).Msg("scoring weights do not sum to 1.0")
	}

	return nil
}

// defaultExchangeAddresses is a partial list of known hot wallets; keys are
// lowercase hex.
func defaultExchangeAddresses() map[string]string {
	return map[string]string{
		// Binance hot wallets
		"0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be": "Binance",
		"0xd551234ae421e3bcba99a0da6d736074f22192ff": "Binance",
		"0x564286362092d8e7936f0549571a803b203aaced": "Binance",

		// Other major exchanges
		"0x6cc5f688a315f3dc28a7781717a9a798a59fda7b": "OKEx",
		"0x46705dfff24256421a05d056c29e81bdc09723b8": "Huobi",
	}
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
