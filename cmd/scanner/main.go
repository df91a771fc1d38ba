package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trademind-labs/trademind/internal/api/coingecko"
	"github.com/trademind-labs/trademind/internal/config"
	"github.com/trademind-labs/trademind/internal/database"
	"github.com/trademind-labs/trademind/internal/gems"
	"github.com/trademind-labs/trademind/internal/notify"
	"github.com/trademind-labs/trademind/internal/scoring"
)

// reportLimit is how many top candidates get a full printed report.
const reportLimit = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	gecko := coingecko.NewClient(coingecko.ClientOptions{
		BaseURL:        cfg.CoinGeckoURL,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.MaxCallsPerSecond,
	})

	finder := gems.NewFinder(gecko, gems.FinderOptions{
		MinMarketCap: cfg.GemMinMarketCap,
		MaxMarketCap: cfg.GemMaxMarketCap,
		MinVolume24h: cfg.GemMinVolume24h,
	})

	calculator := scoring.NewCalculator(scoring.Weights{
		Social:    cfg.SocialWeight,
		OnChain:   cfg.OnChainWeight,
		Dev:       cfg.DevWeight,
		Liquidity: cfg.LiquidityWeight,
		Holder:    cfg.HolderWeight,
	})

	telegram, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Warn().Err(err).Msg("Telegram notifier unavailable, continuing without it")
	}

	var db *database.DB
	if cfg.DatabaseURL != "" {
		db, err = database.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
	}

	ctx := context.Background()

	candidates := finder.ComprehensiveScan(ctx)
	if len(candidates) == 0 {
		log.Warn().Msg("No gem candidates found")
		return
	}

	fmt.Printf("Found %d unique gem candidates\n", len(candidates))

	top := candidates
	if len(top) > reportLimit {
		top = top[:reportLimit]
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "💎 Gem scan: %d candidates, top %d:\n", len(candidates), len(top))

	for i, gem := range top {
		fmt.Print(gems.GemReport(gem))

		breakdown := calculator.ComprehensiveScore(gem.Coin)
		fmt.Print(scoring.ScoreReport(gem.Coin, breakdown))

		fmt.Fprintf(&summary, "%d. %s (%s) potential %.1f, score %.1f (%s)\n",
			i+1, gem.Name, gem.Symbol, gem.PotentialScore,
			breakdown.RiskAdjustedScore, breakdown.Grade)
	}

	if err := telegram.Send(summary.String()); err != nil {
		log.Warn().Err(err).Msg("Failed to deliver scan summary")
	}

	if db != nil {
		if err := db.SaveGems(ctx, candidates); err != nil {
			log.Error().Err(err).Msg("Failed to persist gem candidates")
			os.Exit(1)
		}
	}
}

func setupLogging(cfg *config.Config) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.LogFile).Msg("Cannot open log file, console only")
		} else {
			w = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr}, f)
		}
	}

	log.Logger = log.Output(w).Level(lvl)
}
