package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trademind-labs/trademind/internal/api/bscscan"
	"github.com/trademind-labs/trademind/internal/config"
	"github.com/trademind-labs/trademind/internal/database"
	"github.com/trademind-labs/trademind/internal/notify"
	"github.com/trademind-labs/trademind/internal/whales"
)

// The default watched contracts are BSC stablecoins, so one token is one
// dollar for threshold purposes.
const stablecoinPriceUSD = 1.0

const scanBatchSize = 100

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	client := bscscan.NewClient(bscscan.ClientOptions{
		APIKey:         cfg.BSCScanAPIKey,
		BaseURL:        cfg.BSCScanURL,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.MaxCallsPerSecond,
	})

	tracker := whales.NewTracker(client, cfg.WhaleThresholdUSD, cfg.ExchangeAddresses)

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Float64("threshold_usd", cfg.WhaleThresholdUSD).
		Int("contracts", len(cfg.WatchedContracts)).
		Int("interval_seconds", cfg.CheckIntervalSeconds).
		Msg("Starting whale watch")

	ticker := time.NewTicker(time.Duration(cfg.CheckIntervalSeconds) * time.Second)
	defer ticker.Stop()

	scan(ctx, tracker, cfg.WatchedContracts, telegram, db)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutting down")
			return
		case <-ticker.C:
			scan(ctx, tracker, cfg.WatchedContracts, telegram, db)
		}
	}
}

func scan(ctx context.Context, tracker *whales.Tracker, contracts []string, telegram *notify.Telegram, db *database.DB) {
	for _, contract := range contracts {
		txs, err := tracker.ScanRecent(ctx, contract, stablecoinPriceUSD, scanBatchSize)
		if err != nil {
			log.Error().Err(err).Str("contract", contract).Msg("Scan failed")
			continue
		}

		for _, tx := range txs {
			alert := whales.FormatAlert(tx)
			fmt.Println(alert)

			if err := telegram.Send(alert); err != nil {
				log.Warn().Err(err).Str("hash", tx.Hash).Msg("Failed to deliver alert")
			}
			if db != nil {
				if err := db.SaveWhale(ctx, tx); err != nil {
					log.Error().Err(err).Str("hash", tx.Hash).Msg("Failed to persist whale transaction")
				}
			}
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
