package database

import (
	"context"
	"database/sql"

	"github.com/trademind-labs/trademind/internal/models"
)

// DB represents a database connection
type DB struct {
	*sql.DB
}

// New opens a PostgreSQL connection from a connection URL and ensures the
// result tables exist.
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS gem_candidates (
			coin_id TEXT PRIMARY KEY,
			symbol TEXT NOT NULL,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			market_cap DOUBLE PRECISION NOT NULL,
			volume_24h DOUBLE PRECISION NOT NULL,
			potential_score DOUBLE PRECISION NOT NULL,
			risk_level TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			discovery_source TEXT NOT NULL,
			discovered_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS whale_transactions (
			hash TEXT PRIMARY KEY,
			from_address TEXT NOT NULL,
			to_address TEXT NOT NULL,
			token_symbol TEXT NOT NULL,
			value_tokens DOUBLE PRECISION NOT NULL,
			usd_value DOUBLE PRECISION NOT NULL,
			direction TEXT NOT NULL,
			risk_level TEXT NOT NULL,
			block_number BIGINT NOT NULL,
			observed_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// SaveGems upserts discovered candidates, keeping the latest scan per coin.
func (db *DB) SaveGems(ctx context.Context, gems []models.GemCandidate) error {
	for _, gem := range gems {
		_, err := db.ExecContext(ctx, `
			INSERT INTO gem_candidates (
				coin_id, symbol, name, price, market_cap, volume_24h,
				potential_score, risk_level, recommendation,
				discovery_source, discovered_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (coin_id) DO UPDATE SET
				price = EXCLUDED.price,
				market_cap = EXCLUDED.market_cap,
				volume_24h = EXCLUDED.volume_24h,
				potential_score = EXCLUDED.potential_score,
				risk_level = EXCLUDED.risk_level,
				recommendation = EXCLUDED.recommendation,
				discovery_source = EXCLUDED.discovery_source,
				discovered_at = EXCLUDED.discovered_at
		`,
			gem.ID, gem.Symbol, gem.Name, gem.CurrentPrice, gem.MarketCap,
			gem.TotalVolume, gem.PotentialScore, gem.RiskLevel,
			gem.Recommendation, gem.DiscoverySource, gem.DiscoveredAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveWhale records a whale transaction; duplicates by hash are ignored.
func (db *DB) SaveWhale(ctx context.Context, tx models.WhaleTransaction) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO whale_transactions (
			hash, from_address, to_address, token_symbol, value_tokens,
			usd_value, direction, risk_level, block_number, observed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (hash) DO NOTHING
	`,
		tx.Hash, tx.FromAddress, tx.ToAddress, tx.TokenSymbol, tx.ValueTokens,
		tx.USDValue, tx.Classification.Direction, tx.Classification.RiskLevel,
		tx.BlockNumber, tx.Timestamp,
	)
	return err
}
