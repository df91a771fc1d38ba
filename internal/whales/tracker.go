package whales

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trademind-labs/trademind/internal/api/bscscan"
	"github.com/trademind-labs/trademind/internal/models"
)

// TransferSource is the slice of the explorer client the tracker needs.
type TransferSource interface {
	TokenTransfers(ctx context.Context, p bscscan.TokenTransfersParams) ([]models.TokenTransfer, error)
}

// Tracker detects whale-sized token transfers and classifies their flow
// direction against a static exchange-address table. The seen-hash set lives
// on the tracker instance; a Tracker is not safe for concurrent use.
type Tracker struct {
	source TransferSource
	logger zerolog.Logger

	thresholdUSD      float64
	exchangeAddresses map[string]string

	seen map[string]struct{}
}

// NewTracker creates a whale tracker. exchangeAddresses maps lowercase hex
// addresses to exchange names; a nil map disables exchange classification.
func NewTracker(source TransferSource, thresholdUSD float64, exchangeAddresses map[string]string) *Tracker {
	if exchangeAddresses == nil {
		exchangeAddresses = map[string]string{}
	}

	return &Tracker{
		source:            source,
		logger:            log.With().Str("component", "whale_tracker").Logger(),
		thresholdUSD:      thresholdUSD,
		exchangeAddresses: exchangeAddresses,
		seen:              make(map[string]struct{}),
	}
}

// ExchangeName returns the exchange a known address belongs to, empty
// otherwise.
func (t *Tracker) ExchangeName(address string) string {
	return t.exchangeAddresses[strings.ToLower(address)]
}

// Classify assigns direction and qualitative risk from whether the sender and
// receiver appear in the exchange table. The four cases are exhaustive and
// mutually exclusive.
func (t *Tracker) Classify(tx models.TokenTransfer) models.WhaleClassification {
	fromExchange := t.ExchangeName(tx.FromAddress)
	toExchange := t.ExchangeName(tx.ToAddress)

	c := models.WhaleClassification{
		FromExchange: fromExchange,
		ToExchange:   toExchange,
	}

	switch {
	case fromExchange != "" && toExchange == "":
		c.Direction = models.DirectionExchangeOutflow
		c.RiskLevel = models.RiskHigh // often bullish
	case fromExchange == "" && toExchange != "":
		c.Direction = models.DirectionExchangeInflow
		c.RiskLevel = models.RiskHigh // often bearish
	case fromExchange != "" && toExchange != "":
		c.Direction = models.DirectionExchangeToExchange
		c.RiskLevel = models.RiskLow
	default:
		c.Direction = models.DirectionWalletToWallet
		c.RiskLevel = models.RiskMedium
	}

	return c
}

// IsWhale reports whether the transfer's USD value crosses the threshold.
func (t *Tracker) IsWhale(tx models.TokenTransfer, tokenPriceUSD float64) bool {
	return tx.ValueTokens*tokenPriceUSD >= t.thresholdUSD
}

// ScanRecent fetches recent transfers for a contract and returns the whale
// transactions not seen before in this run, classified and enriched with
// their USD value.
func (t *Tracker) ScanRecent(ctx context.Context, contractAddress string, tokenPriceUSD float64, limit int) ([]models.WhaleTransaction, error) {
	transfers, err := t.source.TokenTransfers(ctx, bscscan.TokenTransfersParams{
		ContractAddress: contractAddress,
		Offset:          limit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching transfers: %w", err)
	}

	var whales []models.WhaleTransaction
	for _, tx := range transfers {
		if _, ok := t.seen[tx.Hash]; ok {
			continue
		}
		if !t.IsWhale(tx, tokenPriceUSD) {
			continue
		}

		whales = append(whales, models.WhaleTransaction{
			TokenTransfer:  tx,
			USDValue:       tx.ValueTokens * tokenPriceUSD,
			Classification: t.Classify(tx),
		})
		t.seen[tx.Hash] = struct{}{}
	}

	t.logger.Debug().
		Int("transfers", len(transfers)).
		Int("whales", len(whales)).
		Str("contract", contractAddress).
		Msg("Scanned recent transfers")
	return whales, nil
}

// FormatAlert renders a whale transaction as an alert message.
func FormatAlert(tx models.WhaleTransaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🐋 WHALE ALERT [%s]\n", tx.Classification.RiskLevel)
	fmt.Fprintf(&b, "💰 %s USD (%s %s)\n",
		humanize.CommafWithDigits(tx.USDValue, 0),
		humanize.CommafWithDigits(tx.ValueTokens, 2),
		tx.TokenSymbol)
	fmt.Fprintf(&b, "📊 %s\n", directionTitle(tx.Classification.Direction))
	fmt.Fprintf(&b, "🔗 From: %s\n", shortAddress(tx.FromAddress))
	fmt.Fprintf(&b, "🔗 To: %s\n", shortAddress(tx.ToAddress))

	if tx.Classification.FromExchange != "" {
		fmt.Fprintf(&b, "🏪 From: %s\n", tx.Classification.FromExchange)
	}
	if tx.Classification.ToExchange != "" {
		fmt.Fprintf(&b, "🏪 To: %s\n", tx.Classification.ToExchange)
	}

	fmt.Fprintf(&b, "⏰ %s\n", tx.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "🔍 Hash: %.16s...\n", tx.Hash)

	return b.String()
}

func directionTitle(direction string) string {
	words := strings.Split(strings.ToLower(direction), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func shortAddress(address string) string {
	if len(address) < 14 {
		return address
	}
	return address[:8] + "..." + address[len(address)-6:]
}
