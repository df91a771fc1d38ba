package scoring

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/trademind-labs/trademind/internal/models"
)

// ScoreReport renders a detailed human-readable scoring report for one coin.
func ScoreReport(coin models.Coin, scores models.ScoreBreakdown) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n📊 %s (%s) Score Report\n", coin.Name, coin.Symbol)
	b.WriteString("═══════════════════════════════════════\n\n")

	fmt.Fprintf(&b, "🎯 Overall: %.1f/100 (grade: %s)\n", scores.RiskAdjustedScore, scores.Grade)
	fmt.Fprintf(&b, "💡 Recommendation: %s\n\n", scores.Recommendation)

	b.WriteString("📈 Dimension scores:\n")
	fmt.Fprintf(&b, "├─ Social:      %.1f/100\n", scores.SocialScore)
	fmt.Fprintf(&b, "├─ On-chain:    %.1f/100\n", scores.OnChainScore)
	fmt.Fprintf(&b, "├─ Development: %.1f/100\n", scores.DevelopmentScore)
	fmt.Fprintf(&b, "├─ Liquidity:   %.1f/100\n", scores.LiquidityScore)
	fmt.Fprintf(&b, "└─ Holders:     %.1f/100\n\n", scores.HolderScore)

	b.WriteString("🚀 Momentum:\n")
	fmt.Fprintf(&b, "├─ Price momentum: %.1f/100\n", scores.MomentumScore)
	fmt.Fprintf(&b, "└─ Long-term trend: %.1f/100\n\n", scores.TrendScore)

	fmt.Fprintf(&b, "⚠️  Risk: %.1f/100\n\n", scores.RiskScore)

	fmt.Fprintf(&b, "💰 Price: $%s | Market cap: $%s | 24h volume: $%s\n",
		humanize.CommafWithDigits(coin.CurrentPrice, 6),
		humanize.CommafWithDigits(coin.MarketCap, 0),
		humanize.CommafWithDigits(coin.TotalVolume, 0))

	b.WriteString("═══════════════════════════════════════\n")
	return b.String()
}
