package gems

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/trademind-labs/trademind/internal/models"
)

// GemReport renders one discovered candidate as a readable report block.
func GemReport(gem models.GemCandidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n💎 %s ($%s)\n", gem.Name, gem.Symbol)
	b.WriteString("───────────────────────────\n")
	fmt.Fprintf(&b, "💰 Price: $%s\n", humanize.CommafWithDigits(gem.CurrentPrice, 6))
	fmt.Fprintf(&b, "📊 Market cap: $%s\n", humanize.CommafWithDigits(gem.MarketCap, 0))
	fmt.Fprintf(&b, "📈 24h volume: $%s\n", humanize.CommafWithDigits(gem.TotalVolume, 0))
	fmt.Fprintf(&b, "🔥 Potential: %.1f/100\n\n", gem.PotentialScore)

	b.WriteString("📈 Price change:\n")
	fmt.Fprintf(&b, "   24h: %+.2f%%\n", gem.PriceChangePercentage24h)
	fmt.Fprintf(&b, "   7d:  %+.2f%%\n\n", gem.PriceChangePercentage7d)

	b.WriteString("🌐 Social:\n")
	fmt.Fprintf(&b, "   Twitter: %s followers\n", humanize.Comma(gem.TwitterFollowers))
	fmt.Fprintf(&b, "   Reddit: %s subscribers\n\n", humanize.Comma(gem.RedditSubscribers))

	fmt.Fprintf(&b, "⚠️ Risk: %s\n", gem.RiskLevel)
	fmt.Fprintf(&b, "💡 Recommendation: %s\n", gem.Recommendation)
	fmt.Fprintf(&b, "🔍 Source: %s\n", gem.DiscoverySource)
	b.WriteString("───────────────────────────\n")

	return b.String()
}
