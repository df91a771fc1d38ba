package scoring

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trademind-labs/trademind/internal/models"
)

// Weights are the five dimension weights; they should sum to 1.0.
type Weights struct {
	Social    float64
	OnChain   float64
	Dev       float64
	Liquidity float64
	Holder    float64
}

// DefaultWeights returns the tuned production weights.
func DefaultWeights() Weights {
	return Weights{
		Social:    0.3,
		OnChain:   0.25,
		Dev:       0.2,
		Liquidity: 0.15,
		Holder:    0.1,
	}
}

// Sum returns the weight total.
func (w Weights) Sum() float64 {
	return w.Social + w.OnChain + w.Dev + w.Liquidity + w.Holder
}

// Calculator computes multi-dimensional scores for coins.
type Calculator struct {
	weights Weights
	logger  zerolog.Logger
}

// NewCalculator creates a calculator with the given weights. A weight sum
// away from 1.0 is a soft invariant violation: logged, not rejected.
func NewCalculator(weights Weights) *Calculator {
	logger := log.With().Str("component", "score_calculator").Logger()

	if math.Abs(weights.Sum()-1.0) > 0.01 {
		logger.Warn().Float64("sum", weights.Sum()).Msg("weights do not sum to 1.0")
	}

	return &Calculator{weights: weights, logger: logger}
}

// ComprehensiveScore computes all dimension scores, momentum, trend and risk,
// combines them into a risk-adjusted total and maps it to a grade and a
// recommendation. Total function: defined for any coin record, missing fields
// just contribute their baseline.
func (c *Calculator) ComprehensiveScore(coin models.Coin) models.ScoreBreakdown {
	social := c.SocialScore(coin)
	onchain := c.OnChainScore(coin)
	dev := c.DevelopmentScore(coin)
	liquidity := c.LiquidityScore(coin)
	holder := c.HolderScore(coin)

	total := social*c.weights.Social +
		onchain*c.weights.OnChain +
		dev*c.weights.Dev +
		liquidity*c.weights.Liquidity +
		holder*c.weights.Holder

	risk := c.RiskScore(coin)

	// Risk can discount the total by at most 50%.
	riskAdjusted := total * (1 - risk/200)

	return models.ScoreBreakdown{
		SocialScore:       round2(social),
		OnChainScore:      round2(onchain),
		DevelopmentScore:  round2(dev),
		LiquidityScore:    round2(liquidity),
		HolderScore:       round2(holder),
		MomentumScore:     round2(c.MomentumScore(coin)),
		TrendScore:        round2(c.TrendScore(coin)),
		RiskScore:         round2(risk),
		TotalScore:        round2(total),
		RiskAdjustedScore: round2(riskAdjusted),
		Grade:             gradeFor(riskAdjusted),
		Recommendation:    recommendationFor(riskAdjusted, risk),
	}
}

// SocialScore rates community size on a logarithmic scale (0-100).
func (c *Calculator) SocialScore(coin models.Coin) float64 {
	score := 0.0

	// Twitter, up to 40 points
	if coin.TwitterFollowers > 0 {
		score += math.Min(40, math.Log10(float64(coin.TwitterFollowers))*8)
	}

	// Reddit, up to 20 points plus an activity bonus
	if coin.RedditSubscribers > 0 {
		score += math.Min(20, math.Log10(float64(coin.RedditSubscribers))*4)

		if coin.RedditActiveUsers48h > 0 {
			activityRatio := float64(coin.RedditActiveUsers48h) / float64(coin.RedditSubscribers)
			score += math.Min(10, activityRatio*200)
		}
	}

	// Telegram, up to 20 points
	if coin.TelegramUsers > 0 {
		score += math.Min(20, math.Log10(float64(coin.TelegramUsers))*4)
	}

	// Facebook, up to 10 points
	if coin.FacebookLikes > 0 {
		score += math.Min(10, math.Log10(float64(coin.FacebookLikes))*2)
	}

	return math.Min(score, 100)
}

// OnChainScore rates market structure (0-100): market-cap banding, turnover,
// 7d price behavior, circulating supply and distance from ATH.
func (c *Calculator) OnChainScore(coin models.Coin) float64 {
	score := 0.0

	// Market cap sweet spot: 10M-50M scores highest, tapering outward.
	mc := coin.MarketCap
	switch {
	case mc <= 0:
		// no contribution
	case mc >= 10_000_000 && mc <= 50_000_000:
		score += 30
	case mc >= 5_000_000 && mc < 10_000_000:
		score += 25
	case mc >= 1_000_000 && mc < 5_000_000:
		score += 20
	case mc > 50_000_000 && mc <= 100_000_000:
		score += 15
	default:
		score += 10
	}

	// Turnover ratio
	if coin.TotalVolume > 0 && mc > 0 {
		ratio := coin.TotalVolume / mc
		switch {
		case ratio > 0.2:
			score += 25
		case ratio > 0.1:
			score += 20
		case ratio > 0.05:
			score += 15
		case ratio > 0.02:
			score += 10
		default:
			score += 5
		}
	}

	// Steady 7d growth beats extremes in either direction.
	change7d := coin.PriceChangePercentage7d
	switch {
	case change7d >= 0 && change7d <= 50:
		score += 20
	case change7d >= -20 && change7d < 0:
		score += 15
	case change7d > 50 && change7d <= 100:
		score += 10
	default:
		score += 5
	}

	// Circulating share of total supply
	if coin.CirculatingSupply > 0 && coin.TotalSupply > 0 {
		circulation := coin.CirculatingSupply / coin.TotalSupply
		switch {
		case circulation > 0.8:
			score += 15
		case circulation > 0.5:
			score += 10
		default:
			score += 5
		}
	}

	// Distance from ATH, non-monotonic: very close to ATH is riskier than a
	// moderate distance.
	if coin.CurrentPrice > 0 && coin.ATH > 0 {
		distance := (coin.ATH - coin.CurrentPrice) / coin.ATH
		switch {
		case distance < 0.2:
			score += 5
		case distance < 0.5:
			score += 10
		case distance < 0.8:
			score += 8
		default:
			score += 5
		}
	}

	return math.Min(score, 100)
}

// DevelopmentScore rates GitHub activity (0-100).
func (c *Calculator) DevelopmentScore(coin models.Coin) float64 {
	score := 0.0

	// Four-week commit count, up to 40 points
	if commits := coin.GithubCommits4w; commits > 0 {
		switch {
		case commits >= 100:
			score += 40
		case commits >= 50:
			score += 30
		case commits >= 20:
			score += 20
		case commits >= 5:
			score += 10
		default:
			score += 5
		}
	}

	if coin.GithubStars > 0 {
		score += math.Min(20, math.Log10(float64(coin.GithubStars))*5)
	}

	if coin.GithubForks > 0 {
		score += math.Min(15, math.Log10(float64(coin.GithubForks))*3.75)
	}

	if issues := coin.GithubClosedIssues; issues > 0 {
		switch {
		case issues >= 100:
			score += 15
		case issues >= 50:
			score += 10
		case issues >= 20:
			score += 7
		default:
			score += 3
		}
	}

	if prs := coin.GithubMergedPRs; prs > 0 {
		switch {
		case prs >= 50:
			score += 10
		case prs >= 20:
			score += 7
		case prs >= 10:
			score += 5
		default:
			score += 2
		}
	}

	return math.Min(score, 100)
}

// LiquidityScore rates trading quality (0-100). Returns 0 when market cap or
// volume is non-positive.
func (c *Calculator) LiquidityScore(coin models.Coin) float64 {
	if coin.MarketCap <= 0 || coin.TotalVolume <= 0 {
		return 0
	}

	score := 0.0

	ratio := coin.TotalVolume / coin.MarketCap
	switch {
	case ratio >= 0.3:
		score += 50
	case ratio >= 0.2:
		score += 45
	case ratio >= 0.1:
		score += 40
	case ratio >= 0.05:
		score += 30
	case ratio >= 0.02:
		score += 20
	case ratio >= 0.01:
		score += 10
	default:
		score += 5
	}

	switch vol := coin.TotalVolume; {
	case vol >= 10_000_000:
		score += 25
	case vol >= 5_000_000:
		score += 20
	case vol >= 1_000_000:
		score += 15
	case vol >= 500_000:
		score += 10
	case vol >= 100_000:
		score += 5
	default:
		score += 2
	}

	// No order book data; the 24h high/low spread stands in for it. Tighter
	// spread scores higher.
	if coin.High24h > 0 && coin.Low24h > 0 && coin.CurrentPrice > 0 {
		spread := (coin.High24h - coin.Low24h) / coin.CurrentPrice
		switch {
		case spread <= 0.05:
			score += 25
		case spread <= 0.1:
			score += 20
		case spread <= 0.2:
			score += 15
		case spread <= 0.3:
			score += 10
		default:
			score += 5
		}
	}

	return math.Min(score, 100)
}

// HolderScore is a proxy only: no real holder data is available, so the
// inverse turnover ("hodl ratio") stands in for holder strength.
func (c *Calculator) HolderScore(coin models.Coin) float64 {
	score := 50.0

	if coin.MarketCap > 0 && coin.TotalVolume > 0 {
		hodlRatio := 1 - math.Min(coin.TotalVolume/coin.MarketCap, 1)
		switch {
		case hodlRatio > 0.8:
			score = 80
		case hodlRatio > 0.6:
			score = 70
		case hodlRatio > 0.4:
			score = 60
		case hodlRatio > 0.2:
			score = 40
		default:
			score = 20
		}
	}

	return math.Min(score, 100)
}

// MomentumScore rates short and medium term price momentum (0-100), neutral
// at 50. The 7d change carries more weight than the 24h change.
func (c *Calculator) MomentumScore(coin models.Coin) float64 {
	score := 50.0

	switch change24h := coin.PriceChangePercentage24h; {
	case change24h > 10:
		score += 20
	case change24h > 5:
		score += 15
	case change24h > 0:
		score += 10
	case change24h > -5:
		score -= 5
	case change24h > -10:
		score -= 10
	default:
		score -= 20
	}

	switch change7d := coin.PriceChangePercentage7d; {
	case change7d > 50:
		score += 30
	case change7d > 20:
		score += 25
	case change7d > 10:
		score += 20
	case change7d > 0:
		score += 15
	case change7d > -10:
		score -= 10
	case change7d > -20:
		score -= 15
	default:
		score -= 25
	}

	return clamp(score)
}

// TrendScore rates the longer-term trend (0-100), neutral at 50. The 30d band
// is skipped when the field is absent (zero).
func (c *Calculator) TrendScore(coin models.Coin) float64 {
	score := 50.0

	if change30d := coin.PriceChangePercentage30d; change30d != 0 {
		switch {
		case change30d > 100:
			score += 30
		case change30d > 50:
			score += 25
		case change30d > 20:
			score += 20
		case change30d > 0:
			score += 15
		default:
			score -= math.Abs(change30d) / 10
		}
	}

	if coin.CurrentPrice > 0 && coin.ATH > 0 {
		switch ratio := coin.CurrentPrice / coin.ATH; {
		case ratio > 0.8:
			score += 20
		case ratio > 0.5:
			score += 15
		case ratio > 0.2:
			score += 10
		default:
			score += 5
		}
	}

	return clamp(score)
}

// RiskScore is an additive penalty model (0-100, higher = riskier) over five
// independent factors.
func (c *Calculator) RiskScore(coin models.Coin) float64 {
	risk := 0.0

	// Market cap smallness; large caps add nothing.
	switch mc := coin.MarketCap; {
	case mc < 1_000_000:
		risk += 30
	case mc < 10_000_000:
		risk += 20
	case mc < 50_000_000:
		risk += 10
	}

	switch volatility := math.Abs(coin.PriceChangePercentage7d); {
	case volatility > 100:
		risk += 25
	case volatility > 50:
		risk += 15
	case volatility > 20:
		risk += 10
	}

	switch vol := coin.TotalVolume; {
	case vol < 100_000:
		risk += 20
	case vol < 500_000:
		risk += 15
	case vol < 1_000_000:
		risk += 10
	}

	twitter := coin.TwitterFollowers
	reddit := coin.RedditSubscribers
	if twitter < 1000 && reddit < 1000 {
		risk += 15
	} else if twitter < 5000 && reddit < 5000 {
		risk += 10
	}

	if coin.GithubCommits4w == 0 {
		risk += 10
	} else if coin.GithubCommits4w < 5 {
		risk += 5
	}

	return math.Min(risk, 100)
}

// gradeFor maps a score onto the fixed descending grade ladder.
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// recommendationFor combines score and risk thresholds; buckets are evaluated
// in descending score order, first match wins.
func recommendationFor(score, risk float64) string {
	switch {
	case score >= 85 && risk <= 30:
		return "STRONG_BUY"
	case score >= 75 && risk <= 40:
		return "BUY"
	case score >= 65 && risk <= 50:
		return "MODERATE_BUY"
	case score >= 55:
		return "HOLD_WATCH"
	case score >= 45:
		return "WEAK_HOLD"
	default:
		return "AVOID"
	}
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(score, 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
