package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trademind-labs/trademind/internal/models"
)

func TestOnChainScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	tests := []struct {
		name     string
		coin     models.Coin
		expected float64
	}{
		{
			name: "sweet spot with good turnover and healthy growth",
			coin: models.Coin{
				MarketCap:               25_000_000,
				TotalVolume:             2_500_000, // 10% turnover
				PriceChangePercentage7d: 15.8,
			},
			// 30 (10M-50M band) + 15 (good turnover) + 20 (healthy growth)
			expected: 65,
		},
		{
			name:     "empty record keeps the 7d baseline band only",
			coin:     models.Coin{},
			expected: 20,
		},
		{
			name: "small cap with extreme pump",
			coin: models.Coin{
				MarketCap:               800_000,
				TotalVolume:             400_000, // 50% turnover
				PriceChangePercentage7d: 180,
			},
			// 10 (outside bands) + 25 (very high turnover) + 5 (too volatile)
			expected: 40,
		},
		{
			name: "full record with supply and ATH distance",
			coin: models.Coin{
				MarketCap:               25_000_000,
				TotalVolume:             2_500_000,
				PriceChangePercentage7d: 15.8,
				CirculatingSupply:       900_000_000,
				TotalSupply:             1_000_000_000,
				CurrentPrice:            0.5,
				ATH:                     1.0, // 50% below ATH
			},
			// 65 + 15 (circulation > 0.8) + 8 (distance in [0.5, 0.8))
			expected: 88,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.OnChainScore(tt.coin), 0.001)
		})
	}
}

func TestSocialScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("all zero inputs contribute zero", func(t *testing.T) {
		assert.Zero(t, calc.SocialScore(models.Coin{}))
	})

	t.Run("log scaling of twitter followers", func(t *testing.T) {
		// log10(10000) * 8 = 32
		score := calc.SocialScore(models.Coin{TwitterFollowers: 10_000})
		assert.InDelta(t, 32, score, 0.001)
	})

	t.Run("twitter contribution is capped at 40", func(t *testing.T) {
		score := calc.SocialScore(models.Coin{TwitterFollowers: 100_000_000})
		assert.InDelta(t, 40, score, 0.001)
	})

	t.Run("reddit activity bonus", func(t *testing.T) {
		// base: log10(10000)*4 = 16, bonus: (500/10000)*200 = 10 (cap)
		score := calc.SocialScore(models.Coin{
			RedditSubscribers:    10_000,
			RedditActiveUsers48h: 500,
		})
		assert.InDelta(t, 26, score, 0.001)
	})
}

func TestDevelopmentScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	tests := []struct {
		name     string
		coin     models.Coin
		expected float64
	}{
		{"no activity", models.Coin{}, 0},
		{"moderate commits only", models.Coin{GithubCommits4w: 30}, 20},
		{"very active development", models.Coin{GithubCommits4w: 120}, 40},
		{
			"commits with issue and PR management",
			models.Coin{GithubCommits4w: 60, GithubClosedIssues: 70, GithubMergedPRs: 25},
			// 30 + 10 + 7
			47,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.DevelopmentScore(tt.coin), 0.001)
		})
	}
}

func TestLiquidityScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("zero market cap or volume scores zero", func(t *testing.T) {
		assert.Zero(t, calc.LiquidityScore(models.Coin{MarketCap: 1_000_000}))
		assert.Zero(t, calc.LiquidityScore(models.Coin{TotalVolume: 1_000_000}))
	})

	t.Run("tight spread scores higher than wide spread", func(t *testing.T) {
		base := models.Coin{
			MarketCap:    20_000_000,
			TotalVolume:  2_000_000,
			CurrentPrice: 1.0,
		}

		tight := base
		tight.High24h, tight.Low24h = 1.02, 0.99

		wide := base
		wide.High24h, wide.Low24h = 1.4, 0.9

		assert.Greater(t, calc.LiquidityScore(tight), calc.LiquidityScore(wide))
	})
}

func TestHolderScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	tests := []struct {
		name     string
		coin     models.Coin
		expected float64
	}{
		{"no data defaults to neutral", models.Coin{}, 50},
		{"strong hands", models.Coin{MarketCap: 10_000_000, TotalVolume: 500_000}, 80},
		{"weak hands", models.Coin{MarketCap: 10_000_000, TotalVolume: 9_000_000}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calc.HolderScore(tt.coin), 0.001)
		})
	}
}

func TestMomentumScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("strong gains clamp at 100", func(t *testing.T) {
		score := calc.MomentumScore(models.Coin{
			PriceChangePercentage24h: 12,
			PriceChangePercentage7d:  60,
		})
		assert.InDelta(t, 100, score, 0.001)
	})

	t.Run("deep losses drain the score", func(t *testing.T) {
		score := calc.MomentumScore(models.Coin{
			PriceChangePercentage24h: -30,
			PriceChangePercentage7d:  -40,
		})
		assert.InDelta(t, 5, score, 0.001) // 50 - 20 - 25
	})
}

func TestTrendScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("missing 30d change is skipped", func(t *testing.T) {
		assert.InDelta(t, 50, calc.TrendScore(models.Coin{}), 0.001)
	})

	t.Run("downtrend penalized proportionally", func(t *testing.T) {
		// 50 - 40/10 = 46
		score := calc.TrendScore(models.Coin{PriceChangePercentage30d: -40})
		assert.InDelta(t, 46, score, 0.001)
	})

	t.Run("near ATH strengthens the trend", func(t *testing.T) {
		score := calc.TrendScore(models.Coin{
			PriceChangePercentage30d: 60,
			CurrentPrice:             0.9,
			ATH:                      1.0,
		})
		assert.InDelta(t, 95, score, 0.001) // 50 + 25 + 20
	})
}

func TestRiskScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("empty record accumulates every penalty", func(t *testing.T) {
		// 30 (tiny cap) + 20 (no volume) + 15 (no social) + 10 (no commits)
		assert.InDelta(t, 75, calc.RiskScore(models.Coin{}), 0.001)
	})

	t.Run("healthy large cap is low risk", func(t *testing.T) {
		coin := models.Coin{
			MarketCap:               200_000_000,
			TotalVolume:             20_000_000,
			PriceChangePercentage7d: 5,
			TwitterFollowers:        100_000,
			RedditSubscribers:       50_000,
			GithubCommits4w:         80,
		}
		assert.Zero(t, calc.RiskScore(coin))
	})
}

func TestComprehensiveScore(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("all-zero coin yields the defined default breakdown", func(t *testing.T) {
		b := calc.ComprehensiveScore(models.Coin{})

		assert.Zero(t, b.SocialScore)
		assert.Zero(t, b.DevelopmentScore)
		assert.Zero(t, b.LiquidityScore)
		assert.InDelta(t, 20, b.OnChainScore, 0.001)
		assert.InDelta(t, 50, b.HolderScore, 0.001)
		assert.InDelta(t, 75, b.RiskScore, 0.001)
		assert.InDelta(t, 10, b.TotalScore, 0.001)
		assert.InDelta(t, 6.25, b.RiskAdjustedScore, 0.001)
		assert.Equal(t, "F", b.Grade)
		assert.Equal(t, "AVOID", b.Recommendation)
	})

	t.Run("risk-adjusted score never exceeds the total", func(t *testing.T) {
		coins := []models.Coin{
			{},
			{MarketCap: 25_000_000, TotalVolume: 2_500_000, TwitterFollowers: 15_000},
			{
				MarketCap:               40_000_000,
				TotalVolume:             8_000_000,
				TwitterFollowers:        120_000,
				RedditSubscribers:       30_000,
				GithubCommits4w:         90,
				PriceChangePercentage7d: 12,
			},
		}

		for _, coin := range coins {
			b := calc.ComprehensiveScore(coin)
			assert.LessOrEqual(t, b.RiskAdjustedScore, b.TotalScore)
		}
	})
}

func TestGradeMonotonic(t *testing.T) {
	// A strictly higher score never yields a worse grade.
	order := map[string]int{
		"F": 0, "D": 1, "C-": 2, "C": 3, "C+": 4,
		"B-": 5, "B": 6, "B+": 7, "A-": 8, "A": 9, "A+": 10,
	}

	prev := gradeFor(0)
	for score := 1.0; score <= 100; score++ {
		grade := gradeFor(score)
		assert.GreaterOrEqual(t, order[grade], order[prev], "score %.0f", score)
		prev = grade
	}
}

func TestRecommendationBuckets(t *testing.T) {
	tests := []struct {
		score    float64
		risk     float64
		expected string
	}{
		{90, 20, "STRONG_BUY"},
		{90, 35, "BUY"},        // too risky for STRONG_BUY
		{78, 38, "BUY"},
		{70, 45, "MODERATE_BUY"},
		{70, 60, "HOLD_WATCH"}, // risk disqualifies MODERATE_BUY
		{50, 10, "WEAK_HOLD"},
		{30, 10, "AVOID"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, recommendationFor(tt.score, tt.risk),
			"score=%.0f risk=%.0f", tt.score, tt.risk)
	}
}

func TestDefaultWeightsSum(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 0.001)
}
