package models

// ScoreBreakdown is the result of a comprehensive scoring pass over one coin.
// Every dimension score sits in [0, 100]; RiskScore is higher-is-riskier.
type ScoreBreakdown struct {
	SocialScore      float64
	OnChainScore     float64
	DevelopmentScore float64
	LiquidityScore   float64
	HolderScore      float64

	MomentumScore float64
	TrendScore    float64
	RiskScore     float64

	TotalScore        float64
	RiskAdjustedScore float64

	Grade          string
	Recommendation string
}
