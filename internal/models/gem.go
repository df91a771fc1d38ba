package models

import "time"

// Discovery sources for gem candidates.
const (
	SourceTrending    = "trending"
	SourceNewListing  = "new_listing"
	SourceVolumeSurge = "volume_surge"
	SourceSocialBuzz  = "social_buzz"
)

// Risk levels assigned during discovery.
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskVeryHigh = "VERY_HIGH"
)

// GemCandidate is a coin that passed the discovery filters, enriched with
// the quick ranking score and discovery metadata. Never mutated after
// enrichment.
type GemCandidate struct {
	Coin

	DiscoverySource string
	DiscoveredAt    time.Time
	PotentialScore  float64
	RiskLevel       string
	Recommendation  string
}
