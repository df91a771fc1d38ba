package gems

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trademind-labs/trademind/internal/api/coingecko"
	"github.com/trademind-labs/trademind/internal/models"
)

// MarketSource is the slice of the market-data client the finder needs.
type MarketSource interface {
	TrendingCoins(ctx context.Context) ([]models.TrendingCoin, error)
	Markets(ctx context.Context, p coingecko.MarketsParams) ([]models.Coin, error)
	CoinDetails(ctx context.Context, coinID string) (*models.Coin, error)
}

// Finder discovers gem candidates through four independent strategies. The
// seen-id set lives on the finder instance for the duration of one run; a
// Finder is not safe for concurrent use.
type Finder struct {
	source MarketSource
	logger zerolog.Logger

	minMarketCap float64
	maxMarketCap float64
	minVolume24h float64

	seen map[string]struct{}
}

// FinderOptions holds filter thresholds for creating a new Finder
type FinderOptions struct {
	MinMarketCap float64
	MaxMarketCap float64
	MinVolume24h float64
}

// NewFinder creates a gem finder over the given market source.
func NewFinder(source MarketSource, opts FinderOptions) *Finder {
	if opts.MinMarketCap == 0 {
		opts.MinMarketCap = 1_000_000
	}
	if opts.MaxMarketCap == 0 {
		opts.MaxMarketCap = 100_000_000
	}
	if opts.MinVolume24h == 0 {
		opts.MinVolume24h = 100_000
	}

	return &Finder{
		source:       source,
		logger:       log.With().Str("component", "gem_finder").Logger(),
		minMarketCap: opts.MinMarketCap,
		maxMarketCap: opts.MaxMarketCap,
		minVolume24h: opts.MinVolume24h,
		seen:         make(map[string]struct{}),
	}
}

// TrendingGems filters the provider's trending list through the universal gem
// filter.
func (f *Finder) TrendingGems(ctx context.Context) ([]models.GemCandidate, error) {
	f.logger.Info().Msg("Scanning trending coins")

	trending, err := f.source.TrendingCoins(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []models.GemCandidate
	for _, coin := range trending {
		details, err := f.source.CoinDetails(ctx, coin.ID)
		if err != nil {
			f.logger.Warn().Err(err).Str("coin", coin.ID).Msg("Skipping trending coin")
			continue
		}
		if f.isGemCandidate(*details) {
			candidates = append(candidates, f.enrich(*details, models.SourceTrending))
		}
	}

	f.logger.Info().Int("count", len(candidates)).Msg("Trending gems found")
	return candidates, nil
}

// NewListings scans a broad market snapshot for candidates not processed
// before. The provider has no true recently-listed feed, so the snapshot is
// an approximation.
func (f *Finder) NewListings(ctx context.Context) ([]models.GemCandidate, error) {
	f.logger.Info().Msg("Scanning new listings")

	coins, err := f.source.Markets(ctx, coingecko.MarketsParams{
		Order:                 coingecko.OrderMarketCapDesc,
		PriceChangePercentage: "24h,7d",
	})
	if err != nil {
		return nil, err
	}

	var candidates []models.GemCandidate
	for _, coin := range coins {
		if coin.MarketCap <= 0 || coin.TotalVolume <= 0 {
			continue
		}
		if _, ok := f.seen[coin.ID]; ok {
			continue
		}

		details, err := f.source.CoinDetails(ctx, coin.ID)
		if err != nil {
			f.logger.Warn().Err(err).Str("coin", coin.ID).Msg("Skipping new listing")
			continue
		}
		if f.isGemCandidate(*details) {
			candidates = append(candidates, f.enrich(*details, models.SourceNewListing))
			f.seen[coin.ID] = struct{}{}
		}
	}

	f.logger.Info().Int("count", len(candidates)).Msg("New-listing gems found")
	return candidates, nil
}

// VolumeSurgeGems scans the snapshot ordered by volume, pre-filtering by
// market-cap band and minimum volume before the expensive detail fetch.
func (f *Finder) VolumeSurgeGems(ctx context.Context) ([]models.GemCandidate, error) {
	f.logger.Info().Msg("Scanning volume surges")

	coins, err := f.source.Markets(ctx, coingecko.MarketsParams{
		Order:                 coingecko.OrderVolumeDesc,
		PriceChangePercentage: "24h,7d",
	})
	if err != nil {
		return nil, err
	}

	var candidates []models.GemCandidate
	for _, coin := range coins {
		if _, ok := f.seen[coin.ID]; ok {
			continue
		}
		if coin.MarketCap < f.minMarketCap || coin.MarketCap > f.maxMarketCap ||
			coin.TotalVolume < f.minVolume24h {
			continue
		}

		details, err := f.source.CoinDetails(ctx, coin.ID)
		if err != nil {
			f.logger.Warn().Err(err).Str("coin", coin.ID).Msg("Skipping volume-surge coin")
			continue
		}
		if f.isGemCandidate(*details) {
			candidates = append(candidates, f.enrich(*details, models.SourceVolumeSurge))
			f.seen[coin.ID] = struct{}{}
		}
	}

	f.logger.Info().Int("count", len(candidates)).Msg("Volume-surge gems found")
	return candidates, nil
}

// socialBuzzLimit caps the per-coin detail fetches of the social-buzz
// strategy to stay inside provider rate limits.
const socialBuzzLimit = 50

// SocialBuzzGems scans the top of the market-cap snapshot for coins with a
// growing social presence.
func (f *Finder) SocialBuzzGems(ctx context.Context) ([]models.GemCandidate, error) {
	f.logger.Info().Msg("Scanning social buzz")

	coins, err := f.source.Markets(ctx, coingecko.MarketsParams{
		Order: coingecko.OrderMarketCapDesc,
	})
	if err != nil {
		return nil, err
	}

	if len(coins) > socialBuzzLimit {
		coins = coins[:socialBuzzLimit]
	}

	var candidates []models.GemCandidate
	for _, coin := range coins {
		if _, ok := f.seen[coin.ID]; ok {
			continue
		}
		if coin.MarketCap < f.minMarketCap || coin.MarketCap > f.maxMarketCap {
			continue
		}

		details, err := f.source.CoinDetails(ctx, coin.ID)
		if err != nil {
			f.logger.Warn().Err(err).Str("coin", coin.ID).Msg("Skipping social-buzz coin")
			continue
		}
		if f.hasSocialBuzz(*details) && f.isGemCandidate(*details) {
			candidates = append(candidates, f.enrich(*details, models.SourceSocialBuzz))
			f.seen[coin.ID] = struct{}{}
		}
	}

	f.logger.Info().Int("count", len(candidates)).Msg("Social-buzz gems found")
	return candidates, nil
}

// ComprehensiveScan clears the seen set, runs all four strategies in
// sequence, deduplicates by id keeping the higher potential score and sorts
// descending by potential score. A failing strategy is logged and skipped.
func (f *Finder) ComprehensiveScan(ctx context.Context) []models.GemCandidate {
	f.logger.Info().Msg("Starting comprehensive gem scan")

	f.seen = make(map[string]struct{})

	strategies := []func(context.Context) ([]models.GemCandidate, error){
		f.TrendingGems,
		f.NewListings,
		f.VolumeSurgeGems,
		f.SocialBuzzGems,
	}

	var all []models.GemCandidate
	for _, strategy := range strategies {
		gems, err := strategy(ctx)
		if err != nil {
			f.logger.Error().Err(err).Msg("Discovery strategy failed")
			continue
		}
		all = append(all, gems...)
	}

	unique := Deduplicate(all)
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].PotentialScore > unique[j].PotentialScore
	})

	f.logger.Info().Int("count", len(unique)).Msg("Comprehensive scan complete")
	return unique
}

// Deduplicate keeps, per coin id, the single candidate with the higher
// potential score. Idempotent: a deduplicated list passes through unchanged.
func Deduplicate(gems []models.GemCandidate) []models.GemCandidate {
	index := make(map[string]int)
	var unique []models.GemCandidate

	for _, gem := range gems {
		at, ok := index[gem.ID]
		if !ok {
			index[gem.ID] = len(unique)
			unique = append(unique, gem)
			continue
		}
		if gem.PotentialScore > unique[at].PotentialScore {
			unique[at] = gem
		}
	}

	return unique
}

// isGemCandidate is the universal filter: market cap inside the configured
// band, sufficient 24h volume, at least 1% daily turnover and some social
// footprint.
func (f *Finder) isGemCandidate(coin models.Coin) bool {
	if coin.MarketCap < f.minMarketCap || coin.MarketCap > f.maxMarketCap {
		return false
	}
	if coin.TotalVolume < f.minVolume24h {
		return false
	}
	if coin.MarketCap > 0 && coin.TotalVolume/coin.MarketCap < 0.01 {
		return false
	}
	if coin.TwitterFollowers == 0 && coin.RedditSubscribers == 0 {
		return false
	}
	return true
}

// hasSocialBuzz requires at least 2 of the 4 social threshold criteria.
func (f *Finder) hasSocialBuzz(coin models.Coin) bool {
	criteria := 0
	if coin.TwitterFollowers > 10_000 {
		criteria++
	}
	if coin.RedditSubscribers > 5_000 {
		criteria++
	}
	if coin.RedditActiveUsers48h > 100 {
		criteria++
	}
	if coin.TelegramUsers > 1_000 {
		criteria++
	}
	return criteria >= 2
}

func (f *Finder) enrich(coin models.Coin, source string) models.GemCandidate {
	potential := potentialScore(coin)

	return models.GemCandidate{
		Coin:            coin,
		DiscoverySource: source,
		DiscoveredAt:    time.Now().UTC(),
		PotentialScore:  potential,
		RiskLevel:       riskLevel(coin),
		Recommendation:  recommendationFor(potential),
	}
}

// potentialScore is the quick discovery-time ranking heuristic. Deliberately
// separate from the detailed risk-adjusted score: the two formulas overlap in
// intent but weight the inputs differently.
func potentialScore(coin models.Coin) float64 {
	score := 0.0

	// Market cap sweet spot
	switch mc := coin.MarketCap; {
	case mc >= 5_000_000 && mc <= 50_000_000:
		score += 25
	case mc >= 1_000_000 && mc < 5_000_000:
		score += 20
	case mc > 0 && mc < 1_000_000:
		score += 10
	}

	// Turnover
	if coin.MarketCap > 0 {
		switch ratio := coin.TotalVolume / coin.MarketCap; {
		case ratio > 0.1:
			score += 20
		case ratio > 0.05:
			score += 15
		case ratio > 0.02:
			score += 10
		}
	}

	// Social reach
	twitter := coin.TwitterFollowers
	reddit := coin.RedditSubscribers
	switch {
	case twitter > 50_000 || reddit > 20_000:
		score += 15
	case twitter > 10_000 || reddit > 5_000:
		score += 10
	case twitter > 1_000 || reddit > 1_000:
		score += 5
	}

	// Development activity
	switch commits := coin.GithubCommits4w; {
	case commits > 50:
		score += 15
	case commits > 20:
		score += 10
	case commits > 5:
		score += 5
	}
	switch stars := coin.GithubStars; {
	case stars > 1_000:
		score += 5
	case stars > 100:
		score += 3
	}

	// Recent momentum; a pump above 100% is probably already over.
	switch change7d := coin.PriceChangePercentage7d; {
	case change7d > 0 && change7d < 100:
		score += 10
	case change7d >= 100:
		score += 5
	}

	return min(score, 100)
}

// riskLevel counts independent discovery-time risk factors.
func riskLevel(coin models.Coin) string {
	factors := 0

	if coin.MarketCap < 5_000_000 {
		factors++
	}
	if coin.TotalVolume < 500_000 {
		factors++
	}
	if coin.TwitterFollowers < 1_000 && coin.RedditSubscribers < 1_000 {
		factors++
	}
	if coin.GithubCommits4w == 0 {
		factors++
	}
	if coin.PriceChangePercentage7d > 200 {
		factors++
	}

	switch {
	case factors >= 4:
		return models.RiskVeryHigh
	case factors >= 3:
		return models.RiskHigh
	case factors >= 2:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func recommendationFor(potential float64) string {
	switch {
	case potential >= 75:
		return "STRONG_BUY"
	case potential >= 60:
		return "BUY"
	case potential >= 40:
		return "WATCH"
	default:
		return "PASS"
	}
}
