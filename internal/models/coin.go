package models

// Coin is a flat market record assembled from CoinGecko payloads. The markets
// endpoint fills the price/volume fields only; community and developer counters
// require a follow-up call to the coin detail endpoint.
type Coin struct {
	ID            string
	Symbol        string
	Name          string
	MarketCapRank int

	CurrentPrice float64
	MarketCap    float64
	TotalVolume  float64
	High24h      float64
	Low24h       float64

	PriceChange24h           float64
	PriceChangePercentage24h float64
	PriceChangePercentage7d  float64
	PriceChangePercentage30d float64

	CirculatingSupply float64
	TotalSupply       float64
	MaxSupply         float64

	ATH                 float64
	ATHChangePercentage float64
	ATHDate             string

	TwitterFollowers     int64
	RedditSubscribers    int64
	RedditActiveUsers48h int64
	TelegramUsers        int64
	FacebookLikes        int64

	GithubCommits4w    int64
	GithubStars        int64
	GithubForks        int64
	GithubSubscribers  int64
	GithubClosedIssues int64
	GithubMergedPRs    int64

	GenesisDate string
	LastUpdated string
}

// TrendingCoin is a lightweight entry from the search/trending endpoint.
type TrendingCoin struct {
	ID            string
	Symbol        string
	Name          string
	MarketCapRank int
	PriceBTC      float64
	Score         int
}

// GlobalMarket holds aggregate figures from the global endpoint.
type GlobalMarket struct {
	TotalMarketCapUSD      float64
	TotalVolumeUSD         float64
	MarketCapPercentageBTC float64
	MarketCapPercentageETH float64
	ActiveCryptocurrencies int
	Markets                int
}
