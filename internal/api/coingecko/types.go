package coingecko

// Raw payload shapes for the CoinGecko v3 API. Numeric fields that the API
// reports as null simply keep their zero value after unmarshaling.

type trendingResponse struct {
	Coins []struct {
		Item trendingItem `json:"item"`
	} `json:"coins"`
}

type trendingItem struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	MarketCapRank int     `json:"market_cap_rank"`
	PriceBTC      float64 `json:"price_btc"`
	Score         int     `json:"score"`
}

type marketCoin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	MarketCapRank            int     `json:"market_cap_rank"`
	TotalVolume              float64 `json:"total_volume"`
	High24h                  float64 `json:"high_24h"`
	Low24h                   float64 `json:"low_24h"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  float64 `json:"price_change_percentage_7d_in_currency"`
	PriceChangePercentage30d float64 `json:"price_change_percentage_30d_in_currency"`
	CirculatingSupply        float64 `json:"circulating_supply"`
	TotalSupply              float64 `json:"total_supply"`
	MaxSupply                float64 `json:"max_supply"`
	ATH                      float64 `json:"ath"`
	ATHChangePercentage      float64 `json:"ath_change_percentage"`
	ATHDate                  string  `json:"ath_date"`
	LastUpdated              string  `json:"last_updated"`
}

type coinDetail struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	GenesisDate string `json:"genesis_date"`
	LastUpdated string `json:"last_updated"`

	MarketData struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		MarketCap                map[string]float64 `json:"market_cap"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		High24h                  map[string]float64 `json:"high_24h"`
		Low24h                   map[string]float64 `json:"low_24h"`
		ATH                      map[string]float64 `json:"ath"`
		ATHDate                  map[string]string  `json:"ath_date"`
		CirculatingSupply        float64            `json:"circulating_supply"`
		TotalSupply              float64            `json:"total_supply"`
		MaxSupply                float64            `json:"max_supply"`
		PriceChange24h           float64            `json:"price_change_24h"`
		PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
		PriceChangePercentage7d  float64            `json:"price_change_percentage_7d"`
		PriceChangePercentage30d float64            `json:"price_change_percentage_30d"`
	} `json:"market_data"`

	CommunityData struct {
		TwitterFollowers       int64   `json:"twitter_followers"`
		RedditSubscribers      int64   `json:"reddit_subscribers"`
		RedditAccountsActive48 float64 `json:"reddit_accounts_active_48h"`
		TelegramUsers          int64   `json:"telegram_channel_user_count"`
		FacebookLikes          int64   `json:"facebook_likes"`
	} `json:"community_data"`

	DeveloperData struct {
		Forks              int64 `json:"forks"`
		Stars              int64 `json:"stars"`
		Subscribers        int64 `json:"subscribers"`
		CommitCount4Weeks  int64 `json:"commit_count_4_weeks"`
		ClosedIssues       int64 `json:"closed_issues"`
		PullRequestsMerged int64 `json:"pull_requests_merged"`
	} `json:"developer_data"`
}

type searchResponse struct {
	Coins []SearchResult `json:"coins"`
}

// SearchResult is a match from the search endpoint.
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

type globalResponse struct {
	Data struct {
		TotalMarketCap         map[string]float64 `json:"total_market_cap"`
		TotalVolume            map[string]float64 `json:"total_volume"`
		MarketCapPercentage    map[string]float64 `json:"market_cap_percentage"`
		ActiveCryptocurrencies int                `json:"active_cryptocurrencies"`
		Markets                int                `json:"markets"`
	} `json:"data"`
}
