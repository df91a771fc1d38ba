package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpclient "github.com/trademind-labs/trademind/internal/platform/http"
	"github.com/trademind-labs/trademind/internal/models"
)

// Market snapshot orderings.
const (
	OrderMarketCapDesc = "market_cap_desc"
	OrderVolumeDesc    = "volume_desc"
)

// Client is the CoinGecko API client
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new CoinGecko client
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	RateLimitPause time.Duration
}

// NewClient creates a new CoinGecko API client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://api.coingecko.com/api/v3"
	}

	return &Client{
		baseURL: options.BaseURL,
		httpClient: httpclient.NewClient(httpclient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			RateLimitPause: options.RateLimitPause,
		}),
		logger: log.With().Str("component", "coingecko_client").Logger(),
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	c.logger.Debug().Str("url", u).Msg("Fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Error parsing JSON")
		return fmt.Errorf("parsing JSON: %w", err)
	}

	return nil
}

// TrendingCoins fetches the search/trending list.
func (c *Client) TrendingCoins(ctx context.Context) ([]models.TrendingCoin, error) {
	var data trendingResponse
	if err := c.get(ctx, "search/trending", nil, &data); err != nil {
		return nil, err
	}

	trending := make([]models.TrendingCoin, 0, len(data.Coins))
	for _, entry := range data.Coins {
		trending = append(trending, models.TrendingCoin{
			ID:            entry.Item.ID,
			Symbol:        entry.Item.Symbol,
			Name:          entry.Item.Name,
			MarketCapRank: entry.Item.MarketCapRank,
			PriceBTC:      entry.Item.PriceBTC,
			Score:         entry.Item.Score,
		})
	}

	c.logger.Debug().Int("count", len(trending)).Msg("Fetched trending coins")
	return trending, nil
}

// MarketsParams controls a coins/markets snapshot request.
type MarketsParams struct {
	Order                 string
	PerPage               int
	Page                  int
	PriceChangePercentage string
	IDs                   []string
}

// Markets fetches a market snapshot ordered per params.
func (c *Client) Markets(ctx context.Context, p MarketsParams) ([]models.Coin, error) {
	if p.Order == "" {
		p.Order = OrderMarketCapDesc
	}
	if p.PerPage == 0 {
		p.PerPage = 250
	}
	if p.Page == 0 {
		p.Page = 1
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", p.Order)
	params.Set("per_page", strconv.Itoa(p.PerPage))
	params.Set("page", strconv.Itoa(p.Page))
	params.Set("sparkline", "false")
	if p.PriceChangePercentage != "" {
		params.Set("price_change_percentage", p.PriceChangePercentage)
	}
	if len(p.IDs) > 0 {
		// The API accepts at most 250 ids per request.
		ids := p.IDs
		if len(ids) > 250 {
			ids = ids[:250]
		}
		params.Set("ids", strings.Join(ids, ","))
	}

	var data []marketCoin
	if err := c.get(ctx, "coins/markets", params, &data); err != nil {
		return nil, err
	}

	coins := make([]models.Coin, 0, len(data))
	for _, m := range data {
		coins = append(coins, parseMarketCoin(m))
	}

	c.logger.Debug().Int("count", len(coins)).Str("order", p.Order).Msg("Fetched market snapshot")
	return coins, nil
}

// CoinMarketData fetches market data for a specific id set.
func (c *Client) CoinMarketData(ctx context.Context, ids []string) ([]models.Coin, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return c.Markets(ctx, MarketsParams{
		IDs:                   ids,
		PriceChangePercentage: "1h,24h,7d,30d",
	})
}

// CoinDetails fetches the full record for one coin, including community and
// developer counters.
func (c *Client) CoinDetails(ctx context.Context, coinID string) (*models.Coin, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "true")
	params.Set("market_data", "true")
	params.Set("community_data", "true")
	params.Set("developer_data", "true")
	params.Set("sparkline", "false")

	var data coinDetail
	if err := c.get(ctx, "coins/"+coinID, params, &data); err != nil {
		return nil, err
	}
	if data.ID == "" {
		return nil, fmt.Errorf("empty data returned for %s", coinID)
	}

	coin := parseCoinDetail(data)
	return &coin, nil
}

// SearchCoins searches coins by name or symbol.
func (c *Client) SearchCoins(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)

	var data searchResponse
	if err := c.get(ctx, "search", params, &data); err != nil {
		return nil, err
	}

	for i := range data.Coins {
		data.Coins[i].Symbol = strings.ToUpper(data.Coins[i].Symbol)
	}
	return data.Coins, nil
}

// GlobalData fetches aggregate market figures.
func (c *Client) GlobalData(ctx context.Context) (*models.GlobalMarket, error) {
	var data globalResponse
	if err := c.get(ctx, "global", nil, &data); err != nil {
		return nil, err
	}

	return &models.GlobalMarket{
		TotalMarketCapUSD:      data.Data.TotalMarketCap["usd"],
		TotalVolumeUSD:         data.Data.TotalVolume["usd"],
		MarketCapPercentageBTC: data.Data.MarketCapPercentage["btc"],
		MarketCapPercentageETH: data.Data.MarketCapPercentage["eth"],
		ActiveCryptocurrencies: data.Data.ActiveCryptocurrencies,
		Markets:                data.Data.Markets,
	}, nil
}

func parseMarketCoin(m marketCoin) models.Coin {
	return models.Coin{
		ID:                       m.ID,
		Symbol:                   strings.ToUpper(m.Symbol),
		Name:                     m.Name,
		MarketCapRank:            m.MarketCapRank,
		CurrentPrice:             m.CurrentPrice,
		MarketCap:                m.MarketCap,
		TotalVolume:              m.TotalVolume,
		High24h:                  m.High24h,
		Low24h:                   m.Low24h,
		PriceChange24h:           m.PriceChange24h,
		PriceChangePercentage24h: m.PriceChangePercentage24h,
		PriceChangePercentage7d:  m.PriceChangePercentage7d,
		PriceChangePercentage30d: m.PriceChangePercentage30d,
		CirculatingSupply:        m.CirculatingSupply,
		TotalSupply:              m.TotalSupply,
		MaxSupply:                m.MaxSupply,
		ATH:                      m.ATH,
		ATHChangePercentage:      m.ATHChangePercentage,
		ATHDate:                  m.ATHDate,
		LastUpdated:              m.LastUpdated,
	}
}

func parseCoinDetail(d coinDetail) models.Coin {
	return models.Coin{
		ID:           d.ID,
		Symbol:       strings.ToUpper(d.Symbol),
		Name:         d.Name,
		GenesisDate:  d.GenesisDate,
		LastUpdated:  d.LastUpdated,
		CurrentPrice: d.MarketData.CurrentPrice["usd"],
		MarketCap:    d.MarketData.MarketCap["usd"],
		TotalVolume:  d.MarketData.TotalVolume["usd"],
		High24h:      d.MarketData.High24h["usd"],
		Low24h:       d.MarketData.Low24h["usd"],
		ATH:          d.MarketData.ATH["usd"],
		ATHDate:      d.MarketData.ATHDate["usd"],

		CirculatingSupply:        d.MarketData.CirculatingSupply,
		TotalSupply:              d.MarketData.TotalSupply,
		MaxSupply:                d.MarketData.MaxSupply,
		PriceChange24h:           d.MarketData.PriceChange24h,
		PriceChangePercentage24h: d.MarketData.PriceChangePercentage24h,
		PriceChangePercentage7d:  d.MarketData.PriceChangePercentage7d,
		PriceChangePercentage30d: d.MarketData.PriceChangePercentage30d,

		TwitterFollowers:     d.CommunityData.TwitterFollowers,
		RedditSubscribers:    d.CommunityData.RedditSubscribers,
		RedditActiveUsers48h: int64(d.CommunityData.RedditAccountsActive48),
		TelegramUsers:        d.CommunityData.TelegramUsers,
		FacebookLikes:        d.CommunityData.FacebookLikes,

		GithubForks:        d.DeveloperData.Forks,
		GithubStars:        d.DeveloperData.Stars,
		GithubSubscribers:  d.DeveloperData.Subscribers,
		GithubCommits4w:    d.DeveloperData.CommitCount4Weeks,
		GithubClosedIssues: d.DeveloperData.ClosedIssues,
		GithubMergedPRs:    d.DeveloperData.PullRequestsMerged,
	}
}
