package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(ClientOptions{
		BaseURL:        server.URL,
		RequestsPerSec: 100,
	})
	return client, server
}

func TestTrendingCoins(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/trending", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"coins":[
			{"item":{"id":"pepe","symbol":"pepe","name":"Pepe","market_cap_rank":40,"price_btc":0.00000002,"score":0}},
			{"item":{"id":"bonk","symbol":"bonk","name":"Bonk","market_cap_rank":60,"price_btc":0.00000001,"score":1}}
		]}`))
	}))
	defer server.Close()

	trending, err := client.TrendingCoins(context.Background())
	require.NoError(t, err)
	require.Len(t, trending, 2)
	assert.Equal(t, "pepe", trending[0].ID)
	assert.Equal(t, 40, trending[0].MarketCapRank)
	assert.Equal(t, 1, trending[1].Score)
}

func TestMarkets(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "usd", q.Get("vs_currency"))
		assert.Equal(t, OrderVolumeDesc, q.Get("order"))
		assert.Equal(t, "250", q.Get("per_page"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "false", q.Get("sparkline"))
		assert.Equal(t, "24h,7d", q.Get("price_change_percentage"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id":"chainlink","symbol":"link","name":"Chainlink",
			"current_price":14.5,"market_cap":8500000000,"market_cap_rank":12,
			"total_volume":420000000,"high_24h":15.1,"low_24h":14.2,
			"price_change_percentage_24h":2.1,
			"price_change_percentage_7d_in_currency":8.4,
			"circulating_supply":587000000,"total_supply":1000000000,
			"ath":52.7,"ath_date":"2021-05-10T00:13:57.214Z"
		}]`))
	}))
	defer server.Close()

	coins, err := client.Markets(context.Background(), MarketsParams{
		Order:                 OrderVolumeDesc,
		PriceChangePercentage: "24h,7d",
	})
	require.NoError(t, err)
	require.Len(t, coins, 1)

	coin := coins[0]
	assert.Equal(t, "chainlink", coin.ID)
	assert.Equal(t, "LINK", coin.Symbol)
	assert.InDelta(t, 14.5, coin.CurrentPrice, 0.001)
	assert.InDelta(t, 8.4, coin.PriceChangePercentage7d, 0.001)
	assert.InDelta(t, 52.7, coin.ATH, 0.001)
}

func TestCoinDetails(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/chainlink", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "false", q.Get("localization"))
		assert.Equal(t, "true", q.Get("market_data"))
		assert.Equal(t, "true", q.Get("community_data"))
		assert.Equal(t, "true", q.Get("developer_data"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id":"chainlink","symbol":"link","name":"Chainlink",
			"genesis_date":"2017-09-19",
			"market_data":{
				"current_price":{"usd":14.5},
				"market_cap":{"usd":8500000000},
				"total_volume":{"usd":420000000},
				"ath":{"usd":52.7},
				"circulating_supply":587000000,
				"total_supply":1000000000,
				"price_change_percentage_24h":2.1,
				"price_change_percentage_7d":8.4,
				"price_change_percentage_30d":-3.2
			},
			"community_data":{
				"twitter_followers":1100000,
				"reddit_subscribers":98000,
				"reddit_accounts_active_48h":410.5,
				"telegram_channel_user_count":52000,
				"facebook_likes":null
			},
			"developer_data":{
				"forks":1700,"stars":5200,"subscribers":380,
				"commit_count_4_weeks":47,"closed_issues":980,"pull_requests_merged":1500
			}
		}`))
	}))
	defer server.Close()

	coin, err := client.CoinDetails(context.Background(), "chainlink")
	require.NoError(t, err)

	assert.Equal(t, "LINK", coin.Symbol)
	assert.InDelta(t, 14.5, coin.CurrentPrice, 0.001)
	assert.Equal(t, int64(1_100_000), coin.TwitterFollowers)
	assert.Equal(t, int64(410), coin.RedditActiveUsers48h)
	assert.Equal(t, int64(0), coin.FacebookLikes) // null keeps the zero value
	assert.Equal(t, int64(47), coin.GithubCommits4w)
	assert.Equal(t, int64(1500), coin.GithubMergedPRs)
	assert.InDelta(t, -3.2, coin.PriceChangePercentage30d, 0.001)
}

func TestCoinDetailsEmptyResponse(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := client.CoinDetails(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestGlobalData(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/global", r.URL.Path)
		w.Write([]byte(`{"data":{
			"total_market_cap":{"usd":2400000000000},
			"total_volume":{"usd":98000000000},
			"market_cap_percentage":{"btc":51.2,"eth":17.1},
			"active_cryptocurrencies":13000,
			"markets":1050
		}}`))
	}))
	defer server.Close()

	global, err := client.GlobalData(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 2.4e12, global.TotalMarketCapUSD, 1)
	assert.InDelta(t, 51.2, global.MarketCapPercentageBTC, 0.001)
	assert.Equal(t, 13000, global.ActiveCryptocurrencies)
}
