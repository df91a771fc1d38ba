package bscscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpclient "github.com/trademind-labs/trademind/internal/platform/http"
	"github.com/trademind-labs/trademind/internal/models"
)

// Client is the BSCScan API client. All endpoints share one URL and are
// selected with module/action query parameters.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new BSCScan client
type ClientOptions struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	RateLimitPause time.Duration
}

// NewClient creates a new BSCScan API client
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = "https://api.bscscan.com/api"
	}
	if options.RequestsPerSec == 0 {
		options.RequestsPerSec = 4
	}

	return &Client{
		apiKey:  options.APIKey,
		baseURL: options.BaseURL,
		httpClient: httpclient.NewClient(httpclient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			RateLimitPause: options.RateLimitPause,
		}),
		logger: log.With().Str("component", "bscscan_client").Logger(),
	}
}

// envelope is the status/message wrapper around every BSCScan response. On
// errors result may be a bare string, so it stays raw until status is checked.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func (c *Client) get(ctx context.Context, params url.Values, result any) error {
	params.Set("apikey", c.apiKey)
	u := c.baseURL + "?" + params.Encode()

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

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.logger.Error().Err(err).Msg("Error parsing JSON")
		return fmt.Errorf("parsing JSON: %w", err)
	}

	if env.Status != "1" {
		c.logger.Error().Str("message", env.Message).Msg("BSCScan API error")
		return fmt.Errorf("BSCScan API error: %s", env.Message)
	}

	if err := json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("parsing result: %w", err)
	}

	return nil
}

// rawTransfer is a tokentx result entry; the API reports every field as a
// string.
type rawTransfer struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
}

// TokenTransfersParams controls an account/tokentx request.
type TokenTransfersParams struct {
	ContractAddress string
	StartBlock      int64
	EndBlock        int64
	Page            int
	Offset          int
}

// TokenTransfers fetches recent token transfer events for a contract, most
// recent first. Entries that fail to parse are logged and skipped, the batch
// continues.
func (c *Client) TokenTransfers(ctx context.Context, p TokenTransfersParams) ([]models.TokenTransfer, error) {
	if p.EndBlock == 0 {
		p.EndBlock = 999_999_999
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Offset == 0 {
		p.Offset = 100
	}

	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokentx")
	params.Set("contractaddress", p.ContractAddress)
	params.Set("startblock", strconv.FormatInt(p.StartBlock, 10))
	params.Set("endblock", strconv.FormatInt(p.EndBlock, 10))
	params.Set("page", strconv.Itoa(p.Page))
	params.Set("offset", strconv.Itoa(p.Offset))
	params.Set("sort", "desc")

	var raw []rawTransfer
	if err := c.get(ctx, params, &raw); err != nil {
		return nil, err
	}

	transfers := make([]models.TokenTransfer, 0, len(raw))
	for _, r := range raw {
		tx, err := parseTransfer(r)
		if err != nil {
			c.logger.Warn().Err(err).Str("hash", r.Hash).Msg("Skipping unparseable transfer")
			continue
		}
		transfers = append(transfers, tx)
	}

	c.logger.Debug().Int("count", len(transfers)).Str("contract", p.ContractAddress).Msg("Fetched token transfers")
	return transfers, nil
}

// AccountBalance fetches the BNB balance of an address.
func (c *Client) AccountBalance(ctx context.Context, address string) (float64, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "balance")
	params.Set("address", address)
	params.Set("tag", "latest")

	var wei string
	if err := c.get(ctx, params, &wei); err != nil {
		return 0, err
	}

	balance, err := decimal.NewFromString(wei)
	if err != nil {
		return 0, fmt.Errorf("parsing balance %q: %w", wei, err)
	}

	// wei to BNB
	bnb, _ := balance.Shift(-18).Float64()
	return bnb, nil
}

// parseTransfer normalizes a raw transfer. Raw wei amounts routinely exceed
// float64 precision, so the value is kept as a decimal and only the
// decimal-adjusted amount is narrowed.
func parseTransfer(r rawTransfer) (models.TokenTransfer, error) {
	value, err := decimal.NewFromString(r.Value)
	if err != nil {
		return models.TokenTransfer{}, fmt.Errorf("parsing value %q: %w", r.Value, err)
	}

	tokenDecimal, err := strconv.Atoi(r.TokenDecimal)
	if err != nil {
		tokenDecimal = 18
	}

	ts, err := strconv.ParseInt(r.TimeStamp, 10, 64)
	if err != nil {
		return models.TokenTransfer{}, fmt.Errorf("parsing timestamp %q: %w", r.TimeStamp, err)
	}

	blockNumber, _ := strconv.ParseInt(r.BlockNumber, 10, 64)
	gasPrice, _ := strconv.ParseInt(r.GasPrice, 10, 64)
	gasUsed, _ := strconv.ParseInt(r.GasUsed, 10, 64)

	tokens, _ := value.Shift(int32(-tokenDecimal)).Float64()

	return models.TokenTransfer{
		Hash:            r.Hash,
		FromAddress:     r.From,
		ToAddress:       r.To,
		ContractAddress: r.ContractAddress,
		TokenSymbol:     r.TokenSymbol,
		TokenName:       r.TokenName,
		ValueRaw:        value,
		ValueTokens:     tokens,
		Timestamp:       time.Unix(ts, 0).UTC(),
		BlockNumber:     blockNumber,
		GasPrice:        gasPrice,
		GasUsed:         gasUsed,
	}, nil
}
