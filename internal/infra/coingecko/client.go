// Package coingecko implements the market-data provider against the
// CoinGecko v3 REST API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/infra"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// ErrNotFound reports that no listed coin matched the requested name.
var ErrNotFound = errors.New("coin not found")

// ErrUnavailable reports that the circuit breaker is open and the call was
// skipped. Callers treat it like any other fetch failure.
var ErrUnavailable = errors.New("market API unavailable")

// Client is the CoinGecko REST client. Calls are paced by a token-bucket
// limiter and guarded by a circuit breaker; each call is best-effort with a
// bounded timeout and no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *infra.RateLimiter
	breaker    *infra.CircuitBreaker
	userAgent  string
}

// Options tunes a Client beyond the defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit struct {
		Burst     int
		PerSecond float64
	}
	Breaker infra.CircuitBreakerConfig
}

// NewClient creates a client with sensible defaults for the public API tier.
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	burst := opts.RateLimit.Burst
	if burst <= 0 {
		burst = 3
	}
	perSecond := opts.RateLimit.PerSecond
	if perSecond <= 0 {
		perSecond = 0.5
	}
	breakerCfg := opts.Breaker
	if breakerCfg.Name == "" {
		breakerCfg.Name = "coingecko"
	}
	if breakerCfg.FailureThreshold <= 0 {
		breakerCfg.FailureThreshold = 5
	}
	if breakerCfg.SuccessThreshold <= 0 {
		breakerCfg.SuccessThreshold = 2
	}
	if breakerCfg.Timeout <= 0 {
		breakerCfg.Timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    infra.NewRateLimiter(burst, perSecond),
		breaker:    infra.NewCircuitBreaker(breakerCfg),
		userAgent:  infra.GetPlatformUserAgent(),
	}
}

// ResolveAssetID maps a user-typed coin name to the provider id by scanning
// the full coin list for a case-insensitive match on display name or ticker
// symbol. The first listed match wins, mirroring provider order.
func (c *Client) ResolveAssetID(ctx context.Context, name string) (string, error) {
	body, err := c.get(ctx, "/coins/list")
	if err != nil {
		return "", err
	}

	var coins []listedCoin
	if err := json.Unmarshal(body, &coins); err != nil {
		return "", fmt.Errorf("failed to decode coin list: %w", err)
	}

	want := strings.ToLower(name)
	for _, coin := range coins {
		if strings.ToLower(coin.Name) == want || strings.ToLower(coin.Symbol) == want {
			return coin.ID, nil
		}
	}
	return "", ErrNotFound
}

// FetchSnapshot fetches the coin's current USD price, market cap and volume.
// Volume doubles as the liquidity figure; when the provider omits it the
// unavailable marker is returned instead.
func (c *Client) FetchSnapshot(ctx context.Context, id string) (domain.AssetSnapshot, error) {
	body, err := c.get(ctx, "/coins/"+url.PathEscape(id))
	if err != nil {
		return domain.AssetSnapshot{}, err
	}

	var data coinResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return domain.AssetSnapshot{}, fmt.Errorf("failed to decode coin data: %w", err)
	}

	snap := domain.AssetSnapshot{
		Name:      data.Name,
		Symbol:    strings.ToUpper(data.Symbol),
		Price:     decimal.NewFromFloat(data.MarketData.CurrentPrice.USD),
		MarketCap: decimal.NewFromFloat(data.MarketData.MarketCap.USD),
		Liquidity: domain.AmountUnavailable(),
	}
	if tv := data.MarketData.TotalVolume; tv != nil && tv.USD != nil {
		snap.Liquidity = domain.AmountFromFloat(*tv.USD)
	}
	return snap, nil
}

// FetchHistory fetches the daily USD price series for the last days days.
func (c *Client) FetchHistory(ctx context.Context, id string, days int) ([]domain.PricePoint, error) {
	path := fmt.Sprintf("/coins/%s/market_chart?vs_currency=usd&days=%d", url.PathEscape(id), days)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var data marketChartResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode market chart: %w", err)
	}

	series := make([]domain.PricePoint, 0, len(data.Prices))
	for _, pair := range data.Prices {
		series = append(series, domain.PricePoint{
			UnixMilli: int64(pair[0]),
			Price:     decimal.NewFromFloat(pair[1]),
		})
	}
	return series, nil
}

// get performs a single rate-limited, breaker-guarded GET. Any non-2xx
// status or transport error counts as the call's failure.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if !c.breaker.Allow() {
		return nil, ErrUnavailable
	}

	c.limiter.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.breaker.RecordFailure()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.breaker.RecordFailure()
		return nil, err
	}

	c.breaker.RecordSuccess()
	return body, nil
}
