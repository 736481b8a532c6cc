// Package catalog talks to the Roblox catalog search API and normalizes
// its loosely shaped item records into the fixed Item type. No other
// package sees raw catalog payloads.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/resilience"
)

// Searcher is the capability the orchestrator depends on. Search never
// returns more than params.Limit (itself capped) items. Implementations
// fail soft: transient catalog trouble yields an empty result, not an
// error; the error return is reserved for context cancellation.
type Searcher interface {
	Search(ctx context.Context, params outfit.SearchParams) ([]outfit.Item, error)
}

const searchPath = "/v1/search/items/details"

// Client calls the live catalog API behind a circuit breaker with
// retry + backoff.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	rcfg       resilience.Config
	logger     *zap.Logger
}

// NewClient creates the live catalog client. baseURL has no path suffix,
// e.g. https://catalog.roblox.com.
func NewClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, rcfg resilience.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		rcfg:       rcfg,
		logger:     logger,
	}
}

// Search performs one bounded catalog lookup. Network errors, non-2xx
// responses and undecodable bodies all degrade to an empty result so a
// partial outfit can still be assembled.
func (c *Client) Search(ctx context.Context, params outfit.SearchParams) ([]outfit.Item, error) {
	params = params.Clamped()

	var items []outfit.Item
	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.rcfg, func() error {
			fetched, err := c.fetch(ctx, params)
			if err != nil {
				return err
			}
			items = fetched
			return nil
		})
	})

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("catalog search failed, returning empty result",
			zap.Int("subcategory", params.Subcategory),
			zap.String("keyword", params.Keyword),
			zap.Error(err))
		return nil, nil
	}
	return items, nil
}

func (c *Client) fetch(ctx context.Context, params outfit.SearchParams) ([]outfit.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}
	req.URL.RawQuery = encodeQuery(params)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	return normalize(payload.Data, params.Limit), nil
}

func encodeQuery(params outfit.SearchParams) string {
	q := url.Values{}
	q.Set("Limit", strconv.Itoa(params.Limit))
	if params.Keyword != "" {
		q.Set("Keyword", params.Keyword)
	}
	if params.Category > 0 {
		q.Set("Category", strconv.Itoa(params.Category))
	}
	if params.Subcategory > 0 {
		q.Set("Subcategory", strconv.Itoa(params.Subcategory))
	}
	if params.Genre > 0 {
		q.Set("Genres", strconv.Itoa(params.Genre))
	}
	if params.MinPrice != nil {
		q.Set("MinPrice", strconv.Itoa(*params.MinPrice))
	}
	if params.MaxPrice != nil {
		q.Set("MaxPrice", strconv.Itoa(*params.MaxPrice))
	}
	return q.Encode()
}

// normalize is the single boundary from duck-typed catalog records to
// Item. Records without a usable id are dropped.
func normalize(raw []map[string]any, limit int) []outfit.Item {
	items := make([]outfit.Item, 0, len(raw))
	for _, record := range raw {
		id, ok := assetID(record["id"])
		if !ok {
			continue
		}
		items = append(items, outfit.Item{
			AssetID: id,
			Type:    itemType(record),
		})
		if len(items) == limit {
			break
		}
	}
	return items
}

func assetID(v any) (string, bool) {
	switch id := v.(type) {
	case float64:
		if id <= 0 {
			return "", false
		}
		return strconv.FormatInt(int64(id), 10), true
	case string:
		if id == "" {
			return "", false
		}
		return id, true
	case json.Number:
		return id.String(), true
	default:
		return "", false
	}
}

// itemType prefers itemType over assetType over assetTypeDisplayName,
// matching the shapes the catalog has been seen to return.
func itemType(record map[string]any) string {
	for _, key := range []string{"itemType", "assetType", "assetTypeDisplayName"} {
		switch v := record[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return "Unknown"
}
