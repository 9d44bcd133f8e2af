// Package unsplash is a minimal client for the Unsplash photo search API,
// scoped to what trip generation needs: the regular-size URLs of the
// first few results for a free-text query.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

const defaultBaseURL = "https://api.unsplash.com"

type Client struct {
	accessKey string
	baseURL   string
	http      *http.Client
	cache     *gocache.Cache
}

func NewClient(accessKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		accessKey: accessKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Identical queries repeat often (same country/interests combos),
		// and Unsplash rate limits demo keys aggressively.
		cache: gocache.New(15*time.Minute, 30*time.Minute),
	}
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

// SearchPhotoURLs returns up to limit regular-size photo URLs for the
// query. A result without a regular URL maps to nil; fewer matches than
// limit yields a shorter slice, never padding. Zero results is not an
// error.
func (c *Client) SearchPhotoURLs(ctx context.Context, query string, limit int) ([]*string, error) {
	key := cacheKey(query)
	if cached, ok := c.cache.Get(key); ok {
		return lo.Slice(cached.([]*string), 0, limit), nil
	}

	endpoint := fmt.Sprintf("%s/search/photos?query=%s&client_id=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.accessKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("unsplash search failed: %s - %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unsplash search failed: %w", err)
	}

	urls := lo.Map(lo.Slice(payload.Results, 0, limit), func(r searchResult, _ int) *string {
		if r.URLs.Regular == "" {
			return nil
		}
		return &r.URLs.Regular
	})

	c.cache.SetDefault(key, urls)
	return urls, nil
}

// cacheKey folds case and collapses whitespace so that cosmetic query
// variations share an entry.
func cacheKey(query string) string {
	return cases.Fold().String(strings.Join(strings.Fields(query), " "))
}
