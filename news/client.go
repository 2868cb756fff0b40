// Package news searches headlines on newsapi.org.
package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"stock-pulse/logging"
	"stock-pulse/metrics"
	"stock-pulse/models"
)

//go:generate mockgen -destination=mocks/searcher.go -package=mocks stock-pulse/news Searcher

// ErrStatus is returned when the provider answers with a non-JSON error page.
var ErrStatus = errors.New("news provider error")

// Searcher finds articles matching a keyword, newest first.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Article, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client queries the /v2/everything endpoint.
type Client struct {
	client *resty.Client
	apiKey string
	log    *logging.Logger
}

func NewClient(cfg Config, log *logging.Logger) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("User-Agent", "stock-pulse/1.0"),
		apiKey: cfg.APIKey,
		log:    log,
	}
}

// everythingResponse keeps Articles nil when the field is absent, which is
// how the provider signals errors such as a missing key.
type everythingResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []models.Article `json:"articles"`
}

// Search returns the provider's articles for query, sorted by publish date.
// A response without an articles field yields an empty result.
func (c *Client) Search(ctx context.Context, query string) ([]models.Article, error) {
	start := time.Now()
	articles, err := c.search(ctx, query)
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case len(articles) == 0:
		outcome = "empty"
	}
	metrics.RecordUpstream("newsapi", "everything", outcome, time.Since(start))
	return articles, err
}

func (c *Client) search(ctx context.Context, query string) ([]models.Article, error) {
	var out everythingResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"sortBy": "publishedAt",
			"apiKey": c.apiKey,
		}).
		SetResult(&out).
		SetError(&out).
		Get("/v2/everything")
	if err != nil {
		return nil, fmt.Errorf("newsapi search %q: %w", query, err)
	}
	if resp.IsError() && out.Status == "" {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status())
	}
	if out.Articles == nil {
		c.log.Warn("news response without articles", "query", query, "code", out.Code, "message", out.Message)
		return []models.Article{}, nil
	}
	return out.Articles, nil
}
