package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/guregu/null/v6"

	"stock-pulse/models"
)

// YahooConfig configures the Yahoo Finance client.
type YahooConfig struct {
	HomeURL   string // page that hands out the session cookie
	APIURL    string // query host serving crumb, quoteSummary and chart
	UserAgent string
	Timeout   time.Duration
}

// Yahoo talks to the public Yahoo Finance JSON API. Requests need a session
// cookie plus a matching crumb; both are fetched lazily and reused until
// Yahoo rejects them.
type Yahoo struct {
	cfg    YahooConfig
	client *resty.Client

	mu    sync.Mutex
	crumb string
}

func NewYahoo(cfg YahooConfig) *Yahoo {
	jar, _ := cookiejar.New(nil)
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar).
		SetHeader("User-Agent", cfg.UserAgent)
	return &Yahoo{cfg: cfg, client: client}
}

func (y *Yahoo) Name() string { return "yahoo" }

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *yahooError) notFound() bool {
	return e != nil && e.Code == "Not Found"
}

type rawNumber struct {
	Raw null.Float `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				ShortName                  null.String `json:"shortName"`
				Currency                   null.String `json:"currency"`
				RegularMarketPrice         rawNumber   `json:"regularMarketPrice"`
				RegularMarketChange        rawNumber   `json:"regularMarketChange"`
				RegularMarketChangePercent rawNumber   `json:"regularMarketChangePercent"`
				MarketCap                  rawNumber   `json:"marketCap"`
			} `json:"price"`
			AssetProfile struct {
				Sector              null.String `json:"sector"`
				Industry            null.String `json:"industry"`
				Website             null.String `json:"website"`
				FullTimeEmployees   null.Int    `json:"fullTimeEmployees"`
				LongBusinessSummary null.String `json:"longBusinessSummary"`
			} `json:"assetProfile"`
			FinancialData struct {
				CurrentPrice rawNumber `json:"currentPrice"`
			} `json:"financialData"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"quoteSummary"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
				GMTOffset            int    `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []null.Float `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *yahooError `json:"error"`
	} `json:"chart"`
}

func (y *Yahoo) Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	crumb, err := y.session(ctx)
	if err != nil {
		return nil, err
	}

	var out quoteSummaryResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"modules": "price,assetProfile,financialData",
			"crumb":   crumb,
		}).
		SetResult(&out).
		SetError(&out).
		Get("/v10/finance/quoteSummary/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, err)
	}
	if err := y.checkStatus(resp, out.QuoteSummary.Error); err != nil {
		if out.QuoteSummary.Error.notFound() {
			return &models.Snapshot{Symbol: symbol}, nil
		}
		return nil, fmt.Errorf("yahoo quoteSummary %s: %w", symbol, err)
	}

	snap := &models.Snapshot{Symbol: symbol}
	if len(out.QuoteSummary.Result) == 0 {
		return snap, nil
	}
	r := out.QuoteSummary.Result[0]
	snap.ShortName = r.Price.ShortName
	snap.Currency = r.Price.Currency
	snap.CurrentPrice = r.FinancialData.CurrentPrice.Raw
	snap.RegularMarketPrice = r.Price.RegularMarketPrice.Raw
	snap.Change = r.Price.RegularMarketChange.Raw
	// the price module reports the change as a fraction
	if pct := r.Price.RegularMarketChangePercent.Raw; pct.Valid {
		snap.ChangePercent = null.FloatFrom(pct.Float64 * 100)
	}
	if mc := r.Price.MarketCap.Raw; mc.Valid {
		snap.MarketCap = null.IntFrom(int64(mc.Float64))
	}
	snap.Sector = r.AssetProfile.Sector
	snap.Industry = r.AssetProfile.Industry
	snap.Website = r.AssetProfile.Website
	snap.FullTimeEmployees = r.AssetProfile.FullTimeEmployees
	snap.BusinessSummary = r.AssetProfile.LongBusinessSummary
	return snap, nil
}

func (y *Yahoo) History(ctx context.Context, symbol, period, interval string) (*models.Series, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	crumb, err := y.session(ctx)
	if err != nil {
		return nil, err
	}

	var out chartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"range":    Range(period),
			"interval": interval,
			"crumb":    crumb,
		}).
		SetResult(&out).
		SetError(&out).
		Get("/v8/finance/chart/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	series := &models.Series{Symbol: symbol, Interval: interval}
	if err := y.checkStatus(resp, out.Chart.Error); err != nil {
		if out.Chart.Error.notFound() {
			return series, nil
		}
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if len(out.Chart.Result) == 0 {
		return series, nil
	}

	r := out.Chart.Result[0]
	loc, err := time.LoadLocation(r.Meta.ExchangeTimezoneName)
	if err != nil || r.Meta.ExchangeTimezoneName == "" {
		loc = time.FixedZone("", r.Meta.GMTOffset)
	}
	var closes []null.Float
	if len(r.Indicators.Quote) > 0 {
		closes = r.Indicators.Quote[0].Close
	}
	series.Bars = make([]models.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		bar := models.Bar{Time: time.Unix(ts, 0).In(loc)}
		if i < len(closes) {
			bar.Close = closes[i]
		}
		series.Bars = append(series.Bars, bar)
	}
	return series, nil
}

// checkStatus turns a non-2xx response into an error, dropping the crumb
// when Yahoo no longer accepts the session.
func (y *Yahoo) checkStatus(resp *resty.Response, apiErr *yahooError) error {
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		y.resetSession()
		return fmt.Errorf("%w: status %s", ErrNoSession, resp.Status())
	}
	if apiErr != nil {
		return fmt.Errorf("%s: %s", apiErr.Code, apiErr.Description)
	}
	if resp.IsError() {
		return fmt.Errorf("yahoo api returned status: %s", resp.Status())
	}
	return nil
}

func (y *Yahoo) session(ctx context.Context) (string, error) {
	y.mu.Lock()
	defer y.mu.Unlock()
	if y.crumb != "" {
		return y.crumb, nil
	}

	// 1. Cookie from the home page; its status does not matter.
	_, err := y.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		Get(y.cfg.HomeURL)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get cookie: %v", ErrNoSession, err)
	}

	// 2. Crumb bound to that cookie.
	resp, err := y.client.R().
		SetContext(ctx).
		SetHeader("Origin", y.cfg.HomeURL).
		SetHeader("Referer", y.cfg.HomeURL+"/").
		Get("/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("%w: failed to get crumb: %v", ErrNoSession, err)
	}
	crumb := strings.TrimSpace(resp.String())
	if resp.IsError() || crumb == "" || strings.Contains(crumb, "html") {
		return "", fmt.Errorf("%w: invalid crumb received (status %d)", ErrNoSession, resp.StatusCode())
	}
	y.crumb = crumb
	return crumb, nil
}

func (y *Yahoo) resetSession() {
	y.mu.Lock()
	y.crumb = ""
	y.mu.Unlock()
}
