// Package service reshapes market and news provider data into the records
// the web client consumes.
package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"stock-pulse/logging"
	"stock-pulse/market"
	"stock-pulse/metrics"
	"stock-pulse/models"
	"stock-pulse/news"
)

// HotStocks is the fixed watch list served by /hot-stocks.
var HotStocks = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "RELIANCE.NS", "TCS.NS", "HDFCBANK.NS"}

const (
	DefaultPeriod  = "1mo"
	IntradayPeriod = "1d"

	hotStocksPeriod = "7d"
	searchPeriod    = "5d"

	intervalHourly = "1h"
	intervalDaily  = "1d"
)

// Aggregator serves the four client operations. It holds no mutable state.
type Aggregator struct {
	market      market.Provider
	news        news.Searcher
	log         *logging.Logger
	concurrency int
}

func NewAggregator(m market.Provider, n news.Searcher, log *logging.Logger, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{market: m, news: n, log: log, concurrency: concurrency}
}

// GetHotStocks returns one record per watch-list symbol, in list order.
// Symbols whose provider calls fail are logged and left out; the call only
// fails when no symbol could be fetched.
func (a *Aggregator) GetHotStocks(ctx context.Context) ([]models.StockRecord, error) {
	records := make([]*models.StockRecord, len(HotStocks))
	errs := make([]error, len(HotStocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, symbol := range HotStocks {
		g.Go(func() error {
			r, err := a.stockRecord(gctx, symbol, hotStocksPeriod)
			if err != nil {
				errs[i] = err
				return nil
			}
			records[i] = &r
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.StockRecord, 0, len(HotStocks))
	for i, r := range records {
		if r == nil {
			a.log.Warn("skipping hot stock", "symbol", HotStocks[i], "error", errs[i])
			metrics.RecordHotStockSkipped(HotStocks[i])
			continue
		}
		out = append(out, *r)
	}
	if len(out) == 0 {
		return nil, UpstreamFailure(prefixHotStocks, errors.Join(errs...))
	}
	return out, nil
}

// GetStockNews returns up to MaxArticles recent articles mentioning ticker.
func (a *Aggregator) GetStockNews(ctx context.Context, ticker string) ([]models.NewsArticle, error) {
	articles, err := a.news.Search(ctx, ticker)
	if err != nil {
		return nil, UpstreamFailure(prefixNews, err)
	}
	if len(articles) > MaxArticles {
		articles = articles[:MaxArticles]
	}
	out := make([]models.NewsArticle, 0, len(articles))
	for _, art := range articles {
		out = append(out, ArticleOf(art))
	}
	return out, nil
}

// GetStockHistory returns closing prices over period. The "1d" period is
// sampled hourly and labelled HH:MM; any other period is daily YYYY-MM-DD.
func (a *Aggregator) GetStockHistory(ctx context.Context, ticker, period string) (*models.History, error) {
	if period == "" {
		period = DefaultPeriod
	}
	intraday := period == IntradayPeriod
	interval, layout := intervalDaily, dateLayout
	if intraday {
		interval, layout = intervalHourly, timeLayout
	}

	series, err := a.market.History(ctx, ticker, period, interval)
	if err != nil {
		return nil, UpstreamFailure(prefixHistory, err)
	}
	if series.Empty() {
		return nil, NotFound(msgHistoryNotFound)
	}
	return &models.History{
		Dates:      series.Labels(layout),
		Prices:     series.Closes(),
		Period:     period,
		IsIntraday: intraday,
	}, nil
}

// SearchStock looks query up as a literal symbol.
func (a *Aggregator) SearchStock(ctx context.Context, query string) (*models.StockRecord, error) {
	snap, err := a.market.Snapshot(ctx, query)
	if err != nil {
		return nil, UpstreamFailure(prefixSearch, err)
	}
	series, err := a.market.History(ctx, query, searchPeriod, intervalDaily)
	if err != nil {
		return nil, UpstreamFailure(prefixSearch, err)
	}
	if series.Empty() {
		return nil, NotFound(msgStockNotFound)
	}
	r := record(snap, series, true)
	return &r, nil
}

func (a *Aggregator) stockRecord(ctx context.Context, symbol, period string) (models.StockRecord, error) {
	snap, err := a.market.Snapshot(ctx, symbol)
	if err != nil {
		return models.StockRecord{}, err
	}
	series, err := a.market.History(ctx, symbol, period, intervalDaily)
	if err != nil {
		return models.StockRecord{}, err
	}
	return record(snap, series, false), nil
}
