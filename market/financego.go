package market

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/guregu/null/v6"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	"stock-pulse/models"
)

// FinanceGo serves market data through piquette/finance-go. Yahoo's quote
// endpoint carries no company profile, so sector, industry, website,
// employees and summary are always absent.
type FinanceGo struct {
	now func() time.Time
}

func NewFinanceGo(timeout time.Duration) *FinanceGo {
	finance.SetHTTPClient(&http.Client{Timeout: timeout})
	return &FinanceGo{now: time.Now}
}

func (f *FinanceGo) Name() string { return "financego" }

func (f *FinanceGo) Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("finance-go equity %s: %w", symbol, err)
	}
	return snapshotFromEquity(symbol, eq), nil
}

func snapshotFromEquity(symbol string, eq *finance.Equity) *models.Snapshot {
	snap := &models.Snapshot{Symbol: symbol}
	if eq == nil {
		return snap
	}
	snap.ShortName = null.NewString(eq.ShortName, eq.ShortName != "")
	snap.Currency = null.NewString(eq.CurrencyID, eq.CurrencyID != "")
	snap.CurrentPrice = null.NewFloat(eq.RegularMarketPrice, eq.RegularMarketPrice != 0)
	snap.RegularMarketPrice = null.NewFloat(eq.RegularMarketPrice, eq.RegularMarketPrice != 0)
	snap.Change = null.NewFloat(eq.RegularMarketChange, eq.RegularMarketChange != 0)
	snap.ChangePercent = null.NewFloat(eq.RegularMarketChangePercent, eq.RegularMarketChangePercent != 0)
	snap.MarketCap = null.NewInt(eq.MarketCap, eq.MarketCap > 0)
	return snap
}

func (f *FinanceGo) History(ctx context.Context, symbol, period, interval string) (*models.Series, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	now := f.now()
	start, err := Lookback(Range(period), now)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.Interval(interval),
	})
	var bars []models.Bar
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, models.Bar{
			Time:  time.Unix(int64(b.Timestamp), 0),
			Close: closeValue(b.Close),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go chart %s: %w", symbol, err)
	}

	meta := iter.Meta()
	loc, err := time.LoadLocation(meta.ExchangeTimezoneName)
	if err != nil || meta.ExchangeTimezoneName == "" {
		loc = time.FixedZone("", meta.Gmtoffset)
	}
	for i := range bars {
		bars[i].Time = bars[i].Time.In(loc)
	}
	// the date-granular start reaches into the previous session
	if period == "1d" {
		bars = lastSession(bars)
	}
	return &models.Series{Symbol: symbol, Interval: interval, Bars: bars}, nil
}

func closeValue(d decimal.Decimal) null.Float {
	if d.Sign() == 0 {
		return null.Float{}
	}
	v, _ := d.Float64()
	return null.FloatFrom(v)
}

// lastSession keeps the bars sharing the calendar day of the final bar.
func lastSession(bars []models.Bar) []models.Bar {
	if len(bars) == 0 {
		return bars
	}
	y, m, d := bars[len(bars)-1].Time.Date()
	i := len(bars)
	for i > 0 {
		by, bm, bd := bars[i-1].Time.Date()
		if by != y || bm != m || bd != d {
			break
		}
		i--
	}
	return bars[i:]
}
