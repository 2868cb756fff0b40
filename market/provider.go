// Package market fetches quote snapshots and price history from market-data
// providers.
package market

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"stock-pulse/metrics"
	"stock-pulse/models"
)

//go:generate mockgen -destination=mocks/provider.go -package=mocks stock-pulse/market Provider

var (
	// ErrInvalidSymbol is returned for symbols no exchange could list.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidPeriod is returned for period strings that name no window.
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrNoSession is returned when the provider session could not be established.
	ErrNoSession = errors.New("provider session unavailable")
)

// Provider is a market-data source.
type Provider interface {
	Name() string
	// Snapshot returns profile and quote data for symbol. Unknown symbols
	// yield a snapshot with only Symbol set.
	Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error)
	// History returns bars for the trailing period sampled at interval, in
	// ascending time order. No data is an empty series, not an error.
	History(ctx context.Context, symbol, period, interval string) (*models.Series, error)
}

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.\-^=&]{1,20}$`)

// ValidateSymbol rejects symbols with characters no exchange uses.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return nil
}

// Instrumented records upstream metrics around every call of P.
type Instrumented struct {
	P Provider
}

func (i *Instrumented) Name() string { return i.P.Name() }

func (i *Instrumented) Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error) {
	start := time.Now()
	s, err := i.P.Snapshot(ctx, symbol)
	metrics.RecordUpstream(i.P.Name(), "snapshot", outcome(err, false), time.Since(start))
	return s, err
}

func (i *Instrumented) History(ctx context.Context, symbol, period, interval string) (*models.Series, error) {
	start := time.Now()
	s, err := i.P.History(ctx, symbol, period, interval)
	metrics.RecordUpstream(i.P.Name(), "history", outcome(err, s.Empty()), time.Since(start))
	return s, err
}

func outcome(err error, empty bool) string {
	switch {
	case err != nil:
		return "error"
	case empty:
		return "empty"
	default:
		return "ok"
	}
}
