package models

import (
	"strings"
	"time"

	"github.com/guregu/null/v6"
)

// IndianSuffix marks symbols listed on the National Stock Exchange of India.
const IndianSuffix = ".NS"

// IsIndianSymbol reports whether symbol is an NSE listing.
func IsIndianSymbol(symbol string) bool {
	return strings.HasSuffix(symbol, IndianSuffix)
}

// Snapshot is the profile and quote data a market provider knows about a
// symbol. Every field except Symbol may be absent upstream.
type Snapshot struct {
	Symbol             string
	ShortName          null.String
	Currency           null.String
	CurrentPrice       null.Float
	RegularMarketPrice null.Float
	Change             null.Float
	ChangePercent      null.Float
	MarketCap          null.Int
	Sector             null.String
	Industry           null.String
	Website            null.String
	FullTimeEmployees  null.Int
	BusinessSummary    null.String
}

// Quote is the normalized price view of a symbol.
type Quote struct {
	Symbol        string
	Name          string
	Price         null.Float
	Currency      string
	ChangePercent null.Float
	Change        null.Float
}

// CompanyProfile is the normalized company view of a symbol.
type CompanyProfile struct {
	Symbol            string
	Sector            null.String
	Industry          null.String
	MarketCap         null.Int
	FullTimeEmployees null.Int
	Website           null.String
	BusinessSummary   null.String
	IsIndianStock     bool
}

// Bar is a single sample of a price series. Close is absent when the
// exchange reported no trade for the slot.
type Bar struct {
	Time  time.Time
	Close null.Float
}

// Series is an ascending run of bars for one symbol.
type Series struct {
	Symbol   string
	Interval string
	Bars     []Bar
}

// Empty reports whether the series carries no bars.
func (s *Series) Empty() bool {
	return s == nil || len(s.Bars) == 0
}

// Labels formats every bar time with layout, in the bar's own location.
func (s *Series) Labels(layout string) []string {
	labels := make([]string, 0, len(s.Bars))
	for _, b := range s.Bars {
		labels = append(labels, b.Time.Format(layout))
	}
	return labels
}

// Closes returns the closing prices in bar order.
func (s *Series) Closes() []null.Float {
	closes := make([]null.Float, 0, len(s.Bars))
	for _, b := range s.Bars {
		closes = append(closes, b.Close)
	}
	return closes
}
