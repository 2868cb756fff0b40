package models

import "github.com/guregu/null/v6"

// StockInfo is the "info" section of a stock record. RegularMarketPrice and
// LongBusinessSummary are only set for symbol searches.
type StockInfo struct {
	Symbol              string       `json:"symbol"`
	ShortName           string       `json:"shortName"`
	CurrentPrice        null.Float   `json:"currentPrice"`
	RegularMarketPrice  *null.Float  `json:"regularMarketPrice,omitempty"`
	Currency            string       `json:"currency"`
	ChangePercent       null.Float   `json:"changePercent"`
	MarketCap           null.Int     `json:"marketCap"`
	Sector              null.String  `json:"sector"`
	Industry            null.String  `json:"industry"`
	Website             null.String  `json:"website"`
	FullTimeEmployees   null.Int     `json:"fullTimeEmployees"`
	LongBusinessSummary *null.String `json:"longBusinessSummary,omitempty"`
	IsIndianStock       bool         `json:"isIndianStock"`
}

// StockQuote is the "quote" section of a stock record.
type StockQuote struct {
	Symbol        string     `json:"symbol"`
	Price         null.Float `json:"price"`
	Change        null.Float `json:"change"`
	ChangePercent null.Float `json:"changePercent"`
	Currency      string     `json:"currency"`
}

// Chart is a compact daily price series.
type Chart struct {
	Dates  []string     `json:"dates"`
	Prices []null.Float `json:"prices"`
}

// StockRecord is the composite record served by /hot-stocks and /search-stock.
type StockRecord struct {
	Info  StockInfo  `json:"info"`
	Quote StockQuote `json:"quote"`
	Chart Chart      `json:"chart"`
}

// History is the body served by /stock-history.
type History struct {
	Dates      []string     `json:"dates"`
	Prices     []null.Float `json:"prices"`
	Period     string       `json:"period"`
	IsIntraday bool         `json:"isIntraday"`
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}
