package service

import (
	"github.com/guregu/null/v6"

	"stock-pulse/models"
)

// Defaults substituted for fields the providers leave out.
const (
	DefaultCurrency     = "USD"
	DefaultArticleTitle = "No title"
	DefaultArticleLink  = "#"
	DefaultSourceName   = "Unknown"
	DefaultPublishedAt  = ""

	// MaxArticles caps the news served per ticker.
	MaxArticles = 5
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// QuoteOf builds the normalized quote of a snapshot.
func QuoteOf(s *models.Snapshot) models.Quote {
	return models.Quote{
		Symbol:        s.Symbol,
		Name:          stringOr(s.ShortName, s.Symbol),
		Price:         s.CurrentPrice,
		Currency:      stringOr(s.Currency, DefaultCurrency),
		ChangePercent: s.ChangePercent,
		Change:        s.Change,
	}
}

// ProfileOf builds the normalized company profile of a snapshot.
func ProfileOf(s *models.Snapshot) models.CompanyProfile {
	return models.CompanyProfile{
		Symbol:            s.Symbol,
		Sector:            s.Sector,
		Industry:          s.Industry,
		MarketCap:         s.MarketCap,
		FullTimeEmployees: s.FullTimeEmployees,
		Website:           s.Website,
		BusinessSummary:   s.BusinessSummary,
		IsIndianStock:     models.IsIndianSymbol(s.Symbol),
	}
}

// record assembles the composite stock record. detailed adds the fields
// only symbol searches carry.
func record(s *models.Snapshot, series *models.Series, detailed bool) models.StockRecord {
	q := QuoteOf(s)
	p := ProfileOf(s)
	info := models.StockInfo{
		Symbol:            q.Symbol,
		ShortName:         q.Name,
		CurrentPrice:      q.Price,
		Currency:          q.Currency,
		ChangePercent:     q.ChangePercent,
		MarketCap:         p.MarketCap,
		Sector:            p.Sector,
		Industry:          p.Industry,
		Website:           p.Website,
		FullTimeEmployees: p.FullTimeEmployees,
		IsIndianStock:     p.IsIndianStock,
	}
	if detailed {
		price := s.RegularMarketPrice
		summary := p.BusinessSummary
		info.RegularMarketPrice = &price
		info.LongBusinessSummary = &summary
	}
	return models.StockRecord{
		Info: info,
		Quote: models.StockQuote{
			Symbol:        q.Symbol,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
			Currency:      q.Currency,
		},
		Chart: chartOf(series),
	}
}

func chartOf(series *models.Series) models.Chart {
	if series.Empty() {
		return models.Chart{Dates: []string{}, Prices: []null.Float{}}
	}
	return models.Chart{Dates: series.Labels(dateLayout), Prices: series.Closes()}
}

// ArticleOf reduces a provider article to the four served fields.
func ArticleOf(a models.Article) models.NewsArticle {
	source := DefaultSourceName
	if a.Source != nil {
		source = stringOr(a.Source.Name, DefaultSourceName)
	}
	return models.NewsArticle{
		Title:       stringOr(a.Title, DefaultArticleTitle),
		Link:        stringOr(a.URL, DefaultArticleLink),
		Source:      source,
		PublishedAt: stringOr(a.PublishedAt, DefaultPublishedAt),
	}
}

func stringOr(s null.String, def string) string {
	if !s.Valid {
		return def
	}
	return s.String
}
