package search

import (
	"sort"
	"strings"

	"stock-pulse/models"
)

// DefaultLimit caps suggestion results when the caller passes no limit.
const DefaultLimit = 10

type SearchEngine interface {
	Search(query string, limit int) []models.Stock
	GetBySymbol(symbol string) *models.Stock
}

// InMemoryEngine scans the catalog linearly. It backs the suggestions
// endpoint when the bleve index cannot be built.
type InMemoryEngine struct {
	stocks []models.Stock
}

func NewInMemoryEngine(stocks []models.Stock) *InMemoryEngine {
	return &InMemoryEngine{stocks: stocks}
}

func (e *InMemoryEngine) Search(query string, limit int) []models.Stock {
	results := []models.Stock{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}
	for _, stock := range e.stocks {
		if strings.HasPrefix(strings.ToLower(stock.Symbol), q) ||
			strings.Contains(strings.ToLower(stock.Name), q) ||
			strings.Contains(strings.ToLower(stock.Brand), q) {
			results = append(results, stock)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PopularityScore > results[j].PopularityScore
	})
	return truncate(results, limit)
}

func (e *InMemoryEngine) GetBySymbol(symbol string) *models.Stock {
	for _, stock := range e.stocks {
		if strings.EqualFold(stock.Symbol, symbol) {
			return &stock
		}
	}
	return nil
}

func truncate(stocks []models.Stock, limit int) []models.Stock {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(stocks) > limit {
		return stocks[:limit]
	}
	return stocks
}
