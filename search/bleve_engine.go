package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/mapping"

	"stock-pulse/logging"
	"stock-pulse/models"
)

// symbolAnalyzer keeps a ticker such as "RELIANCE.NS" or "BRK-B" as one
// lowercased term.
const symbolAnalyzer = "symbol"

// BleveEngine ranks catalog entries with an in-memory bleve index.
type BleveEngine struct {
	index  bleve.Index
	stocks map[string]models.Stock
	log    *logging.Logger
}

func NewBleveEngine(stocks []models.Stock, log *logging.Logger) (*BleveEngine, error) {
	indexMapping, err := buildIndexMapping()
	if err != nil {
		return nil, fmt.Errorf("build index mapping: %w", err)
	}
	index, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	byID := make(map[string]models.Stock, len(stocks))
	batch := index.NewBatch()
	for _, stock := range stocks {
		id := strings.ToUpper(stock.Symbol)
		byID[id] = stock
		if err := batch.Index(id, stock); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("add %s to batch: %w", stock.Symbol, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("execute batch: %w", err)
	}
	log.Info("symbol catalog indexed", "stocks", len(byID))

	return &BleveEngine{index: index, stocks: byID, log: log}, nil
}

func buildIndexMapping() (mapping.IndexMapping, error) {
	indexMapping := bleve.NewIndexMapping()
	err := indexMapping.AddCustomAnalyzer(symbolAnalyzer, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     single.Name,
		"token_filters": []string{lowercase.Name},
	})
	if err != nil {
		return nil, err
	}

	stockMapping := bleve.NewDocumentMapping()

	symbolFieldMapping := bleve.NewTextFieldMapping()
	symbolFieldMapping.Analyzer = symbolAnalyzer
	stockMapping.AddFieldMappingsAt("symbol", symbolFieldMapping)

	textFieldMapping := bleve.NewTextFieldMapping()
	stockMapping.AddFieldMappingsAt("name", textFieldMapping)
	stockMapping.AddFieldMappingsAt("brand", textFieldMapping)
	stockMapping.AddFieldMappingsAt("sector", textFieldMapping)
	stockMapping.AddFieldMappingsAt("industry", textFieldMapping)

	popularityFieldMapping := bleve.NewNumericFieldMapping()
	stockMapping.AddFieldMappingsAt("popularity_score", popularityFieldMapping)

	indexMapping.DefaultMapping = stockMapping
	return indexMapping, nil
}

// Search blends text relevance with catalog popularity:
// final = 0.7*text + 0.3*popularity.
func (e *BleveEngine) Search(query string, limit int) []models.Stock {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Stock{}
	}

	// 1. Exact symbol match
	exactQuery := bleve.NewTermQuery(q)
	exactQuery.SetField("symbol")
	exactQuery.SetBoost(10.0)

	// 2. Symbol prefix
	prefixQuery := bleve.NewPrefixQuery(q)
	prefixQuery.SetField("symbol")
	prefixQuery.SetBoost(5.0)

	// 3. Name words
	nameMatchQuery := bleve.NewMatchQuery(query)
	nameMatchQuery.SetField("name")
	nameMatchQuery.SetBoost(3.0)

	// 4-6. Substring matches
	wildcardSymbol := bleve.NewWildcardQuery("*" + q + "*")
	wildcardSymbol.SetField("symbol")
	wildcardSymbol.SetBoost(2.0)

	wildcardName := bleve.NewWildcardQuery("*" + q + "*")
	wildcardName.SetField("name")
	wildcardName.SetBoost(1.5)

	wildcardBrand := bleve.NewWildcardQuery("*" + q + "*")
	wildcardBrand.SetField("brand")
	wildcardBrand.SetBoost(1.0)

	searchQuery := bleve.NewDisjunctionQuery(
		exactQuery,
		prefixQuery,
		nameMatchQuery,
		wildcardSymbol,
		wildcardName,
		wildcardBrand,
	)

	searchRequest := bleve.NewSearchRequest(searchQuery)
	searchRequest.Size = 100

	searchResults, err := e.index.Search(searchRequest)
	if err != nil {
		e.log.Warn("catalog search failed", "query", query, "error", err)
		return []models.Stock{}
	}

	type scoredStock struct {
		stock models.Stock
		score float64
	}
	scored := make([]scoredStock, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		stock, ok := e.stocks[hit.ID]
		if !ok {
			continue
		}
		scored = append(scored, scoredStock{
			stock: stock,
			score: hit.Score*0.7 + stock.PopularityScore*0.3,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.Stock, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.stock)
	}
	return truncate(results, limit)
}

func (e *BleveEngine) GetBySymbol(symbol string) *models.Stock {
	stock, ok := e.stocks[strings.ToUpper(symbol)]
	if !ok {
		return nil
	}
	return &stock
}

func (e *BleveEngine) Close() error {
	return e.index.Close()
}
