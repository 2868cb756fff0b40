package loader

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"stock-pulse/models"
)

//go:embed data/symbols.csv
var catalogCSV []byte

// CalculatePopularityScore assigns a popularity score based on well-known stocks.
// Score ranges from 0.2 (unknown) to 1.0 (highly popular). NSE listings are
// scored by their bare ticker.
func CalculatePopularityScore(symbol string) float64 {
	symbol = strings.TrimSuffix(strings.ToUpper(symbol), models.IndianSuffix)

	// Tier 1: Most popular stocks (0.9-1.0)
	tier1 := map[string]float64{
		"AAPL":       1.0,
		"RELIANCE":   1.0,
		"MSFT":       0.99,
		"TCS":        0.98,
		"NVDA":       0.98,
		"GOOGL":      0.97,
		"AMZN":       0.97,
		"HDFCBANK":   0.96,
		"TSLA":       0.96,
		"INFY":       0.95,
		"META":       0.94,
		"ICICIBANK":  0.94,
		"HINDUNILVR": 0.93,
		"ITC":        0.92,
		"SBIN":       0.91,
		"BHARTIARTL": 0.90,
		"KOTAKBANK":  0.90,
	}

	// Tier 2: Well-known large caps (0.7-0.89)
	tier2 := map[string]float64{
		"BAJFINANCE": 0.85,
		"JPM":        0.85,
		"NFLX":       0.84,
		"LT":         0.84,
		"ASIANPAINT": 0.83,
		"V":          0.83,
		"AXISBANK":   0.82,
		"WMT":        0.82,
		"MARUTI":     0.81,
		"AMD":        0.81,
		"SUNPHARMA":  0.80,
		"DIS":        0.80,
		"TITAN":      0.79,
		"KO":         0.79,
		"NESTLEIND":  0.78,
		"WIPRO":      0.76,
		"TATAMOTORS": 0.75,
		"BRK-B":      0.75,
		"TATASTEEL":  0.73,
		"ADANIENT":   0.71,
		"ONGC":       0.70,
		"SPY":        0.70,
	}

	// Tier 3: Mid-caps and sector leaders (0.4-0.69)
	tier3 := map[string]float64{
		"INTC":    0.65,
		"DRREDDY": 0.64,
		"PFE":     0.63,
		"HCLTECH": 0.61,
		"ORCL":    0.60,
		"QQQ":     0.58,
		"M&M":     0.49,
		"ZOMATO":  0.45,
		"IBM":     0.44,
	}

	if score, ok := tier1[symbol]; ok {
		return score
	}
	if score, ok := tier2[symbol]; ok {
		return score
	}
	if score, ok := tier3[symbol]; ok {
		return score
	}

	// Default score for other stocks
	return 0.2
}

// Catalog returns the symbol catalog built into the binary.
func Catalog() ([]models.Stock, error) {
	return LoadStocks(bytes.NewReader(catalogCSV))
}

// LoadStocks reads catalog rows of the form
// Symbol,Name,Exchange,Type[,Brand[,Sector[,Industry]]]. A leading header row
// is skipped, as are rows with fewer than four columns.
func LoadStocks(r io.Reader) ([]models.Stock, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if len(records) > 0 && len(records[0]) > 0 && records[0][0] == "Symbol" {
		records = records[1:]
	}

	stocks := make([]models.Stock, 0, len(records))
	for _, record := range records {
		if len(record) < 4 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		stock := models.Stock{
			Symbol:          strings.TrimSpace(record[0]),
			Name:            record[1],
			Exchange:        record[2],
			Type:            record[3],
			Brand:           column(record, 4),
			Sector:          column(record, 5),
			Industry:        column(record, 6),
			PopularityScore: CalculatePopularityScore(record[0]),
		}
		stocks = append(stocks, stock)
	}
	return stocks, nil
}

func column(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
