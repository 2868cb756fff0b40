package models

// Stock is one entry of the built-in symbol catalog.
type Stock struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Exchange        string  `json:"exchange"`
	Type            string  `json:"type"`
	Brand           string  `json:"brand"`
	Sector          string  `json:"sector"`           // e.g., "Technology", "Financial Services"
	Industry        string  `json:"industry"`         // e.g., "Consumer Electronics", "Private Banks"
	PopularityScore float64 `json:"popularity_score"` // 0.0 to 1.0, used for ranking
}
