package models

import "github.com/guregu/null/v6"

// Article is a news item as the news provider returns it. Only the fields
// the aggregator keeps are decoded.
type Article struct {
	Title       null.String    `json:"title"`
	URL         null.String    `json:"url"`
	Source      *ArticleSource `json:"source"`
	PublishedAt null.String    `json:"publishedAt"`
}

type ArticleSource struct {
	ID   null.String `json:"id"`
	Name null.String `json:"name"`
}

// NewsArticle is the reduced article served to clients.
type NewsArticle struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}
