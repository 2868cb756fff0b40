package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock-pulse/models"
	"stock-pulse/search"
	"stock-pulse/service"
)

//go:generate mockgen -destination=mocks/service.go -package=mocks stock-pulse/api Service

// Service is the aggregation surface the handlers serve.
type Service interface {
	GetHotStocks(ctx context.Context) ([]models.StockRecord, error)
	GetStockNews(ctx context.Context, ticker string) ([]models.NewsArticle, error)
	GetStockHistory(ctx context.Context, ticker, period string) (*models.History, error)
	SearchStock(ctx context.Context, query string) (*models.StockRecord, error)
}

type Handler struct {
	svc     Service
	catalog search.SearchEngine
}

func NewHandler(svc Service, catalog search.SearchEngine) *Handler {
	return &Handler{svc: svc, catalog: catalog}
}

func (h *Handler) HotStocks(c *gin.Context) {
	records, err := h.svc.GetHotStocks(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) StockNews(c *gin.Context) {
	articles, err := h.svc.GetStockNews(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *Handler) StockHistory(c *gin.Context) {
	history, err := h.svc.GetStockHistory(c.Request.Context(), c.Param("ticker"), c.Query("period"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *Handler) SearchStock(c *gin.Context) {
	record, err := h.svc.SearchStock(c.Request.Context(), c.Param("query"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, record)
}

type symbolsQuery struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=10"`
}

// Symbols suggests catalog entries for free text. An exact ticker match is
// always listed first.
func (h *Handler) Symbols(c *gin.Context) {
	var q symbolsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(&service.StatusError{StatusCode: http.StatusBadRequest, Message: "Invalid query parameter 'limit'", Err: err})
		return
	}
	if strings.TrimSpace(q.Q) == "" {
		_ = c.Error(&service.StatusError{StatusCode: http.StatusBadRequest, Message: "Missing query parameter 'q'"})
		return
	}
	results := h.catalog.Search(q.Q, q.Limit)
	if exact := h.catalog.GetBySymbol(strings.TrimSpace(q.Q)); exact != nil {
		results = pinFirst(*exact, results, q.Limit)
	}
	c.JSON(http.StatusOK, results)
}

func pinFirst(exact models.Stock, results []models.Stock, limit int) []models.Stock {
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	out := make([]models.Stock, 0, len(results)+1)
	out = append(out, exact)
	for _, s := range results {
		if len(out) == limit {
			break
		}
		if !strings.EqualFold(s.Symbol, exact.Symbol) {
			out = append(out, s)
		}
	}
	return out
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
