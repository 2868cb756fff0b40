package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"stock-pulse/logging"
	"stock-pulse/metrics"
)

// NewRouter mounts the client routes plus health and metrics. A zero
// timeout leaves request contexts unbounded.
func NewRouter(h *Handler, log *logging.Logger, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(RequestLogger(log), Metrics(), CORS(), Recovery(log))
	if timeout > 0 {
		r.Use(Timeout(timeout))
	}
	r.Use(Error())

	r.GET("/hot-stocks", h.HotStocks)
	r.GET("/stock-news/:ticker", h.StockNews)
	r.GET("/stock-history/:ticker", h.StockHistory)
	r.GET("/search-stock/:query", h.SearchStock)
	r.GET("/symbols", h.Symbols)

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)
	return r
}
