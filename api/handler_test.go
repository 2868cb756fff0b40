package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stock-pulse/api/mocks"
	"stock-pulse/logging"
	"stock-pulse/metrics"
	"stock-pulse/models"
	"stock-pulse/search"
	"stock-pulse/service"
)

var catalog = []models.Stock{
	{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Type: "Stock", PopularityScore: 1.0},
	{Symbol: "TCS.NS", Name: "Tata Consultancy Services Limited", Exchange: "NSE", Type: "Stock", PopularityScore: 0.98},
	{Symbol: "TATASTEEL.NS", Name: "Tata Steel Limited", Exchange: "NSE", Type: "Stock", PopularityScore: 0.73},
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := mocks.NewMockService(gomock.NewController(t))
	h := NewHandler(svc, search.NewInMemoryEngine(catalog))
	return NewRouter(h, logging.Nop(), time.Second), svc
}

func serve(r http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlers(t *testing.T) {
	history := &models.History{
		Dates:      []string{"09:15", "10:15"},
		Prices:     []null.Float{null.FloatFrom(3800.5), {}},
		Period:     "1d",
		IsIntraday: true,
	}
	record := &models.StockRecord{
		Info:  models.StockInfo{Symbol: "AAPL", ShortName: "Apple Inc.", Currency: "USD"},
		Quote: models.StockQuote{Symbol: "AAPL", Currency: "USD"},
		Chart: models.Chart{Dates: []string{}, Prices: []null.Float{}},
	}

	testCases := []struct {
		name       string
		url        string
		setupMock  func(svc *mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "hot stocks",
			url:  "/hot-stocks",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().GetHotStocks(gomock.Any()).Return([]models.StockRecord{*record}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `[{"info":{"symbol":"AAPL","shortName":"Apple Inc.","currentPrice":null,"currency":"USD",
				"changePercent":null,"marketCap":null,"sector":null,"industry":null,"website":null,
				"fullTimeEmployees":null,"isIndianStock":false},
				"quote":{"symbol":"AAPL","price":null,"change":null,"changePercent":null,"currency":"USD"},
				"chart":{"dates":[],"prices":[]}}]`,
		},
		{
			name: "hot stocks all failed",
			url:  "/hot-stocks",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().GetHotStocks(gomock.Any()).Return(nil, service.UpstreamFailure("Error fetching hot stocks: ", errors.New("network down")))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Error fetching hot stocks: network down"}`,
		},
		{
			name: "news",
			url:  "/stock-news/TCS.NS",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().GetStockNews(gomock.Any(), "TCS.NS").Return([]models.NewsArticle{
					{Title: "No title", Link: "#", Source: "Unknown", PublishedAt: ""},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"title":"No title","link":"#","source":"Unknown","publishedAt":""}]`,
		},
		{
			name: "news empty",
			url:  "/stock-news/ZZZZ",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().GetStockNews(gomock.Any(), "ZZZZ").Return([]models.NewsArticle{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "history with period",
			url:  "/stock-history/TCS.NS?period=1d",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().GetStockHistory(gomock.Any(), "TCS.NS", "1d").Return(history, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"dates":["09:15","10:15"],"prices":[3800.5,null],"period":"1d","isIntraday":true}`,
		},
		{
			name: "history default period passes empty",
			url:  "/stock-history/AAPL",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().GetStockHistory(gomock.Any(), "AAPL", "").Return(nil, service.NotFound("No historical data found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"No historical data found"}`,
		},
		{
			name: "search",
			url:  "/search-stock/AAPL",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().SearchStock(gomock.Any(), "AAPL").Return(record, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "search not found",
			url:  "/search-stock/ZZZZ",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().SearchStock(gomock.Any(), "ZZZZ").Return(nil, service.NotFound("Stock not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Stock not found"}`,
		},
		{
			name: "unclassified error",
			url:  "/search-stock/AAPL",
			setupMock: func(svc *mocks.MockService) {
				svc.EXPECT().SearchStock(gomock.Any(), "AAPL").Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"boom"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := setupRouter(t)
			tc.setupMock(svc)

			w := serve(r, http.MethodGet, tc.url, nil)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestSymbols(t *testing.T) {
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/symbols?q=tata", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbol":"TCS.NS"`)
	assert.True(t, strings.Index(w.Body.String(), "TCS.NS") < strings.Index(w.Body.String(), "TATASTEEL.NS"))

	w = serve(r, http.MethodGet, "/symbols?q=tata&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "TATASTEEL.NS")

	w = serve(r, http.MethodGet, "/symbols?q=nothing-here", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSymbols_ExactSymbolFirst(t *testing.T) {
	stocks := append([]models.Stock{
		{Symbol: "TATA", Name: "Tata Investment Corporation", Exchange: "NYSE", Type: "Stock", PopularityScore: 0.2},
	}, catalog...)
	svc := mocks.NewMockService(gomock.NewController(t))
	r := NewRouter(NewHandler(svc, search.NewInMemoryEngine(stocks)), logging.Nop(), time.Second)

	tests := []struct {
		url  string
		want []string
	}{
		{"/symbols?q=tata", []string{"TATA", "TCS.NS", "TATASTEEL.NS"}},
		{"/symbols?q=TATA&limit=2", []string{"TATA", "TCS.NS"}},
		{"/symbols?q=tata&limit=1", []string{"TATA"}},
		{"/symbols?q=tcs.ns", []string{"TCS.NS"}},
		{"/symbols?q=tat", []string{"TCS.NS", "TATASTEEL.NS", "TATA"}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			w := serve(r, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var got []models.Stock
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			symbols := make([]string, 0, len(got))
			for _, s := range got {
				symbols = append(symbols, s.Symbol)
			}
			assert.Equal(t, tt.want, symbols)
		})
	}
}

func TestSymbols_BadRequest(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/symbols", `{"message":"Missing query parameter 'q'"}`},
		{"/symbols?q=%20", `{"message":"Missing query parameter 'q'"}`},
		{"/symbols?q=a&limit=500", `{"message":"Invalid query parameter 'limit'"}`},
		{"/symbols?q=a&limit=abc", `{"message":"Invalid query parameter 'limit'"}`},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			r, _ := setupRouter(t)
			w := serve(r, http.MethodGet, tt.url, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRecovery(t *testing.T) {
	r, _ := setupRouter(t)
	r.GET("/panic", func(*gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r, svc := setupRouter(t)
	origin := http.Header{"Origin": {"http://localhost:3000"}}

	svc.EXPECT().GetHotStocks(gomock.Any()).Return([]models.StockRecord{}, nil)
	w := serve(r, http.MethodGet, "/hot-stocks", origin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	preflight := http.Header{
		"Origin":                        {"http://localhost:3000"},
		"Access-Control-Request-Method": {"GET"},
	}
	w = serve(r, http.MethodOptions, "/hot-stocks", preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestCORS_PreflightEchoesRequestedHeaders(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		requested string
	}{
		{"history", "/stock-history/AAPL", "x-requested-with, authorization"},
		{"hot stocks", "/hot-stocks", "content-type"},
		{"no headers requested", "/stock-news/AAPL", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(t)
			preflight := http.Header{
				"Origin":                        {"http://localhost:3000"},
				"Access-Control-Request-Method": {"GET"},
			}
			if tt.requested != "" {
				preflight.Set("Access-Control-Request-Headers", tt.requested)
			}

			w := serve(r, http.MethodOptions, tt.target, preflight)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, tt.requested, w.Header().Get("Access-Control-Allow-Headers"))
			assert.NotEqual(t, "*", w.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	metrics.Init()
	r, _ := setupRouter(t)

	w := serve(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = serve(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{endpoint="/healthz",status="200"}`)
}

func TestUnknownRoute(t *testing.T) {
	tests := []struct {
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/nope", http.StatusNotFound, `{"message":"Not Found"}`},
		{http.MethodGet, "/search-stock/", http.StatusNotFound, `{"message":"Not Found"}`},
		{http.MethodGet, "/stock-news/", http.StatusNotFound, `{"message":"Not Found"}`},
		{http.MethodPost, "/hot-stocks", http.StatusMethodNotAllowed, `{"message":"Method Not Allowed"}`},
		{http.MethodDelete, "/symbols", http.StatusMethodNotAllowed, `{"message":"Method Not Allowed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			r, _ := setupRouter(t)
			w := serve(r, tt.method, tt.target, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestTimeout(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().GetHotStocks(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.StockRecord, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
		return []models.StockRecord{}, nil
	})

	w := serve(r, http.MethodGet, "/hot-stocks", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
