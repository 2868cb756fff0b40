// Package app holds the constructors wire assembles into the server.
package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"stock-pulse/api"
	"stock-pulse/config"
	"stock-pulse/credentials"
	"stock-pulse/loader"
	"stock-pulse/logging"
	"stock-pulse/market"
	"stock-pulse/news"
	"stock-pulse/search"
	"stock-pulse/service"
)

// ProvideConfig loads config from CONFIG_FILE, config.yml, .env and the
// environment (for Wire).
func ProvideConfig() (*config.Config, error) {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProvideLogger builds the process logger and installs it globally (for Wire).
func ProvideLogger(cfg *config.Config) (*logging.Logger, error) {
	log, err := logging.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logging.SetGlobal(log)
	return log, nil
}

// ProvideCredentials prefers the environment over the config file.
func ProvideCredentials(cfg *config.Config) credentials.Provider {
	return credentials.Chain{
		credentials.NewEnvProvider(),
		credentials.NewStaticProvider(map[string]string{credentials.NewsAPIKey: cfg.News.APIKey}),
	}
}

// ProvideMarket selects the configured market backend, instrumented with
// upstream metrics (for Wire).
func ProvideMarket(cfg *config.Config, log *logging.Logger) (market.Provider, error) {
	var p market.Provider
	switch cfg.Market.Provider {
	case config.ProviderYahoo:
		p = market.NewYahoo(market.YahooConfig{
			HomeURL:   cfg.Market.HomeURL,
			APIURL:    cfg.Market.APIURL,
			UserAgent: cfg.Market.UserAgent,
			Timeout:   cfg.Market.Timeout,
		})
	case config.ProviderFinanceGo:
		p = market.NewFinanceGo(cfg.Market.Timeout)
	default:
		return nil, fmt.Errorf("unsupported market provider %q (use: yahoo, financego)", cfg.Market.Provider)
	}
	log.Info("market provider selected", "provider", p.Name())
	return &market.Instrumented{P: p}, nil
}

// ProvideNews builds the news client. A missing key is not fatal: the
// provider then answers without articles and news comes back empty.
func ProvideNews(cfg *config.Config, creds credentials.Provider, log *logging.Logger) news.Searcher {
	key, err := creds.GetCredential(credentials.NewsAPIKey)
	if errors.Is(err, credentials.ErrNotFound) {
		log.Warn("news api key not configured, news will be empty", "key", credentials.NewsAPIKey)
	}
	return news.NewClient(news.Config{
		BaseURL: cfg.News.BaseURL,
		APIKey:  key,
		Timeout: cfg.News.Timeout,
	}, log)
}

// ProvideAggregator wires the service over the providers (for Wire).
func ProvideAggregator(cfg *config.Config, m market.Provider, n news.Searcher, log *logging.Logger) *service.Aggregator {
	return service.NewAggregator(m, n, log, cfg.Market.Concurrency)
}

// ProvideCatalog indexes the built-in symbol catalog. When the bleve index
// cannot be built the linear engine serves instead.
func ProvideCatalog(log *logging.Logger) (search.SearchEngine, func(), error) {
	stocks, err := loader.Catalog()
	if err != nil {
		return nil, nil, fmt.Errorf("load symbol catalog: %w", err)
	}
	engine, err := search.NewBleveEngine(stocks, log)
	if err != nil {
		log.Warn("bleve index unavailable, using in-memory catalog search", "error", err)
		return search.NewInMemoryEngine(stocks), func() {}, nil
	}
	return engine, func() {
		if err := engine.Close(); err != nil {
			log.Warn("close catalog index", "error", err)
		}
	}, nil
}

// ProvideRouter builds the gin engine in release mode (for Wire).
func ProvideRouter(cfg *config.Config, h *api.Handler, log *logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return api.NewRouter(h, log, cfg.Server.RequestTimeout)
}

// ProvideServer wraps the router in an http.Server with bounded timeouts.
func ProvideServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
