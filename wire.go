//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"stock-pulse/api"
	"stock-pulse/app"
	"stock-pulse/service"
)

// InitializeApp builds App via Wire. Caller must call the cleanup func when done.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideCredentials,
		app.ProvideMarket,
		app.ProvideNews,
		app.ProvideAggregator,
		wire.Bind(new(api.Service), new(*service.Aggregator)),
		app.ProvideCatalog,
		api.NewHandler,
		app.ProvideRouter,
		app.ProvideServer,
		wire.Struct(new(App), "Config", "Log", "Server"),
	)
	return nil, nil, nil
}
