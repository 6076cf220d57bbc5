package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finleyross14/PeakOrderApp/internal/adapter/repo"
	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/http/handlers"
	"github.com/finleyross14/PeakOrderApp/internal/http/httpapi"
	"github.com/finleyross14/PeakOrderApp/internal/infra"
	"github.com/finleyross14/PeakOrderApp/internal/infra/geoip"
	"github.com/finleyross14/PeakOrderApp/internal/ledger"
	"github.com/finleyross14/PeakOrderApp/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Store selection: no DATABASE_URL means the in-memory ledger, which is
	// all a single-evening fundraiser needs. Setting it switches to pgx.
	var store domain.Store
	if cfg.DemoMode() {
		mem := ledger.New(time.Now)
		if cfg.SeedDemoData {
			mem.LoadDemoData()
		}
		store = mem
		logger.Info().Msg("using in-memory ledger")
	} else {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		store = repo.NewPG(infra.NewSQLRunner(pool, logger))
		logger.Info().Msg("using postgresql store")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip unavailable, locale falls back to headers")
	}
	var countryLookup middleware.CountryLookup
	if resolver != nil {
		countryLookup = resolver.CountryCode
	}

	app := handlers.NewApp(store, logger)
	app.SessionSecret = cfg.SessionSecret
	app.AdminKey = cfg.AdminKey
	app.GroupBy = domain.LeaderboardGroupBy(cfg.LeaderboardGroupBy)
	app.DefaultLocale = cfg.DefaultLocale

	router := httpapi.NewRouter(app, cfg, countryLookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
