package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/hackathons/cliparse"
	"github.com/danielhkuo/hackathons/client"
	"github.com/danielhkuo/hackathons/db"
	"github.com/danielhkuo/hackathons/handlers"
	"github.com/danielhkuo/hackathons/logger"
	"github.com/danielhkuo/hackathons/middleware"
	"github.com/danielhkuo/hackathons/router"
	"github.com/danielhkuo/hackathons/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.IsProduction())

	source, closeSource, err := openSource(cfg)
	if err != nil {
		slog.Error("data source unavailable", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	// Create router
	mux, err := router.NewRouter(source, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-ctrlc
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "env", cfg.Env)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// openSource reads from a remote API when one is configured, otherwise from
// the database
func openSource(cfg cliparse.Config) (handlers.Source, func(), error) {
	if cfg.APIURL != "" {
		slog.Info("Reading from remote API", "url", cfg.APIURL)
		httpClient := &http.Client{Timeout: cfg.FetchTimeout}
		return client.New(cfg.APIURL, httpClient), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		dbConn.Close()
		return nil, nil, err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	return store.New(dbConn, cfg.RecentLimit), func() { dbConn.Close() }, nil
}
