package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/cliparse"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/metrics"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/router"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the store (pings before returning)
	ctx := context.Background()
	store, err := db.Open(ctx, db.Dialect(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, store); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Provisioning modes: print tokens and exit
	if done, err := provision(ctx, service.NewVoterService(store), cfg, os.Stdout); err != nil {
		slog.Error("voter provisioning failed", "error", err)
		os.Exit(1)
	} else if done {
		return
	}

	// Create router
	mux := router.NewRouter(store, cfg, metrics.New())

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
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// provision handles -issue-tokens and -register-token. It reports whether a
// provisioning mode ran, in which case the server is not started.
func provision(ctx context.Context, voters *service.VoterService, cfg cliparse.Config, out io.Writer) (bool, error) {
	switch {
	case cfg.IssueTokens > 0:
		tokens, err := voters.IssueTokens(ctx, cfg.IssueTokens)
		if err != nil {
			return true, err
		}
		for _, token := range tokens {
			fmt.Fprintln(out, token)
		}
		slog.Info("Issued voter tokens", "count", len(tokens))
		return true, nil

	case cfg.RegisterToken != "":
		if err := voters.Register(ctx, cfg.RegisterToken); err != nil {
			return true, err
		}
		slog.Info("Registered voter token")
		return true, nil
	}
	return false, nil
}
