package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/autopo-labs/autopo/internal/common"
	"github.com/autopo-labs/autopo/internal/extract"
	"github.com/autopo-labs/autopo/internal/llm/gemini"
	"github.com/autopo-labs/autopo/internal/repository"
	"github.com/autopo-labs/autopo/internal/server"
	"github.com/autopo-labs/autopo/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP review service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var historyRepo repository.HistoryRepository
	if cfg.History.Path != "" {
		db, err := repository.Open(cfg.History.Path, logger)
		if err != nil {
			return err
		}
		defer repository.Close(db, logger)
		historyRepo = repository.NewHistoryRepository(db, logger)
	}

	client := gemini.NewClient(gemini.Config{
		URL:     cfg.Extractor.URL,
		APIKey:  cfg.Extractor.APIKey,
		Timeout: cfg.Extractor.Timeout,
	}, logger)
	svc := extract.NewService(client, logger)
	sess := session.New(svc, historyRepo, logger)
	api := server.New(sess, historyRepo, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("http.serving", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http.serve_error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
