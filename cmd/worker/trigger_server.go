package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cfo-pulse/internal/domain/entity"
)

type triggerResponse struct {
	Status string `json:"status"`
}

// triggerRequest is the optional POST /ingest body. When sources are
// given they replace the configured registry for that one run.
type triggerRequest struct {
	Sources []triggerSource `json:"sources"`
}

type triggerSource struct {
	Name    string `json:"name"`
	FeedURL string `json:"feed_url"`
}

// startTriggerServer serves the worker's operational endpoints:
//   - POST /ingest   kick off a sync run (202; body may override sources)
//   - GET  /metrics  Prometheus scrape endpoint
//
// Blocks until ctx is cancelled, then shuts down gracefully.
func startTriggerServer(ctx context.Context, logger *slog.Logger, runner *ingestRunner, port int) {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /ingest", func(w http.ResponseWriter, r *http.Request) {
		override, err := parseTriggerBody(r)
		if err != nil {
			writeTrigger(w, http.StatusBadRequest, err.Error())
			return
		}
		if runner.Running() {
			writeTrigger(w, http.StatusAccepted, "already running")
			return
		}
		// Fire and forget: the run outlives this request, bounded by
		// the worker's ingest timeout.
		go runner.RunWith(ctx, "on-demand", override)
		writeTrigger(w, http.StatusAccepted, "sync started")
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("trigger server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("trigger server shutdown failed", slog.Any("error", err))
			return
		}
		logger.Info("trigger server stopped")
	case err := <-errChan:
		if err != http.ErrServerClosed {
			logger.Error("trigger server failed", slog.Any("error", err))
		}
	}
}

// parseTriggerBody reads the optional source override. An empty body
// means "use the configured registry". Named sources must carry both a
// name and a feed URL.
func parseTriggerBody(r *http.Request) ([]entity.FeedSource, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return nil, nil
	}
	var req triggerRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&req); err != nil {
		return nil, errors.New("invalid request body")
	}
	override := make([]entity.FeedSource, 0, len(req.Sources))
	for _, src := range req.Sources {
		if src.Name == "" || src.FeedURL == "" {
			return nil, errors.New("source entries must have name and feed_url")
		}
		override = append(override, entity.FeedSource{Name: src.Name, FeedURL: src.FeedURL})
	}
	return override, nil
}

func writeTrigger(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(triggerResponse{Status: msg})
}
