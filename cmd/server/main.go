package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_simhash_similarity/internal/config"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/simhash"
	"github.com/baditaflorin/go_simhash_similarity/internal/metrics"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
	"github.com/baditaflorin/go_simhash_similarity/internal/warmup"
)

// CompareRequest represents a similarity computation request
type CompareRequest struct {
	Original string `json:"original"`
	Target   string `json:"target"`
}

// FingerprintRequest asks for the fingerprint of a single text
type FingerprintRequest struct {
	Text string `json:"text"`
}

// CompareResponse represents a similarity computation response
type CompareResponse struct {
	RequestID       string                 `json:"request_id"`
	DifferenceScore int                    `json:"difference_score"`
	Similarity      float64                `json:"similarity"`
	Verdict         string                 `json:"verdict"`
	Description     string                 `json:"description"`
	ProcessingTime  string                 `json:"processing_time,omitempty"`
	Details         map[string]interface{} `json:"details,omitempty"`
}

// FingerprintResponse carries a fingerprint in hex
type FingerprintResponse struct {
	Fingerprint string `json:"fingerprint"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// server routes requests to the shared calculator. The calculator is
// immutable, so one instance serves all connections.
type server struct {
	calc    *simhash.Calculator
	logger  ports.Logger
	metrics *metrics.Recorder
	promh   fasthttp.RequestHandler
}

func newServer(calc *simhash.Calculator, log ports.Logger, reg *prometheus.Registry) *server {
	return &server{
		calc:    calc,
		logger:  log,
		metrics: metrics.NewRecorder(reg),
		promh:   fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	}
}

func main() {
	configFile := flag.String("config", "", "Path to a YAML configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	log, err := logger.New(logger.Options{File: cfg.Log.File, Output: os.Stdout, JSON: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting similarity HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
	)

	calc, err := simhash.NewCalculator(cfg.Calculator(), log)
	if err != nil {
		log.Error("Failed to initialize calculator", "error", err)
		os.Exit(1)
	}
	if cfg.Server.WarmUp {
		mgr := warmup.NewManager(log, warmup.DefaultWarmupConfig())
		mgr.RegisterCalculator(calc)
		mgr.RegisterFingerprinter(calc)
		mgr.WarmUp(context.Background())
	}
	log.Info("Calculator initialized", "cpus", runtime.NumCPU())

	reg := prometheus.NewRegistry()
	srv := newServer(calc, log, reg)

	httpServer := &fasthttp.Server{
		Handler:               srv.handle,
		Name:                  "SimilarityServer",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := httpServer.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := httpServer.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	path := string(ctx.Path())

	if path == "/metrics" {
		s.promh(ctx)
		return
	}

	ctx.Response.Header.SetContentType("application/json")

	route := path
	switch path {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/compare":
		s.handleCompare(ctx)
	case "/fingerprint":
		s.handleFingerprint(ctx)
	default:
		route = "unmatched"
		s.fail(ctx, fasthttp.StatusNotFound, "Not found")
	}

	duration := time.Since(startTime)
	s.metrics.ObserveRequest(route, duration)
	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleCompare scores two texts
func (s *server) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.fail(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	start := time.Now()
	result := s.calc.Compare(req.Original, req.Target)
	s.metrics.ObserveResult(result)

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, CompareResponse{
		RequestID:       uuid.NewString(),
		DifferenceScore: result.DifferenceScore,
		Similarity:      result.Similarity,
		Verdict:         result.Verdict.String(),
		Description:     result.Verdict.Description(),
		ProcessingTime:  time.Since(start).String(),
		Details:         result.Details,
	})
}

// handleFingerprint returns the SimHash of one text
func (s *server) handleFingerprint(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.fail(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req FingerprintRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.fail(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSON(ctx, FingerprintResponse{
		Fingerprint: fmt.Sprintf("%016x", s.calc.Fingerprint(req.Text)),
	})
}

// fail writes an error response and counts it
func (s *server) fail(ctx *fasthttp.RequestCtx, status int, message string) {
	path := string(ctx.Path())
	if status == fasthttp.StatusNotFound {
		path = "unmatched"
	}
	s.metrics.ObserveError(path, strconv.Itoa(status))
	ctx.SetStatusCode(status)
	s.writeJSON(ctx, ErrorResponse{Error: message})
}

// writeJSON writes a JSON response to the context
func (s *server) writeJSON(ctx *fasthttp.RequestCtx, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Error marshaling JSON response", "error", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(body)
}
