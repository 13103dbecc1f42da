// Package server exposes identicons over HTTP.
//
// Routes:
//
//	GET /avatar/{identifier}       PNG identicon (".png" suffix optional)
//	GET /healthz                   liveness probe
//
// Responses are immutable for a given identifier and size, so they carry a
// long-lived Cache-Control header and an ETag derived from the digest.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/identicon/pkg/buildinfo"
	"github.com/matzehuels/identicon/pkg/digest"
	ierrors "github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/observability"
	"github.com/matzehuels/identicon/pkg/pipeline"
)

const (
	cacheControl    = "public, max-age=31536000, immutable"
	shutdownTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr        string
	DefaultSize int
	MaxSize     int
	Filter      string
	Scaler      string
	Algorithm   string
}

// Server serves identicons rendered by a pipeline.Runner.
type Server struct {
	runner *pipeline.Runner
	opts   Options
	logger *log.Logger
	router chi.Router
}

// New builds a Server. Zero option values fall back to pipeline defaults.
func New(runner *pipeline.Runner, opts Options, logger *log.Logger) *Server {
	if opts.DefaultSize <= 0 {
		opts.DefaultSize = pipeline.DefaultSize
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = pipeline.MaxSize
	}
	if opts.DefaultSize > opts.MaxSize {
		opts.DefaultSize = opts.MaxSize
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{runner: runner, opts: opts, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/avatar/{identifier}", s.handleAvatar)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAvatar(w http.ResponseWriter, r *http.Request) {
	identifier, err := url.PathUnescape(chi.URLParam(r, "identifier"))
	if err != nil {
		s.writeError(w, r, ierrors.New(ierrors.ErrCodeInvalidInput, "identifier is not valid URL path encoding"))
		return
	}
	identifier = strings.TrimSuffix(identifier, ".png")
	if err := ierrors.ValidateIdentifier(identifier); err != nil {
		s.writeError(w, r, err)
		return
	}

	size, err := s.parseSize(r.URL.Query().Get("size"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	algorithm, err := digest.ParseAlgorithm(s.opts.Algorithm)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := digest.FromIdentifier(identifier, digest.WithAlgorithm(algorithm))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	etag := fmt.Sprintf(`"%s-%d"`, d, size)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", cacheControl)
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Identifier: identifier,
		Size:       size,
		Filter:     s.opts.Filter,
		Scaler:     s.opts.Scaler,
		Algorithm:  string(algorithm),
		Logger:     s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PNG)))
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(res.PNG)
}

func (s *Server) parseSize(raw string) (int, error) {
	if raw == "" {
		return s.opts.DefaultSize, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 || size > s.opts.MaxSize {
		return 0, ierrors.New(ierrors.ErrCodeInvalidInput, "size must be an integer between 1 and %d", s.opts.MaxSize)
	}
	return size, nil
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

type errorResponse struct {
	Code    ierrors.Code `json:"code"`
	Message string       `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := ierrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case ierrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case "":
		code = ierrors.ErrCodeInternal
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", middleware.GetReqID(r.Context()))
	}

	// The ETag and caching headers describe a successful image only.
	w.Header().Del("ETag")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Code: code, Message: ierrors.UserMessage(err)})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("Server", buildinfo.UserAgent())

		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), time.Since(start))

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
