package cli

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizier/pkg/buildinfo"
	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/errors"
	"github.com/matzehuels/vizier/pkg/observability"
	"github.com/matzehuels/vizier/pkg/pipeline"
	"github.com/matzehuels/vizier/pkg/render"
)

// defaultAddr is the default listen address for the render service.
const defaultAddr = "127.0.0.1:8490"

// requestIDHeader is the response header carrying the per-request ID.
const requestIDHeader = "X-Request-Id"

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render pipeline over HTTP",
		Long: `Serve the render pipeline over HTTP.

POST /v1/render accepts DOT source plus engine and format choices and returns
the rendered artifacts as JSON; binary payloads are base64 encoded.
GET /v1/engines and GET /v1/formats list the available catalogs.

The service shares the CLI cache, so artifacts rendered on the command line
are served from cache and vice versa.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := NewServer(ServerConfig{Addr: addr, Runner: runner, Logger: c.Logger})

			printSuccess("Listening on %s", StyleLink.Render("http://"+srv.Addr()))
			printDetail("POST /v1/render · GET /v1/engines · GET /v1/formats")
			printNewline()

			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

// =============================================================================
// Server
// =============================================================================

// ServerConfig holds the configuration for the render service.
type ServerConfig struct {
	Addr   string // listen address (default: defaultAddr)
	Runner *pipeline.Runner
	Logger *log.Logger
}

// Server exposes the render pipeline over HTTP. Construct with NewServer.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
	addr   string
}

// NewServer creates a render service over the given runner. The server does
// not own the runner; the caller closes it.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: cfg.Runner,
		logger: logger,
		addr:   cfg.Addr,
	}
	s.router = s.buildRouter()
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with timeouts against slow clients
// and shuts down cleanly when ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("server started", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/engines", s.handleEngines)
		r.Get("/formats", s.handleFormats)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// requestID assigns each request a UUID, exposes it on the response, and
// stores a request-scoped logger in the context.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)
		ctx := withLogger(r.Context(), s.logger.With("request_id", id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests logs one line per request with method, path, status and timing,
// and feeds the HTTP observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		loggerFromContext(r.Context()).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed.Round(time.Millisecond))
	})
}

// =============================================================================
// Request/Response Types
// =============================================================================

// RenderRequest is the POST /v1/render request body.
type RenderRequest struct {
	Source  string   `json:"source"`
	Engine  string   `json:"engine,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`
}

// RenderArtifact is one rendered output in a RenderResponse. Text payloads
// are sent as-is; binary payloads are base64 encoded.
type RenderArtifact struct {
	Format   string `json:"format"`
	MIME     string `json:"mime"`
	Encoding string `json:"encoding"` // "utf8" or "base64"
	Data     string `json:"data"`
}

// RenderResponse is the POST /v1/render response body.
type RenderResponse struct {
	SourceHash string           `json:"source_hash"`
	Engine     string           `json:"engine"`
	Nodes      int              `json:"nodes"`
	Edges      int              `json:"edges"`
	Cached     bool             `json:"cached"`
	Artifacts  []RenderArtifact `json:"artifacts"`
}

// EngineInfo describes one layout engine in the catalog response.
type EngineInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

// FormatInfo describes one output format in the catalog response.
type FormatInfo struct {
	Name    string `json:"name"`
	MIME    string `json:"mime"`
	Ext     string `json:"ext"`
	Binary  bool   `json:"binary"`
	Default bool   `json:"default,omitempty"`
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleRender runs the full pipeline over the posted source and returns the
// artifacts. Validation problems are 400s; pipeline failures that carry an
// error code are 422s.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Request bodies are capped at 1MB.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("source is required"))
		return
	}
	if req.Engine == "" {
		req.Engine = pipeline.DefaultEngine
	}
	if len(req.Formats) == 0 {
		req.Formats = []string{pipeline.DefaultFormat}
	}
	if err := pipeline.ValidateEngine(req.Engine); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := pipeline.ValidateFormats(req.Formats); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	logger := loggerFromContext(r.Context())
	prog := newProgress(logger)

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Source:  req.Source,
		Engine:  req.Engine,
		Formats: req.Formats,
		Refresh: req.Refresh,
		Logger:  logger,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.GetCode(err) != "" {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}
	defer result.Graph.Close()

	prog.done("Rendered %d formats", len(result.Artifacts))

	resp := RenderResponse{
		SourceHash: result.SourceHash,
		Engine:     req.Engine,
		Nodes:      result.Stats.NodeCount,
		Edges:      result.Stats.EdgeCount,
		Cached:     result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	}
	for _, name := range req.Formats {
		data, ok := result.Artifacts[name]
		if !ok {
			continue
		}
		f, err := render.ParseFormat(name)
		if err != nil {
			continue
		}
		a := RenderArtifact{Format: f.String(), MIME: f.MIME()}
		if f.Binary() {
			a.Encoding = "base64"
			a.Data = base64.StdEncoding.EncodeToString(data)
		} else {
			a.Encoding = "utf8"
			a.Data = string(data)
		}
		resp.Artifacts = append(resp.Artifacts, a)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleEngines returns the layout engine catalog.
func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	engines := engine.Engines()
	infos := make([]EngineInfo, 0, len(engines))
	for _, e := range engines {
		infos = append(infos, EngineInfo{
			Name:        e.String(),
			Description: e.Description(),
			Default:     e.String() == pipeline.DefaultEngine,
		})
	}
	s.writeJSON(w, http.StatusOK, infos)
}

// handleFormats returns the output format catalog.
func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	formats := render.Formats()
	infos := make([]FormatInfo, 0, len(formats))
	for _, f := range formats {
		infos = append(infos, FormatInfo{
			Name:    f.String(),
			MIME:    f.MIME(),
			Ext:     f.Ext(),
			Binary:  f.Binary(),
			Default: f.String() == pipeline.DefaultFormat,
		})
	}
	s.writeJSON(w, http.StatusOK, infos)
}

// =============================================================================
// Response Helpers
// =============================================================================

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
