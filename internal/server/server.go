package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/output"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 5 * time.Second
	retryAfter      = "30"
)

// Route binds a URL path to a registered output format.
type Route struct {
	Path        string
	Format      string
	ContentType string
}

// Routes are the rendered payloads the server exposes.
var Routes = []Route{
	{Path: "/", Format: "html", ContentType: "text/html; charset=utf-8"},
	{Path: "/grid.svg", Format: "svg", ContentType: "image/svg+xml"},
	{Path: "/grid.csv", Format: "csv", ContentType: "text/csv; charset=utf-8"},
	{Path: "/stats.json", Format: "json", ContentType: "application/json"},
	{Path: "/milestones.ics", Format: "ics", ContentType: "text/calendar; charset=utf-8"},
}

// cacheItem stores one rendered payload and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string
	contentType  string
}

// RenderServer serves the latest rendered snapshot in several formats.
// Payloads are swapped atomically so readers never wait on a refresh.
type RenderServer struct {
	Addr   string
	Logger calculation.Logger

	cache     map[string]*atomic.Pointer[cacheItem]
	refreshed atomic.Pointer[time.Time]
}

// NewRenderServer creates a server listening on addr (host:port).
func NewRenderServer(addr string) *RenderServer {
	s := &RenderServer{
		Addr:   addr,
		Logger: calculation.NopLogger{},
		cache:  make(map[string]*atomic.Pointer[cacheItem], len(Routes)),
	}
	for _, r := range Routes {
		s.cache[r.Path] = &atomic.Pointer[cacheItem]{}
	}
	return s
}

// Publish renders snap for every route. A format that fails keeps serving
// its previous payload. Formats skipped for lack of a grid are not errors.
func (s *RenderServer) Publish(snap *domain.Snapshot) error {
	var errs []error
	for _, r := range Routes {
		f := output.GetFormatterByName(r.Format)
		if f == nil {
			errs = append(errs, fmt.Errorf("%s: unknown format %q", r.Path, r.Format))
			continue
		}
		data, err := f.Format(snap)
		if err != nil {
			if errors.Is(err, output.ErrNoGrid) {
				s.Logger.Debugf("%s: %v", r.Path, err)
				continue
			}
			s.Logger.Warnf("%s: render failed, keeping previous payload: %v", r.Path, err)
			errs = append(errs, fmt.Errorf("%s: %w", r.Path, err))
			continue
		}
		s.Update(r.Path, r.ContentType, data)
	}
	now := time.Now()
	s.refreshed.Store(&now)
	return errors.Join(errs...)
}

// Update atomically replaces the content served at path.
func (s *RenderServer) Update(path, contentType string, data []byte) {
	slot, ok := s.cache[path]
	if !ok {
		return
	}
	hash := sha256.Sum256(data)
	slot.Store(&cacheItem{
		data:         data,
		etag:         `"` + hex.EncodeToString(hash[:]) + `"`,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
		contentType:  contentType,
	})
	s.Logger.Debugf("cache updated: %s (%d bytes)", path, len(data))
}

// Handler returns the HTTP routes.
func (s *RenderServer) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, r := range Routes {
		slot := s.cache[r.Path]
		pattern := r.Path
		if pattern == "/" {
			pattern = "/{$}"
		}
		mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
			s.serveCached(w, req, slot)
		})
	}
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Start runs the HTTP server and blocks until ctx is cancelled.
func (s *RenderServer) Start(ctx context.Context) error {
	if s.Addr == "" {
		return errors.New("listen address is required")
	}

	srv := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	serverError := make(chan error, 1)
	go func() {
		s.Logger.Infof("listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.Logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-serverError:
		return fmt.Errorf("server startup failed: %w", err)
	}
}

func (s *RenderServer) serveCached(w http.ResponseWriter, r *http.Request, slot *atomic.Pointer[cacheItem]) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	item := slot.Load()
	if item == nil {
		w.Header().Set("Retry-After", retryAfter)
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", item.contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=0, must-revalidate")
	w.Header().Set("ETag", item.etag)
	w.Header().Set("Last-Modified", item.lastModified)

	if match := r.Header.Get("If-None-Match"); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := w.Write(item.data); err != nil {
			s.Logger.Errorf("write response: %v", err)
		}
	}
}

func (s *RenderServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	at := s.refreshed.Load()
	if at == nil {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok %s\n", at.UTC().Format(time.RFC3339))
}
