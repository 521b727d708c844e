package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/skilltree/pkg/cache"
	"github.com/matzehuels/skilltree/pkg/editor"
	"github.com/matzehuels/skilltree/pkg/errors"
	skillio "github.com/matzehuels/skilltree/pkg/io"
	"github.com/matzehuels/skilltree/pkg/observability"
	"github.com/matzehuels/skilltree/pkg/render/nodelink"
	"github.com/matzehuels/skilltree/pkg/render/scene"
	"github.com/matzehuels/skilltree/pkg/tree"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address. Default ":8080".
	Addr string
	// Origin is the public base URL used in share links. Default
	// "http://localhost" plus the port of Addr.
	Origin string
	// ShutdownTimeout bounds graceful shutdown. Default 5s.
	ShutdownTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Origin == "" {
		host := c.Addr
		if strings.HasPrefix(host, ":") {
			host = "localhost" + host
		}
		c.Origin = "http://" + host
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	return c
}

// Server serves shared trees.
type Server struct {
	cfg    Config
	logger *log.Logger
	svgs   *cache.MemoryCache

	mu    sync.RWMutex
	trees map[string]*tree.Tree
}

// New creates a server for the given trees. A nil logger discards output.
func New(cfg Config, logger *log.Logger, trees ...*tree.Tree) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		cfg:    cfg.withDefaults(),
		logger: logger,
		svgs:   cache.NewMemoryCache(),
		trees:  make(map[string]*tree.Tree),
	}
	for _, t := range trees {
		s.Add(t)
	}
	return s
}

// Add publishes t under its id, replacing any tree with the same id.
func (s *Server) Add(t *tree.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trees[t.ID] = t
	s.svgs.DeletePrefix("svg:" + t.ID + ":")
}

// ShareURL returns the public link of tree id.
func (s *Server) ShareURL(id string) string {
	return editor.ShareURL(s.cfg.Origin, id)
}

func (s *Server) lookup(id string) (*tree.Tree, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trees[id]
	return t, ok
}

func (s *Server) list() []*tree.Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*tree.Tree, 0, len(s.trees))
	for _, t := range s.trees {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b *tree.Tree) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleIndex)
	r.Route("/tree/{id}", func(r chi.Router) {
		r.Get("/", s.handleSVG)
		r.Get("/export", s.handleExport)
		r.Get("/dot", s.handleDOT)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("serving", "addr", s.cfg.Addr, "origin", s.cfg.Origin, "trees", len(s.list()))

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status,
			"id", middleware.GetReqID(r.Context()))
	})
}

// fail writes err with the status its code implies.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

func (s *Server) tree(w http.ResponseWriter, r *http.Request) (*tree.Tree, bool) {
	id := chi.URLParam(r, "id")
	t, ok := s.lookup(id)
	if !ok {
		s.fail(w, errors.NotFound("tree", id))
	}
	return t, ok
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tree(w, r)
	if !ok {
		return
	}
	style, err := scene.ParseStyle(r.URL.Query().Get("style"))
	if err != nil {
		s.fail(w, err)
		return
	}

	key, err := svgKey(t, style)
	if err != nil {
		s.fail(w, err)
		return
	}
	svg, hit, _ := s.svgs.Get(r.Context(), key)
	if !hit {
		opts := scene.DefaultOptions()
		opts.Style = style
		positions := editor.New(t, editor.Options{Logger: s.logger}).Positions()
		if svg, err = scene.Render(r.Context(), t, positions, opts); err != nil {
			s.fail(w, err)
			return
		}
		_ = s.svgs.Set(r.Context(), key, svg, 0)
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Cache", cacheStatus(hit))
	_, _ = w.Write(svg)
}

// svgKey names the rendering of t in style. The key includes a digest of
// the tree's content, so a render of a replaced tree can never be served for
// its successor.
func svgKey(t *tree.Tree, style scene.Style) (string, error) {
	var buf bytes.Buffer
	if err := skillio.WriteJSON(t, &buf); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "digest tree %s", t.ID)
	}
	return cache.Key("svg:"+t.ID, style, cache.Hash(buf.Bytes())), nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tree(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", t.ID+".json"))
	if err := skillio.WriteJSON(t, w); err != nil {
		s.logger.Error("export", "tree", t.ID, "err", err)
	}
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	t, ok := s.tree(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = io.WriteString(w, nodelink.ToDOT(t, nodelink.Options{}))
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Skill trees</title></head>
<body>
<h1>Skill trees</h1>
<ul>
{{- range .}}
  <li><a href="{{.URL}}">{{.Name}}</a> · {{.Progress}}% · {{.Nodes}} skills · <a href="{{.URL}}/export">JSON</a></li>
{{- else}}
  <li>Nothing shared yet.</li>
{{- end}}
</ul>
</body>
</html>
`))

type indexEntry struct {
	Name     string
	URL      string
	Progress int
	Nodes    int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var entries []indexEntry
	for _, t := range s.list() {
		entries = append(entries, indexEntry{
			Name:     t.Name,
			URL:      s.ShareURL(t.ID),
			Progress: t.Progress,
			Nodes:    t.Len(),
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, entries); err != nil {
		s.logger.Error("index", "err", err)
	}
}
