// Package preview serves rendered drawings over HTTP.
//
// The preview server is the browser-facing front end of the rendering
// pipeline: it stores named documents, compiles them on demand, and
// serves the artifacts so a drawing can be inspected without leaving
// the editor. Artifacts are produced by a pipeline Runner, so repeated
// views of an unchanged document come from cache.
//
// # Architecture
//
// The server wires three collaborators together:
//   - store.Store: document persistence (memory, file, or mongo)
//   - pipeline.Runner: generate → compile → rasterize with caching
//   - chi router: HTTP routing and middleware
//
// Routes:
//
//	GET    /                   HTML index of stored documents
//	GET    /documents          JSON document list
//	POST   /documents          create or update a document, compile it
//	GET    /documents/{id}     HTML page for one document
//	DELETE /documents/{id}     remove a document
//	GET    /documents/{id}.pdf compiled PDF
//	GET    /documents/{id}.png rasterized PNG
//
// Documents are addressed by UUID in URLs, so renaming a document does
// not break open browser tabs. Compilation is serialized with a mutex:
// LaTeX runs are expensive and the cache makes concurrent identical
// runs wasteful.
//
// # Usage
//
//	srv, err := preview.New(preview.Options{
//	    Store:  st,
//	    Runner: runner,
//	    Addr:   ":8264",
//	})
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx) // blocks until ctx is cancelled
package preview

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/saltsmart/tikzgo/pkg/pipeline"
	"github.com/saltsmart/tikzgo/pkg/store"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = ":8264"

// shutdownTimeout bounds how long Run waits for in-flight requests
// after its context is cancelled.
const shutdownTimeout = 5 * time.Second

// Options configures a preview server.
type Options struct {
	// Addr is the listen address. Empty means DefaultAddr.
	Addr string

	// Store holds the documents. Nil means an in-memory store.
	Store store.Store

	// Runner executes the rendering pipeline. Nil means a cacheless
	// runner.
	Runner *pipeline.Runner

	// Pipeline is the base option set for on-demand compilation.
	// Formats is overridden per request.
	Pipeline pipeline.Options

	// Logger receives request and compile logs. Nil means the default
	// logger.
	Logger *log.Logger
}

// Server is the preview HTTP server.
type Server struct {
	store    store.Store
	runner   *pipeline.Runner
	pipeline pipeline.Options
	addr     string
	logger   *log.Logger
	router   chi.Router

	// mu serializes pipeline execution across requests.
	mu sync.Mutex
}

// New creates a preview server. The pipeline options are validated up
// front so a misconfigured engine fails at startup, not on the first
// request.
func New(opts Options) (*Server, error) {
	if err := opts.Pipeline.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}

	s := &Server{
		store:    opts.Store,
		runner:   opts.Runner,
		pipeline: opts.Pipeline,
		addr:     opts.Addr,
		logger:   opts.Logger,
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the server's HTTP handler, for embedding in another
// mux or driving with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("preview server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		s.logger.Info("preview server stopped")
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
