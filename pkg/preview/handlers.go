package preview

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saltsmart/tikzgo/pkg/cache"
	"github.com/saltsmart/tikzgo/pkg/errors"
	"github.com/saltsmart/tikzgo/pkg/observability"
	"github.com/saltsmart/tikzgo/pkg/pipeline"
	"github.com/saltsmart/tikzgo/pkg/store"
)

// routes builds the router. Artifact routes carry an extension suffix
// on the id segment, which chi matches ahead of the bare {id} pattern.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleIndex)
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handlePage)
		r.Delete("/{id}", s.handleDelete)
		r.Get("/{id}.pdf", s.handlePDF)
		r.Get("/{id}.png", s.handlePNG)
	})
	return r
}

// observe reports each request to the server hooks and the debug log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}

// createRequest is the POST /documents body.
type createRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// documentResponse is a document plus transient compile state that is
// not persisted with it.
type documentResponse struct {
	*store.Document
	CompileError string `json:"compile_error,omitempty"`
}

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.renderHTML(w, indexTemplate, indexData{Documents: docs})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// handleCreate stores a document and compiles it so the first page
// view is instant. A failed compile still stores the document; the
// response carries the compile error and the document stays stale.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Source == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "source is required"))
		return
	}

	doc, err := s.upsert(r, req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := documentResponse{Document: doc}
	if _, err := s.render(r.Context(), doc, pipeline.FormatPDF); err != nil {
		s.logger.Debug("compile on create failed", "name", doc.Name, "err", err)
		resp.CompileError = errors.UserMessage(err)
	}
	writeJSON(w, http.StatusCreated, resp)
}

// upsert updates the document with the request's name if it exists,
// otherwise creates a new one. Updates keep the document's UUID.
func (s *Server) upsert(r *http.Request, req createRequest) (*store.Document, error) {
	ctx := r.Context()

	doc, err := s.store.Get(ctx, req.Name)
	switch {
	case err == nil:
		doc.SetSource(req.Source)
	case stderrors.Is(err, store.ErrNotFound):
		doc, err = store.New(req.Name, req.Source)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.renderHTML(w, documentTemplate, documentData{Document: doc})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), doc.Name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatPDF, "application/pdf")
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatPNG, "image/png")
}

// serveArtifact compiles the document on demand and writes the
// requested artifact. Unchanged documents are served from cache.
func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, format, contentType string) {
	doc, err := s.store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := s.render(r.Context(), doc, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// render runs the pipeline for one artifact format and records a
// successful compile on the document. Execution is serialized; the
// pipeline cache keeps repeat renders cheap.
func (s *Server) render(ctx context.Context, doc *store.Document, format string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := s.pipeline
	opts.Formats = []string{format}
	result, err := s.runner.ExecuteSource(ctx, []byte(doc.Source), opts)
	if err != nil {
		return nil, err
	}

	hash := cache.Hash([]byte(doc.Source))
	if doc.IsStale(hash) {
		doc.MarkCompiled(opts.Engine, hash)
		if err := s.store.Put(ctx, doc); err != nil {
			s.logger.Debug("compile record update failed", "name", doc.Name, "err", err)
		}
	}
	return result.Artifacts[format], nil
}

// writeError maps an error to an HTTP status and writes the JSON
// error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

// statusFor maps pipeline and store errors onto HTTP statuses.
func statusFor(err error) int {
	var ce *errors.CompileError
	if stderrors.As(err, &ce) {
		return http.StatusUnprocessableEntity
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeDocumentNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInsufficientGeometry:
		return http.StatusBadRequest
	case errors.ErrCodeCompileFailed, errors.ErrCodeConvertFailed:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeEngineNotFound:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
