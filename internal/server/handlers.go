package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/treegraft/treegraft/pkg/archive"
	"github.com/treegraft/treegraft/pkg/cache"
	apperrors "github.com/treegraft/treegraft/pkg/errors"
	"github.com/treegraft/treegraft/pkg/forest"
	"github.com/treegraft/treegraft/pkg/newick"
	"github.com/treegraft/treegraft/pkg/observability"
	"github.com/treegraft/treegraft/pkg/render"
	"github.com/treegraft/treegraft/pkg/treeio"
)

// maxBodySize bounds request bodies (16 MiB covers very large trees).
const maxBodySize = 16 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse converts Newick text in the request body to a tree document.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "read body: %v", err))
		return
	}

	key := s.keyer.TreeKey("newick", cache.Hash(body))
	if data, hit := s.cachedGet(r.Context(), key, "tree"); hit {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	t, err := newick.Parse(string(body))
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeParse, err, "parse newick"))
		return
	}

	doc := treeio.FromTree(t)
	data, err := json.Marshal(doc)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode tree"))
		return
	}
	s.cachedSet(r.Context(), key, "tree", data, cache.TTLTree)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleStats computes statistics for a tree document.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	t, raw, ok := s.readTree(w, r)
	if !ok {
		return
	}

	key := s.keyer.StatsKey(cache.Hash(raw))
	if data, hit := s.cachedGet(r.Context(), key, "stats"); hit {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	stats := treeio.ComputeStats(t)
	data, _ := json.Marshal(stats)
	s.cachedSet(r.Context(), key, "stats", data, cache.TTLStats)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleRender renders a tree document as dot or svg.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	if format != "svg" && format != "dot" {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported render format: %q", format))
		return
	}
	detailed := r.URL.Query().Get("detailed") == "true"

	t, raw, ok := s.readTree(w, r)
	if !ok {
		return
	}

	key := s.keyer.RenderKey(cache.Hash(raw), cache.RenderKeyOpts{Format: format, Detailed: detailed})
	if data, hit := s.cachedGet(r.Context(), key, "render"); hit {
		w.Header().Set("Content-Type", contentType(format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	observability.Render().OnRenderStart(r.Context(), format, t.NodeCount())
	start := time.Now()
	dot := render.ToDOT(t, render.Options{Detailed: detailed})
	var out []byte
	if format == "dot" {
		out = []byte(dot)
	} else {
		svg, err := render.RenderSVG(dot)
		if err != nil {
			observability.Render().OnRenderComplete(r.Context(), format, time.Since(start), err)
			writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render svg"))
			return
		}
		out = svg
	}
	observability.Render().OnRenderComplete(r.Context(), format, time.Since(start), nil)
	s.cachedSet(r.Context(), key, "render", out, cache.TTLRender)

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// saveTreeRequest is the body of POST /api/trees.
type saveTreeRequest struct {
	Name string      `json:"name"`
	Tree treeio.Tree `json:"tree"`
}

func (s *Server) handleTreeSave(w http.ResponseWriter, r *http.Request) {
	var req saveTreeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if err := apperrors.ValidateTreeName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	// Reject documents the engine could not load back
	if _, err := treeio.ToTree(req.Tree); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid tree document"))
		return
	}

	doc := archive.NewDocument(req.Name, req.Tree)
	err := s.store.Put(r.Context(), doc)
	observability.Archive().OnPut(r.Context(), doc.ID, err)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "save tree"))
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleTreeList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "list trees"))
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleTreeGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.Get(r.Context(), id)
	observability.Archive().OnGet(r.Context(), id, err)
	if errors.Is(err, archive.ErrNotFound) {
		writeError(w, apperrors.New(apperrors.ErrCodeTreeNotFound, "no tree with id %s", id))
		return
	}
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "get tree"))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleTreeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	observability.Archive().OnDelete(r.Context(), id, err)
	if errors.Is(err, archive.ErrNotFound) {
		writeError(w, apperrors.New(apperrors.ErrCodeTreeNotFound, "no tree with id %s", id))
		return
	}
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "delete tree"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readTree decodes a tree document from the request body and loads it
// into the engine. On failure it writes the error response and returns
// ok=false.
func (s *Server) readTree(w http.ResponseWriter, r *http.Request) (t *forest.Tree[newick.Label], raw []byte, ok bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "read body: %v", err))
		return nil, nil, false
	}

	var doc treeio.Tree
	if err := json.Unmarshal(body, &doc); err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode tree document"))
		return nil, nil, false
	}
	tree, err := treeio.ToTree(doc)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "load tree"))
		return nil, nil, false
	}
	return tree, body, true
}

// cachedGet looks up key and reports the hit or miss to registered hooks.
// Cache errors are treated as misses.
func (s *Server) cachedGet(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, _ := s.cache.Get(ctx, key)
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

// cachedSet stores a result, ignoring cache failures. Responses are
// served from the computed value either way.
func (s *Server) cachedSet(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, data, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
}

func contentType(format string) string {
	if format == "svg" {
		return "image/svg+xml"
	}
	return "text/vnd.graphviz"
}
