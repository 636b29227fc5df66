package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/secmon-lab/themis/pkg/utils/safe"
)

// defaultActor is attributed to patches that carry no actor field
const defaultActor = "demo_user"

func (s *Server) listCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	cases, err := s.uc.Case.ListCases(ctx, usecase.ListCaseFilter{
		Query:    q.Get("q"),
		Status:   q.Get("status"),
		Assignee: q.Get("assignee"),
		Priority: q.Get("priority"),
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"cases": cases})
}

func (s *Server) getCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := s.uc.Case.GetCase(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"case": c})
}

func (s *Server) patchCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(ctx, w, goerr.Wrap(model.ErrInvalidPatch, "failed to read request body"))
		return
	}

	var patch model.CasePatch
	if err := json.Unmarshal(body, &patch); err != nil {
		respondError(ctx, w, err)
		return
	}

	// The actor travels in the patch body, as in the original console API
	var meta struct {
		Actor string `json:"actor"`
	}
	if err := json.Unmarshal(body, &meta); err != nil {
		respondError(ctx, w, goerr.Wrap(model.ErrInvalidPatch, "malformed patch body"))
		return
	}
	if meta.Actor == "" {
		meta.Actor = defaultActor
	}

	c, err := s.uc.Case.PatchCase(ctx, chi.URLParam(r, "id"), &patch, meta.Actor)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"case": c})
}
