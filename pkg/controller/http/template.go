package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/utils/safe"
)

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := s.uc.Template.ListTemplates(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"templates": templates})
}

func (s *Server) getTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tpl, err := s.uc.Template.GetTemplate(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"template": tpl})
}

func (s *Server) putTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var tpl model.Template
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		respondError(ctx, w, goerr.Wrap(model.ErrInvalidTemplate, "malformed template body"))
		return
	}

	updated, err := s.uc.Template.PutTemplate(ctx, chi.URLParam(r, "id"), &tpl)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"template": updated})
}
