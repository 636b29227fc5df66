package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/utils/safe"
)

func (s *Server) listRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rules, err := s.uc.Rule.ListRules(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"rules": rules})
}

func (s *Server) createRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var rule model.Rule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		respondError(ctx, w, goerr.Wrap(model.ErrInvalidRule, "malformed rule body"))
		return
	}

	// ID and CreatedAt are always server-assigned
	rule.ID = ""
	rule.CreatedAt = time.Time{}

	created, err := s.uc.Rule.CreateRule(ctx, &rule)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, map[string]any{"rule": created})
}

func (s *Server) deleteRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.uc.Rule.DeleteRule(ctx, chi.URLParam(r, "id")); err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]bool{"ok": true})
}
