package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/secmon-lab/themis/pkg/utils/safe"
)

func (s *Server) listLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := usecase.ListLogFilter{
		Actor:  q.Get("actor"),
		Action: q.Get("action"),
		CaseID: q.Get("caseId"),
	}

	if from := q.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			respondError(ctx, w, goerr.Wrap(model.ErrInvalidLogEntry, "invalid 'from' timestamp",
				goerr.V(model.ValueKey, from)))
			return
		}
		filter.From = &t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			respondError(ctx, w, goerr.Wrap(model.ErrInvalidLogEntry, "invalid 'to' timestamp",
				goerr.V(model.ValueKey, to)))
			return
		}
		filter.To = &t
	}

	logs, err := s.uc.AuditLog.ListLogs(ctx, filter)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"logs": logs})
}

func (s *Server) createLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var entry model.AuditLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(ctx, w, goerr.Wrap(model.ErrInvalidLogEntry, "malformed log body"))
		return
	}

	created, err := s.uc.AuditLog.CreateLog(ctx, &entry)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, map[string]any{"log": created})
}
