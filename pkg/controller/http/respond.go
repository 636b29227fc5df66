package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/secmon-lab/themis/pkg/utils/errutil"
	"github.com/secmon-lab/themis/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, body)
}

// respondError maps the use case error taxonomy onto HTTP status codes:
// not-found errors to 404, validation and ID mismatch to 400, the rest to 500.
// The body is the `{"error": ...}` envelope the API clients expect.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, usecase.ErrCaseNotFound),
		errors.Is(err, usecase.ErrTemplateNotFound),
		errors.Is(err, usecase.ErrRuleNotFound):
		status = http.StatusNotFound

	case errors.Is(err, model.ErrInvalidPatch),
		errors.Is(err, model.ErrInvalidTemplate),
		errors.Is(err, model.ErrInvalidRule),
		errors.Is(err, model.ErrInvalidLogEntry),
		errors.Is(err, usecase.ErrTemplateIDMismatch):
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		_ = errutil.Handle(ctx, err, "request failed")
	}

	respondJSON(ctx, w, status, map[string]string{"error": err.Error()})
}
