// Package gateway adapts backend operations to the dashboard's public API
// and maps every backend failure to a fixed message and status.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"text-analysis-dashboard/backend"
	"text-analysis-dashboard/models"
)

// Client-visible messages.
const (
	MsgAnalyzeFailed = "Failed to analyze text"
	MsgFetchFailed   = "Failed to fetch entries"
	MsgMissingID     = "Missing entry ID"
	MsgDeleteFailed  = "Failed to delete entry"
	MsgDeleted       = "Entry deleted successfully"
	MsgNotFound      = "Entry not found"
	MsgGetFailed     = "Failed to fetch entry"
)

// ListPolicy decides what a call site does when listing fails.
type ListPolicy string

const (
	// Surface returns the failure to the caller.
	Surface ListPolicy = "surface"
	// Degrade substitutes an empty list and carries on.
	Degrade ListPolicy = "degrade"
)

// ErrorBody is the JSON shape of every gateway failure.
type ErrorBody struct {
	Error string `json:"error"`
}

// SubmitBody wraps a freshly created record.
type SubmitBody struct {
	Data *models.AnalysisRecord `json:"data"`
}

// MessageBody is returned by a successful delete.
type MessageBody struct {
	Message string `json:"message"`
}

// Result is a transport neutral response: a status and a JSON-able body.
type Result struct {
	Status int
	Body   any
}

// Gateway is stateless; each call is resolved against the backend alone.
type Gateway struct {
	backend backend.Service
}

// New returns a gateway over svc.
func New(svc backend.Service) *Gateway {
	return &Gateway{backend: svc}
}

// Submit forwards text to the backend without checking it for emptiness.
func (g *Gateway) Submit(ctx context.Context, text string) Result {
	rec, err := g.backend.Analyze(ctx, text)
	if err != nil {
		logFailure(ctx, "submit", err)
		return failed(http.StatusInternalServerError, MsgAnalyzeFailed)
	}
	return Result{Status: http.StatusOK, Body: SubmitBody{Data: rec}}
}

// List returns all records, surfacing any failure.
func (g *Gateway) List(ctx context.Context) Result {
	records, err := g.backend.List(ctx)
	if err != nil {
		logFailure(ctx, "list", err)
		return failed(http.StatusInternalServerError, MsgFetchFailed)
	}
	return Result{Status: http.StatusOK, Body: records}
}

// Delete removes one record. An empty id is rejected before any backend call.
func (g *Gateway) Delete(ctx context.Context, id string) Result {
	if id == "" {
		return failed(http.StatusBadRequest, MsgMissingID)
	}
	if err := g.backend.Delete(ctx, id); err != nil {
		logFailure(ctx, "delete", err)
		if backend.IsKind(err, backend.ValidationError) {
			return failed(http.StatusBadRequest, MsgMissingID)
		}
		msg := backend.Detail(err)
		if msg == "" {
			msg = MsgDeleteFailed
		}
		return failed(http.StatusInternalServerError, msg)
	}
	return Result{Status: http.StatusOK, Body: MessageBody{Message: MsgDeleted}}
}

// Get fetches one record. An empty id is rejected before any backend call and
// a backend 404 becomes a 404 here.
func (g *Gateway) Get(ctx context.Context, id string) Result {
	if id == "" {
		return failed(http.StatusBadRequest, MsgMissingID)
	}
	rec, err := g.backend.Get(ctx, id)
	if err != nil {
		logFailure(ctx, "get", err)
		if backend.IsNotFound(err) {
			return failed(http.StatusNotFound, MsgNotFound)
		}
		return failed(http.StatusInternalServerError, MsgGetFailed)
	}
	return Result{Status: http.StatusOK, Body: rec}
}

// Records lists records for a page. Under Degrade a failure yields an empty
// list and a nil error; under Surface the failure is returned.
func (g *Gateway) Records(ctx context.Context, policy ListPolicy) ([]models.AnalysisRecord, error) {
	records, err := g.backend.List(ctx)
	if err == nil {
		return records, nil
	}
	logFailure(ctx, "list", err, "policy", string(policy))
	if policy == Degrade {
		return []models.AnalysisRecord{}, nil
	}
	return nil, err
}

func failed(status int, msg string) Result {
	return Result{Status: status, Body: ErrorBody{Error: msg}}
}

func logFailure(ctx context.Context, op string, err error, attrs ...any) {
	kind := "unknown"
	var f *backend.Failure
	if errors.As(err, &f) {
		kind = string(f.Kind)
	}
	args := append([]any{"op", op, "kind", kind, "request_id", backend.RequestID(ctx), "error", err}, attrs...)
	slog.ErrorContext(ctx, "backend call failed", args...)
}
