// Package backend is the HTTP client for the text analysis backend service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"text-analysis-dashboard/models"
)

// RequestIDHeader carries the gateway request id to the backend.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID attaches a request id that outgoing calls forward.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Service is the set of backend operations the dashboard depends on.
type Service interface {
	Analyze(ctx context.Context, text string) (*models.AnalysisRecord, error)
	List(ctx context.Context) ([]models.AnalysisRecord, error)
	Get(ctx context.Context, id string) (*models.AnalysisRecord, error)
	Delete(ctx context.Context, id string) error
}

// Client talks to the backend over HTTP. It holds no state between calls.
type Client struct {
	baseURL          string
	client           *http.Client
	maxResponseBytes int64
}

// NewClient creates a backend client. A zero timeout leaves calls bounded
// only by the caller's context.
func NewClient(baseURL string, timeout time.Duration, maxResponseBytes int64) *Client {
	if maxResponseBytes <= 0 {
		maxResponseBytes = 8 * 1024 * 1024
	}
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		client:           &http.Client{Timeout: timeout},
		maxResponseBytes: maxResponseBytes,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// analyzeResponse accepts both the flat record and the older nested payload
// that only carried the two classifications.
type analyzeResponse struct {
	models.AnalysisRecord
	Emotion *struct {
		Label      string       `json:"label"`
		Confidence models.Score `json:"confidence"`
	} `json:"emotion"`
	Gibberish *struct {
		Label string       `json:"label"`
		Score models.Score `json:"score"`
	} `json:"gibberish"`
}

type errorBody struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Analyze submits text for classification. The backend creates exactly one
// record. Empty text is forwarded as-is.
func (c *Client) Analyze(ctx context.Context, text string) (*models.AnalysisRecord, error) {
	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	status, respBody, err := c.do(ctx, http.MethodPost, "/analyze", body)
	if err != nil {
		return nil, err
	}

	var resp analyzeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, malformed(status, fmt.Errorf("decode analyze response: %w", err))
	}

	rec := resp.AnalysisRecord
	if rec.ID == 0 && resp.Emotion == nil && resp.Gibberish == nil {
		return nil, malformed(status, errors.New("analyze response carried no record"))
	}
	if resp.Emotion != nil && rec.EmotionLabel == "" {
		rec.EmotionLabel = resp.Emotion.Label
		rec.EmotionConfidence = resp.Emotion.Confidence
	}
	if resp.Gibberish != nil && rec.GibberishLabel == "" {
		rec.GibberishLabel = resp.Gibberish.Label
		rec.GibberishScore = resp.Gibberish.Score
	}
	if rec.Text == "" {
		rec.Text = text
	}
	return &rec, nil
}

// List returns every record in the order the backend reports them.
func (c *Client) List(ctx context.Context) ([]models.AnalysisRecord, error) {
	status, respBody, err := c.do(ctx, http.MethodGet, "/entries/", nil)
	if err != nil {
		return nil, err
	}

	var records []models.AnalysisRecord
	if err := json.Unmarshal(respBody, &records); err != nil {
		return nil, malformed(status, fmt.Errorf("decode entries: %w", err))
	}
	for i, r := range records {
		if r.ID <= 0 {
			return nil, malformed(status, fmt.Errorf("entry %d has no id", i))
		}
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}
	return records, nil
}

// Get returns a single record by id.
func (c *Client) Get(ctx context.Context, id string) (*models.AnalysisRecord, error) {
	if id == "" {
		return nil, ErrMissingIdentifier
	}
	status, respBody, err := c.do(ctx, http.MethodGet, "/entries/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var rec models.AnalysisRecord
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, malformed(status, fmt.Errorf("decode entry: %w", err))
	}
	if rec.ID <= 0 {
		return nil, malformed(status, errors.New("entry has no id"))
	}
	return &rec, nil
}

// Delete removes one record. An empty id fails locally and is never sent.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingIdentifier
	}
	_, _, err := c.do(ctx, http.MethodDelete, "/delete/"+url.PathEscape(id), nil)
	return err
}

// Health reports whether the backend answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

// do sends one request and returns the body of a 2xx response. Any other
// outcome is a BackendUnavailable failure carrying the backend's detail.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, unavailable(0, "", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestID(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, unavailable(0, "", fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil, unavailable(resp.StatusCode, errorDetail(respBody), fmt.Errorf("%s %s", method, path))
	}
	if readErr != nil {
		return resp.StatusCode, nil, malformed(resp.StatusCode, fmt.Errorf("read body: %w", readErr))
	}
	if int64(len(respBody)) > c.maxResponseBytes {
		return resp.StatusCode, nil, malformed(resp.StatusCode, fmt.Errorf("response exceeded limit (%d bytes)", c.maxResponseBytes))
	}
	return resp.StatusCode, respBody, nil
}

// errorDetail extracts a human readable message from an error body. The
// backend uses "detail"; "message" and "error" are accepted too.
func errorDetail(body []byte) string {
	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return ""
	}
	if s, ok := eb.Detail.(string); ok && s != "" {
		return s
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}
