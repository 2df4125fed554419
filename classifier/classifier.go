// Package classifier calls the external text classification service used by
// the reference backend. The model behind it is not part of this module.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result is the pair of classifications produced for one text.
type Result struct {
	EmotionLabel      string
	EmotionConfidence float64
	GibberishLabel    string
	GibberishScore    float64
}

// Classifier scores a text.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Result, error)
}

// HTTPClassifier posts {"text": ...} to an inference endpoint.
type HTTPClassifier struct {
	url    string
	client *http.Client
}

// NewHTTP returns a classifier for the endpoint at url.
func NewHTTP(url string, timeout time.Duration) *HTTPClassifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClassifier{url: url, client: &http.Client{Timeout: timeout}}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Emotion *struct {
		Label      string   `json:"label"`
		Confidence *float64 `json:"confidence"`
	} `json:"emotion"`
	Gibberish *struct {
		Label string   `json:"label"`
		Score *float64 `json:"score"`
	} `json:"gibberish"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("classifier error: status %d: %s", resp.StatusCode, string(b))
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classifier response: %w", err)
	}
	if out.Emotion == nil || out.Emotion.Confidence == nil {
		return nil, fmt.Errorf("classifier response missing emotion")
	}
	if out.Gibberish == nil || out.Gibberish.Score == nil {
		return nil, fmt.Errorf("classifier response missing gibberish")
	}

	label := out.Emotion.Label
	if label == "" {
		label = "Unknown"
	}
	return &Result{
		EmotionLabel:      label,
		EmotionConfidence: *out.Emotion.Confidence,
		GibberishLabel:    out.Gibberish.Label,
		GibberishScore:    *out.Gibberish.Score,
	}, nil
}
