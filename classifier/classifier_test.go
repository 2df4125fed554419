package classifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I love this!", req["text"])
		io.WriteString(w, `{"emotion":{"label":"love","confidence":0.92},"gibberish":{"label":"clean","score":0.01}}`)
	}))
	defer srv.Close()

	res, err := NewHTTP(srv.URL, time.Second).Classify(context.Background(), "I love this!")
	require.NoError(t, err)
	assert.Equal(t, &Result{EmotionLabel: "love", EmotionConfidence: 0.92, GibberishLabel: "clean", GibberishScore: 0.01}, res)
}

func TestClassifyErrors(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"status":            {http.StatusServiceUnavailable, `{"detail":"loading"}`},
		"not json":          {http.StatusOK, `nope`},
		"missing emotion":   {http.StatusOK, `{"gibberish":{"label":"clean","score":0.1}}`},
		"missing gibberish": {http.StatusOK, `{"emotion":{"label":"joy","confidence":0.1}}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := NewHTTP(srv.URL, time.Second).Classify(context.Background(), "x")
			assert.Error(t, err)
		})
	}
}

func TestClassifyUnknownLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"emotion":{"label":"","confidence":0.3},"gibberish":{"label":"noise","score":0.7}}`)
	}))
	defer srv.Close()

	res, err := NewHTTP(srv.URL, time.Second).Classify(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", res.EmotionLabel)
}
