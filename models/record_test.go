package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDecodesWireNames(t *testing.T) {
	var r AnalysisRecord
	err := json.Unmarshal([]byte(`{"id":1,"text":"I love this!","emotion_label":"love","emotion_confidence":0.92,"gibberish_label":"clean","gibberish_score":0.01}`), &r)
	require.NoError(t, err)

	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, "love", r.EmotionLabel)
	assert.Equal(t, NewScore(0.92), r.EmotionConfidence)
	assert.Equal(t, NewScore(0.01), r.GibberishScore)
}

func TestScoreToleratesMissingAndNonNumeric(t *testing.T) {
	var r AnalysisRecord
	err := json.Unmarshal([]byte(`{"id":2,"text":"x","emotion_confidence":null,"gibberish_score":"high"}`), &r)
	require.NoError(t, err)

	assert.False(t, r.EmotionConfidence.Valid)
	assert.False(t, r.GibberishScore.Valid)

	blob, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"emotion_confidence":null`)
	assert.Contains(t, string(blob), `"gibberish_score":null`)
}

func TestPercentHeight(t *testing.T) {
	assert.Equal(t, 0.0, Percent(-3).Height())
	assert.Equal(t, 100.0, Percent(140).Height())
	assert.Equal(t, 42.5, Percent(42.5).Height())
}
