package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// AnalysisRecord is one scored text submission as the backend reports it.
// Field names on the wire are fixed; missing or non-numeric scores decode
// to an invalid Score instead of failing the whole payload.
type AnalysisRecord struct {
	ID                int64  `json:"id"`
	Text              string `json:"text"`
	EmotionLabel      string `json:"emotion_label"`
	EmotionConfidence Score  `json:"emotion_confidence"`
	GibberishLabel    string `json:"gibberish_label"`
	GibberishScore    Score  `json:"gibberish_score"`
}

// Score is a probability in [0, 1] that may be absent.
type Score struct {
	Value float64
	Valid bool
}

// NewScore returns a valid score.
func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '-' && (data[0] < '0' || data[0] > '9') {
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return nil
	}
	*s = NewScore(v)
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}
