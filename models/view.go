package models

import (
	"encoding/json"
	"math"
)

// ChartRecord is the per-bar view model shared by both charts.
type ChartRecord struct {
	ID                int64   `json:"id"`
	DisplayText       string  `json:"display_text"`
	EmotionScorePct   Percent `json:"emotion_score_pct"`
	EmotionLabel      string  `json:"emotion_label"`
	EmotionColor      string  `json:"emotion_color"`
	GibberishScorePct Percent `json:"gibberish_score_pct"`
	GibberishLabel    string  `json:"gibberish_label"`
	GibberishColor    string  `json:"gibberish_color"`
}

// TableRow is a record with every cell already rendered.
type TableRow struct {
	ID                int64  `json:"id"`
	Text              string `json:"text"`
	EmotionLabel      string `json:"emotion_label"`
	EmotionConfidence string `json:"emotion_confidence"`
	GibberishLabel    string `json:"gibberish_label"`
	GibberishScore    string `json:"gibberish_score"`
}

// Percent is a 0-100 scaled score. NaN marks a missing source value.
type Percent float64

// Height is the bar height to draw; missing values draw as zero.
func (p Percent) Height() float64 {
	v := float64(p)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func (p Percent) MarshalJSON() ([]byte, error) {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Projection is what a page renders from a record list.
type Projection struct {
	TableRows    []TableRow    `json:"table_rows"`
	ChartRecords []ChartRecord `json:"chart_records"`
}
