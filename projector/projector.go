// Package projector turns backend records into table rows and chart bars.
package projector

import (
	"fmt"
	"math"

	"text-analysis-dashboard/models"
	"text-analysis-dashboard/palette"
)

// Mode selects how many records a view shows and how long chart labels are.
type Mode int

const (
	// Summary is the dashboard view: the first SummaryWindow records.
	Summary Mode = iota
	// Full is the table and detail-page view: every record.
	Full
)

const (
	SummaryWindow = 8
	// SummaryLabelWidth applies to dashboard charts.
	SummaryLabelWidth = 20
	// DetailLabelWidth applies to the dedicated emotion and quality pages.
	DetailLabelWidth = 30

	Ellipsis       = "..."
	NotAvailable   = "N/A"
	NoTextFallback = "No text available"
)

// ParseMode accepts "summary" or "full".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "summary":
		return Summary, nil
	case "full":
		return Full, nil
	}
	return Summary, fmt.Errorf("unknown view mode %q", s)
}

func (m Mode) String() string {
	if m == Full {
		return "full"
	}
	return "summary"
}

// LabelWidth is the chart label truncation threshold for the mode.
func (m Mode) LabelWidth() int {
	if m == Full {
		return DetailLabelWidth
	}
	return SummaryLabelWidth
}

// Projector is stateless apart from the palette it colors bars with.
type Projector struct {
	palette *palette.Palette
}

// New returns a projector; a nil palette means palette.Default.
func New(p *palette.Palette) *Projector {
	if p == nil {
		p = palette.Default
	}
	return &Projector{palette: p}
}

// Project windows records by mode and derives both view models. The input
// order is kept; nothing is sorted.
func (p *Projector) Project(records []models.AnalysisRecord, mode Mode) models.Projection {
	window := Window(records, mode)
	out := models.Projection{
		TableRows:    make([]models.TableRow, 0, len(window)),
		ChartRecords: make([]models.ChartRecord, 0, len(window)),
	}
	for _, r := range window {
		out.TableRows = append(out.TableRows, TableRow(r))
		out.ChartRecords = append(out.ChartRecords, p.ChartRecord(r, mode.LabelWidth()))
	}
	return out
}

// Window returns the slice of records a mode displays.
func Window(records []models.AnalysisRecord, mode Mode) []models.AnalysisRecord {
	if mode == Summary && len(records) > SummaryWindow {
		return records[:SummaryWindow]
	}
	return records
}

// ChartRecord derives one bar, truncating the label to width characters.
func (p *Projector) ChartRecord(r models.AnalysisRecord, width int) models.ChartRecord {
	return models.ChartRecord{
		ID:                r.ID,
		DisplayText:       Truncate(r.Text, width),
		EmotionScorePct:   Pct(r.EmotionConfidence),
		EmotionLabel:      r.EmotionLabel,
		EmotionColor:      p.palette.EmotionColor(r.EmotionLabel),
		GibberishScorePct: Pct(r.GibberishScore),
		GibberishLabel:    r.GibberishLabel,
		GibberishColor:    p.palette.GibberishColor(r.GibberishLabel),
	}
}

// TableRow renders every cell of a record; text is never truncated.
func TableRow(r models.AnalysisRecord) models.TableRow {
	return models.TableRow{
		ID:                r.ID,
		Text:              orDefault(r.Text, NoTextFallback),
		EmotionLabel:      orDefault(r.EmotionLabel, NotAvailable),
		EmotionConfidence: FormatPct(r.EmotionConfidence),
		GibberishLabel:    orDefault(r.GibberishLabel, NotAvailable),
		GibberishScore:    FormatPct(r.GibberishScore),
	}
}

// Pct scales a score to 0-100 without rounding. Missing scores become NaN.
func Pct(s models.Score) models.Percent {
	if !s.Valid {
		return models.Percent(math.NaN())
	}
	return models.Percent(s.Value * 100)
}

// FormatPct renders a score with one decimal and a percent sign.
func FormatPct(s models.Score) string {
	if !s.Valid || math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", s.Value*100)
}

// FormatPercent renders an already scaled value; NaN renders as N/A.
func FormatPercent(p models.Percent) string {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Truncate cuts s to width characters and appends an ellipsis when s is
// longer than width. Width counts runes, not bytes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width]) + Ellipsis
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
