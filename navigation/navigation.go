// Package navigation resolves a chart-bar click to the detail page it opens.
package navigation

import "fmt"

// Chart identifies which dashboard chart was clicked.
type Chart string

const (
	EmotionChart Chart = "emotion"
	QualityChart Chart = "quality"
)

const (
	EmotionDetailRoute = "/results/emotion"
	QualityDetailRoute = "/results/quality"
)

// Dispatch returns the detail route for a chart. The clicked bar carries no
// information; only the chart matters, and no data travels with the
// navigation.
func Dispatch(chart Chart) (string, error) {
	switch chart {
	case EmotionChart:
		return EmotionDetailRoute, nil
	case QualityChart:
		return QualityDetailRoute, nil
	}
	return "", fmt.Errorf("unknown chart %q", string(chart))
}

// ClickPath is the link a bar in the given chart points at.
func ClickPath(chart Chart) string {
	return "/charts/" + string(chart) + "/click"
}
