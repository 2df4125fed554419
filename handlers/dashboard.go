package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"text-analysis-dashboard/gateway"
	"text-analysis-dashboard/models"
	"text-analysis-dashboard/navigation"
	"text-analysis-dashboard/projector"
)

const (
	msgEmptyText     = "Please enter some text to analyze."
	msgAnalyzeRetry  = "Failed to analyze text. Please try again."
	msgDeleteRetry   = "Failed to delete entry. Please try again."
	dashboardPath    = "/"
	tablePath        = "/table"
	dashboardPage    = "dashboard.html"
	tablePage        = "table.html"
	resultsPage      = "results.html"
	emotionPageTitle = "Detailed Emotion Analysis"
	qualityPageTitle = "Detailed Text Analysis"
)

type DashboardData struct {
	Text         string
	FormError    string
	ListError    string
	DeleteError  string
	Table        TableView
	EmotionChart ChartView
	QualityChart ChartView
}

type TableView struct {
	Rows []models.TableRow
	From string
}

type ChartView struct {
	Link string
	Bars []BarView
}

type BarView struct {
	Label  string
	Value  string
	Height float64
	Color  string
}

// Dashboard renders the summary page.
func (h *Handler) Dashboard(c *gin.Context) {
	h.renderDashboard(c, http.StatusOK, DashboardData{})
}

// SubmitForm handles the dashboard form. Blank input is rejected here, at
// the page level; the gateway itself forwards any text.
func (h *Handler) SubmitForm(c *gin.Context) {
	text := c.PostForm("text")
	if strings.TrimSpace(text) == "" {
		h.renderDashboard(c, http.StatusBadRequest, DashboardData{FormError: msgEmptyText})
		return
	}

	res := h.gateway.Submit(c.Request.Context(), text)
	if res.Status != http.StatusOK {
		h.renderDashboard(c, res.Status, DashboardData{Text: text, FormError: msgAnalyzeRetry})
		return
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

func (h *Handler) renderDashboard(c *gin.Context, status int, data DashboardData) {
	records, err := h.gateway.Records(c.Request.Context(), h.policies.Dashboard)
	if err != nil {
		data.ListError = gateway.MsgFetchFailed
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
	}

	view := h.projector.Project(records, projector.Summary)
	data.Table = TableView{Rows: view.TableRows, From: dashboardPath}
	data.EmotionChart = emotionChart(view.ChartRecords)
	data.QualityChart = qualityChart(view.ChartRecords)

	c.HTML(status, dashboardPage, data)
}

func emotionChart(records []models.ChartRecord) ChartView {
	bars := make([]BarView, 0, len(records))
	for _, r := range records {
		bars = append(bars, BarView{
			Label:  r.DisplayText,
			Value:  projector.FormatPercent(r.EmotionScorePct),
			Height: r.EmotionScorePct.Height(),
			Color:  r.EmotionColor,
		})
	}
	return ChartView{Link: navigation.ClickPath(navigation.EmotionChart), Bars: bars}
}

func qualityChart(records []models.ChartRecord) ChartView {
	bars := make([]BarView, 0, len(records))
	for _, r := range records {
		bars = append(bars, BarView{
			Label:  r.DisplayText,
			Value:  projector.FormatPercent(r.GibberishScorePct),
			Height: r.GibberishScorePct.Height(),
			Color:  r.GibberishColor,
		})
	}
	return ChartView{Link: navigation.ClickPath(navigation.QualityChart), Bars: bars}
}
