package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"text-analysis-dashboard/gateway"
	"text-analysis-dashboard/navigation"
	"text-analysis-dashboard/palette"
	"text-analysis-dashboard/projector"
)

type ResultsPageData struct {
	Title     string
	Subtitle  string
	ListError string
	Chart     ChartView
	Legend    []palette.Category
}

// EmotionResults renders the emotion detail page over every record.
func (h *Handler) EmotionResults(c *gin.Context) {
	data := ResultsPageData{
		Title:    emotionPageTitle,
		Subtitle: "Emotional distribution across messages with confidence scores",
		Legend:   h.palette.EmotionLegend(),
	}
	h.renderResults(c, navigation.EmotionChart, data)
}

// QualityResults renders the text quality detail page over every record.
func (h *Handler) QualityResults(c *gin.Context) {
	data := ResultsPageData{
		Title:    qualityPageTitle,
		Subtitle: "Text quality assessment showing gibberish detection scores",
		Legend:   h.palette.GibberishLegend(),
	}
	h.renderResults(c, navigation.QualityChart, data)
}

func (h *Handler) renderResults(c *gin.Context, chart navigation.Chart, data ResultsPageData) {
	status := http.StatusOK
	records, err := h.gateway.Records(c.Request.Context(), h.policies.Detail)
	if err != nil {
		data.ListError = gateway.MsgFetchFailed
		status = http.StatusInternalServerError
	}

	view := h.projector.Project(records, projector.Full)
	if chart == navigation.EmotionChart {
		data.Chart = emotionChart(view.ChartRecords)
	} else {
		data.Chart = qualityChart(view.ChartRecords)
	}
	// Detail charts are not clickable.
	data.Chart.Link = ""

	c.HTML(status, resultsPage, data)
}

// ChartClick handles a bar click on a dashboard chart.
func (h *Handler) ChartClick(c *gin.Context) {
	route, err := navigation.Dispatch(navigation.Chart(c.Param("chart")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, route)
}
