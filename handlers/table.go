package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"text-analysis-dashboard/gateway"
	"text-analysis-dashboard/projector"
)

type TablePageData struct {
	ListError   string
	DeleteError string
	Table       TableView
}

// Table renders every record without truncation.
func (h *Handler) Table(c *gin.Context) {
	h.renderTable(c, http.StatusOK, "")
}

// DeleteForm handles the per-row delete button on the table and dashboard.
func (h *Handler) DeleteForm(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		id = c.PostForm("id")
	}

	res := h.gateway.Delete(c.Request.Context(), id)
	if res.Status == http.StatusOK {
		c.Redirect(http.StatusSeeOther, returnPath(c.PostForm("from")))
		return
	}

	msg := msgDeleteRetry
	if body, ok := res.Body.(gateway.ErrorBody); ok && body.Error != "" {
		msg = body.Error
	}
	if returnPath(c.PostForm("from")) == dashboardPath {
		h.renderDashboard(c, res.Status, DashboardData{DeleteError: msg})
		return
	}
	h.renderTable(c, res.Status, msg)
}

func (h *Handler) renderTable(c *gin.Context, status int, deleteError string) {
	data := TablePageData{DeleteError: deleteError}

	records, err := h.gateway.Records(c.Request.Context(), h.policies.Table)
	if err != nil {
		data.ListError = gateway.MsgFetchFailed
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
	}

	view := h.projector.Project(records, projector.Full)
	data.Table = TableView{Rows: view.TableRows, From: tablePath}
	c.HTML(status, tablePage, data)
}

// returnPath only allows the two pages that carry delete buttons.
func returnPath(from string) string {
	if from == dashboardPath {
		return dashboardPath
	}
	return tablePath
}
