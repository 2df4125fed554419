package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"text-analysis-dashboard/gateway"
	"text-analysis-dashboard/projector"
)

type scoreRequest struct {
	Text string `json:"text"`
}

// SubmitScore handles POST /api/score.
func (h *Handler) SubmitScore(c *gin.Context) {
	var request scoreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res := h.gateway.Submit(c.Request.Context(), request.Text)
	c.JSON(res.Status, res.Body)
}

// ListScores handles GET /api/score. The configured api policy decides
// whether a backend failure is an error or an empty list.
func (h *Handler) ListScores(c *gin.Context) {
	if h.policies.API == gateway.Surface {
		res := h.gateway.List(c.Request.Context())
		c.JSON(res.Status, res.Body)
		return
	}

	records, err := h.gateway.Records(c.Request.Context(), h.policies.API)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gateway.MsgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetScore handles GET /api/score/:id.
func (h *Handler) GetScore(c *gin.Context) {
	res := h.gateway.Get(c.Request.Context(), c.Param("id"))
	c.JSON(res.Status, res.Body)
}

// DeleteScore handles DELETE /api/score?id=.
func (h *Handler) DeleteScore(c *gin.Context) {
	res := h.gateway.Delete(c.Request.Context(), c.Query("id"))
	c.JSON(res.Status, res.Body)
}

// GetView handles GET /api/views/:mode and returns the projected records.
func (h *Handler) GetView(c *gin.Context) {
	mode, err := projector.ParseMode(c.Param("mode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	records, err := h.gateway.Records(c.Request.Context(), h.policies.API)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gateway.MsgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, h.projector.Project(records, mode))
}
