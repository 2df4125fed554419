package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"text-analysis-dashboard/backend"
	"text-analysis-dashboard/templates"
)

// NewRouter registers the pages and the JSON API on a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	// Pages
	r.GET("/", h.Dashboard)
	r.POST("/", h.SubmitForm)
	r.GET("/table", h.Table)
	r.POST("/table/delete", h.DeleteForm)
	r.GET("/results/emotion", h.EmotionResults)
	r.GET("/results/quality", h.QualityResults)
	r.GET("/charts/:chart/click", h.ChartClick)

	// API
	api := r.Group("/api")
	{
		api.POST("/score", h.SubmitScore)
		api.GET("/score", h.ListScores)
		api.GET("/score/:id", h.GetScore)
		api.DELETE("/score", h.DeleteScore)
		api.GET("/views/:mode", h.GetView)
	}

	return r
}

// RequestID tags each request with an id that is echoed to the client and
// forwarded to the backend. An incoming X-Request-ID is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(backend.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(backend.RequestIDHeader, id)
		c.Request = c.Request.WithContext(backend.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
