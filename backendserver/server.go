// Package backendserver serves the backend contract the dashboard consumes:
// analyze, list, get, delete and health, over sqlite storage.
package backendserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"text-analysis-dashboard/classifier"
	"text-analysis-dashboard/database"
	"text-analysis-dashboard/models"
)

// Repository is the storage the server needs.
type Repository interface {
	Create(ctx context.Context, entry *database.TextAnalysis) error
	List(ctx context.Context) ([]database.TextAnalysis, error)
	Get(ctx context.Context, id int64) (*database.TextAnalysis, error)
	Delete(ctx context.Context, id int64) error
}

type analyzeRequest struct {
	Text *string `json:"text"`
}

type emotionResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type gibberishResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// analyzeResponse is the flat record plus the nested classifications older
// clients read.
type analyzeResponse struct {
	models.AnalysisRecord
	Emotion   emotionResult   `json:"emotion"`
	Gibberish gibberishResult `json:"gibberish"`
}

// Server holds the backend handlers.
type Server struct {
	repo       Repository
	classifier classifier.Classifier
}

// New returns a backend server.
func New(repo Repository, c classifier.Classifier) *Server {
	return &Server{repo: repo, classifier: c}
}

// Router builds the gin engine with every backend route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.POST("/analyze", s.Analyze)
	r.GET("/entries/", s.ListEntries)
	r.GET("/entries/:id", s.GetEntry)
	r.DELETE("/delete/:id", s.DeleteEntry)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Analyze classifies the text, stores the result and returns it. Nothing is
// stored when classification fails.
func (s *Server) Analyze(c *gin.Context) {
	start := time.Now()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Field 'text' is required"})
		return
	}
	ctx := c.Request.Context()

	res, err := s.classifier.Classify(ctx, *req.Text)
	if err != nil {
		slog.Error("classification failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	entry := &database.TextAnalysis{
		Text:              *req.Text,
		EmotionLabel:      res.EmotionLabel,
		EmotionConfidence: res.EmotionConfidence,
		GibberishLabel:    res.GibberishLabel,
		GibberishScore:    res.GibberishScore,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		slog.Error("store analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	slog.Info("processed analysis", "id", entry.ID, "duration", time.Since(start))
	c.JSON(http.StatusOK, analyzeResponse{
		AnalysisRecord: entry.Record(),
		Emotion:        emotionResult{Label: entry.EmotionLabel, Confidence: entry.EmotionConfidence},
		Gibberish:      gibberishResult{Label: entry.GibberishLabel, Score: entry.GibberishScore},
	})
}

func (s *Server) ListEntries(c *gin.Context) {
	entries, err := s.repo.List(c.Request.Context())
	if err != nil {
		slog.Error("list entries failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	records := make([]models.AnalysisRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record())
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) GetEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := s.repo.Get(c.Request.Context(), id)
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry.Record())
}

func (s *Server) DeleteEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := s.repo.Delete(c.Request.Context(), id); err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Entry id must be an integer"})
		return 0, false
	}
	return id, true
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Entry not found"})
		return
	}
	slog.Error("entry lookup failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
}
