package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"text-analysis-dashboard/models"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("entry not found")

// TextAnalysis is the persisted form of a scored submission.
type TextAnalysis struct {
	ID                int64   `gorm:"primaryKey"`
	Text              string  `gorm:"index"`
	EmotionLabel      string
	EmotionConfidence float64
	GibberishLabel    string
	GibberishScore    float64
}

func (TextAnalysis) TableName() string {
	return "text_analysis"
}

// Record converts the row to the wire model.
func (t TextAnalysis) Record() models.AnalysisRecord {
	return models.AnalysisRecord{
		ID:                t.ID,
		Text:              t.Text,
		EmotionLabel:      t.EmotionLabel,
		EmotionConfidence: models.NewScore(t.EmotionConfidence),
		GibberishLabel:    t.GibberishLabel,
		GibberishScore:    models.NewScore(t.GibberishScore),
	}
}

// Store persists analysis entries in sqlite.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path (":memory:" works) and
// migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&TextAnalysis{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	slog.Info("database connected", "path", path)
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Create inserts a new entry. Scores are rounded to four decimals.
func (s *Store) Create(ctx context.Context, entry *TextAnalysis) error {
	entry.ID = 0
	entry.EmotionConfidence = round4(entry.EmotionConfidence)
	entry.GibberishScore = round4(entry.GibberishScore)
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// List returns every entry ordered by id.
func (s *Store) List(ctx context.Context) ([]TextAnalysis, error) {
	var entries []TextAnalysis
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*TextAnalysis, error) {
	var entry TextAnalysis
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	return &entry, nil
}

// Delete removes the entry with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&TextAnalysis{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
