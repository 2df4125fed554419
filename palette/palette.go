// Package palette maps emotion and text-quality categories to bar colors.
//
// There is one canonical table per category family. Every page resolves
// colors and legends through Default so that charts and legends agree.
package palette

import "strings"

const (
	// DefaultEmotionColor is used for labels outside the emotion vocabulary.
	DefaultEmotionColor = "#757575"
	// DefaultGibberishColor is used for labels outside the quality vocabulary.
	DefaultGibberishColor = "#FFFFFF"
)

// Gibberish categories reported by the quality classifier.
const (
	Clean         = "clean"
	MildGibberish = "mild gibberish"
	Noise         = "noise"
)

// Category is one legend entry.
type Category struct {
	Key   string
	Name  string
	Color string
}

// Palette resolves category labels to colors. It is immutable once built.
type Palette struct {
	emotions       []Category
	emotionIndex   map[string]string
	gibberish      []Category
	gibberishIndex map[string]string
}

var emotionTable = []Category{
	{"admiration", "Admiration", "#FFD700"},
	{"amusement", "Amusement", "#FFEB3B"},
	{"anger", "Anger", "#F44336"},
	{"annoyance", "Annoyance", "#FF5722"},
	{"approval", "Approval", "#8BC34A"},
	{"caring", "Caring", "#FF69B4"},
	{"confusion", "Confusion", "#9E9E9E"},
	{"curiosity", "Curiosity", "#03A9F4"},
	{"desire", "Desire", "#E91E63"},
	{"disappointment", "Disappointment", "#607D8B"},
	{"disapproval", "Disapproval", "#795548"},
	{"disgust", "Disgust", "#4E342E"},
	{"embarrassment", "Embarrassment", "#F06292"},
	{"excitement", "Excitement", "#FF9800"},
	{"fear", "Fear", "#9C27B0"},
	{"gratitude", "Gratitude", "#00BCD4"},
	{"grief", "Grief", "#1A237E"},
	{"joy", "Joy", "#4CAF50"},
	{"love", "Love", "#D50000"},
	{"nervousness", "Nervousness", "#673AB7"},
	{"optimism", "Optimism", "#CDDC39"},
	{"pride", "Pride", "#3F51B5"},
	{"realization", "Realization", "#00E676"},
	{"relief", "Relief", "#76FF03"},
	{"remorse", "Remorse", "#FF1744"},
	{"sadness", "Sadness", "#2196F3"},
	{"surprise", "Surprise", "#FF9800"},
	{"neutral", "Neutral", "#757575"},
}

var gibberishTable = []Category{
	{Clean, "Clean Text", "#4CAF50"},
	{MildGibberish, "Mild Gibberish", "#E6E660"},
	{Noise, "Noise", "#F44336"},
}

// Default is the process-wide palette.
var Default = New(emotionTable, gibberishTable)

// New builds a palette from the given tables. Keys are matched
// case-insensitively.
func New(emotions, gibberish []Category) *Palette {
	p := &Palette{
		emotions:       append([]Category(nil), emotions...),
		emotionIndex:   make(map[string]string, len(emotions)),
		gibberish:      append([]Category(nil), gibberish...),
		gibberishIndex: make(map[string]string, len(gibberish)),
	}
	for _, c := range emotions {
		p.emotionIndex[normalize(c.Key)] = c.Color
	}
	for _, c := range gibberish {
		p.gibberishIndex[normalize(c.Key)] = c.Color
	}
	return p
}

// EmotionColor never fails: unknown labels get DefaultEmotionColor.
func (p *Palette) EmotionColor(label string) string {
	if c, ok := p.emotionIndex[normalize(label)]; ok {
		return c
	}
	return DefaultEmotionColor
}

// GibberishColor never fails: unknown labels get DefaultGibberishColor.
func (p *Palette) GibberishColor(label string) string {
	if c, ok := p.gibberishIndex[normalize(label)]; ok {
		return c
	}
	return DefaultGibberishColor
}

// EmotionLegend lists the emotion categories in display order.
func (p *Palette) EmotionLegend() []Category {
	return append([]Category(nil), p.emotions...)
}

// GibberishLegend lists the quality categories in display order, followed by
// the fallback bucket.
func (p *Palette) GibberishLegend() []Category {
	out := append([]Category(nil), p.gibberish...)
	return append(out, Category{Key: "other", Name: "Other", Color: DefaultGibberishColor})
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
