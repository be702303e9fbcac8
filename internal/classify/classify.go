// Package classify turns raw resume text into a predicted career category
// with a probability distribution over every known category.
package classify

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/muhammadolammi/resumeclf/internal/metrics"
	"github.com/muhammadolammi/resumeclf/internal/model"
	"github.com/muhammadolammi/resumeclf/internal/textnorm"
)

// DefaultMinChars is the default minimum length gate. Input must be longer.
const DefaultMinChars = 50

var (
	// ErrInputTooShort asks the caller for more text. It is not a failure of
	// the pipeline.
	ErrInputTooShort = errors.New("resume text too short")

	// ErrModelUnavailable means the artifacts could not be loaded. Every
	// request fails the same way until the process is restarted.
	ErrModelUnavailable = errors.New("model unavailable")
)

// InputTooShortError carries the gate that rejected the input. It matches
// ErrInputTooShort with errors.Is.
type InputTooShortError struct {
	Length   int
	MinChars int
}

func (e *InputTooShortError) Error() string {
	if e.Length == 0 {
		return "please enter some resume text"
	}
	return fmt.Sprintf("resume text must be more than %d characters, got %d", e.MinChars, e.Length)
}

func (e *InputTooShortError) Is(target error) bool { return target == ErrInputTooShort }

// Confidence levels, by confidence percentage.
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// CategoryProbability is one entry of a result's distribution.
type CategoryProbability struct {
	Category    string  `json:"category"`
	Probability float64 `json:"probability"`
}

// Result is the outcome of one classification. It is not modified after
// Classify returns it.
type Result struct {
	Category          string  `json:"category"`
	Confidence        float64 `json:"confidence"`
	ConfidencePercent float64 `json:"confidence_percent"`
	Level             string  `json:"confidence_level"`
	// Distribution covers every known category, most probable first.
	Distribution []CategoryProbability `json:"distribution"`
	InputLength  int                   `json:"input_length"`
}

// Probabilities returns the distribution as a map keyed by category.
func (r *Result) Probabilities() map[string]float64 {
	out := make(map[string]float64, len(r.Distribution))
	for _, p := range r.Distribution {
		out[p.Category] = p.Probability
	}
	return out
}

// ConfidenceLevel buckets a confidence percentage.
func ConfidenceLevel(percent float64) string {
	switch {
	case percent >= 70:
		return LevelHigh
	case percent >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Models is satisfied by *model.Loader.
type Models interface {
	Models(ctx context.Context) (*model.Bundle, error)
}

// Pipeline is safe for concurrent use; it holds no per-request state.
type Pipeline struct {
	models   Models
	minChars int
	log      *zap.Logger
}

// NewPipeline returns a pipeline gated at minChars. A non-positive minChars
// selects DefaultMinChars.
func NewPipeline(models Models, minChars int, log *zap.Logger) *Pipeline {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{models: models, minChars: minChars, log: log}
}

// MinChars reports the length gate.
func (p *Pipeline) MinChars() int { return p.minChars }

// Ready loads the model if needed and reports whether it is usable.
func (p *Pipeline) Ready(ctx context.Context) error {
	if _, err := p.bundle(ctx); err != nil {
		return err
	}
	return nil
}

// Classify gates, normalizes, vectorizes and scores text.
func (p *Pipeline) Classify(ctx context.Context, text string) (*Result, error) {
	start := time.Now()

	length := utf8.RuneCountInString(strings.TrimSpace(text))
	if length <= p.minChars {
		metrics.Classifications.WithLabelValues("too_short").Inc()
		return nil, &InputTooShortError{Length: length, MinChars: p.minChars}
	}

	b, err := p.bundle(ctx)
	if err != nil {
		metrics.Classifications.WithLabelValues("model_unavailable").Inc()
		return nil, err
	}

	x := b.Vectorizer.Transform(textnorm.Normalize(text))
	idx, probs := b.Classifier.Predict(x)
	category, err := b.Encoder.InverseTransform(idx)
	if err != nil {
		// NewBundle guarantees class counts agree, so this is a broken artifact.
		metrics.Classifications.WithLabelValues("model_unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	dist := make([]CategoryProbability, len(probs))
	for i, pr := range probs {
		dist[i] = CategoryProbability{Category: b.Encoder.Classes[i], Probability: pr}
	}
	slices.SortStableFunc(dist, func(a, b CategoryProbability) int {
		return cmp.Compare(b.Probability, a.Probability)
	})

	confidence := probs[idx]
	res := &Result{
		Category:          category,
		Confidence:        confidence,
		ConfidencePercent: confidence * 100,
		Level:             ConfidenceLevel(confidence * 100),
		Distribution:      dist,
		InputLength:       length,
	}

	metrics.Classifications.WithLabelValues("ok").Inc()
	metrics.PredictedCategories.WithLabelValues(category).Inc()
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
	p.log.Debug("Resume classified",
		zap.String("category", category),
		zap.Float64("confidence", confidence),
		zap.Int("length", length))
	return res, nil
}

func (p *Pipeline) bundle(ctx context.Context) (*model.Bundle, error) {
	if p.models == nil {
		return nil, fmt.Errorf("%w: no model loader configured", ErrModelUnavailable)
	}
	b, err := p.models.Models(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v (%s)", ErrModelUnavailable, err, model.ExportHint)
	}
	return b, nil
}
