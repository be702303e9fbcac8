package model

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ExportHint tells an operator how to recover from a failed load.
const ExportHint = "re-run the offline training step to export vectorizer.json, labelencoder.json and classifier.json"

// Bundle is the set of fitted artifacts. It is never mutated after loading
// and may be shared by any number of goroutines.
type Bundle struct {
	Vectorizer *Vectorizer
	Encoder    *LabelEncoder
	Classifier *Classifier
}

// NewBundle validates the artifacts against each other.
func NewBundle(vz *Vectorizer, le *LabelEncoder, clf *Classifier) (*Bundle, error) {
	if vz == nil || le == nil || clf == nil {
		return nil, fmt.Errorf("incomplete artifact set")
	}
	if err := vz.validate(); err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}
	if err := le.validate(); err != nil {
		return nil, fmt.Errorf("label encoder: %w", err)
	}
	if err := clf.validate(vz.Dim()); err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	if n := clf.NumClasses(); n != len(le.Classes) {
		return nil, fmt.Errorf("classifier has %d classes, label encoder has %d", n, len(le.Classes))
	}
	return &Bundle{Vectorizer: vz, Encoder: le, Classifier: clf}, nil
}

// Loader reads the bundle from its Source on first use and hands out the
// same bundle, or the same error, on every later call. A failed load is not
// retried; restarting the process is the recovery path.
type Loader struct {
	source Source
	log    *zap.Logger

	once   sync.Once
	bundle *Bundle
	err    error
}

// NewLoader returns a loader that has not touched its source yet.
func NewLoader(source Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{source: source, log: log}
}

// Preloaded returns a loader that serves b without reading any source.
func Preloaded(b *Bundle) *Loader {
	l := &Loader{log: zap.NewNop()}
	l.once.Do(func() { l.bundle = b })
	return l
}

// Models returns the shared bundle, loading it on the first call. The load
// ignores cancellation of ctx since its outcome is cached for every caller.
func (l *Loader) Models(ctx context.Context) (*Bundle, error) {
	l.once.Do(func() {
		if l.log == nil {
			l.log = zap.NewNop()
		}
		l.bundle, l.err = l.load(context.WithoutCancel(ctx))
		if l.err != nil {
			l.log.Error("Failed to load model artifacts",
				zap.String("location", l.location()),
				zap.Error(l.err),
				zap.String("hint", ExportHint))
			return
		}
		l.log.Info("Model artifacts loaded",
			zap.String("location", l.location()),
			zap.Int("features", l.bundle.Vectorizer.Dim()),
			zap.Strings("classes", l.bundle.Encoder.Classes))
	})
	return l.bundle, l.err
}

func (l *Loader) location() string {
	if l.source == nil {
		return ""
	}
	return l.source.Location()
}

func (l *Loader) load(ctx context.Context) (*Bundle, error) {
	if l.source == nil {
		return nil, fmt.Errorf("no artifact source configured")
	}
	var (
		vz  Vectorizer
		le  LabelEncoder
		clf Classifier
	)
	if err := l.decode(ctx, VectorizerArtifact, &vz); err != nil {
		return nil, err
	}
	if err := l.decode(ctx, LabelEncoderArtifact, &le); err != nil {
		return nil, err
	}
	if err := l.decode(ctx, ClassifierArtifact, &clf); err != nil {
		return nil, err
	}
	return NewBundle(&vz, &le, &clf)
}

func (l *Loader) decode(ctx context.Context, name string, v any) error {
	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s from %s: %w", name, l.source.Location(), err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
