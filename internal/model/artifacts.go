// Package model holds the three fitted artifacts used for resume
// classification and the loader that makes them available to the process.
package model

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Logical artifact names, resolved relative to a Source.
const (
	VectorizerArtifact   = "vectorizer.json"
	LabelEncoderArtifact = "labelencoder.json"
	ClassifierArtifact   = "classifier.json"
)

// Classifier kinds understood by Classifier.Scores.
const (
	LogisticRegression = "logistic_regression"
	MultinomialNB      = "multinomial_nb"
)

const defaultMinTokenLen = 2

// FeatureVector is a sparse projection of a text into the vectorizer's
// feature space. Indices are strictly increasing.
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Dot returns the inner product of v with a dense weight row.
func (v FeatureVector) Dot(row []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * row[idx]
	}
	return sum
}

// Vectorizer is a fitted TF-IDF transform over a fixed vocabulary.
type Vectorizer struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	NGramRange  [2]int         `json:"ngram_range"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm"`
	StopWords   []string       `json:"stop_words,omitempty"`
	MinTokenLen int            `json:"min_token_len,omitempty"`

	stop map[string]struct{}
}

// Dim is the fixed dimension of every vector this vectorizer produces.
func (vz *Vectorizer) Dim() int { return len(vz.IDF) }

func (vz *Vectorizer) validate() error {
	if len(vz.IDF) == 0 {
		return fmt.Errorf("vectorizer has an empty idf table")
	}
	for term, idx := range vz.Vocabulary {
		if idx < 0 || idx >= len(vz.IDF) {
			return fmt.Errorf("vocabulary term %q maps to index %d outside dimension %d", term, idx, len(vz.IDF))
		}
	}
	switch vz.Norm {
	case "", "l2":
	default:
		return fmt.Errorf("unsupported norm %q", vz.Norm)
	}
	if vz.NGramRange == [2]int{} {
		vz.NGramRange = [2]int{1, 1}
	}
	if vz.NGramRange[0] < 1 || vz.NGramRange[1] < vz.NGramRange[0] {
		return fmt.Errorf("invalid ngram_range %v", vz.NGramRange)
	}
	if vz.MinTokenLen <= 0 {
		vz.MinTokenLen = defaultMinTokenLen
	}
	vz.stop = make(map[string]struct{}, len(vz.StopWords))
	for _, w := range vz.StopWords {
		vz.stop[w] = struct{}{}
	}
	return nil
}

// Transform projects normalized text into the feature space. Terms that are
// not in the vocabulary contribute nothing. Empty input gives a zero vector.
func (vz *Vectorizer) Transform(normalized string) FeatureVector {
	counts := make(map[int]float64)
	tokens := vz.tokens(normalized)
	for n := vz.NGramRange[0]; n <= vz.NGramRange[1]; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := tokens[i]
			if n > 1 {
				term = strings.Join(tokens[i:i+n], " ")
			}
			if idx, ok := vz.Vocabulary[term]; ok {
				counts[idx]++
			}
		}
	}

	vec := FeatureVector{Dim: vz.Dim()}
	if len(counts) == 0 {
		return vec
	}

	vec.Indices = make([]int, 0, len(counts))
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	slices.Sort(vec.Indices)

	vec.Values = make([]float64, len(vec.Indices))
	var sq float64
	for i, idx := range vec.Indices {
		tf := counts[idx]
		if vz.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		w := tf * vz.IDF[idx]
		vec.Values[i] = w
		sq += w * w
	}
	if vz.Norm == "l2" && sq > 0 {
		norm := math.Sqrt(sq)
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}
	return vec
}

func (vz *Vectorizer) tokens(normalized string) []string {
	fields := strings.Fields(normalized)
	out := fields[:0]
	for _, f := range fields {
		if len(f) < vz.MinTokenLen {
			continue
		}
		if _, ok := vz.stop[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

// LabelEncoder maps classifier label indices back to category names.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

func (le *LabelEncoder) validate() error {
	if len(le.Classes) < 2 {
		return fmt.Errorf("label encoder needs at least two classes, got %d", len(le.Classes))
	}
	seen := make(map[string]struct{}, len(le.Classes))
	for _, c := range le.Classes {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate class %q", c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// InverseTransform returns the category name for label index i.
func (le *LabelEncoder) InverseTransform(i int) (string, error) {
	if i < 0 || i >= len(le.Classes) {
		return "", fmt.Errorf("label %d outside %d known classes", i, len(le.Classes))
	}
	return le.Classes[i], nil
}

// Classifier is a fitted linear model over the vectorizer's feature space.
type Classifier struct {
	Type           string      `json:"type"`
	Coef           [][]float64 `json:"coef,omitempty"`
	Intercept      []float64   `json:"intercept,omitempty"`
	ClassLogPrior  []float64   `json:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty"`
}

// NumClasses is the number of labels the classifier distributes over.
func (c *Classifier) NumClasses() int {
	switch c.Type {
	case MultinomialNB:
		return len(c.ClassLogPrior)
	default:
		if len(c.Coef) == 1 {
			return 2
		}
		return len(c.Coef)
	}
}

func (c *Classifier) validate(dim int) error {
	var rows [][]float64
	switch c.Type {
	case LogisticRegression:
		if len(c.Intercept) != len(c.Coef) {
			return fmt.Errorf("intercept has %d entries for %d coefficient rows", len(c.Intercept), len(c.Coef))
		}
		rows = c.Coef
	case MultinomialNB:
		if len(c.ClassLogPrior) != len(c.FeatureLogProb) {
			return fmt.Errorf("class_log_prior has %d entries for %d feature rows", len(c.ClassLogPrior), len(c.FeatureLogProb))
		}
		rows = c.FeatureLogProb
	default:
		return fmt.Errorf("unsupported classifier type %q", c.Type)
	}
	if len(rows) == 0 {
		return fmt.Errorf("classifier has no weight rows")
	}
	for i, row := range rows {
		if len(row) != dim {
			return fmt.Errorf("weight row %d has width %d, vectorizer dimension is %d", i, len(row), dim)
		}
	}
	return nil
}

// Scores returns the unnormalized per-class scores for x.
func (c *Classifier) Scores(x FeatureVector) []float64 {
	switch c.Type {
	case MultinomialNB:
		scores := make([]float64, len(c.ClassLogPrior))
		for k := range scores {
			scores[k] = c.ClassLogPrior[k] + x.Dot(c.FeatureLogProb[k])
		}
		return scores
	default:
		if len(c.Coef) == 1 {
			return []float64{0, x.Dot(c.Coef[0]) + c.Intercept[0]}
		}
		scores := make([]float64, len(c.Coef))
		for k := range scores {
			scores[k] = x.Dot(c.Coef[k]) + c.Intercept[k]
		}
		return scores
	}
}

// PredictProba returns the probability of every class for x.
func (c *Classifier) PredictProba(x FeatureVector) []float64 {
	return Softmax(c.Scores(x))
}

// Predict returns the most probable label together with the distribution it
// was taken from, so the two can never disagree.
func (c *Classifier) Predict(x FeatureVector) (int, []float64) {
	proba := c.PredictProba(x)
	return Argmax(proba), proba
}

// Softmax turns scores into a probability distribution.
func Softmax(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// Argmax returns the index of the largest value; ties go to the lowest index.
func Argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
