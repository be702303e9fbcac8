// Package modeltest builds small, fully consistent artifact bundles for tests.
//
// Fit is a nearest-centroid model expressed as a logistic regression: each
// class row is the mean TF-IDF vector of its examples, scaled so that the
// softmax is sharp. It recognizes its own training texts with high
// confidence, which is all tests need.
package modeltest

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/muhammadolammi/resumeclf/internal/model"
	"github.com/muhammadolammi/resumeclf/internal/recommend"
	"github.com/muhammadolammi/resumeclf/internal/textnorm"
)

const scale = 20.0

// Fit builds a bundle from labelled texts.
func Fit(examples map[string][]string) (*model.Bundle, error) {
	classes := make([]string, 0, len(examples))
	for c := range examples {
		classes = append(classes, c)
	}
	slices.Sort(classes)

	var docs [][]string
	var docClass []int
	for ci, c := range classes {
		for _, text := range examples[c] {
			docs = append(docs, textnorm.Tokens(textnorm.Normalize(text)))
			docClass = append(docClass, ci)
		}
	}

	vocab := map[string]int{}
	df := map[string]int{}
	for _, doc := range docs {
		seen := map[string]bool{}
		for _, tok := range doc {
			if len(tok) < 2 || seen[tok] {
				continue
			}
			seen[tok] = true
			df[tok]++
		}
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	slices.Sort(terms)
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocab[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vz := &model.Vectorizer{
		Vocabulary: vocab,
		IDF:        idf,
		NGramRange: [2]int{1, 1},
		Norm:       "l2",
	}

	coef := make([][]float64, len(classes))
	counts := make([]float64, len(classes))
	for k := range coef {
		coef[k] = make([]float64, len(idf))
	}
	for i, doc := range docs {
		vec := vz.Transform(strings.Join(doc, " "))
		k := docClass[i]
		counts[k]++
		for j, idx := range vec.Indices {
			coef[k][idx] += vec.Values[j]
		}
	}
	for k := range coef {
		if counts[k] == 0 {
			continue
		}
		for j := range coef[k] {
			coef[k][j] = coef[k][j] / counts[k] * scale
		}
	}

	clf := &model.Classifier{
		Type:      model.LogisticRegression,
		Coef:      coef,
		Intercept: make([]float64, len(classes)),
	}
	return model.NewBundle(vz, &model.LabelEncoder{Classes: classes}, clf)
}

// FitSamples fits a bundle on the bundled sample resumes, one per category.
func FitSamples() (*model.Bundle, error) {
	examples := make(map[string][]string)
	for _, s := range recommend.Samples() {
		examples[s.Category] = append(examples[s.Category], s.Text)
	}
	return Fit(examples)
}

// WriteArtifacts serializes b into dir under the standard artifact names.
func WriteArtifacts(dir string, b *model.Bundle) error {
	files := map[string]any{
		model.VectorizerArtifact:   b.Vectorizer,
		model.LabelEncoderArtifact: b.Encoder,
		model.ClassifierArtifact:   b.Classifier,
	}
	for name, v := range files {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
