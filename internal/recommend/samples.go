package recommend

import "strings"

// Sample is an example resume for one category, used to try the classifier
// without uploading anything.
type Sample struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Samples returns every bundled sample resume in a stable order.
func Samples() []Sample {
	out := make([]Sample, len(sampleTable))
	copy(out, sampleTable)
	return out
}

// SampleFor returns the sample whose category equals name, ignoring case.
func SampleFor(name string) (Sample, bool) {
	for _, s := range sampleTable {
		if strings.EqualFold(s.Category, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return Sample{}, false
}
