// Package recommend maps a predicted career category to static advice:
// job openings, skills worth adding, market insight tables and sample resumes.
//
// Nothing here computes anything from the resume itself; it is lookup only
// and never fails. Unknown categories get a generic fallback.
package recommend

import (
	"slices"
	"strings"

	"github.com/agext/levenshtein"
)

// MinSimilarity is the lowest word-window similarity accepted by the fuzzy
// tier of the category matcher.
const MinSimilarity = 0.7

// JobEntry is one recommended role.
type JobEntry struct {
	Title     string   `json:"title"`
	Companies []string `json:"companies"`
	Skills    []string `json:"skills"`
}

type categoryJobs struct {
	Category string
	Jobs     []JobEntry
}

type categorySkills struct {
	Category string
	Skills   []string
}

// Categories returns the known category names in table order.
func Categories() []string {
	out := make([]string, len(jobTable))
	for i, c := range jobTable {
		out[i] = c.Category
	}
	return out
}

// MatchCategory resolves a free-form category name to a known key.
// Tiers, first hit wins:
//  1. case-insensitive equality,
//  2. the first key (in table order) contained in name, case-insensitively,
//  3. the key most similar to some run of words in name, if at least
//     MinSimilarity and every word starts like the key word it stands for.
//
// ok is false when no tier matches.
func MatchCategory(name string) (key string, ok bool) {
	return matchKey(name, Categories())
}

func matchKey(name string, keys []string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}
	for _, k := range keys {
		if strings.ToLower(k) == lower {
			return k, true
		}
	}
	for _, k := range keys {
		if strings.Contains(lower, strings.ToLower(k)) {
			return k, true
		}
	}

	words := strings.Fields(lower)
	params := levenshtein.NewParams()
	best, bestScore := "", 0.0
	for _, k := range keys {
		kw := strings.Fields(strings.ToLower(k))
		for i := 0; i+len(kw) <= len(words); i++ {
			if !samePrefixes(words[i:i+len(kw)], kw) {
				continue
			}
			window := strings.Join(words[i:i+len(kw)], " ")
			if s := levenshtein.Similarity(window, strings.Join(kw, " "), params); s > bestScore {
				best, bestScore = k, s
			}
		}
	}
	if bestScore >= MinSimilarity {
		return best, true
	}
	return "", false
}

// prefixLen is how many leading runes a word must share with a key word
// for the fuzzy tier to compare them.
const prefixLen = 3

func samePrefixes(words, keyWords []string) bool {
	for i, w := range words {
		if prefix(w) != prefix(keyWords[i]) {
			return false
		}
	}
	return true
}

func prefix(w string) string {
	r := []rune(w)
	return string(r[:min(len(r), prefixLen)])
}

// JobsFor returns the job entries for category, or the single generic
// fallback entry. The result is never empty and is safe to modify.
func JobsFor(category string) []JobEntry {
	if key, ok := MatchCategory(category); ok {
		for _, c := range jobTable {
			if c.Category == key {
				return cloneJobs(c.Jobs)
			}
		}
	}
	return cloneJobs(fallbackJobs)
}

// SkillsFor returns suggested skills for category, or a generic list.
func SkillsFor(category string) []string {
	keys := make([]string, len(skillTable))
	for i, c := range skillTable {
		keys[i] = c.Category
	}
	if key, ok := matchKey(category, keys); ok {
		for _, c := range skillTable {
			if c.Category == key {
				return slices.Clone(c.Skills)
			}
		}
	}
	return slices.Clone(fallbackSkills)
}

func cloneJobs(jobs []JobEntry) []JobEntry {
	out := make([]JobEntry, len(jobs))
	for i, j := range jobs {
		out[i] = JobEntry{
			Title:     j.Title,
			Companies: slices.Clone(j.Companies),
			Skills:    slices.Clone(j.Skills),
		}
	}
	return out
}
