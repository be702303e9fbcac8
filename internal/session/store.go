// Package session keeps the latest analysis of each user session in memory.
// Nothing is persisted; a restart forgets every session.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/extract"
)

// DefaultCapacity bounds the number of sessions held at once.
const DefaultCapacity = 1024

// ErrNotFound is returned for sessions with no stored analysis.
var ErrNotFound = errors.New("session has no analysis")

// Source values for Analysis.Source.
const (
	SourceText   = "text"
	SourceUpload = "upload"
)

// Analysis is what a session remembers about its last classification.
type Analysis struct {
	SessionID  string              `json:"session_id"`
	Source     string              `json:"source"`
	Result     *classify.Result    `json:"result"`
	Extraction *extract.Extraction `json:"extraction,omitempty"`
	AnalyzedAt time.Time           `json:"analyzed_at"`
}

// Store is an LRU of analyses keyed by session ID. Putting a new analysis
// replaces the previous one for that session. Safe for concurrent use.
type Store struct {
	cache *lru.Cache[string, Analysis]
	now   func() time.Time
}

// NewStore returns a store holding at most capacity sessions. The least
// recently used session is evicted first.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, Analysis](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache, now: time.Now}, nil
}

// NewID returns a fresh session ID.
func NewID() string { return uuid.NewString() }

// Put stores a for its session, stamping AnalyzedAt when unset.
func (s *Store) Put(a Analysis) {
	if a.AnalyzedAt.IsZero() {
		a.AnalyzedAt = s.now().UTC()
	}
	s.cache.Add(a.SessionID, a)
}

// Get returns the latest analysis for id.
func (s *Store) Get(id string) (Analysis, error) {
	a, ok := s.cache.Get(id)
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return a, nil
}

// Clear forgets id. It reports whether anything was stored.
func (s *Store) Clear(id string) bool {
	return s.cache.Remove(id)
}

// Len is the number of sessions currently held.
func (s *Store) Len() int { return s.cache.Len() }
