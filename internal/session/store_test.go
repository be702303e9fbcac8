package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/resumeclf/internal/classify"
)

func result(category string) *classify.Result {
	return &classify.Result{Category: category, Confidence: 0.9, ConfidencePercent: 90}
}

func TestStore_PutGetClear(t *testing.T) {
	s, err := NewStore(4)
	require.NoError(t, err)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Put(Analysis{SessionID: "a", Source: SourceText, Result: result("Design")})
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Design", got.Result.Category)
	assert.False(t, got.AnalyzedAt.IsZero())

	assert.True(t, s.Clear("a"))
	assert.False(t, s.Clear("a"))
	_, err = s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PutOverwrites(t *testing.T) {
	s, err := NewStore(4)
	require.NoError(t, err)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	s.Put(Analysis{SessionID: "a", Result: result("Design")})
	s.Put(Analysis{SessionID: "a", Result: result("Finance"), AnalyzedAt: fixed})

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Result.Category)
	assert.Equal(t, fixed, got.AnalyzedAt)
	assert.Equal(t, 1, s.Len())
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s, err := NewStore(2)
	require.NoError(t, err)

	s.Put(Analysis{SessionID: "a", Result: result("Design")})
	s.Put(Analysis{SessionID: "b", Result: result("Sales")})
	_, err = s.Get("a")
	require.NoError(t, err)
	s.Put(Analysis{SessionID: "c", Result: result("Finance")})

	_, err = s.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s, err := NewStore(0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Put(Analysis{SessionID: fmt.Sprintf("s%d", i), Result: result(fmt.Sprintf("c%d", i))})
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		got, err := s.Get(fmt.Sprintf("s%d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("c%d", i), got.Result.Category)
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewID())
}
