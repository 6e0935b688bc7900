package store

import (
	"errors"
	"sync"
	"time"

	"bmkg-forecast/internal/forecast"
)

var (
	// ErrNotReady is returned before the first successful refresh has
	// produced a bundle.
	ErrNotReady = errors.New("no forecast data loaded yet")
)

// LatestStore is a concurrency-safe holder for the most recent normalized
// bundle. Exactly one bundle is retained; a new refresh replaces the old
// one wholesale. There is no history.
type LatestStore struct {
	mu sync.RWMutex

	bundle    forecast.Bundle
	fetchedAt time.Time
	loaded    bool
}

// NewLatestStore creates an empty LatestStore.
func NewLatestStore() *LatestStore {
	return &LatestStore{}
}

// Set replaces the stored bundle and records when it was fetched.
func (s *LatestStore) Set(bundle forecast.Bundle, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bundle = bundle
	s.fetchedAt = fetchedAt
	s.loaded = true
}

// Get returns the current bundle, or ErrNotReady before the first refresh.
func (s *LatestStore) Get() (forecast.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return forecast.Bundle{}, ErrNotReady
	}
	return s.bundle, nil
}

// FetchedAt returns when the current bundle was fetched, or ErrNotReady.
func (s *LatestStore) FetchedAt() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return time.Time{}, ErrNotReady
	}
	return s.fetchedAt, nil
}
