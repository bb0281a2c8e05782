package catalog

import (
	"errors"
	"sync"
)

var (
	// ErrDuplicate is returned when an entry's normalized domain is already
	// present in the store.
	ErrDuplicate = errors.New("company already exists")
	// ErrEmptyDomain is returned when an entry normalizes to nothing.
	ErrEmptyDomain = errors.New("company domain is empty")
)

// Store holds the in-memory catalog for one session. Seed entries are loaded
// once at construction; runtime additions append behind the same lock. Reads
// hand out copies so callers can filter and sort without holding the lock.
type Store struct {
	mu        sync.RWMutex
	companies []Company
	byDomain  map[string]int
	seeded    int
}

// NewStore builds a store from the seed list. Seed entries are normalized
// and deduplicated first-wins, so a malformed seed file cannot produce two
// rows with the same identity.
func NewStore(seed []Company) *Store {
	s := &Store{
		byDomain: make(map[string]int, len(seed)),
	}
	for _, c := range seed {
		c.Domain = NormalizeDomain(c.Domain)
		if c.Domain == "" {
			continue
		}
		if _, ok := s.byDomain[c.Domain]; ok {
			continue
		}
		s.byDomain[c.Domain] = len(s.companies)
		s.companies = append(s.companies, c)
	}
	s.seeded = len(s.companies)
	return s
}

// Add appends a runtime entry. The domain is normalized before the duplicate
// check so "https://www.stripe.com" and "stripe.com" collide as intended.
func (s *Store) Add(c Company) error {
	c.Domain = NormalizeDomain(c.Domain)
	if c.Domain == "" {
		return ErrEmptyDomain
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byDomain[c.Domain]; ok {
		return ErrDuplicate
	}
	s.byDomain[c.Domain] = len(s.companies)
	s.companies = append(s.companies, c)
	return nil
}

// Contains reports whether the normalized form of raw is already cataloged.
func (s *Store) Contains(raw string) bool {
	domain := NormalizeDomain(raw)
	if domain == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byDomain[domain]
	return ok
}

// Get returns the entry for a domain, if present.
func (s *Store) Get(raw string) (Company, bool) {
	domain := NormalizeDomain(raw)
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byDomain[domain]
	if !ok {
		return Company{}, false
	}
	return s.companies[i], true
}

// All returns a copy of the catalog in insertion order: seeds first, then
// session additions in the order they were accepted.
func (s *Store) All() []Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// Len returns the number of cataloged companies.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies)
}

// SeedCount returns how many entries came from the seed list.
func (s *Store) SeedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeded
}

// SessionCount returns how many entries were added during this session.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies) - s.seeded
}
