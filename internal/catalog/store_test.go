package catalog

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreNormalizesAndDedupesSeed(t *testing.T) {
	seed := []Company{
		{Name: "Netflix", Symbol: "NFLX", Domain: "https://www.netflix.com", Provider: ProviderAWS},
		{Name: "Netflix Again", Symbol: "NFLX2", Domain: "netflix.com", Provider: ProviderGCP},
		{Name: "Broken", Symbol: "X", Domain: "   ", Provider: ProviderOther},
		{Name: "Spotify", Symbol: "SPOT", Domain: "spotify.com", Provider: ProviderGCP},
	}
	s := NewStore(seed)

	// First entry wins; empty domains are dropped.
	require.Equal(t, 2, s.Len())
	got, ok := s.Get("netflix.com")
	require.True(t, ok)
	assert.Equal(t, "Netflix", got.Name)
	assert.Equal(t, ProviderAWS, got.Provider)
	assert.Equal(t, "netflix.com", got.Domain)
	assert.Equal(t, 2, s.SeedCount())
	assert.Equal(t, 0, s.SessionCount())
}

func TestStoreAdd(t *testing.T) {
	s := NewStore(DefaultSeed())
	before := s.Len()

	err := s.Add(Company{Name: "Stripe", Symbol: CustomSymbol, Domain: "https://www.stripe.com", Provider: ProviderOther})
	require.NoError(t, err)
	assert.Equal(t, before+1, s.Len())
	assert.Equal(t, 1, s.SessionCount())

	got, ok := s.Get("stripe.com")
	require.True(t, ok)
	assert.Equal(t, "stripe.com", got.Domain, "domain should be stored normalized")
	assert.True(t, got.Custom())

	// Insertion order: the new entry is last.
	all := s.All()
	assert.Equal(t, "stripe.com", all[len(all)-1].Domain)
}

func TestStoreAddDuplicate(t *testing.T) {
	s := NewStore(DefaultSeed())

	err := s.Add(Company{Name: "Netflix", Symbol: CustomSymbol, Domain: "https://www.netflix.com", Provider: ProviderOther})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, "company already exists", ErrDuplicate.Error())
	assert.Equal(t, 0, s.SessionCount())
}

func TestStoreAddEmptyDomain(t *testing.T) {
	s := NewStore(nil)
	err := s.Add(Company{Name: "Nothing", Symbol: CustomSymbol, Domain: "  ", Provider: ProviderOther})
	assert.True(t, errors.Is(err, ErrEmptyDomain))
	assert.Equal(t, 0, s.Len())
}

func TestStoreContains(t *testing.T) {
	s := NewStore(DefaultSeed())
	assert.True(t, s.Contains("netflix.com"))
	assert.True(t, s.Contains("https://www.netflix.com"), "lookup should normalize input")
	assert.False(t, s.Contains("definitely-not-cataloged.example"))
	assert.False(t, s.Contains(""))
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore(DefaultSeed())
	all := s.All()
	all[0].Name = "mutated"
	fresh := s.All()
	assert.NotEqual(t, "mutated", fresh[0].Name, "All must hand out a copy")
}

func TestStoreConcurrentAdd(t *testing.T) {
	s := NewStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Half the goroutines race on the same domain.
			domain := fmt.Sprintf("company-%d.com", i%25)
			_ = s.Add(Company{Name: "C", Symbol: CustomSymbol, Domain: domain, Provider: ProviderOther})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 25, s.Len(), "each domain must be admitted exactly once")
}
