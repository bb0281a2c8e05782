package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts(t *testing.T) {
	counts := Counts(testCompanies())
	assert.Equal(t, 2, counts[ProviderAWS])
	assert.Equal(t, 1, counts[ProviderGCP])
	assert.Equal(t, 1, counts[ProviderAzure])
	assert.Equal(t, 1, counts[ProviderOracle])
	_, present := counts[ProviderAlibaba]
	assert.False(t, present, "zero counts must be absent, not zero-valued")
}

func TestPieDataOrderingAndColors(t *testing.T) {
	counts := map[Provider]int{
		ProviderAWS:    3,
		ProviderGCP:    5,
		ProviderAzure:  3,
		ProviderOracle: 0,
		ProviderOther:  1,
	}
	slices := PieData(counts)

	// Largest first; zero counts omitted entirely.
	names := make([]string, len(slices))
	for i, s := range slices {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"GCP", "AWS", "Azure", "Other"}, names,
		"ties (AWS=Azure=3) keep canonical provider order")

	assert.Equal(t, 5, slices[0].Value)
	assert.Equal(t, "#4285F4", slices[0].Color)
	assert.Equal(t, "#FF9900", slices[1].Color)
}

func TestPieDataEmpty(t *testing.T) {
	assert.Empty(t, PieData(nil))
	assert.Empty(t, PieData(map[Provider]int{ProviderAWS: 0}))
}

func TestBigThreeShare(t *testing.T) {
	tests := []struct {
		name   string
		counts map[Provider]int
		total  int
		want   int
	}{
		{
			name:   "aws and azure dominate",
			counts: map[Provider]int{ProviderAWS: 3, ProviderAzure: 1, ProviderOracle: 1},
			total:  5,
			want:   80,
		},
		{
			name:   "all big three",
			counts: map[Provider]int{ProviderAWS: 1, ProviderAzure: 1, ProviderGCP: 1},
			total:  3,
			want:   100,
		},
		{
			name:   "none",
			counts: map[Provider]int{ProviderOracle: 2, ProviderOther: 2},
			total:  4,
			want:   0,
		},
		{
			name:   "rounds to nearest",
			counts: map[Provider]int{ProviderAWS: 1, ProviderOther: 2},
			total:  3,
			want:   33,
		},
		{
			name:   "rounds half up",
			counts: map[Provider]int{ProviderAWS: 1, ProviderOther: 7},
			total:  8,
			want:   13,
		},
		{
			name:   "empty catalog",
			counts: map[Provider]int{},
			total:  0,
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BigThreeShare(tt.counts, tt.total)
			if got != tt.want {
				t.Errorf("BigThreeShare() = %d, want %d", got, tt.want)
			}
		})
	}
}
