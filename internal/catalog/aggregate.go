package catalog

import "sort"

// Slice is one wedge of the provider share chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Counts tallies companies per provider. Providers with no companies are
// absent from the map.
func Counts(companies []Company) map[Provider]int {
	counts := make(map[Provider]int)
	for _, c := range companies {
		counts[c.Provider]++
	}
	return counts
}

// PieData turns provider counts into chart slices, largest first. Zero
// counts are omitted, and equal counts keep the canonical provider order so
// the chart is stable across recomputes.
func PieData(counts map[Provider]int) []Slice {
	type entry struct {
		provider Provider
		count    int
	}
	entries := make([]entry, 0, len(counts))
	for _, p := range Providers() {
		if n := counts[p]; n > 0 {
			entries = append(entries, entry{provider: p, count: n})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	slices := make([]Slice, len(entries))
	for i, e := range entries {
		slices[i] = Slice{
			Name:  e.provider.String(),
			Value: e.count,
			Color: e.provider.ChartColor(),
		}
	}
	return slices
}

// BigThreeShare returns the percentage of companies on AWS, Azure or GCP,
// rounded to the nearest integer. An empty catalog yields 0.
func BigThreeShare(counts map[Provider]int, total int) int {
	if total <= 0 {
		return 0
	}
	big := counts[ProviderAWS] + counts[ProviderAzure] + counts[ProviderGCP]
	return int(float64(big)/float64(total)*100 + 0.5)
}
