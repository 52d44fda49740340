package sukuk

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// PlatformShare is one row of a platform distribution table.
type PlatformShare struct {
	PlatformID   string  `json:"platformId"`
	PlatformName string  `json:"platformName"`
	Value        Money   `json:"value"`
	Count        int     `json:"count"`
	Percentage   Percent `json:"percentage"`
}

// PlatformDistribution buckets all investments per platform. Percentage is
// the share of the total face value. Rows are sorted by decreasing value.
func PlatformDistribution(investments []Investment, platforms []Platform) []PlatformShare {
	shares, total, _ := bucketByPlatform(investments, platforms)
	for i := range shares {
		shares[i].Percentage = percentOf(shares[i].Value.value, total)
	}
	sortShares(shares, func(a, b PlatformShare) int { return b.Value.Cmp(a.Value) })
	return shares
}

// ActivePlatformDistribution is PlatformDistribution restricted to investments
// whose stored status is active. Percentage is relative to the active face
// value only.
func ActivePlatformDistribution(investments []Investment, platforms []Platform) []PlatformShare {
	active := make([]Investment, 0, len(investments))
	for _, inv := range investments {
		if inv.Status == StatusActive {
			active = append(active, inv)
		}
	}
	return PlatformDistribution(active, platforms)
}

// PlatformCountDistribution buckets all investments per platform. Percentage is
// the share of the number of investments. Rows are sorted by decreasing count.
func PlatformCountDistribution(investments []Investment, platforms []Platform) []PlatformShare {
	shares, _, count := bucketByPlatform(investments, platforms)
	for i := range shares {
		shares[i].Percentage = percentOf(decimal.NewFromInt(int64(shares[i].Count)), decimal.NewFromInt(int64(count)))
	}
	sortShares(shares, func(a, b PlatformShare) int { return cmp.Compare(b.Count, a.Count) })
	return shares
}

// bucketByPlatform aggregates face value and count per platform id, and
// returns the grand totals. Platforms that cannot be found are named
// UnknownPlatform.
func bucketByPlatform(investments []Investment, platforms []Platform) (shares []PlatformShare, total decimal.Decimal, count int) {
	names := platformNames(platforms)
	index := make(map[string]int)
	shares = make([]PlatformShare, 0)
	for _, inv := range investments {
		i, ok := index[inv.PlatformID]
		if !ok {
			name, found := names[inv.PlatformID]
			if !found {
				name = UnknownPlatform
			}
			i = len(shares)
			index[inv.PlatformID] = i
			shares = append(shares, PlatformShare{PlatformID: inv.PlatformID, PlatformName: name})
		}
		shares[i].Value = shares[i].Value.Add(inv.FaceValue)
		shares[i].Count++
		total = total.Add(inv.FaceValue.value)
		count++
	}
	return shares, total, count
}

// sortShares sorts with 'by' and breaks ties by name then id.
func sortShares(shares []PlatformShare, by func(a, b PlatformShare) int) {
	slices.SortFunc(shares, func(a, b PlatformShare) int {
		if c := by(a, b); c != 0 {
			return c
		}
		if c := cmp.Compare(a.PlatformName, b.PlatformName); c != 0 {
			return c
		}
		return cmp.Compare(a.PlatformID, b.PlatformID)
	})
}
