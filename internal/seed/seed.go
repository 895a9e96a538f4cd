// Package seed generates deterministic sample registration data.
package seed

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/vahanlens/vahanlens/schema"
)

// States lists the registering states covered by the sample dataset.
var States = []string{
	"Delhi",
	"Maharashtra",
	"Karnataka",
	"Tamil Nadu",
	"Uttar Pradesh",
	"Gujarat",
	"Rajasthan",
	"West Bengal",
	"Andhra Pradesh",
	"Telangana",
}

// baseVolumes holds the per-category manufacturer rosters and their monthly
// base registration volumes. Maker identity is scoped to a category: "Honda"
// under 2W and "Honda" under 4W are distinct series.
var baseVolumes = map[schema.Category]map[string]int64{
	schema.TwoWheeler: {
		"Hero":          8000,
		"Honda":         6000,
		"Bajaj":         4000,
		"TVS":           3000,
		"Yamaha":        2000,
		"Royal Enfield": 1000,
	},
	schema.ThreeWheeler: {
		"Bajaj":        1500,
		"TVS":          1000,
		"Mahindra":     800,
		"Piaggio":      600,
		"Force Motors": 400,
	},
	schema.FourWheeler: {
		"Maruti Suzuki": 3000,
		"Hyundai":       2000,
		"Tata Motors":   1500,
		"Mahindra":      1200,
		"Honda":         1000,
		"Toyota":        800,
	},
}

// annualGrowthRate is the baked-in year-over-year trend of the sample data.
const annualGrowthRate = 0.05

// Generate produces the deterministic sample dataset for all months from
// 'from' through 'to' inclusive. The same (seed, from, to) triple always
// yields the same records, in the same order.
func Generate(seedValue int64, from, to schema.Period) ([]schema.RegistrationRecord, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("seed range requires valid periods, got %v..%v", from, to)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("seed range is inverted: %s > %s", from, to)
	}

	var records []schema.RegistrationRecord
	for p := from; !to.Before(p); p = p.AddMonths(1) {
		for _, state := range States {
			for _, category := range schema.AllCategories {
				for _, maker := range rosterFor(category) {
					base := baseVolumes[category][maker]
					records = append(records, schema.RegistrationRecord{
						Period:   p,
						Category: category,
						Maker:    maker,
						State:    state,
						Count:    volume(seedValue, base, from.Year, p, category, maker, state),
					})
				}
			}
		}
	}
	return records, nil
}

// DefaultRange returns the seed window used when the caller gives no bounds:
// the 36 months ending with the previous calendar month.
func DefaultRange(now time.Time) (schema.Period, schema.Period) {
	to := schema.Period{Year: now.Year(), Month: now.Month()}.AddMonths(-1)
	return to.AddMonths(-35), to
}

// ResolveRange fills missing seed bounds from DefaultRange. A bound the
// caller supplied is kept, so giving only one end of the window defaults
// the other end rather than discarding both.
func ResolveRange(from, to schema.Period, now time.Time) (schema.Period, schema.Period) {
	defFrom, defTo := DefaultRange(now)
	if !from.Valid() {
		from = defFrom
	}
	if !to.Valid() {
		to = defTo
	}
	return from, to
}

// rosterFor returns a category's makers in stable order.
func rosterFor(category schema.Category) []string {
	switch category {
	case schema.TwoWheeler:
		return []string{"Hero", "Honda", "Bajaj", "TVS", "Yamaha", "Royal Enfield"}
	case schema.ThreeWheeler:
		return []string{"Bajaj", "TVS", "Mahindra", "Piaggio", "Force Motors"}
	default:
		return []string{"Maruti Suzuki", "Hyundai", "Tata Motors", "Mahindra", "Honda", "Toyota"}
	}
}

// volume derives the registration count for one tuple: base volume scaled by
// a seasonal month factor, annual growth compounding from the first seeded
// year, and a bounded pseudo-random factor in [0.8, 1.2).
func volume(seedValue, base int64, baseYear int, p schema.Period, category schema.Category, maker, state string) int64 {
	monthFactor := 1 + 0.2*float64(int(p.Month)%12)/12
	yearGrowth := 1.0
	for y := baseYear; y < p.Year; y++ {
		yearGrowth *= 1 + annualGrowthRate
	}
	randomFactor := 0.8 + 0.4*float64(noise(seedValue, p, category, maker, state)%100)/100
	return int64(float64(base) * monthFactor * yearGrowth * randomFactor)
}

// noise hashes the tuple identity with FNV-1a for a stable pseudo-random value.
func noise(seedValue int64, p schema.Period, category schema.Category, maker, state string) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s|%s|%s", seedValue, p, category, maker, state)
	return h.Sum64()
}
