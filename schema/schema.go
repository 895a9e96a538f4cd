// Package schema has models, enums and period arithmetic for all parts of vahanlens.
package schema

import (
	"fmt"
	"slices"
)

// RegistrationRecord is a single monthly registration count for one
// (category, maker, state) combination. Records are immutable inputs
// supplied by the data source; the engine never mutates them.
type RegistrationRecord struct {
	Period   Period   `json:"period"`
	Category Category `json:"category"`
	Maker    string   `json:"maker"`
	State    string   `json:"state"`
	Count    int64    `json:"count"`
}

// AggregatedPoint is one grouped, summed bucket produced by the aggregator.
// Only the fields named in the grouping are populated; summed-over fields
// hold their zero value and are omitted from JSON.
type AggregatedPoint struct {
	Period   Period   `json:"period,omitzero"`
	Category Category `json:"category,omitempty"`
	Maker    string   `json:"maker,omitempty"`
	State    string   `json:"state,omitempty"`
	Total    int64    `json:"total"`
}

// FilterSpec narrows which records participate in aggregation. Every field
// is optional; a nil bound or empty set means no restriction on that axis.
type FilterSpec struct {
	From       *Period    `json:"from,omitempty"`
	To         *Period    `json:"to,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Makers     []string   `json:"makers,omitempty"`
	States     []string   `json:"states,omitempty"`
}

// Validate checks the filter bounds. Inverted bounds are malformed input,
// not an empty result.
func (f FilterSpec) Validate() error {
	if f.From != nil && !f.From.Valid() {
		return fmt.Errorf("invalid 'from' period %v", *f.From)
	}
	if f.To != nil && !f.To.Valid() {
		return fmt.Errorf("invalid 'to' period %v", *f.To)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return fmt.Errorf("'from' period %s is after 'to' period %s", f.From, f.To)
	}
	for _, c := range f.Categories {
		if _, ok := ValidCategories[c]; !ok {
			return fmt.Errorf("unknown category %q", c)
		}
	}
	return nil
}

// Matches reports whether the record satisfies every present constraint.
func (f FilterSpec) Matches(r RegistrationRecord) bool {
	if f.From != nil && r.Period.Before(*f.From) {
		return false
	}
	if f.To != nil && f.To.Before(r.Period) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.Category) {
		return false
	}
	if len(f.Makers) > 0 && !slices.Contains(f.Makers, r.Maker) {
		return false
	}
	if len(f.States) > 0 && !slices.Contains(f.States, r.State) {
		return false
	}
	return true
}

// IsEmpty reports whether the filter places no restriction at all.
func (f FilterSpec) IsEmpty() bool {
	return f.From == nil && f.To == nil &&
		len(f.Categories) == 0 && len(f.Makers) == 0 && len(f.States) == 0
}
