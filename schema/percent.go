package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Percent is a percentage value that may be not computable: a growth rate
// with no baseline, or a share of a zero total. The distinction matters
// because 0% growth is a real signal while a missing baseline is not, so a
// numeric placeholder would conflate the two. Not-computable values encode
// as JSON null and render as "n/a" in tables and CSV.
type Percent struct {
	Value float64
	Valid bool
}

// PercentOf returns the computable percentage part/whole*100.
// It must not be called with a zero whole; callers guard the denominator
// and use NotComputable instead.
func PercentOf(part, whole float64) Percent {
	return Percent{Value: part / whole * 100, Valid: true}
}

// GrowthBetween returns the percentage change from prev to cur, or a
// not-computable value when prev is zero.
func GrowthBetween(cur, prev int64) Percent {
	if prev == 0 {
		return NotComputable()
	}
	return Percent{Value: float64(cur-prev) / float64(prev) * 100, Valid: true}
}

// NotComputable returns the explicit "no value" marker.
func NotComputable() Percent {
	return Percent{}
}

// Format renders the percentage with the given decimal precision,
// or "n/a" when not computable.
func (p Percent) Format(precision int) string {
	if !p.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", precision, p.Value)
}

// MarshalJSON encodes a not-computable percent as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON decodes null as not computable.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Percent{}
		return nil
	}
	if err := json.Unmarshal(data, &p.Value); err != nil {
		return err
	}
	p.Valid = true
	return nil
}
