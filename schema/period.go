package schema

import (
	"fmt"
	"time"
)

// PeriodFormat is the wire representation of a calendar month.
const PeriodFormat = "2006-01"

// Period is a calendar month, the finest time granularity of input records.
// The zero value is not a valid period.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParsePeriod parses a period in YYYY-MM form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodFormat, s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// String returns the YYYY-MM form of the period.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// IsZero reports whether the period is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Valid reports whether the period denotes a real calendar month.
func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}

// Index maps the period onto a monotonically increasing month counter,
// so ordering and distance checks reduce to integer arithmetic.
func (p Period) Index() int {
	return p.Year*12 + int(p.Month) - 1
}

// Compare orders two periods chronologically. It returns a negative number
// when p is earlier than q, zero when equal, and a positive number otherwise.
func (p Period) Compare(q Period) int {
	return p.Index() - q.Index()
}

// Before reports whether p is strictly earlier than q.
func (p Period) Before(q Period) bool {
	return p.Index() < q.Index()
}

// AddMonths returns the period n months after p. Negative n steps backwards;
// year boundaries are crossed naturally.
func (p Period) AddMonths(n int) Period {
	idx := p.Index() + n
	return Period{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// Quarter returns the calendar quarter containing the period.
func (p Period) Quarter() Quarter {
	return Quarter{Year: p.Year, Q: (int(p.Month)-1)/3 + 1}
}

// MarshalText encodes the period as YYYY-MM.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a YYYY-MM period.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Quarter is a calendar quarter. Like Period, the zero value is not valid.
type Quarter struct {
	Year int `json:"year"`
	Q    int `json:"quarter"`
}

// ParseQuarter parses a quarter in YYYY-Qn form.
func ParseQuarter(s string) (Quarter, error) {
	var q Quarter
	if _, err := fmt.Sscanf(s, "%4d-Q%1d", &q.Year, &q.Q); err != nil || q.Q < 1 || q.Q > 4 {
		return Quarter{}, fmt.Errorf("invalid quarter %q: expected YYYY-Qn", s)
	}
	return q, nil
}

// String returns the YYYY-Qn form of the quarter.
func (q Quarter) String() string {
	return fmt.Sprintf("%04d-Q%d", q.Year, q.Q)
}

// Index maps the quarter onto a monotonically increasing quarter counter.
func (q Quarter) Index() int {
	return q.Year*4 + q.Q - 1
}

// Compare orders two quarters chronologically.
func (q Quarter) Compare(r Quarter) int {
	return q.Index() - r.Index()
}

// Prev returns the immediately preceding quarter. Q1 steps back to the
// previous year's Q4.
func (q Quarter) Prev() Quarter {
	idx := q.Index() - 1
	return Quarter{Year: idx / 4, Q: idx%4 + 1}
}

// MarshalText encodes the quarter as YYYY-Qn.
func (q Quarter) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText decodes a YYYY-Qn quarter.
func (q *Quarter) UnmarshalText(text []byte) error {
	parsed, err := ParseQuarter(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
