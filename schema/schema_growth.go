package schema

// GrowthPoint is one monthly total with its year-over-year growth rate.
// Growth is not computable when the same month one year earlier is absent
// from the series or had a zero total.
type GrowthPoint struct {
	Period   Period   `json:"period"`
	Category Category `json:"category,omitempty"`
	Maker    string   `json:"maker,omitempty"`
	State    string   `json:"state,omitempty"`
	Total    int64    `json:"total"`
	Growth   Percent  `json:"growth"`
}

// QuarterGrowthPoint is one quarterly total with its quarter-over-quarter
// growth rate against the immediately preceding quarter.
type QuarterGrowthPoint struct {
	Quarter  Quarter  `json:"quarter"`
	Category Category `json:"category,omitempty"`
	Maker    string   `json:"maker,omitempty"`
	State    string   `json:"state,omitempty"`
	Total    int64    `json:"total"`
	Growth   Percent  `json:"growth"`
}

// GrowthResult holds a derived year-over-year growth series.
type GrowthResult struct {
	GroupBy []Dimension   `json:"group_by,omitempty"`
	Points  []GrowthPoint `json:"points"`
}

// QuarterGrowthResult holds a derived quarter-over-quarter growth series.
type QuarterGrowthResult struct {
	GroupBy []Dimension          `json:"group_by,omitempty"`
	Points  []QuarterGrowthPoint `json:"points"`
}
