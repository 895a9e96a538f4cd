package schema

// SummaryPoint is one aggregated bucket with record-level statistics,
// produced by the summary report on top of the plain aggregation.
type SummaryPoint struct {
	AggregatedPoint
	Records int64   `json:"records"`
	Mean    float64 `json:"mean"`
}

// SummaryResult holds an aggregation summary.
type SummaryResult struct {
	GroupBy []Dimension    `json:"group_by"`
	Points  []SummaryPoint `json:"points"`
}

// TrendStats describes a monthly trend for one filtered slice of the data.
// OverallGrowth compares the last month of the window against the first.
type TrendStats struct {
	TotalRegistrations int64        `json:"total_registrations"`
	AvgMonthly         float64      `json:"avg_monthly"`
	OverallGrowth      Percent      `json:"overall_growth"`
	Volatility         float64      `json:"volatility"`
	Months             []TrendMonth `json:"months"`
}

// TrendMonth is one month of the trend series.
type TrendMonth struct {
	Period Period `json:"period"`
	Total  int64  `json:"total"`
}

// TopEntry is one row of the top-performers ranking.
type TopEntry struct {
	Rank     int      `json:"rank"`
	Category Category `json:"category,omitempty"`
	Maker    string   `json:"maker,omitempty"`
	Total    int64    `json:"total"`
}

// TopResult holds the top performers for the latest bucket of a grain.
type TopResult struct {
	By      TopBy      `json:"by"`
	Grain   Grain      `json:"grain"`
	Bucket  string     `json:"bucket"`
	Entries []TopEntry `json:"entries"`
}
