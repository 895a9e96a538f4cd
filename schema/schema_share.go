package schema

// SharePoint is one maker's slice of its category for one period.
// Share is not computable when the whole category had zero registrations
// in that period; the row is kept so the caller can render it as n/a.
type SharePoint struct {
	Period        Period   `json:"period"`
	Category      Category `json:"category"`
	Maker         string   `json:"maker"`
	Total         int64    `json:"total"`
	CategoryTotal int64    `json:"category_total"`
	Share         Percent  `json:"share"`
}

// ShareResult holds a derived market-share series.
type ShareResult struct {
	Points []SharePoint `json:"points"`
}
