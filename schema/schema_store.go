package schema

// StoreStatus reports connection and size details for the record store.
type StoreStatus struct {
	Backend      string `json:"backend"`
	Connected    bool   `json:"connected"`
	TotalRecords int64  `json:"total_records"`
	FirstPeriod  Period `json:"first_period,omitzero"`
	LastPeriod   Period `json:"last_period,omitzero"`
}

// DatasetStats summarizes the stored dataset for the dashboard header.
type DatasetStats struct {
	TotalRecords       int64 `json:"total_records"`
	TotalRegistrations int64 `json:"total_registrations"`
	UniqueMakers       int64 `json:"unique_makers"`
	UniqueStates       int64 `json:"unique_states"`
}

// FilterOptions lists the distinct values available for dashboard filters,
// plus the period range covered by the stored data.
type FilterOptions struct {
	Categories  []Category `json:"categories"`
	Makers      []string   `json:"makers"`
	States      []string   `json:"states"`
	FirstPeriod Period     `json:"first_period,omitzero"`
	LastPeriod  Period     `json:"last_period,omitzero"`
}
