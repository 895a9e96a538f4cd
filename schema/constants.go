package schema

// Custom string types for type safety.
type (
	// Category is a vehicle category segment.
	Category string

	// Dimension is a grouping dimension for aggregation.
	Dimension string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for record storage.
	DatabaseBackend string

	// TopBy selects the entity ranked by the top-performers report.
	TopBy string

	// Grain is the time granularity of a summary bucket.
	Grain string
)

// All vehicle categories supported.
const (
	TwoWheeler   Category = "2W"
	ThreeWheeler Category = "3W"
	FourWheeler  Category = "4W"
)

// All grouping dimensions supported.
const (
	DimPeriod   Dimension = "period"
	DimCategory Dimension = "category"
	DimMaker    Dimension = "maker"
	DimState    Dimension = "state"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All top-performer rankings supported.
const (
	TopByMaker    TopBy = "maker" // default
	TopByCategory TopBy = "category"
)

// All summary grains supported.
const (
	MonthGrain   Grain = "month" // default
	QuarterGrain Grain = "quarter"
	YearGrain    Grain = "year"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{TwoWheeler, ThreeWheeler, FourWheeler}

// ValidCategories lists all valid categories.
var ValidCategories = map[Category]struct{}{
	TwoWheeler:   {},
	ThreeWheeler: {},
	FourWheeler:  {},
}

// ValidDimensions lists all valid grouping dimensions.
var ValidDimensions = map[Dimension]struct{}{
	DimPeriod:   {},
	DimCategory: {},
	DimMaker:    {},
	DimState:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidTopBy lists all valid top-performer rankings.
var ValidTopBy = map[TopBy]struct{}{
	TopByMaker:    {},
	TopByCategory: {},
}

// ValidGrains lists all valid summary grains.
var ValidGrains = map[Grain]struct{}{
	MonthGrain:   {},
	QuarterGrain: {},
	YearGrain:    {},
}
