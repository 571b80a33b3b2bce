package types

// Observation is one measurement row: a station's reading for a calendar day.
// Dates are kept as "YYYY-MM-DD" strings; lexicographic order matches
// chronological order for this fixed-width layout, so range filters compare
// strings directly. Prcp and Tobs are nullable in the dataset.
type Observation struct {
	Station string   `json:"station"`
	Date    string   `json:"date"`
	Prcp    *float64 `json:"prcp"`
	Tobs    *float64 `json:"tobs"`
}

// TemperatureStats is the min/avg/max aggregate over a date range.
type TemperatureStats struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

// DatePrcp is a (date, precipitation) pair in repository fetch order.
type DatePrcp struct {
	Date string
	Prcp *float64
}

// PrecipitationSeries maps "YYYY-MM-DD" dates to precipitation values.
// encoding/json marshals map keys in sorted order, which for this date layout
// is ascending chronological order, so the serialized object is the sorted
// series the API promises.
type PrecipitationSeries map[string]*float64
