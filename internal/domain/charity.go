package domain

// Charity is a static catalog entry describing a beneficiary. Reference
// data only; never mutated by users.
type Charity struct {
	ID          string
	Name        string
	Description string
	URL         string
	Category    string
}

// HistoricalDataPoint is one year of past peak-order volume, shown to
// pro-access holders as guessing insight.
type HistoricalDataPoint struct {
	Year       int
	PeakOrders int64
}

// CharityCatalog returns the static beneficiary catalog. Both stores serve
// the same copy; the data is not user-editable.
func CharityCatalog() []Charity {
	return []Charity{
		{
			ID:          "c1",
			Name:        "Code for Good",
			Description: "Supporting STEM education for underserved communities.",
			URL:         "https://example.org/code-for-good",
			Category:    "Education",
		},
		{
			ID:          "c2",
			Name:        "Health First",
			Description: "Improving access to basic healthcare globally.",
			URL:         "https://example.org/health-first",
			Category:    "Health",
		},
	}
}

// HistoricalSeries returns the past peak-order numbers behind pro insights.
func HistoricalSeries() []HistoricalDataPoint {
	return []HistoricalDataPoint{
		{Year: 2022, PeakOrders: 48000},
		{Year: 2023, PeakOrders: 53000},
		{Year: 2024, PeakOrders: 62000},
	}
}
