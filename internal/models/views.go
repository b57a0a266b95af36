package models

// CountValue is a labeled row count, used by pie and bar charts.
type CountValue struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SummaryMetrics backs the metric cards on the overview tab. Counts for
// absent columns are nil and render as "N/A".
type SummaryMetrics struct {
	TotalProducts      int  `json:"totalProducts"`
	UniqueMolecules    *int `json:"uniqueMolecules"`
	UniqueCountries    *int `json:"uniqueCountries"`
	UniqueCorporations *int `json:"uniqueCorporations"`
}

// HistogramBin is a half-open [Start, End) bin of launch years. The final
// bin is closed so the maximum year is counted.
type HistogramBin struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Count int `json:"count"`
}

// TreeNode is one region branch of the region/country treemap.
type TreeNode struct {
	Region    string       `json:"region"`
	Count     int          `json:"count"`
	Countries []CountValue `json:"countries"`
}

// CountryRxOTCCount is a (country, classification) cell of the grouped bar
// chart on the countries tab.
type CountryRxOTCCount struct {
	Country string `json:"country"`
	RxOTC   string `json:"rxOtc"`
	Count   int    `json:"count"`
}

// CountryStats is one row of the per-country analysis table.
type CountryStats struct {
	Country            string   `json:"country"`
	UniqueMolecules    int      `json:"uniqueMolecules"`
	UniqueProducts     int      `json:"uniqueProducts"`
	UniqueCorporations int      `json:"uniqueCorporations"`
	TotalRecords       int      `json:"totalRecords"`
	AvgLaunchYear      *float64 `json:"avgLaunchYear,omitempty"`
}

// CorporationStats is one row of the corporation comparison table, and feeds
// the molecules-vs-countries scatter (point size = TotalRecords).
type CorporationStats struct {
	Corporation  string `json:"corporation"`
	Molecules    int    `json:"molecules"`
	Countries    int    `json:"countries"`
	Products     int    `json:"products"`
	TotalRecords int    `json:"totalRecords"`
}

// TimelinePoint is one sampled record on the molecule launch timeline.
type TimelinePoint struct {
	Year     int    `json:"year"`
	Molecule string `json:"molecule"`
	RxOTC    string `json:"rxOtc"`
}
