// Package dataset holds the in-memory molecule dataset and the filtering
// logic shared by the web UI and the REST API. The dataset is loaded once at
// startup and never mutated; every interaction recomputes its view from the
// full record set.
package dataset

import (
	"sort"

	"pharmadash.molview.org/internal/models"
)

// Dataset is the full record set plus a map of which optional columns the
// source actually provided. Features that need an absent column degrade
// instead of failing.
type Dataset struct {
	records []models.ProductRecord
	columns map[models.Column]bool
}

// New creates a Dataset from records and the set of present columns.
func New(records []models.ProductRecord, columns map[models.Column]bool) *Dataset {
	if columns == nil {
		columns = make(map[models.Column]bool)
	}
	return &Dataset{records: records, columns: columns}
}

// Records returns the full, unfiltered record set.
func (ds *Dataset) Records() []models.ProductRecord {
	return ds.records
}

// Len returns the number of records in the dataset.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// HasColumn reports whether the source provided the given column.
func (ds *Dataset) HasColumn(c models.Column) bool {
	return ds.columns[c]
}

// Columns returns the present columns in display order.
func (ds *Dataset) Columns() []models.Column {
	var cols []models.Column
	for _, c := range models.AllColumns {
		if ds.columns[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// FilterOptions holds the values the sidebar filter widgets offer, derived
// from the loaded data.
type FilterOptions struct {
	Regions      []string `json:"regions"`
	Countries    []string `json:"countries"`
	Molecules    []string `json:"molecules"`
	RxOTC        []string `json:"rxOtc"`
	Corporations []string `json:"corporations"`
	YearMin      int      `json:"yearMin"`
	YearMax      int      `json:"yearMax"`
	HasYears     bool     `json:"hasYears"`
}

// Options derives the sidebar filter options. Country options narrow to the
// selected regions so the country widget only offers reachable values.
func (ds *Dataset) Options(selectedRegions []string) FilterOptions {
	opts := FilterOptions{
		Regions:      ds.uniqueValues(models.ColRegion, nil),
		Molecules:    ds.uniqueValues(models.ColMolecule, nil),
		RxOTC:        ds.uniqueValues(models.ColRxOTC, nil),
		Corporations: ds.uniqueValues(models.ColCorporation, nil),
	}

	if len(selectedRegions) > 0 && ds.columns[models.ColRegion] {
		regionSet := stringSet(selectedRegions)
		opts.Countries = ds.uniqueValues(models.ColCountry, func(r models.ProductRecord) bool {
			return regionSet[r.Region]
		})
	} else {
		opts.Countries = ds.uniqueValues(models.ColCountry, nil)
	}

	if ds.columns[models.ColLaunchYear] {
		for _, r := range ds.records {
			year, ok := r.ParseLaunchYear()
			if !ok {
				continue
			}
			if !opts.HasYears || year < opts.YearMin {
				opts.YearMin = year
			}
			if !opts.HasYears || year > opts.YearMax {
				opts.YearMax = year
			}
			opts.HasYears = true
		}
	}

	return opts
}

func (ds *Dataset) uniqueValues(c models.Column, keep func(models.ProductRecord) bool) []string {
	if !ds.columns[c] {
		return nil
	}
	seen := make(map[string]bool)
	for _, r := range ds.records {
		if keep != nil && !keep(r) {
			continue
		}
		if v := r.Field(c); v != "" {
			seen[v] = true
		}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Filter is the sidebar selection state. Empty slices mean "no restriction"
// for that column; YearFiltered gates the launch year range.
type Filter struct {
	Regions      []string
	Countries    []string
	Molecules    []string
	RxOTC        []string
	Corporations []string
	YearMin      int
	YearMax      int
	YearFiltered bool
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return len(f.Regions) == 0 && len(f.Countries) == 0 && len(f.Molecules) == 0 &&
		len(f.RxOTC) == 0 && len(f.Corporations) == 0 && !f.YearFiltered
}

// Apply returns the records satisfying the conjunction of every selected
// predicate. A year range excludes records without a parseable launch year.
// Filters on absent columns are ignored.
func (ds *Dataset) Apply(f Filter) []models.ProductRecord {
	type selection struct {
		column models.Column
		values map[string]bool
	}
	var selections []selection
	add := func(c models.Column, selected []string) {
		if len(selected) > 0 && ds.columns[c] {
			selections = append(selections, selection{column: c, values: stringSet(selected)})
		}
	}
	add(models.ColRegion, f.Regions)
	add(models.ColCountry, f.Countries)
	add(models.ColMolecule, f.Molecules)
	add(models.ColRxOTC, f.RxOTC)
	add(models.ColCorporation, f.Corporations)

	yearFiltered := f.YearFiltered && ds.columns[models.ColLaunchYear]

	matched := make([]models.ProductRecord, 0, len(ds.records))
outer:
	for _, r := range ds.records {
		for _, sel := range selections {
			if !sel.values[r.Field(sel.column)] {
				continue outer
			}
		}
		if yearFiltered {
			year, ok := r.ParseLaunchYear()
			if !ok || year < f.YearMin || year > f.YearMax {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
