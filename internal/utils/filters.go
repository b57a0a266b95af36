package utils

import (
	"net/url"
	"strconv"

	"pharmadash.molview.org/internal/dataset"
)

// FilterFromQuery builds a dataset filter from request query parameters. The
// whole sidebar state lives in the query string, so every request recomputes
// its view from scratch. The year range only takes effect when it is
// narrower than the full span of the data, matching the widget's default
// position.
func FilterFromQuery(q url.Values, opts dataset.FilterOptions) dataset.Filter {
	f := dataset.Filter{
		Regions:      selectedValues(q, "region"),
		Countries:    selectedValues(q, "country"),
		Molecules:    selectedValues(q, "molecule"),
		RxOTC:        selectedValues(q, "rxotc"),
		Corporations: selectedValues(q, "corporation"),
	}

	if !opts.HasYears {
		return f
	}
	f.YearMin = intParam(q, "yearMin", opts.YearMin)
	f.YearMax = intParam(q, "yearMax", opts.YearMax)
	if f.YearMin < opts.YearMin {
		f.YearMin = opts.YearMin
	}
	if f.YearMax > opts.YearMax {
		f.YearMax = opts.YearMax
	}
	f.YearFiltered = f.YearMin > opts.YearMin || f.YearMax < opts.YearMax
	return f
}

func selectedValues(q url.Values, name string) []string {
	var values []string
	for _, raw := range q[name] {
		v, err := ValidateAndSanitizeQuery(raw)
		if err == nil && v != "" {
			values = append(values, v)
		}
	}
	return values
}

func intParam(q url.Values, name string, fallback int) int {
	if raw := q.Get(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}

// PageFromQuery parses the data tab's pagination state. perPage of 0 means
// "all rows"; out-of-range pages clamp to the last page.
func PageFromQuery(q url.Values, total int) (page, perPage int) {
	perPage = intParam(q, "perPage", 100)
	if perPage < 0 {
		perPage = 100
	}
	if perPage == 0 {
		return 1, 0
	}

	lastPage := (total-1)/perPage + 1
	if lastPage < 1 {
		lastPage = 1
	}
	page = intParam(q, "page", 1)
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}
	return page, perPage
}
