// Package analytics computes the aggregate views behind the dashboard tabs.
// Everything operates on a filtered record slice and is recomputed per
// request; row counts are small enough that single-pass aggregation is fine.
package analytics

import (
	"math"
	"sort"

	"pharmadash.molview.org/internal/models"
)

// ValueCounts counts rows per distinct value of a column, ordered by count
// descending, ties broken by label. Empty values are skipped.
func ValueCounts(records []models.ProductRecord, c models.Column) []models.CountValue {
	counts := make(map[string]int)
	for _, r := range records {
		if v := r.Field(c); v != "" {
			counts[v]++
		}
	}
	return sortedCounts(counts)
}

// TopGroups returns the n most frequent values of a column.
func TopGroups(records []models.ProductRecord, c models.Column, n int) []models.CountValue {
	all := ValueCounts(records, c)
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// UniqueCount counts the distinct non-empty values of a column.
func UniqueCount(records []models.ProductRecord, c models.Column) int {
	seen := make(map[string]bool)
	for _, r := range records {
		if v := r.Field(c); v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}

// Summary computes the overview tab's metric cards. hasColumn gates the
// unique counts; absent columns yield nil and render as "N/A".
func Summary(records []models.ProductRecord, hasColumn func(models.Column) bool) models.SummaryMetrics {
	summary := models.SummaryMetrics{TotalProducts: len(records)}
	count := func(c models.Column) *int {
		if !hasColumn(c) {
			return nil
		}
		n := UniqueCount(records, c)
		return &n
	}
	summary.UniqueMolecules = count(models.ColMolecule)
	summary.UniqueCountries = count(models.ColCountry)
	summary.UniqueCorporations = count(models.ColCorporation)
	return summary
}

// YearHistogram bins parseable launch years into at most bins equal-width
// bins. Returns nil when no record has a parseable year.
func YearHistogram(records []models.ProductRecord, bins int) []models.HistogramBin {
	if bins <= 0 {
		bins = 20
	}
	var years []int
	for _, r := range records {
		if y, ok := r.ParseLaunchYear(); ok {
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return nil
	}

	minYear, maxYear := years[0], years[0]
	for _, y := range years[1:] {
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	span := maxYear - minYear + 1
	if span < bins {
		bins = span
	}
	width := int(math.Ceil(float64(span) / float64(bins)))

	result := make([]models.HistogramBin, bins)
	for i := range result {
		result[i].Start = minYear + i*width
		result[i].End = result[i].Start + width
	}
	for _, y := range years {
		idx := (y - minYear) / width
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}
	return result
}

// RegionCountryTree groups rows by region then country for the treemap.
// Regions and their countries are ordered by count descending.
func RegionCountryTree(records []models.ProductRecord) []models.TreeNode {
	type regionGroup struct {
		total     int
		countries map[string]int
	}
	groups := make(map[string]*regionGroup)
	for _, r := range records {
		if r.Region == "" || r.Country == "" {
			continue
		}
		g := groups[r.Region]
		if g == nil {
			g = &regionGroup{countries: make(map[string]int)}
			groups[r.Region] = g
		}
		g.total++
		g.countries[r.Country]++
	}

	nodes := make([]models.TreeNode, 0, len(groups))
	for region, g := range groups {
		nodes = append(nodes, models.TreeNode{
			Region:    region,
			Count:     g.total,
			Countries: sortedCounts(g.countries),
		})
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Count != nodes[j].Count {
			return nodes[i].Count > nodes[j].Count
		}
		return nodes[i].Region < nodes[j].Region
	})
	return nodes
}

// CountryRxOTC counts rows per (country, classification) pair for the
// grouped bar chart, restricted to the top countries by row count.
func CountryRxOTC(records []models.ProductRecord, topCountries int) []models.CountryRxOTCCount {
	keep := make(map[string]bool)
	for _, cv := range TopGroups(records, models.ColCountry, topCountries) {
		keep[cv.Label] = true
	}

	counts := make(map[[2]string]int)
	for _, r := range records {
		if r.Country == "" || r.RxOTC == "" || !keep[r.Country] {
			continue
		}
		counts[[2]string{r.Country, r.RxOTC}]++
	}

	result := make([]models.CountryRxOTCCount, 0, len(counts))
	for key, n := range counts {
		result = append(result, models.CountryRxOTCCount{Country: key[0], RxOTC: key[1], Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Country != result[j].Country {
			return result[i].Country < result[j].Country
		}
		return result[i].RxOTC < result[j].RxOTC
	})
	return result
}

// CountryAnalysis builds the per-country table: unique molecule, product and
// corporation counts, total rows, and the mean launch year rounded to one
// decimal. Sorted by total rows descending.
func CountryAnalysis(records []models.ProductRecord) []models.CountryStats {
	type acc struct {
		molecules    map[string]bool
		products     map[string]bool
		corporations map[string]bool
		total        int
		yearSum      int
		yearCount    int
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		if r.Country == "" {
			continue
		}
		g := groups[r.Country]
		if g == nil {
			g = &acc{
				molecules:    make(map[string]bool),
				products:     make(map[string]bool),
				corporations: make(map[string]bool),
			}
			groups[r.Country] = g
		}
		g.total++
		if r.Molecule != "" {
			g.molecules[r.Molecule] = true
		}
		if r.Product != "" {
			g.products[r.Product] = true
		}
		if r.Corporation != "" {
			g.corporations[r.Corporation] = true
		}
		if y, ok := r.ParseLaunchYear(); ok {
			g.yearSum += y
			g.yearCount++
		}
	}

	stats := make([]models.CountryStats, 0, len(groups))
	for country, g := range groups {
		row := models.CountryStats{
			Country:            country,
			UniqueMolecules:    len(g.molecules),
			UniqueProducts:     len(g.products),
			UniqueCorporations: len(g.corporations),
			TotalRecords:       g.total,
		}
		if g.yearCount > 0 {
			avg := math.Round(float64(g.yearSum)/float64(g.yearCount)*10) / 10
			row.AvgLaunchYear = &avg
		}
		stats = append(stats, row)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalRecords != stats[j].TotalRecords {
			return stats[i].TotalRecords > stats[j].TotalRecords
		}
		return stats[i].Country < stats[j].Country
	})
	return stats
}

// CorporationSummary builds the per-corporation comparison rows, sorted by
// total rows descending.
func CorporationSummary(records []models.ProductRecord) []models.CorporationStats {
	type acc struct {
		molecules map[string]bool
		countries map[string]bool
		products  map[string]bool
		total     int
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		if r.Corporation == "" {
			continue
		}
		g := groups[r.Corporation]
		if g == nil {
			g = &acc{
				molecules: make(map[string]bool),
				countries: make(map[string]bool),
				products:  make(map[string]bool),
			}
			groups[r.Corporation] = g
		}
		g.total++
		if r.Molecule != "" {
			g.molecules[r.Molecule] = true
		}
		if r.Country != "" {
			g.countries[r.Country] = true
		}
		if r.Product != "" {
			g.products[r.Product] = true
		}
	}

	stats := make([]models.CorporationStats, 0, len(groups))
	for corp, g := range groups {
		stats = append(stats, models.CorporationStats{
			Corporation:  corp,
			Molecules:    len(g.molecules),
			Countries:    len(g.countries),
			Products:     len(g.products),
			TotalRecords: g.total,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalRecords != stats[j].TotalRecords {
			return stats[i].TotalRecords > stats[j].TotalRecords
		}
		return stats[i].Corporation < stats[j].Corporation
	})
	return stats
}

// TimelineSample returns at most max launch timeline points. When more
// records qualify, a fixed-stride sample keeps the chart readable while
// staying deterministic across re-renders of the same filter state.
func TimelineSample(records []models.ProductRecord, max int) []models.TimelinePoint {
	var points []models.TimelinePoint
	for _, r := range records {
		if r.Molecule == "" {
			continue
		}
		if y, ok := r.ParseLaunchYear(); ok {
			points = append(points, models.TimelinePoint{Year: y, Molecule: r.Molecule, RxOTC: r.RxOTC})
		}
	}
	if max <= 0 || len(points) <= max {
		return points
	}

	sampled := make([]models.TimelinePoint, 0, max)
	stride := float64(len(points)) / float64(max)
	for i := 0; i < max; i++ {
		sampled = append(sampled, points[int(float64(i)*stride)])
	}
	return sampled
}

func sortedCounts(counts map[string]int) []models.CountValue {
	result := make([]models.CountValue, 0, len(counts))
	for label, n := range counts {
		result = append(result, models.CountValue{Label: label, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	return result
}
