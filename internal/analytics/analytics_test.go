package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmadash.molview.org/internal/models"
)

func hasAll(models.Column) bool { return true }

func TestValueCountsOrderedByCountDesc(t *testing.T) {
	counts := ValueCounts(models.TestRecords(), models.ColRxOTC)

	require.Len(t, counts, 2)
	assert.Equal(t, models.CountValue{Label: "OTC", Count: 4}, counts[0])
	assert.Equal(t, models.CountValue{Label: "RX", Count: 4}, counts[1])
}

func TestValueCountsSkipsEmptyValues(t *testing.T) {
	records := []models.ProductRecord{
		{RxOTC: "RX"},
		{RxOTC: ""},
	}

	counts := ValueCounts(records, models.ColRxOTC)

	require.Len(t, counts, 1)
	assert.Equal(t, "RX", counts[0].Label)
}

func TestTopGroupsLimits(t *testing.T) {
	top := TopGroups(models.TestRecords(), models.ColCountry, 2)

	require.Len(t, top, 2)
	// Germany and Japan both have 2 records; ties break alphabetically.
	assert.Equal(t, "Germany", top[0].Label)
	assert.Equal(t, "Japan", top[1].Label)
}

func TestSummaryCountsUniques(t *testing.T) {
	summary := Summary(models.TestRecords(), hasAll)

	assert.Equal(t, 8, summary.TotalProducts)
	require.NotNil(t, summary.UniqueMolecules)
	assert.Equal(t, 5, *summary.UniqueMolecules)
	require.NotNil(t, summary.UniqueCountries)
	assert.Equal(t, 6, *summary.UniqueCountries)
	require.NotNil(t, summary.UniqueCorporations)
	assert.Equal(t, 6, *summary.UniqueCorporations)
}

func TestSummaryAbsentColumnIsNil(t *testing.T) {
	summary := Summary(models.TestRecords(), func(c models.Column) bool {
		return c != models.ColCorporation
	})

	assert.Nil(t, summary.UniqueCorporations)
	assert.NotNil(t, summary.UniqueMolecules)
}

func TestYearHistogramCoversAllParseableYears(t *testing.T) {
	bins := YearHistogram(models.TestRecords(), 5)

	require.NotEmpty(t, bins)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 6, total, "every parseable year lands in exactly one bin")
	assert.Equal(t, 1989, bins[0].Start)
}

func TestYearHistogramNoParseableYears(t *testing.T) {
	records := []models.ProductRecord{{LaunchYear: "unknown"}}

	assert.Nil(t, YearHistogram(records, 10))
}

func TestRegionCountryTree(t *testing.T) {
	tree := RegionCountryTree(models.TestRecords())

	require.Len(t, tree, 3)
	assert.Equal(t, "Europe", tree[0].Region)
	assert.Equal(t, 4, tree[0].Count)
	assert.Equal(t, "Germany", tree[0].Countries[0].Label)
	assert.Equal(t, 2, tree[0].Countries[0].Count)
}

func TestCountryRxOTC(t *testing.T) {
	cells := CountryRxOTC(models.TestRecords(), 10)

	require.NotEmpty(t, cells)
	for _, cell := range cells {
		assert.NotEmpty(t, cell.Country)
		assert.NotEmpty(t, cell.RxOTC)
		assert.Positive(t, cell.Count)
	}
	// Japan has two RX records.
	assert.Contains(t, cells, models.CountryRxOTCCount{Country: "Japan", RxOTC: "RX", Count: 2})
}

func TestCountryAnalysis(t *testing.T) {
	stats := CountryAnalysis(models.TestRecords())

	require.NotEmpty(t, stats)
	// Sorted by total records descending; Germany and Japan tie at 2.
	assert.Equal(t, "Germany", stats[0].Country)
	assert.Equal(t, 2, stats[0].TotalRecords)
	assert.Equal(t, 2, stats[0].UniqueMolecules)
	require.NotNil(t, stats[0].AvgLaunchYear)
	assert.Equal(t, 1992.0, *stats[0].AvgLaunchYear)

	// Japan has one parseable year out of two records.
	var japan models.CountryStats
	for _, s := range stats {
		if s.Country == "Japan" {
			japan = s
		}
	}
	require.NotNil(t, japan.AvgLaunchYear)
	assert.Equal(t, 2003.0, *japan.AvgLaunchYear)
}

func TestCorporationSummary(t *testing.T) {
	stats := CorporationSummary(models.TestRecords())

	require.NotEmpty(t, stats)
	// AstraZeneca and J&J tie at 2 records; ties break alphabetically.
	assert.Equal(t, "AstraZeneca", stats[0].Corporation)
	assert.Equal(t, 2, stats[0].TotalRecords)
	assert.Equal(t, 2, stats[0].Molecules)
	assert.Equal(t, 2, stats[0].Countries)
}

func TestTimelineSampleUnderCapReturnsAllPoints(t *testing.T) {
	points := TimelineSample(models.TestRecords(), 1000)

	assert.Len(t, points, 6, "only records with a parseable year qualify")
}

func TestTimelineSampleCapsAndIsDeterministic(t *testing.T) {
	var records []models.ProductRecord
	for i := 0; i < 500; i++ {
		records = append(records, models.ProductRecord{
			Molecule:   "M",
			LaunchYear: "2000",
		})
	}

	first := TimelineSample(records, 100)
	second := TimelineSample(records, 100)

	assert.Len(t, first, 100)
	assert.Equal(t, first, second, "repeated renders of the same filter state must match")
}
