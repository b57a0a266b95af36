package restapi

import (
	"net/http"
	"strconv"

	"pharmadash.molview.org/internal/analytics"
	"pharmadash.molview.org/internal/dataset"
	"pharmadash.molview.org/internal/models"
	"pharmadash.molview.org/internal/utils"
)

const (
	topCountries    = 10
	topMolecules    = 15
	chartCountries  = 15
	timelineSampleN = 1000
	histogramBins   = 20
)

// filteredRecords applies the request's filter parameters to the dataset.
func (api *RestAPI) filteredRecords(r *http.Request) ([]models.ProductRecord, dataset.Filter, dataset.FilterOptions) {
	q := r.URL.Query()
	opts := api.Dataset.Options(q["region"])
	filter := utils.FilterFromQuery(q, opts)
	return api.Dataset.Apply(filter), filter, opts
}

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	records, _, _ := api.filteredRecords(r)

	data := map[string]interface{}{
		"metrics":       analytics.Summary(records, api.Dataset.HasColumn),
		"rxOtcCounts":   analytics.ValueCounts(records, models.ColRxOTC),
		"atc1Counts":    analytics.ValueCounts(records, models.ColATC1),
		"yearHistogram": analytics.YearHistogram(records, histogramBins),
		"topCountries":  analytics.TopGroups(records, models.ColCountry, topCountries),
	}
	api.sendResponse(w, r, models.NewOKResponse(data))
}

func (api *RestAPI) filtersHandler(w http.ResponseWriter, r *http.Request) {
	opts := api.Dataset.Options(r.URL.Query()["region"])
	api.sendResponse(w, r, models.NewOKResponse(opts))
}

func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	records, _, _ := api.filteredRecords(r)

	data := map[string]interface{}{
		"tree":            analytics.RegionCountryTree(records),
		"countryRxOtc":    analytics.CountryRxOTC(records, chartCountries),
		"countryAnalysis": analytics.CountryAnalysis(records),
	}
	api.sendResponse(w, r, models.NewOKResponse(data))
}

func (api *RestAPI) moleculesHandler(w http.ResponseWriter, r *http.Request) {
	records, _, _ := api.filteredRecords(r)

	data := map[string]interface{}{
		"topMolecules": analytics.TopGroups(records, models.ColMolecule, topMolecules),
		"atc1Counts":   analytics.ValueCounts(records, models.ColATC1),
		"timeline":     analytics.TimelineSample(records, timelineSampleN),
	}
	api.sendResponse(w, r, models.NewOKResponse(data))
}

func (api *RestAPI) corporationsHandler(w http.ResponseWriter, r *http.Request) {
	records, _, _ := api.filteredRecords(r)
	api.sendResponse(w, r, models.NewListResponse(analytics.CorporationSummary(records), len(records)))
}

func (api *RestAPI) recordsHandler(w http.ResponseWriter, r *http.Request) {
	records, _, _ := api.filteredRecords(r)

	page, perPage := utils.PageFromQuery(r.URL.Query(), len(records))
	start, end := 0, len(records)
	if perPage > 0 {
		start = (page - 1) * perPage
		if start > len(records) {
			start = len(records)
		}
		end = start + perPage
		if end > len(records) {
			end = len(records)
		}
	}

	data := map[string]interface{}{
		"list":    records[start:end],
		"total":   len(records),
		"page":    page,
		"perPage": perPage,
	}
	api.sendResponse(w, r, models.NewOKResponse(data))
}

// recordHandler returns a single record by row position, the only identity
// records have.
func (api *RestAPI) recordHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	idx, err := strconv.Atoi(id)
	if err != nil || idx < 0 || idx >= api.Dataset.Len() {
		api.sendNotFound(w, r)
		return
	}
	api.sendResponse(w, r, models.NewOKResponse(api.Dataset.Records()[idx]))
}
