package webui

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"pharmadash.molview.org/internal/analytics"
	"pharmadash.molview.org/internal/dataset"
	"pharmadash.molview.org/internal/models"
	"pharmadash.molview.org/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	topCountries    = 10
	topMolecules    = 15
	topCorporations = 10
	scatterCorps    = 20
	chartCountries  = 15
	timelineSampleN = 1000
	histogramBins   = 20
)

var perPageOptions = []int{50, 100, 500, 1000, 0}

type tabLink struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

// dashboardView is everything the dashboard template renders for one request.
type dashboardView struct {
	Title        string
	Env          string
	LoggedIn     bool
	TotalRows    int
	FilteredRows int

	Tab     string
	Tabs    []tabLink
	Options dataset.FilterOptions
	Filter  dataset.Filter
	Columns []models.Column
	Empty   bool

	ClearURL  string
	ChartJSON template.JS

	// Overview
	Metrics  models.SummaryMetrics
	HasRxOTC bool
	HasYear  bool
	HasATC1  bool

	// Countries
	HasCountry      bool
	HasRegion       bool
	CountryAnalysis []models.CountryStats

	// Molecules
	HasMolecule bool

	// Corporations
	HasCorporation     bool
	CorporationSummary []models.CorporationStats

	// Data
	Page           int
	PerPage        int
	TotalPages     int
	StartRow       int
	EndRow         int
	PageRecords    []models.ProductRecord
	PageLinks      []pageLink
	PerPageOptions []int
	ExportURL      string
}

// Selected reports whether a filter value is currently selected, so the
// template can mark multi-select options.
func (v dashboardView) Selected(name, value string) bool {
	var selected []string
	switch name {
	case "region":
		selected = v.Filter.Regions
	case "country":
		selected = v.Filter.Countries
	case "molecule":
		selected = v.Filter.Molecules
	case "rxotc":
		selected = v.Filter.RxOTC
	case "corporation":
		selected = v.Filter.Corporations
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// FormatCount renders a nullable metric, with "N/A" for absent columns.
func (v dashboardView) FormatCount(n *int) string {
	if n == nil {
		return "N/A"
	}
	return strconv.Itoa(*n)
}

// FormatYear renders a nullable mean launch year.
func (v dashboardView) FormatYear(f *float64) string {
	if f == nil {
		return "—"
	}
	return strconv.FormatFloat(*f, 'f', 1, 64)
}

var tabs = []struct {
	ID    string
	Label string
}{
	{"overview", "Overview"},
	{"countries", "Countries"},
	{"molecules", "Molecules & Products"},
	{"corporations", "Corporations"},
	{"data", "Data Table"},
}

func (ui *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := ui.Dataset.Options(q["region"])
	filter := utils.FilterFromQuery(q, opts)
	records := ui.Dataset.Apply(filter)

	tab := q.Get("tab")
	if !validTab(tab) {
		tab = "overview"
	}

	view := dashboardView{
		Title:        "Pharmaceutical Molecule Dashboard",
		Env:          ui.Config.Env,
		LoggedIn:     ui.Sessions != nil,
		TotalRows:    ui.Dataset.Len(),
		FilteredRows: len(records),
		Tab:          tab,
		Options:      opts,
		Filter:       filter,
		Columns:      ui.Dataset.Columns(),
		Empty:        len(records) == 0,
		ClearURL:     "/?tab=" + tab,

		HasRegion:      ui.Dataset.HasColumn(models.ColRegion),
		HasCountry:     ui.Dataset.HasColumn(models.ColCountry),
		HasMolecule:    ui.Dataset.HasColumn(models.ColMolecule),
		HasRxOTC:       ui.Dataset.HasColumn(models.ColRxOTC),
		HasCorporation: ui.Dataset.HasColumn(models.ColCorporation),
		HasYear:        opts.HasYears,
		HasATC1:        ui.Dataset.HasColumn(models.ColATC1),
	}

	for _, t := range tabs {
		view.Tabs = append(view.Tabs, tabLink{
			ID:     t.ID,
			Label:  t.Label,
			URL:    urlWithParam(q, "tab", t.ID),
			Active: t.ID == tab,
		})
	}

	charts := make(map[string]interface{})
	switch tab {
	case "overview":
		view.Metrics = analytics.Summary(records, ui.Dataset.HasColumn)
		charts["rxOtc"] = analytics.ValueCounts(records, models.ColRxOTC)
		charts["histogram"] = analytics.YearHistogram(records, histogramBins)
		charts["topCountries"] = analytics.TopGroups(records, models.ColCountry, topCountries)
	case "countries":
		charts["treemap"] = flattenTree(analytics.RegionCountryTree(records))
		charts["countryRxOtc"] = analytics.CountryRxOTC(records, chartCountries)
		view.CountryAnalysis = analytics.CountryAnalysis(records)
	case "molecules":
		charts["timeline"] = analytics.TimelineSample(records, timelineSampleN)
		charts["topMolecules"] = analytics.TopGroups(records, models.ColMolecule, topMolecules)
		charts["atc1"] = analytics.ValueCounts(records, models.ColATC1)
	case "corporations":
		summary := analytics.CorporationSummary(records)
		view.CorporationSummary = summary
		if len(summary) > scatterCorps {
			charts["scatter"] = summary[:scatterCorps]
		} else {
			charts["scatter"] = summary
		}
		if len(summary) > topCorporations {
			charts["topCorps"] = summary[:topCorporations]
		} else {
			charts["topCorps"] = summary
		}
	case "data":
		ui.fillDataTab(&view, records, q)
	}

	payload, err := json.Marshal(charts)
	if err != nil {
		ui.Logger.Error("failed to marshal chart payload", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	view.ChartJSON = template.JS(payload)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		ui.Logger.Error("failed to render dashboard", "error", err)
	}
}

func (ui *WebUI) fillDataTab(view *dashboardView, records []models.ProductRecord, q url.Values) {
	total := len(records)
	page, perPage := utils.PageFromQuery(q, total)
	view.Page = page
	view.PerPage = perPage
	view.PerPageOptions = perPageOptions
	view.ExportURL = urlWithPath(q, "/export.xlsx")

	if perPage == 0 {
		view.TotalPages = 1
		view.StartRow = 1
		view.EndRow = total
		view.PageRecords = records
		return
	}

	view.TotalPages = (total-1)/perPage + 1
	if view.TotalPages < 1 {
		view.TotalPages = 1
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	view.StartRow = start + 1
	view.EndRow = end
	if start < total {
		view.PageRecords = records[start:end]
	}

	for n := 1; n <= view.TotalPages; n++ {
		view.PageLinks = append(view.PageLinks, pageLink{
			Number:  n,
			URL:     urlWithParam(q, "page", strconv.Itoa(n)),
			Current: n == page,
		})
	}
}

func validTab(tab string) bool {
	for _, t := range tabs {
		if t.ID == tab {
			return true
		}
	}
	return false
}

// urlWithParam rebuilds the current query string with one parameter replaced,
// preserving the rest of the filter state.
func urlWithParam(q url.Values, name, value string) string {
	copied := url.Values{}
	for k, vs := range q {
		copied[k] = vs
	}
	copied.Set(name, value)
	return "/?" + copied.Encode()
}

func urlWithPath(q url.Values, path string) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// flatTreeRow is the flattened treemap form Chart.js's treemap plugin wants.
type flatTreeRow struct {
	Region  string `json:"region"`
	Country string `json:"country"`
	Count   int    `json:"count"`
}

func flattenTree(nodes []models.TreeNode) []flatTreeRow {
	var rows []flatTreeRow
	for _, node := range nodes {
		for _, c := range node.Countries {
			rows = append(rows, flatTreeRow{Region: node.Region, Country: c.Label, Count: c.Count})
		}
	}
	return rows
}

