package models

import (
	"strconv"
	"strings"
)

// Column identifies one of the known dataset columns. Optional columns may be
// absent from a given source file or table.
type Column string

const (
	ColRegion      Column = "Region"
	ColCountry     Column = "Country"
	ColMolecule    Column = "Molecule"
	ColProduct     Column = "Product"
	ColCorporation Column = "Corporation"
	ColRxOTC       Column = "RX-OTC"
	ColLaunchYear  Column = "Launch Year"
	ColATC1        Column = "ATC1"
)

// AllColumns lists every known column in display order.
var AllColumns = []Column{
	ColRegion,
	ColCountry,
	ColMolecule,
	ColProduct,
	ColCorporation,
	ColRxOTC,
	ColLaunchYear,
	ColATC1,
}

// ProductRecord is a single row of the molecule dataset. Records are
// independent and identified only by their row position; LaunchYear holds the
// raw cell value, which may not be numeric.
type ProductRecord struct {
	Region      string `json:"region"`
	Country     string `json:"country"`
	Molecule    string `json:"molecule"`
	Product     string `json:"product"`
	Corporation string `json:"corporation"`
	RxOTC       string `json:"rxOtc"`
	LaunchYear  string `json:"launchYear"`
	ATC1        string `json:"atc1"`
}

// Field returns the raw value of the given column.
func (r ProductRecord) Field(c Column) string {
	switch c {
	case ColRegion:
		return r.Region
	case ColCountry:
		return r.Country
	case ColMolecule:
		return r.Molecule
	case ColProduct:
		return r.Product
	case ColCorporation:
		return r.Corporation
	case ColRxOTC:
		return r.RxOTC
	case ColLaunchYear:
		return r.LaunchYear
	case ColATC1:
		return r.ATC1
	}
	return ""
}

// SetField stores a raw value into the given column.
func (r *ProductRecord) SetField(c Column, value string) {
	switch c {
	case ColRegion:
		r.Region = value
	case ColCountry:
		r.Country = value
	case ColMolecule:
		r.Molecule = value
	case ColProduct:
		r.Product = value
	case ColCorporation:
		r.Corporation = value
	case ColRxOTC:
		r.RxOTC = value
	case ColLaunchYear:
		r.LaunchYear = value
	case ColATC1:
		r.ATC1 = value
	}
}

// ParseLaunchYear coerces the raw launch year cell to an integer. Spreadsheet
// exports often store years as floats ("2003.0"), so a fractional suffix of
// zero is accepted.
func (r ProductRecord) ParseLaunchYear() (int, bool) {
	raw := strings.TrimSpace(r.LaunchYear)
	if raw == "" {
		return 0, false
	}
	if year, err := strconv.Atoi(raw); err == nil {
		return year, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	year := int(f)
	if f != float64(year) {
		return 0, false
	}
	return year, true
}
