package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"pharmadash.molview.org/internal/logging"
	"pharmadash.molview.org/internal/models"
	"pharmadash.molview.org/internal/observability"
)

// headerAliases maps normalized spreadsheet column titles to dataset columns.
// The export this dashboard was built around uses a few awkward titles
// ("RX-OTC - Molecule", "Suma de Molecule Launch Year"), so common variants
// are accepted.
var headerAliases = map[string]models.Column{
	"region":                       models.ColRegion,
	"country":                      models.ColCountry,
	"molecule":                     models.ColMolecule,
	"product":                      models.ColProduct,
	"corporation":                  models.ColCorporation,
	"rx-otc":                       models.ColRxOTC,
	"rx/otc":                       models.ColRxOTC,
	"rx-otc - molecule":            models.ColRxOTC,
	"launch year":                  models.ColLaunchYear,
	"molecule launch year":         models.ColLaunchYear,
	"suma de molecule launch year": models.ColLaunchYear,
	"atc1":                         models.ColATC1,
}

// LoadXLSX reads the dataset from a workbook sheet. An empty sheet name
// selects the workbook's first sheet. Header titles are matched
// case-insensitively; unrecognized columns are ignored.
func LoadXLSX(path, sheet string, logger *slog.Logger) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f, logger, "close_workbook")

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return New(nil, nil), nil
	}

	// Header row: spreadsheet column index -> dataset column.
	fields := make(map[int]models.Column)
	columns := make(map[models.Column]bool)
	for i, title := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(title))
		if col, ok := headerAliases[key]; ok {
			fields[i] = col
			columns[col] = true
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("sheet %q: no recognized columns in header row", sheet)
	}

	records := make([]models.ProductRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec models.ProductRecord
		empty := true
		for i, cell := range row {
			col, ok := fields[i]
			if !ok {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				empty = false
			}
			rec.SetField(col, cell)
		}
		if !empty {
			records = append(records, rec)
		}
	}

	observability.RowsLoaded.Add(float64(len(records)))
	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", path),
		slog.String("sheet", sheet),
		slog.Int("row_count", len(records)))
	return New(records, columns), nil
}
