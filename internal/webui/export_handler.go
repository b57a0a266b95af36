package webui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"pharmadash.molview.org/internal/observability"
	"pharmadash.molview.org/internal/utils"
)

// exportHandler streams the currently filtered rows as a one-sheet workbook.
// The filter parameters mirror the dashboard's, so the export always matches
// what the table shows.
func (ui *WebUI) exportHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := ui.Dataset.Options(q["region"])
	filter := utils.FilterFromQuery(q, opts)
	records := ui.Dataset.Apply(filter)
	columns := ui.Dataset.Columns()

	f := excelize.NewFile()
	const sheet = "Data"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = string(c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		ui.exportError(w, err)
		return
	}

	for i, rec := range records {
		row := make([]interface{}, len(columns))
		for j, c := range columns {
			row[j] = rec.Field(c)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			ui.exportError(w, err)
			return
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			ui.exportError(w, err)
			return
		}
	}

	filename := fmt.Sprintf("molecules_%s_%s.xlsx",
		time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		ui.Logger.Error("failed to stream export", "error", err)
		return
	}
	observability.ExportsTotal.Inc()
	ui.Logger.Info("export downloaded", "rows", len(records), "filename", filename)
}

func (ui *WebUI) exportError(w http.ResponseWriter, err error) {
	ui.Logger.Error("failed to build export workbook", "error", err)
	http.Error(w, "failed to build export", http.StatusInternalServerError)
}
