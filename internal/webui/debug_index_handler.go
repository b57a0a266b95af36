package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func (ui *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "templates/debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ui *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "columns":
		data = ui.Dataset.Columns()
		title = "Dataset - Present Columns"
	case "options":
		data = ui.Dataset.Options(nil)
		title = "Dataset - Filter Options"
	case "records":
		records := ui.Dataset.Records()
		if len(records) > 100 {
			records = records[:100]
		}
		data = records
		title = "Dataset - First 100 Records"
	default:
		data = map[string]string{
			"error": "Please use one of the following: columns, options, records.",
		}
		title = "Choose a data type"
	}

	ui.writeDebugData(w, title, data)
}
