// Package webui serves the dashboard itself: a server-rendered page whose
// sidebar filter state lives entirely in the query string. Every request
// recomputes its view from the full in-memory dataset; chart data is
// marshaled to JSON and drawn client-side with Chart.js.
package webui

import (
	"net/http"

	"pharmadash.molview.org/internal/app"
	"pharmadash.molview.org/internal/auth"
)

type WebUI struct {
	*app.Application
	Sessions *auth.Sessions
}

// NewWebUI creates the web UI for the local variant, with no login gate.
func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}

// NewProtectedWebUI creates the web UI for the hosted variant. Dashboard
// routes require a valid session token; failures redirect to /login.
func NewProtectedWebUI(application *app.Application, sessions *auth.Sessions) *WebUI {
	return &WebUI{Application: application, Sessions: sessions}
}

func (ui *WebUI) SetRoutes(mux *http.ServeMux) {
	dashboard := http.Handler(http.HandlerFunc(ui.dashboardHandler))
	export := http.Handler(http.HandlerFunc(ui.exportHandler))
	debug := http.Handler(http.HandlerFunc(ui.debugIndexHandler))

	if ui.Sessions != nil {
		dashboard = ui.Sessions.RequireWeb(dashboard)
		export = ui.Sessions.RequireWeb(export)
		debug = ui.Sessions.RequireWeb(debug)
		mux.HandleFunc("GET /login", ui.loginFormHandler)
		mux.HandleFunc("POST /login", ui.loginSubmitHandler)
		mux.HandleFunc("GET /logout", ui.logoutHandler)
	}

	mux.Handle("GET /{$}", dashboard)
	mux.Handle("GET /export.xlsx", export)
	mux.Handle("GET /debug/", debug)
}
