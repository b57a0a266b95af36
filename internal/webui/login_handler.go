package webui

import (
	"net/http"
)

type loginView struct {
	Title string
	Error string
}

func (ui *WebUI) loginFormHandler(w http.ResponseWriter, r *http.Request) {
	// Already logged in with a valid token: straight to the dashboard.
	if _, err := ui.Sessions.RequestUser(r); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	ui.renderLogin(w, "")
}

func (ui *WebUI) loginSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ui.renderLogin(w, "could not read the submitted form")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !ui.Sessions.Authenticate(username, password) {
		ui.Logger.Warn("rejected login attempt", "username", username)
		w.WriteHeader(http.StatusUnauthorized)
		ui.renderLogin(w, "invalid username or password")
		return
	}

	token, err := ui.Sessions.IssueToken(username)
	if err != nil {
		ui.Logger.Error("failed to issue session token", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	ui.Sessions.SetSessionCookie(w, token)
	ui.Logger.Info("user logged in", "username", username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ui *WebUI) logoutHandler(w http.ResponseWriter, r *http.Request) {
	ui.Sessions.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (ui *WebUI) renderLogin(w http.ResponseWriter, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	view := loginView{Title: "Pharmaceutical Molecule Dashboard", Error: errMsg}
	if err := templates.ExecuteTemplate(w, "login.html", view); err != nil {
		ui.Logger.Error("failed to render login page", "error", err)
	}
}
