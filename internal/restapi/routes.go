package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Router builds the API handler tree with rate limiting, request logging and
// gzip compression applied around every route.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/api/summary.json", validateAPIKey(api, api.summaryHandler))
	router.Handler(http.MethodGet, "/api/filters.json", validateAPIKey(api, api.filtersHandler))
	router.Handler(http.MethodGet, "/api/countries.json", validateAPIKey(api, api.countriesHandler))
	router.Handler(http.MethodGet, "/api/molecules.json", validateAPIKey(api, api.moleculesHandler))
	router.Handler(http.MethodGet, "/api/corporations.json", validateAPIKey(api, api.corporationsHandler))
	router.Handler(http.MethodGet, "/api/records.json", validateAPIKey(api, api.recordsHandler))
	router.Handler(http.MethodGet, "/api/record/:id", validateAPIKey(api, api.recordHandler))

	handler := applyGzipMiddleware(router)
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return api.rateLimiter(handler)
}
