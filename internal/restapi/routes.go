package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Routes builds the router and wraps it in the middleware chain: request
// logging outermost, then rate limiting, then the handlers.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/health", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/stations", api.stationsHandler)
	router.HandlerFunc(http.MethodPost, "/path", api.pathHandler)

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)

	return handler
}
