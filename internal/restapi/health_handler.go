package restapi

import (
	"net/http"

	"railplan.interrail.org/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !api.DataLoaded() {
		status = "unhealthy"
	}

	api.sendJSON(w, r, http.StatusOK, models.HealthResponse{
		Status:     status,
		DataLoaded: api.DataLoaded(),
	})
}
