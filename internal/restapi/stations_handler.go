package restapi

import (
	"net/http"

	"railplan.interrail.org/internal/models"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	if !api.DataLoaded() {
		api.serviceUnavailableResponse(w, r, "station data not loaded")
		return
	}

	stations := api.Schedule.Stations()
	api.sendJSON(w, r, http.StatusOK, models.StationsResponse{
		Stations: stations,
		Count:    len(stations),
	})
}
