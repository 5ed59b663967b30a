package restapi

import (
	"encoding/json"
	"net/http"

	"railplan.interrail.org/internal/models"
)

func (api *RestAPI) sendJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	setJSONResponseType(&w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}

func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendJSON(w, r, http.StatusBadRequest, models.ErrorResponse{Error: message})
}

func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendJSON(w, r, http.StatusNotFound, models.ErrorResponse{Error: message})
}

func (api *RestAPI) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendJSON(w, r, http.StatusServiceUnavailable, models.ErrorResponse{Error: message})
}
