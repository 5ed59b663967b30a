package restapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"railplan.interrail.org/internal/logging"
	"railplan.interrail.org/internal/models"
	"railplan.interrail.org/internal/routing"
	"railplan.interrail.org/internal/utils"
)

// pathRequest is the POST /path body. MaxTransfers and WindowMinutes are
// pointers so an absent field falls back to the configured default while
// an explicit zero is honored.
type pathRequest struct {
	StartStation              string `json:"start_station"`
	EndStation                string `json:"end_station"`
	MaxTransfers              *int   `json:"max_transfers"`
	WindowMinutes             *int   `json:"window_minutes"`
	AllowSameStationTransfers bool   `json:"allow_same_station_transfers"`
}

func (api *RestAPI) pathHandler(w http.ResponseWriter, r *http.Request) {
	if !api.DataLoaded() {
		api.serviceUnavailableResponse(w, r, "schedule data not loaded")
		return
	}

	defer logging.SafeCloseWithLogging(r.Body, api.Logger, "close request body")

	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "request body must be JSON")
		return
	}

	if req.StartStation == "" || req.EndStation == "" {
		api.badRequestResponse(w, r, `missing "start_station" or "end_station"`)
		return
	}
	if err := utils.ValidateStationName(req.StartStation); err != nil {
		api.badRequestResponse(w, r, fmt.Sprintf("invalid start station: %s", err))
		return
	}
	if err := utils.ValidateStationName(req.EndStation); err != nil {
		api.badRequestResponse(w, r, fmt.Sprintf("invalid end station: %s", err))
		return
	}
	if req.StartStation == req.EndStation {
		api.badRequestResponse(w, r, "start and end station must differ")
		return
	}

	maxTransfers := api.Config.MaxTransfers
	if req.MaxTransfers != nil {
		maxTransfers = *req.MaxTransfers
	}
	if maxTransfers < 0 || maxTransfers > 2 {
		api.badRequestResponse(w, r, "max_transfers must be between 0 and 2")
		return
	}

	windowMinutes := api.Config.WindowMinutes
	if req.WindowMinutes != nil {
		windowMinutes = *req.WindowMinutes
	}

	if !api.Schedule.HasStation(req.StartStation) {
		api.notFoundResponse(w, r, fmt.Sprintf("start station %q not found", req.StartStation))
		return
	}
	if !api.Schedule.HasStation(req.EndStation) {
		api.notFoundResponse(w, r, fmt.Sprintf("end station %q not found", req.EndStation))
		return
	}

	started := time.Now()
	rawPaths, stats := routing.FindItineraries(api.Schedule.Index(), routing.Params{
		StartStation:              req.StartStation,
		EndStation:                req.EndStation,
		Registry:                  api.Schedule.Registry(),
		MaxTransfers:              maxTransfers,
		AllowSameStationTransfers: req.AllowSameStationTransfers,
	})

	logging.LogOperation(logging.FromContext(r.Context()), "itinerary_search",
		slog.String("start", req.StartStation),
		slog.String("end", req.EndStation),
		slog.Int("max_transfers", maxTransfers),
		slog.Int("raw_paths", len(rawPaths)),
		slog.Duration("duration", time.Since(started)),
	)

	response := models.PathResponse{
		StartStation: req.StartStation,
		EndStation:   req.EndStation,
		Paths:        []models.Itinerary{},
		Summary: models.SearchSummary{
			WindowMinutes:               windowMinutes,
			SkippedSameStationTransfers: stats.SkippedSameStationTransfers,
			DirectionalityRejected:      stats.DirectionalityRejected,
		},
	}

	if len(rawPaths) == 0 {
		response.Message = "no feasible paths found"
		api.sendJSON(w, r, http.StatusOK, response)
		return
	}

	fastest, _ := routing.FastestMinutes(rawPaths)
	filtered := routing.WindowByFastest(rawPaths, windowMinutes)
	merged := routing.MergeItineraries(filtered)
	for i := range merged {
		merged[i].ID = i + 1
	}

	response.Paths = merged
	response.Summary.TotalPaths = len(rawPaths)
	response.Summary.FastestMinutes = &fastest
	response.Summary.FilteredPaths = len(filtered)
	response.Summary.MergedPaths = len(merged)

	api.sendJSON(w, r, http.StatusOK, response)
}
