package models

// HealthResponse reports server liveness and whether the schedule
// artifacts finished loading.
type HealthResponse struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"data_loaded"`
}

// StationsResponse lists every station known to the schedule graph.
type StationsResponse struct {
	Stations []string `json:"stations"`
	Count    int      `json:"count"`
}

// SearchSummary describes how the raw enumeration was narrowed down to the
// itineraries actually returned. FastestMinutes is nil when no itinerary
// exists at all.
type SearchSummary struct {
	TotalPaths                  int  `json:"total_paths"`
	FastestMinutes              *int `json:"fastest_minutes"`
	WindowMinutes               int  `json:"window_minutes"`
	FilteredPaths               int  `json:"filtered_paths"`
	MergedPaths                 int  `json:"merged_paths"`
	SkippedSameStationTransfers int  `json:"skipped_same_station_transfers"`
	DirectionalityRejected      int  `json:"directionality_rejected"`
}

// PathResponse is the body of a successful itinerary search.
type PathResponse struct {
	StartStation string        `json:"start_station"`
	EndStation   string        `json:"end_station"`
	Paths        []Itinerary   `json:"paths"`
	Summary      SearchSummary `json:"summary"`
	Message      string        `json:"message,omitempty"`
}

// ErrorResponse is the body of any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
