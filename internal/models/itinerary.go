package models

// Itinerary classification.
const (
	TypeDirect   = "Direct"
	TypeTransfer = "Transfer"
)

// TransferDetail describes one train change within an itinerary. Equality
// of the whole value (station, both clock readings, wait) is what the
// merger uses to deduplicate transfer alternatives.
type TransferDetail struct {
	Station       string `json:"station"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	WaitMinutes   int    `json:"wait_minutes"`
}

// TransferOptions lists the interchangeable transfer choices for one
// transfer step of a merged itinerary. Step is 1-based.
type TransferOptions struct {
	Step    int              `json:"step"`
	Options []TransferDetail `json:"options"`
}

// Itinerary is one feasible journey between two stations. TrainSequence is
// the ordered list of trains ridden with consecutive repeats collapsed.
//
// TransferCount is the search engine's transfer counter: it increments on
// every transfer edge and on every travel edge that changes trains. On the
// graphs the builder produces, every train change rides a transfer edge,
// so it equals len(TransferDetails); on a graph where a travel edge
// changes trains directly the count is the larger of the two.
//
// TransferOptions is populated only on merged itineraries with at least
// one transfer; then TransferDetails holds one representative choice per
// step.
type Itinerary struct {
	Type            string            `json:"type"`
	TrainSequence   []string          `json:"train_sequence"`
	TransferDetails []TransferDetail  `json:"transfer_details"`
	TransferOptions []TransferOptions `json:"transfer_options,omitempty"`
	DepartureTime   string            `json:"departure_time"`
	ArrivalTime     string            `json:"arrival_time"`
	TotalTime       string            `json:"total_time"`
	TotalMinutes    int               `json:"total_minutes"`
	IsFast          bool              `json:"is_fast"`
	TransferCount   int               `json:"transfer_count"`
	ID              int               `json:"id"`
}
