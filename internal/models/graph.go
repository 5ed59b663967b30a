package models

import (
	"encoding/json"
	"fmt"
)

// StationEvent is one scheduled stop: a specific train calling at a specific
// station at a specific wall-clock time. The triple is the node identity in
// the schedule graph; one station name maps to many events.
type StationEvent struct {
	Station string
	TrainID string
	Time    string
}

// The graph builder emits nodes as three-element JSON arrays
// ["station", "train", "HH:MM"], so StationEvent marshals to and from that
// shape rather than an object.
func (e *StationEvent) UnmarshalJSON(data []byte) error {
	var triple []string
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("station event must have 3 elements, got %d", len(triple))
	}
	e.Station = triple[0]
	e.TrainID = triple[1]
	e.Time = triple[2]
	return nil
}

func (e StationEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{e.Station, e.TrainID, e.Time})
}

// Edge kinds in the schedule graph. A travel edge links two consecutive
// stops of the same train; a transfer edge links two different trains'
// stops at the same station with a precomputed feasible wait.
const (
	EdgeTravel   = "travel"
	EdgeTransfer = "transfer"
)

// ScheduleEdge is a raw graph edge as produced by the graph builder. Either
// Weight or SegmentTravelTime carries the duration in minutes; a zero value
// means the field was absent.
type ScheduleEdge struct {
	From              StationEvent `json:"from"`
	To                StationEvent `json:"to"`
	Weight            int          `json:"weight,omitempty"`
	SegmentTravelTime int          `json:"segment_travel_time,omitempty"`
	Kind              string       `json:"type,omitempty"`
}

// Duration resolves the edge duration, preferring weight over
// segment_travel_time. Callers must treat non-positive results as invalid.
func (e ScheduleEdge) Duration() int {
	if e.Weight != 0 {
		return e.Weight
	}
	return e.SegmentTravelTime
}

// EdgeKind returns the edge kind, defaulting to travel when the builder
// omitted the field.
func (e ScheduleEdge) EdgeKind() string {
	if e.Kind == "" {
		return EdgeTravel
	}
	return e.Kind
}

// ScheduleGraph is the on-disk form of the time-expanded schedule graph.
type ScheduleGraph struct {
	Nodes []StationEvent `json:"nodes"`
	Edges []ScheduleEdge `json:"edges"`
}

// Train is one registry entry. Directionality, when present, has one entry
// per known rail line: 0 means the train does not use the line, 1 and -1
// mean it runs the line forward or in reverse. A nil slice means the
// train's direction is unknown.
type Train struct {
	ID             string `json:"id"`
	IsFast         bool   `json:"is_fast"`
	Directionality []int  `json:"directionality,omitempty"`
}

// TrainRegistry maps train ids to their registry entries.
type TrainRegistry map[string]Train

// IsFast reports whether the registry marks the train as a fast service.
// Unknown trains are slow.
func (r TrainRegistry) IsFast(trainID string) bool {
	return r[trainID].IsFast
}

// Directionality returns the train's direction vector, or nil when unknown.
func (r TrainRegistry) Directionality(trainID string) []int {
	return r[trainID].Directionality
}
