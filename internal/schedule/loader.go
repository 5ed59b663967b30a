package schedule

import (
	"encoding/json"
	"fmt"
	"os"

	"railplan.interrail.org/internal/models"
)

// loadGraph reads the schedule-graph artifact: a JSON object with a
// "nodes" array of (station, train, time) triples and an "edges" array of
// travel and transfer edges.
func loadGraph(path string) (models.ScheduleGraph, error) {
	var graph models.ScheduleGraph

	data, err := os.ReadFile(path)
	if err != nil {
		return graph, fmt.Errorf("error reading schedule graph: %w", err)
	}
	if err := json.Unmarshal(data, &graph); err != nil {
		return graph, fmt.Errorf("error parsing schedule graph: %w", err)
	}
	return graph, nil
}

// registryFile is the on-disk shape of the train registry artifact.
type registryFile struct {
	Trains []models.Train `json:"train"`
}

// loadRegistry reads the train registry: per-train fast/slow flags and,
// when the direction-inference step ran, per-line directionality vectors.
func loadRegistry(path string) (models.TrainRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading train registry: %w", err)
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing train registry: %w", err)
	}

	registry := make(models.TrainRegistry, len(file.Trains))
	for _, train := range file.Trains {
		registry[train.ID] = train
	}
	return registry, nil
}
