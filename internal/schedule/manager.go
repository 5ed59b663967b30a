package schedule

import (
	"log/slog"

	"railplan.interrail.org/internal/models"
	"railplan.interrail.org/internal/routing"
)

// Manager holds one immutable snapshot of the schedule artifacts: the
// time-expanded graph, its adjacency index, and the train registry. It is
// built once at startup and read by every query after that; nothing in it
// mutates post-construction, so concurrent queries share it freely.
type Manager struct {
	graph    models.ScheduleGraph
	registry models.TrainRegistry
	index    *routing.Index
	stations []string
}

// InitManager loads the schedule graph and train registry from their
// artifact files and builds the adjacency index.
func InitManager(graphPath, registryPath string) (*Manager, error) {
	graph, err := loadGraph(graphPath)
	if err != nil {
		return nil, err
	}

	registry, err := loadRegistry(registryPath)
	if err != nil {
		return nil, err
	}

	index := routing.BuildIndex(graph.Nodes, graph.Edges)

	return &Manager{
		graph:    graph,
		registry: registry,
		index:    index,
		stations: index.Stations(),
	}, nil
}

// Index returns the shared read-only adjacency index.
func (manager *Manager) Index() *routing.Index {
	return manager.index
}

// Registry returns the train registry.
func (manager *Manager) Registry() models.TrainRegistry {
	return manager.registry
}

// Stations returns the sorted list of distinct station names.
func (manager *Manager) Stations() []string {
	return manager.stations
}

// HasStation reports whether the station appears in the schedule graph.
func (manager *Manager) HasStation(name string) bool {
	return manager.index.HasStation(name)
}

// LogStatistics writes a summary of the loaded artifacts, mirroring what
// operators check after a deploy: counts of nodes, surviving edges,
// trains, and stations.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Info("schedule data loaded",
		slog.Int("nodes", manager.index.NodeCount()),
		slog.Int("edges", manager.index.EdgeCount()),
		slog.Int("raw_edges", len(manager.graph.Edges)),
		slog.Int("trains", len(manager.registry)),
		slog.Int("stations", len(manager.stations)),
	)
}
