package routing

import (
	"sort"

	"railplan.interrail.org/internal/models"
)

// adjacentEdge is one outgoing edge in the built index, with the node
// endpoints resolved to indexes and the duration already validated.
type adjacentEdge struct {
	to       int
	kind     string
	duration int
}

// Index is the adjacency form of a schedule graph, built once from the
// immutable node and edge lists and safe for concurrent read-only use
// across queries.
type Index struct {
	nodes     []models.StationEvent
	lookup    map[models.StationEvent]int
	adjacency [][]adjacentEdge
	edgeCount int
}

// BuildIndex constructs the adjacency index. Node identity is the full
// (station, train, time) triple; duplicate triples collapse onto the first
// occurrence. Edges whose endpoints are not in the node table, or whose
// resolved duration is not positive, are dropped without error: malformed
// upstream data degrades to fewer edges.
func BuildIndex(nodes []models.StationEvent, edges []models.ScheduleEdge) *Index {
	idx := &Index{
		nodes:     nodes,
		lookup:    make(map[models.StationEvent]int, len(nodes)),
		adjacency: make([][]adjacentEdge, len(nodes)),
	}

	for i, node := range nodes {
		if _, seen := idx.lookup[node]; !seen {
			idx.lookup[node] = i
		}
	}

	for _, edge := range edges {
		from, ok := idx.lookup[edge.From]
		if !ok {
			continue
		}
		to, ok := idx.lookup[edge.To]
		if !ok {
			continue
		}
		duration := edge.Duration()
		if duration <= 0 {
			continue
		}
		idx.adjacency[from] = append(idx.adjacency[from], adjacentEdge{
			to:       to,
			kind:     edge.EdgeKind(),
			duration: duration,
		})
		idx.edgeCount++
	}

	return idx
}

// Node returns the station event at the given index.
func (idx *Index) Node(i int) models.StationEvent {
	return idx.nodes[i]
}

// NodeCount returns the number of nodes in the index, duplicates included.
func (idx *Index) NodeCount() int {
	return len(idx.nodes)
}

// EdgeCount returns the number of edges that survived validation.
func (idx *Index) EdgeCount() int {
	return idx.edgeCount
}

// StartNodes returns the indexes of every node at the given station. Each
// is an independent search root: boarding whichever train is scheduled to
// depart that station.
func (idx *Index) StartNodes(station string) []int {
	var roots []int
	for i, node := range idx.nodes {
		if node.Station == station {
			roots = append(roots, i)
		}
	}
	return roots
}

// Stations returns the sorted set of distinct station names in the graph.
func (idx *Index) Stations() []string {
	seen := make(map[string]struct{})
	for _, node := range idx.nodes {
		if node.Station != "" {
			seen[node.Station] = struct{}{}
		}
	}
	stations := make([]string, 0, len(seen))
	for name := range seen {
		stations = append(stations, name)
	}
	sort.Strings(stations)
	return stations
}

// HasStation reports whether any node in the graph belongs to the station.
func (idx *Index) HasStation(station string) bool {
	for _, node := range idx.nodes {
		if node.Station == station {
			return true
		}
	}
	return false
}
