package routing

import (
	"sort"

	"railplan.interrail.org/internal/models"
)

// Params configures one itinerary search.
type Params struct {
	StartStation string
	EndStation   string
	Registry     models.TrainRegistry

	// MaxTransfers bounds the search's transfer counter, which increments
	// on every transfer edge and on every travel edge that changes trains.
	MaxTransfers int

	// AllowSameStationTransfers permits taking a transfer edge immediately
	// after another transfer edge at the same station. Off by default:
	// chaining waits at one platform just stretches an itinerary the
	// single transfer edge already covers.
	AllowSameStationTransfers bool
}

// Stats counts what the search discarded along the way.
type Stats struct {
	RawPaths                    int
	SkippedSameStationTransfers int
	DirectionalityRejected      int
}

// traceEdge is one traversed edge in a search branch, endpoints as node
// indexes.
type traceEdge struct {
	from     int
	to       int
	kind     string
	duration int
}

type searcher struct {
	idx     *Index
	params  Params
	onPath  []bool
	path    []int
	trace   []traceEdge
	trains  []string
	results []models.Itinerary
	stats   Stats
}

// FindItineraries enumerates every cycle-free, transfer-bounded itinerary
// between the two stations. Every node at the start station is an
// independent search root; the root's scheduled time is that branch's
// nominal departure. Results come back sorted by (total minutes, departure
// time) with 1-based ids assigned in that order.
//
// An unknown start station yields an empty list, not an error.
func FindItineraries(idx *Index, params Params) ([]models.Itinerary, Stats) {
	s := &searcher{
		idx:    idx,
		params: params,
		onPath: make([]bool, idx.NodeCount()),
	}

	for _, root := range idx.StartNodes(params.StartStation) {
		node := idx.Node(root)
		startTime := models.ParseClock(node.Time)

		s.onPath[root] = true
		s.path = append(s.path, root)
		s.trains = append(s.trains, node.TrainID)

		s.walk(root, startTime, 0, startTime)

		s.trains = s.trains[:0]
		s.path = s.path[:0]
		s.onPath[root] = false
	}

	sort.SliceStable(s.results, func(i, j int) bool {
		a, b := s.results[i], s.results[j]
		if a.TotalMinutes != b.TotalMinutes {
			return a.TotalMinutes < b.TotalMinutes
		}
		return a.DepartureTime < b.DepartureTime
	})
	for i := range s.results {
		s.results[i].ID = i + 1
	}

	return s.results, s.stats
}

// walk is the depth-first expansion. The clock strictly advances on every
// edge, so the on-path guard is a safety net for termination rather than
// the thing that bounds the search; MaxTransfers is what keeps the
// branching in check.
func (s *searcher) walk(current, clock, transfers, startTime int) {
	node := s.idx.Node(current)

	// The trivial "already there" branch is excluded: a hit needs at
	// least one traversed edge.
	if node.Station == s.params.EndStation && len(s.trace) > 0 {
		s.record(clock, transfers, startTime)
		return
	}

	for _, edge := range s.idx.adjacency[current] {
		if s.onPath[edge.to] {
			continue
		}
		if edge.duration <= 0 {
			continue
		}

		if edge.kind == models.EdgeTransfer && !s.params.AllowSameStationTransfers {
			if last := s.lastTraceEdge(); last != nil && last.kind == models.EdgeTransfer &&
				s.idx.Node(last.from).Station == node.Station {
				s.stats.SkippedSameStationTransfers++
				continue
			}
		}

		target := s.idx.Node(edge.to)
		nextTransfers := transfers
		if edge.kind == models.EdgeTransfer || target.TrainID != node.TrainID {
			nextTransfers++
		}
		if nextTransfers > s.params.MaxTransfers {
			continue
		}

		appendedTrain := false
		if target.TrainID != s.trains[len(s.trains)-1] {
			s.trains = append(s.trains, target.TrainID)
			appendedTrain = true
		}
		s.onPath[edge.to] = true
		s.path = append(s.path, edge.to)
		s.trace = append(s.trace, traceEdge{from: current, to: edge.to, kind: edge.kind, duration: edge.duration})

		s.walk(edge.to, clock+edge.duration, nextTransfers, startTime)

		s.trace = s.trace[:len(s.trace)-1]
		s.path = s.path[:len(s.path)-1]
		s.onPath[edge.to] = false
		if appendedTrain {
			s.trains = s.trains[:len(s.trains)-1]
		}
	}
}

func (s *searcher) lastTraceEdge() *traceEdge {
	if len(s.trace) == 0 {
		return nil
	}
	return &s.trace[len(s.trace)-1]
}

// record emits the current branch as an itinerary, unless adjacent trains
// in its sequence ride a shared line in opposite directions.
func (s *searcher) record(clock, transfers, startTime int) {
	s.stats.RawPaths++

	if transfers > 0 && directionConflict(s.trains, s.params.Registry) {
		s.stats.DirectionalityRejected++
		return
	}

	s.results = append(s.results, summarize(s.idx, s.trace, s.trains, startTime, clock, transfers, s.params.Registry))
}

// directionConflict reports whether any adjacent pair of trains has known
// direction vectors with opposite nonzero components on a shared line
// index. Vectors of different lengths are compared over the shorter one;
// anything beyond either vector is unknown and never excludes.
func directionConflict(trains []string, registry models.TrainRegistry) bool {
	for i := 0; i+1 < len(trains); i++ {
		a := registry.Directionality(trains[i])
		b := registry.Directionality(trains[i+1])
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		shared := len(a)
		if len(b) < shared {
			shared = len(b)
		}
		for k := 0; k < shared; k++ {
			if a[k]*b[k] < 0 {
				return true
			}
		}
	}
	return false
}
