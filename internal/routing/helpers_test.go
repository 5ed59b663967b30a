package routing

import "railplan.interrail.org/internal/models"

func node(station, train, clock string) models.StationEvent {
	return models.StationEvent{Station: station, TrainID: train, Time: clock}
}

func travel(from, to models.StationEvent, minutes int) models.ScheduleEdge {
	return models.ScheduleEdge{From: from, To: to, Weight: minutes}
}

func transfer(from, to models.StationEvent, wait int) models.ScheduleEdge {
	return models.ScheduleEdge{From: from, To: to, Weight: wait, Kind: models.EdgeTransfer}
}

// interchangeGraph is the canonical two-train journey: T1 runs A->B, T2
// runs B->C, with a ten-minute change at B.
func interchangeGraph() ([]models.StationEvent, []models.ScheduleEdge, models.TrainRegistry) {
	nodes := []models.StationEvent{
		node("A", "T1", "08:00"),
		node("B", "T1", "08:30"),
		node("B", "T2", "08:40"),
		node("C", "T2", "09:10"),
	}
	edges := []models.ScheduleEdge{
		travel(nodes[0], nodes[1], 30),
		transfer(nodes[1], nodes[2], 10),
		travel(nodes[2], nodes[3], 30),
	}
	registry := models.TrainRegistry{
		"T1": {ID: "T1", IsFast: false},
		"T2": {ID: "T2", IsFast: true},
	}
	return nodes, edges, registry
}
