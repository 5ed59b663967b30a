package routing

import "railplan.interrail.org/internal/models"

// summarize replays an edge trace into a reportable itinerary. The clock
// starts at startTime and advances edge by edge; every transfer edge emits
// one detail record with the clock readings on either side of the wait.
// The caller-supplied endTime is authoritative if the replay disagrees
// with it, which can happen when upstream rounding nudged a node time.
func summarize(idx *Index, trace []traceEdge, trains []string, startTime, endTime, transferCount int, registry models.TrainRegistry) models.Itinerary {
	clock := startTime
	details := make([]models.TransferDetail, 0)

	for _, edge := range trace {
		before := clock
		clock += edge.duration
		if edge.kind == models.EdgeTransfer {
			details = append(details, models.TransferDetail{
				Station:       idx.Node(edge.from).Station,
				ArrivalTime:   models.FormatClock(before),
				DepartureTime: models.FormatClock(clock),
				WaitMinutes:   edge.duration,
			})
		}
	}

	if clock != endTime {
		clock = endTime
	}

	totalMinutes := clock - startTime
	if totalMinutes < 0 {
		totalMinutes += models.MinutesPerDay
	}

	sequence := make([]string, len(trains))
	copy(sequence, trains)

	isFast := false
	for _, trainID := range sequence {
		if registry.IsFast(trainID) {
			isFast = true
			break
		}
	}

	kind := models.TypeDirect
	if len(details) > 0 {
		kind = models.TypeTransfer
	}

	return models.Itinerary{
		Type:            kind,
		TrainSequence:   sequence,
		TransferDetails: details,
		DepartureTime:   models.FormatClock(startTime),
		ArrivalTime:     models.FormatClock(clock),
		TotalTime:       models.FormatDuration(totalMinutes),
		TotalMinutes:    totalMinutes,
		IsFast:          isFast,
		TransferCount:   transferCount,
	}
}
