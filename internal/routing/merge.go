package routing

import (
	"strings"

	"railplan.interrail.org/internal/models"
)

// mergeKey identifies itineraries that are operationally the same journey:
// same trains, same classification, same timing. Two itineraries with
// equal keys differ only in which physical station hosted a transfer.
type mergeKey struct {
	trains        string
	kind          string
	transferCount int
	departure     string
	arrival       string
	totalMinutes  int
}

func keyOf(it models.Itinerary) mergeKey {
	return mergeKey{
		trains:        strings.Join(it.TrainSequence, "\x1f"),
		kind:          it.Type,
		transferCount: it.TransferCount,
		departure:     it.DepartureTime,
		arrival:       it.ArrivalTime,
		totalMinutes:  it.TotalMinutes,
	}
}

type mergeEntry struct {
	canonical models.Itinerary
	// options[i] collects the distinct transfer choices seen for step i.
	options [][]models.TransferDetail
}

// MergeItineraries collapses itineraries that share a merge key into one
// entry carrying the transfer alternatives of the whole group. The input
// is expected pre-sorted by (total minutes, departure time); output order
// is the first-seen order of distinct keys and is never re-sorted here.
//
// Direct itineraries pass through unchanged apart from key deduplication.
// Inputs are copied before any modification.
func MergeItineraries(itineraries []models.Itinerary) []models.Itinerary {
	entries := make(map[mergeKey]*mergeEntry)
	var order []mergeKey

	for _, it := range itineraries {
		key := keyOf(it)
		entry, seen := entries[key]
		if !seen {
			entry = &mergeEntry{
				canonical: it,
				options:   make([][]models.TransferDetail, it.TransferCount),
			}
			for i := 0; i < it.TransferCount && i < len(it.TransferDetails); i++ {
				entry.options[i] = []models.TransferDetail{it.TransferDetails[i]}
			}
			entries[key] = entry
			order = append(order, key)
			continue
		}

		for i := 0; i < len(entry.options) && i < len(it.TransferDetails); i++ {
			entry.options[i] = appendDistinct(entry.options[i], it.TransferDetails[i])
		}
	}

	merged := make([]models.Itinerary, 0, len(order))
	for _, key := range order {
		entry := entries[key]
		out := entry.canonical

		if out.TransferCount > 0 {
			var steps []models.TransferOptions
			representative := make([]models.TransferDetail, 0, len(entry.options))
			for i, list := range entry.options {
				if len(list) == 0 {
					continue
				}
				steps = append(steps, models.TransferOptions{
					Step:    i + 1,
					Options: append([]models.TransferDetail(nil), list...),
				})
				representative = append(representative, list[0])
			}
			out.TransferOptions = steps
			out.TransferDetails = representative
		}

		merged = append(merged, out)
	}

	return merged
}

// appendDistinct adds the detail only when no structurally equal record
// (same station, arrival, departure, wait) is already in the list.
func appendDistinct(list []models.TransferDetail, detail models.TransferDetail) []models.TransferDetail {
	for _, existing := range list {
		if existing == detail {
			return list
		}
	}
	return append(list, detail)
}
