package routing

import "railplan.interrail.org/internal/models"

// DefaultWindowMinutes is how far behind the fastest itinerary a result
// may lag and still be worth showing.
const DefaultWindowMinutes = 120

// WindowByFastest keeps itineraries within windowMinutes of the fastest
// one. Negative windows clamp to zero, keeping only the fastest band.
// Input order is preserved.
func WindowByFastest(itineraries []models.Itinerary, windowMinutes int) []models.Itinerary {
	if len(itineraries) == 0 {
		return itineraries
	}
	if windowMinutes < 0 {
		windowMinutes = 0
	}

	fastest := itineraries[0].TotalMinutes
	for _, it := range itineraries[1:] {
		if it.TotalMinutes < fastest {
			fastest = it.TotalMinutes
		}
	}

	cutoff := fastest + windowMinutes
	kept := make([]models.Itinerary, 0, len(itineraries))
	for _, it := range itineraries {
		if it.TotalMinutes <= cutoff {
			kept = append(kept, it)
		}
	}
	return kept
}

// FastestMinutes returns the smallest total duration among the
// itineraries, or false when the list is empty.
func FastestMinutes(itineraries []models.Itinerary) (int, bool) {
	if len(itineraries) == 0 {
		return 0, false
	}
	fastest := itineraries[0].TotalMinutes
	for _, it := range itineraries[1:] {
		if it.TotalMinutes < fastest {
			fastest = it.TotalMinutes
		}
	}
	return fastest, true
}
