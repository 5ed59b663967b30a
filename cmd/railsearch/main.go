// Command railsearch runs one itinerary search against the schedule
// artifacts and writes the merged results as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"log/slog"

	"railplan.interrail.org/internal/logging"
	"railplan.interrail.org/internal/models"
	"railplan.interrail.org/internal/routing"
	"railplan.interrail.org/internal/schedule"
)

func main() {
	var (
		start            string
		end              string
		graphPath        string
		registryPath     string
		maxTransfers     int
		windowMinutes    int
		allowSameStation bool
		output           string
	)

	flag.StringVar(&start, "start", "", "Start station name")
	flag.StringVar(&end, "end", "", "End station name")
	flag.StringVar(&graphPath, "graph", "fast_graph.json", "Path to the schedule graph JSON artifact")
	flag.StringVar(&registryPath, "registry", "schedule_with_directionality.json", "Path to the train registry JSON artifact")
	flag.IntVar(&maxTransfers, "max-transfers", 2, "Maximum number of transfers allowed (0-2)")
	flag.IntVar(&windowMinutes, "window", routing.DefaultWindowMinutes, "Duration window in minutes around the fastest itinerary")
	flag.BoolVar(&allowSameStation, "allow-same-station", false, "Allow consecutive transfers at the same station")
	flag.StringVar(&output, "output", "paths.json", "Output JSON file")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelInfo)

	if start == "" || end == "" {
		logger.Error("both -start and -end are required")
		os.Exit(1)
	}
	if start == end {
		logger.Error("start and end station must differ")
		os.Exit(1)
	}
	if maxTransfers < 0 || maxTransfers > 2 {
		logger.Error("max-transfers must be between 0 and 2")
		os.Exit(1)
	}

	manager, err := schedule.InitManager(graphPath, registryPath)
	if err != nil {
		logger.Error("failed to load schedule data", "error", err)
		os.Exit(1)
	}
	manager.LogStatistics(logger)

	if !manager.HasStation(start) {
		logger.Error("start station not found", "station", start)
		os.Exit(1)
	}
	if !manager.HasStation(end) {
		logger.Error("end station not found", "station", end)
		os.Exit(1)
	}

	rawPaths, stats := routing.FindItineraries(manager.Index(), routing.Params{
		StartStation:              start,
		EndStation:                end,
		Registry:                  manager.Registry(),
		MaxTransfers:              maxTransfers,
		AllowSameStationTransfers: allowSameStation,
	})

	filtered := routing.WindowByFastest(rawPaths, windowMinutes)
	merged := routing.MergeItineraries(filtered)
	for i := range merged {
		merged[i].ID = i + 1
	}

	if err := writeResults(output, merged, logger); err != nil {
		logger.Error("failed to write results", "error", err, "output", output)
		os.Exit(1)
	}

	logSummary(logger, merged, rawPaths, stats, output)
}

func writeResults(path string, itineraries []models.Itinerary, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "write search results")

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(itineraries)
}

// logSummary mirrors what operators want after a batch run: totals, the
// direct fast/slow split, and a transfer-count breakdown.
func logSummary(logger *slog.Logger, merged, raw []models.Itinerary, stats routing.Stats, output string) {
	breakdown := make(map[int]int)
	directFast := 0
	directSlow := 0
	for _, it := range merged {
		count := it.TransferCount
		if count < 0 {
			count = 0
		}
		if count > 2 {
			count = 2
		}
		breakdown[count]++

		if it.Type == models.TypeDirect {
			if it.IsFast {
				directFast++
			} else {
				directSlow++
			}
		}
	}

	logger.Info("search complete",
		slog.Int("raw_paths", len(raw)),
		slog.Int("merged_paths", len(merged)),
		slog.Int("direct", breakdown[0]),
		slog.Int("one_transfer", breakdown[1]),
		slog.Int("two_transfer", breakdown[2]),
		slog.Int("direct_fast", directFast),
		slog.Int("direct_slow", directSlow),
		slog.Int("skipped_same_station_transfers", stats.SkippedSameStationTransfers),
		slog.Int("directionality_rejected", stats.DirectionalityRejected),
		slog.String("output", output),
	)
}
