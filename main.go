package main

import (
	"flag"
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"

	"github.com/travel-utils/travel/common"
	"github.com/travel-utils/travel/geo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// per-trip entry in the report
type Report struct {
	Trip       common.Trip `json:"trip"`
	DistanceKm float64     `json:"distance_km"`
	TimeS      float64     `json:"time_s"`
}

// create directory, write report as JSON and CSV
func save(dir string, reports []Report) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("[main] error creating directory %s", dir)
	}
	common.ToFile(dir+"/report.json", reports)

	w := common.CreateCSVWriter(dir + "/report.csv")
	w.Write([]string{"origin", "destination", "speed_kmh", "distance_km", "time_s"})
	for _, r := range reports {
		w.Write([]string{
			r.Trip.Origin.String(),
			r.Trip.Destination.String(),
			fmt.Sprintf("%0.1f", r.Trip.SpeedKmh),
			fmt.Sprintf("%0.3f", r.DistanceKm),
			fmt.Sprintf("%0.1f", r.TimeS),
		})
	}
	w.Flush()
}

func main() {
	var trips_path = flag.String(
		"trips",
		"trips.json",
		"path to trips (.json) file",
	)
	var speed = flag.Float64(
		"speed",
		0,
		"fallback cruise speed (km/h) for trips without one",
	)
	var dir = flag.String(
		"dir",
		"",
		"directory to save report",
	)
	var verbose = flag.Bool(
		"verbose",
		false,
		"enable verbose logging",
	)
	flag.Parse()

	// set logging level
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	// load trips
	var trips []common.Trip
	common.FromFile(*trips_path, &trips)
	if len(trips) == 0 {
		log.Fatalf("[main] no trips in %s", *trips_path)
	}

	// compute distance and travel time per trip
	reports := make([]Report, len(trips))
	dists := make([]float64, len(trips))
	for i, trip := range trips {
		speed_kmh := trip.SpeedKmh
		if speed_kmh == 0 {
			speed_kmh = *speed
		}

		dist, time, err := geo.TravelTime(trip.Origin, trip.Destination, speed_kmh)
		if err != nil {
			log.Fatalf(
				"[main] trip %d (%v -> %v): %v",
				i,
				trip.Origin,
				trip.Destination,
				err,
			)
		}
		log.Debugf(
			"[main] trip %d: %v -> %v, %0.2f km, %0.0f s",
			i,
			trip.Origin,
			trip.Destination,
			dist,
			time,
		)

		reports[i] = Report{Trip: trip, DistanceKm: dist, TimeS: time}
		dists[i] = dist
	}

	log.Printf(
		"[main] %d trips: mean %0.2f km, min %0.2f km, max %0.2f km",
		len(trips),
		stat.Mean(dists, nil),
		floats.Min(dists),
		floats.Max(dists),
	)

	// write report
	if *dir != "" {
		save(*dir, reports)
	}
}
