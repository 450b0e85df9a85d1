package speech

import (
	"fmt"
	"strings"

	"github.com/abfahrtbot/abfahrtbot/pkg/journey"
)

// Apology is spoken whenever a query fails anywhere in the pipeline. Failures
// are otherwise only visible in the logs.
const Apology = "Verbindung konnte nicht abgefragt werden"

// Synthesize renders an itinerary as a single spoken German sentence, one
// clause per leg plus a final arrival clause. With shortForm enabled the
// transfer clauses are dropped: only walking segments, the first transit leg
// and the arrival time are announced. An empty itinerary yields "".
func Synthesize(itinerary journey.Itinerary, shortForm bool) string {
	if len(itinerary) == 0 {
		return ""
	}

	var response strings.Builder

	firstTransit := true

	for _, stop := range itinerary {
		if stop.IsWalk() {
			fmt.Fprintf(&response, "%d Meter laufen bis %s. ", stop.DistanceMetres, stop.DestinationStationName)
			continue
		}

		if firstTransit {
			firstTransit = false
			fmt.Fprintf(&response, "%s Richtung %s um %s Uhr. ", trainTitle(stop.Category, stop.TrainLabel), stop.Direction, stop.DepartureTime)
		} else {
			fmt.Fprintf(&response, "Umsteigen an %s zu %s Richtung %s um %s Uhr. ", stop.OriginStationName, trainTitle(stop.Category, stop.TrainLabel), stop.Direction, stop.DepartureTime)
		}

		if shortForm {
			break
		}
	}

	fmt.Fprintf(&response, "Ankunft um %s Uhr.", itinerary[len(itinerary)-1].ArrivalTime)

	return response.String()
}

// trainTitle builds the spoken vehicle name. Urban and suburban rail lines are
// announced with their category ("S-Bahn S5"), everything else by label alone
// since labels like "Bus 34" or "RE 4510" already carry the vehicle class.
func trainTitle(category string, trainLabel string) string {
	if category == "S-Bahn" || category == "U-Bahn" {
		return fmt.Sprintf("%s %s", category, trainLabel)
	}

	return trainLabel
}
