package journey

import (
	"errors"
	"strings"

	"github.com/abfahrtbot/abfahrtbot/pkg/rmv"
	"github.com/rs/zerolog/log"
)

// ErrIncompleteLeg is returned when a raw leg lacks a required field
var ErrIncompleteLeg = errors.New("incomplete leg in itinerary")

// Normalize converts the raw leg list of an itinerary into an ordered Stop
// sequence. A leg with the raw type "WALK" becomes a walking segment, anything
// else a transit ride carrying the product category code. Validation is
// all-or-nothing: one leg missing a station name or time fails the whole
// itinerary, a partial route must never reach speech output.
func Normalize(legs []rmv.Leg) (Itinerary, error) {
	var itinerary Itinerary

	for index, leg := range legs {
		if leg.Origin == nil || leg.Destination == nil ||
			leg.Origin.Name == "" || leg.Origin.Time == "" ||
			leg.Destination.Name == "" || leg.Destination.Time == "" {
			log.Error().Int("leg", index).Msg("Itinerary leg is missing a required field")
			return nil, ErrIncompleteLeg
		}

		stop := Stop{
			DepartureTime: TruncateTime(leg.Origin.Time),
			ArrivalTime:   TruncateTime(leg.Destination.Time),

			OriginStationName:      leg.Origin.Name,
			DestinationStationName: leg.Destination.Name,

			Direction:  leg.Direction,
			TrainLabel: strings.TrimSpace(leg.Name),
		}

		if leg.Type == "WALK" {
			stop.Category = CategoryWalk
			stop.Direction = ""
			stop.TrainLabel = ""

			if leg.Dist != nil {
				stop.DistanceMetres = *leg.Dist
			}
		} else if leg.Product != nil {
			stop.Category = strings.TrimSpace(leg.Product.CatOutL)
		}

		itinerary = append(itinerary, stop)
	}

	return itinerary, nil
}
