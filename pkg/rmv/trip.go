package rmv

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
)

// PlanTrip fetches an itinerary between two resolved stops from the trip
// service and returns its raw leg list. departureTime is passed through
// verbatim in the service's native HH:MM:SS format; when empty the service
// plans from "now". Only the first itinerary of the response is used, no
// ranking between alternatives happens here.
func (c *Client) PlanTrip(ctx context.Context, origin ResolvedStop, destination ResolvedStop, departureTime string) ([]Leg, error) {
	params := url.Values{}
	params.Set("originExtId", origin.ID)
	params.Set("destExtId", destination.ID)

	if departureTime != "" {
		params.Set("time", departureTime)
	}

	var response tripResponse
	if err := c.get(ctx, "trip", params, &response); err != nil {
		log.Error().Err(err).
			Str("origin", origin.Name).
			Str("destination", destination.Name).
			Msg("Failed to query trip")
		return nil, fmt.Errorf("trip from %q to %q: %w", origin.Name, destination.Name, err)
	}

	if len(response.Trip) == 0 || response.Trip[0].LegList == nil || len(response.Trip[0].LegList.Leg) == 0 {
		log.Error().
			Str("origin", origin.Name).
			Str("destination", destination.Name).
			Msg("Trip service returned no itinerary")
		return nil, ErrNoItinerary
	}

	return response.Trip[0].LegList.Leg, nil
}
