package rmv

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// LocationSearch resolves a free-text place name to a stop identifier using the
// location.name service. The name comes straight from speech recognition and may
// be partial or misspelled, so the search is stop-only (type=S) and we take the
// single best match the service offers. A non-empty city is appended to the
// search input to disambiguate between same-named stops in different places.
func (c *Client) LocationSearch(ctx context.Context, name string, city string) (ResolvedStop, error) {
	input := name
	if city != "" {
		input = fmt.Sprintf("%s %s", name, city)
	}

	params := url.Values{}
	params.Set("type", "S")
	params.Set("maxNo", "1")
	params.Set("input", input)

	var response locationResponse
	if err := c.get(ctx, "location.name", params, &response); err != nil {
		log.Error().Err(err).Str("input", input).Msg("Failed to query location search")
		return ResolvedStop{}, fmt.Errorf("location search for %q: %w", input, err)
	}

	if len(response.StopLocationOrCoordLocation) == 0 || response.StopLocationOrCoordLocation[0].StopLocation == nil {
		log.Error().Str("input", input).Msg("Location search returned no stop match")
		return ResolvedStop{}, ErrStopNotFound
	}

	stopLocation := response.StopLocationOrCoordLocation[0].StopLocation

	if stopLocation.ExtID == "" {
		return ResolvedStop{}, ErrMalformedResponse
	}

	return ResolvedStop{
		ID:   stopLocation.ExtID,
		Name: strings.TrimSpace(stopLocation.Name),
	}, nil
}
