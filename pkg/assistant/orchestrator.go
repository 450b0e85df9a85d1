package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/abfahrtbot/abfahrtbot/pkg/config"
	"github.com/abfahrtbot/abfahrtbot/pkg/journey"
	"github.com/abfahrtbot/abfahrtbot/pkg/rmv"
	"github.com/abfahrtbot/abfahrtbot/pkg/speech"
	"github.com/abfahrtbot/abfahrtbot/pkg/stats"
)

var errEmptyItinerary = errors.New("itinerary synthesized to nothing")

// Assistant answers journey questions from the configured home station.
type Assistant struct {
	Config config.AssistantConfig
	RMV    *rmv.Client
}

func New(cfg *config.Config) *Assistant {
	client := rmv.NewClient(cfg.RMV.AccessID)
	if cfg.RMV.BaseURL != "" {
		client.BaseURL = cfg.RMV.BaseURL
	}

	return &Assistant{
		Config: cfg.Assistant,
		RMV:    client,
	}
}

// Plan resolves the home station and the requested destination and fetches the
// next normalized itinerary between them. The stages run strictly in order and
// the first failing stage fails the query, there are no retries. departureTime
// is HH:MM:SS or empty; when empty and a departure offset is configured the
// trip is planned for now plus that offset.
func (a *Assistant) Plan(ctx context.Context, destination string, departureTime string) (journey.Itinerary, error) {
	startTime := time.Now()
	stats.QueriesTotal.Inc()
	defer func() {
		stats.QueryDuration.Observe(time.Since(startTime).Seconds())
	}()

	origin, err := a.RMV.LocationSearch(ctx, a.Config.HomeStation, a.Config.HomeCity)
	if err != nil {
		stats.QueryFailures.WithLabelValues("resolve_origin").Inc()
		return nil, err
	}

	// Unset homeCityOnly means on, matching the config loader default
	destinationCity := ""
	if a.Config.HomeCityOnly == nil || *a.Config.HomeCityOnly {
		destinationCity = a.Config.HomeCity
	}

	destinationStop, err := a.RMV.LocationSearch(ctx, destination, destinationCity)
	if err != nil {
		stats.QueryFailures.WithLabelValues("resolve_destination").Inc()
		return nil, err
	}

	if departureTime == "" && a.Config.DepartureOffsetMinutes != nil {
		offset := time.Duration(*a.Config.DepartureOffsetMinutes) * time.Minute
		departureTime = time.Now().Add(offset).Format("15:04") + ":00"
	}

	legs, err := a.RMV.PlanTrip(ctx, origin, destinationStop, departureTime)
	if err != nil {
		stats.QueryFailures.WithLabelValues("trip").Inc()
		return nil, err
	}

	itinerary, err := journey.Normalize(legs)
	if err != nil {
		stats.QueryFailures.WithLabelValues("normalize").Inc()
		return nil, err
	}

	return itinerary, nil
}

// Query plans the journey and renders it as a spoken sentence, using the
// configured answer length.
func (a *Assistant) Query(ctx context.Context, destination string, departureTime string) (string, error) {
	itinerary, err := a.Plan(ctx, destination, departureTime)
	if err != nil {
		return "", err
	}

	response := speech.Synthesize(itinerary, a.Config.ShortAnswers)
	if response == "" {
		stats.QueryFailures.WithLabelValues("synthesize").Inc()
		return "", errEmptyItinerary
	}

	return response, nil
}
