package journey

import "strings"

// CategoryWalk marks a leg that is covered on foot rather than on a vehicle.
const CategoryWalk = "walk"

// Stop is one normalized leg of an itinerary. Times are truncated to minute
// precision. Direction and TrainLabel are set for transit legs only,
// DistanceMetres for walking legs only.
type Stop struct {
	DepartureTime string
	ArrivalTime   string

	OriginStationName      string
	DestinationStationName string

	Direction  string
	TrainLabel string
	Category   string

	DistanceMetres int
}

func (s *Stop) IsWalk() bool {
	return s.Category == CategoryWalk
}

// Itinerary is the ordered leg sequence of a single trip, in upstream order.
type Itinerary []Stop

// TruncateTime reduces a HAFAS timestamp to minute precision. The service
// reports times as "HH:MM:SS", intent slots additionally carry a timezone
// suffix ("HH:MM:SS +00:00"); both collapse to "HH:MM".
func TruncateTime(value string) string {
	value, _, _ = strings.Cut(value, "+")
	fields := strings.Fields(value)
	if len(fields) > 0 {
		value = fields[len(fields)-1]
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return value
	}

	return strings.Join(parts[:2], ":")
}
