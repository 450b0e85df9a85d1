package rmv

// ResolvedStop is a place name resolved to the stable HAFAS external stop identifier.
// Name is the canonical display name and is only used for diagnostics.
type ResolvedStop struct {
	ID   string
	Name string
}

type locationResponse struct {
	StopLocationOrCoordLocation []struct {
		StopLocation *StopLocation `json:"StopLocation"`
	} `json:"stopLocationOrCoordLocation"`
}

type StopLocation struct {
	ExtID string `json:"extId"`
	Name  string `json:"name"`
}

type tripResponse struct {
	Trip []struct {
		LegList *struct {
			Leg []Leg `json:"Leg"`
		} `json:"LegList"`
	} `json:"Trip"`
}

// Leg is one raw segment of a HAFAS itinerary, either a ride on a single
// vehicle or a walk. Everything except Origin and Destination is optional.
type Leg struct {
	Origin      *LegStop `json:"Origin"`
	Destination *LegStop `json:"Destination"`
	Direction   string   `json:"direction"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Dist        *int     `json:"dist"`
	Product     *Product `json:"Product"`
}

type LegStop struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type Product struct {
	CatOutL string `json:"catOutL"`
}
