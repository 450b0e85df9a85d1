package rmv

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	client := NewClient("test-access-id")
	client.BaseURL = server.URL

	return client, server
}

func TestLocationSearch(t *testing.T) {
	var requestedQuery map[string]string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedQuery = map[string]string{}
		for key := range r.URL.Query() {
			requestedQuery[key] = r.URL.Query().Get(key)
		}

		w.Write([]byte(`{"stopLocationOrCoordLocation":[{"StopLocation":{"extId":"3000010","name":"Frankfurt (Main) Hauptbahnhof"}}]}`))
	}))
	defer server.Close()

	stop, err := client.LocationSearch(context.Background(), "Hauptbahnhof", "Frankfurt")
	if err != nil {
		t.Fatalf("LocationSearch failed: %v", err)
	}

	if stop.ID != "3000010" {
		t.Errorf("expected stop id 3000010, got %q", stop.ID)
	}
	if stop.Name != "Frankfurt (Main) Hauptbahnhof" {
		t.Errorf("unexpected stop name %q", stop.Name)
	}

	if requestedQuery["input"] != "Hauptbahnhof Frankfurt" {
		t.Errorf("expected city-qualified input, got %q", requestedQuery["input"])
	}
	if requestedQuery["type"] != "S" || requestedQuery["maxNo"] != "1" {
		t.Errorf("expected stop-only single-match search, got type=%q maxNo=%q", requestedQuery["type"], requestedQuery["maxNo"])
	}
	if requestedQuery["accessId"] != "test-access-id" || requestedQuery["format"] != "json" {
		t.Errorf("expected credential and format parameters, got %v", requestedQuery)
	}
}

func TestLocationSearchWithoutCity(t *testing.T) {
	var requestedInput string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedInput = r.URL.Query().Get("input")
		w.Write([]byte(`{"stopLocationOrCoordLocation":[{"StopLocation":{"extId":"3001204","name":"Hauptwache"}}]}`))
	}))
	defer server.Close()

	if _, err := client.LocationSearch(context.Background(), "Hauptwache", ""); err != nil {
		t.Fatalf("LocationSearch failed: %v", err)
	}

	if requestedInput != "Hauptwache" {
		t.Errorf("expected unqualified input, got %q", requestedInput)
	}
}

func TestLocationSearchFailures(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected error
	}{
		{
			name: "no matches",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"stopLocationOrCoordLocation":[]}`))
			},
			expected: ErrStopNotFound,
		},
		{
			name: "coordinate match instead of stop",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"stopLocationOrCoordLocation":[{"CoordLocation":{"name":"Somewhere"}}]}`))
			},
			expected: ErrStopNotFound,
		},
		{
			name: "unparsable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>upstream error</html>`))
			},
			expected: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(tt.handler)
			defer server.Close()

			_, err := client.LocationSearch(context.Background(), "Hauptwache", "")
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestLocationSearchHTTPError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := client.LocationSearch(context.Background(), "Hauptwache", ""); err == nil {
		t.Error("expected error for non-success status")
	}
}

func TestPlanTrip(t *testing.T) {
	var requestedQuery map[string]string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedQuery = map[string]string{}
		for key := range r.URL.Query() {
			requestedQuery[key] = r.URL.Query().Get(key)
		}

		w.Write([]byte(`{"Trip":[{"LegList":{"Leg":[
			{"Origin":{"name":"Hauptbahnhof","time":"08:15:00"},
			 "Destination":{"name":"Hauptwache","time":"08:22:00"},
			 "direction":"Bad Homburg","name":"S5","Product":{"catOutL":"S-Bahn"}}
		]}},{"LegList":{"Leg":[
			{"Origin":{"name":"Hauptbahnhof","time":"08:45:00"},
			 "Destination":{"name":"Hauptwache","time":"08:52:00"}}
		]}}]}`))
	}))
	defer server.Close()

	origin := ResolvedStop{ID: "3000010", Name: "Hauptbahnhof"}
	destination := ResolvedStop{ID: "3001204", Name: "Hauptwache"}

	legs, err := client.PlanTrip(context.Background(), origin, destination, "08:10:00")
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}

	// only the first itinerary counts
	if len(legs) != 1 {
		t.Fatalf("expected 1 leg from the first itinerary, got %d", len(legs))
	}
	if legs[0].Origin.Time != "08:15:00" {
		t.Errorf("unexpected leg time %q", legs[0].Origin.Time)
	}

	if requestedQuery["originExtId"] != "3000010" || requestedQuery["destExtId"] != "3001204" {
		t.Errorf("expected stop identifiers in query, got %v", requestedQuery)
	}
	if requestedQuery["time"] != "08:10:00" {
		t.Errorf("expected verbatim departure time, got %q", requestedQuery["time"])
	}
}

func TestPlanTripWithoutTime(t *testing.T) {
	var hasTimeParameter bool

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasTimeParameter = r.URL.Query().Has("time")
		w.Write([]byte(`{"Trip":[{"LegList":{"Leg":[
			{"Origin":{"name":"Hauptbahnhof","time":"08:15:00"},
			 "Destination":{"name":"Hauptwache","time":"08:22:00"}}
		]}}]}`))
	}))
	defer server.Close()

	_, err := client.PlanTrip(context.Background(), ResolvedStop{ID: "1"}, ResolvedStop{ID: "2"}, "")
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}

	if hasTimeParameter {
		t.Error("time parameter must be omitted when no departure time is given")
	}
}

func TestPlanTripNoItinerary(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no trips",
			body: `{"Trip":[]}`,
		},
		{
			name: "trip without leg list",
			body: `{"Trip":[{}]}`,
		},
		{
			name: "empty leg list",
			body: `{"Trip":[{"LegList":{"Leg":[]}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := client.PlanTrip(context.Background(), ResolvedStop{ID: "1"}, ResolvedStop{ID: "2"}, "")
			if !errors.Is(err, ErrNoItinerary) {
				t.Errorf("expected ErrNoItinerary, got %v", err)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	if _, err := client.LocationSearch(context.Background(), "Hauptwache", ""); err == nil {
		t.Error("expected transport error after server shutdown")
	}
}
