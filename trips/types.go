// Package trips implements the itinerary generation flow: prompt
// construction, the Groq completion call, lenient JSON recovery and the
// error taxonomy surfaced to API clients.
package trips

// TripRequest is the incoming trip preference payload. All seven fields
// are mandatory; beyond presence nothing is validated, matching the
// permissiveness of the public API.
type TripRequest struct {
	Country      string `json:"country"`
	NumberOfDays int    `json:"numberOfDays"`
	TravelStyle  string `json:"travelStyle"`
	Interests    string `json:"interests"`
	Budget       string `json:"budget"`
	GroupType    string `json:"groupType"`
	UserID       string `json:"userId"`
}

// Validate checks field presence only. Zero values count as missing.
func (r TripRequest) Validate() error {
	if r.Country == "" ||
		r.NumberOfDays == 0 ||
		r.TravelStyle == "" ||
		r.Interests == "" ||
		r.Budget == "" ||
		r.GroupType == "" ||
		r.UserID == "" {
		return ErrMissingFields
	}
	return nil
}

// Itinerary mirrors the JSON document the model is asked to produce.
// Generation stores the generic parsed JSON rather than this struct, so
// unexpected shapes survive the round trip; the typed form exists for
// consumers such as the calendar export.
type Itinerary struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	EstimatedPrice  string         `json:"estimatedPrice"`
	Duration        int            `json:"duration"`
	Budget          string         `json:"budget"`
	TravelStyle     string         `json:"travelStyle"`
	Country         string         `json:"country"`
	Interests       string         `json:"interests"`
	GroupType       string         `json:"groupType"`
	BestTimeToVisit []string       `json:"bestTimeToVisit"`
	WeatherInfo     []string       `json:"weatherInfo"`
	Location        Location       `json:"location"`
	Itinerary       []ItineraryDay `json:"itinerary"`
}

type Location struct {
	City          string    `json:"city"`
	Coordinates   []float64 `json:"coordinates"`
	OpenStreetMap string    `json:"openStreetMap"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}
