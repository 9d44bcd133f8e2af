package trips

import "fmt"

const systemPrompt = "You are a travel expert that generates detailed travel itineraries. Always respond with valid JSON only, no markdown formatting."

// BuildPrompt renders the user prompt for the completion call. The schema
// description and the arrays-not-objects / no-markdown instructions are
// load bearing: downstream parsing relies on the model following them.
func BuildPrompt(req TripRequest) string {
	return fmt.Sprintf(`Generate a %d-day travel itinerary for %s based on the following user information:
Budget: '%s'
Interests: '%s'
TravelStyle: '%s'
GroupType: '%s'

Return the itinerary and lowest estimated price in a clean, non-markdown JSON format with the following structure:
{
  "name": "A descriptive title for the trip",
  "description": "A brief description of the trip and its highlights not exceeding 100 words",
  "estimatedPrice": "Lowest average price for the trip in USD, e.g.$price",
  "duration": %d,
  "budget": "%s",
  "travelStyle": "%s",
  "country": "%s",
  "interests": "%s",
  "groupType": "%s",
  "bestTimeToVisit": [
    "🌸 Season (from month to month): reason to visit",
    "☀️ Season (from month to month): reason to visit",
    "🍁 Season (from month to month): reason to visit",
    "❄️ Season (from month to month): reason to visit"
  ],
  "weatherInfo": [
    "☀️ Season: temperature range in Celsius (temperature range in Fahrenheit)",
    "🌦️ Season: temperature range in Celsius (temperature range in Fahrenheit)",
    "🌧️ Season: temperature range in Celsius (temperature range in Fahrenheit)",
    "❄️ Season: temperature range in Celsius (temperature range in Fahrenheit)"
  ],
  "location": {
    "city": "name of the city or region",
    "coordinates": [latitude, longitude],
    "openStreetMap": "link to open street map"
  },
  "itinerary": [
    {
      "day": 1,
      "location": "City/Region Name",
      "activities": [
        {"time": "Morning", "description": "🏰 Visit the local historic castle and enjoy a scenic walk"},
        {"time": "Afternoon", "description": "🖼️ Explore a famous art museum with a guided tour"},
        {"time": "Evening", "description": "🍷 Dine at a rooftop restaurant with local wine"}
      ]
    }
  ]
}

IMPORTANT:
- bestTimeToVisit and weatherInfo MUST be arrays, not objects
- itinerary MUST be an array
- All array fields must use square brackets [], not curly braces {}
- Return ONLY valid JSON, no markdown, no code blocks, no explanations.`,
		req.NumberOfDays, req.Country,
		req.Budget, req.Interests, req.TravelStyle, req.GroupType,
		req.NumberOfDays, req.Budget, req.TravelStyle, req.Country,
		req.Interests, req.GroupType)
}
