package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pocketbase/pocketbase/core"
	"github.com/ringsaturn/tzf"

	"github.com/RahimHoxha/travel-agency/trips"
)

// TripCalendar handles GET /api/travel/trips/{id}/calendar and renders
// the stored itinerary as an iCalendar file. Days are anchored at the
// optional start=YYYY-MM-DD query parameter (default: tomorrow) and the
// event times are localized to the destination timezone when the
// itinerary carries coordinates.
func TripCalendar(finder tzf.F) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := e.App.FindRecordById(tripsCollection, e.Request.PathValue("id"))
		if err != nil {
			return e.JSON(http.StatusNotFound, map[string]string{
				"error": "trip not found",
			})
		}

		var itinerary trips.Itinerary
		if err := json.Unmarshal([]byte(record.GetString("tripDetails")), &itinerary); err != nil {
			e.App.Logger().Warn("Stored trip details are not a parseable itinerary", "error", err, "tripId", record.Id)
			return e.JSON(http.StatusUnprocessableEntity, map[string]string{
				"error": "trip details cannot be rendered as a calendar",
			})
		}

		start := time.Now().AddDate(0, 0, 1)
		if raw := e.Request.URL.Query().Get("start"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{
					"error": "start must be formatted as YYYY-MM-DD",
				})
			}
			start = parsed
		}

		cal := buildTripCalendar(record.Id, itinerary, start, tripLocation(finder, itinerary))

		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "trip-"+record.Id+".ics"))
		return e.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
	}
}

func buildTripCalendar(tripID string, itinerary trips.Itinerary, start time.Time, loc *time.Location) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//travel-agency//trip-planner//EN")

	name := itinerary.Name
	if name == "" {
		name = "Trip to " + itinerary.Country
	}
	cal.SetXWRCalName(name)

	for _, day := range itinerary.Itinerary {
		offset := day.Day - 1
		if offset < 0 {
			offset = 0
		}
		date := start.AddDate(0, 0, offset)

		for i, activity := range day.Activities {
			begin := time.Date(date.Year(), date.Month(), date.Day(),
				activityStartHour(activity.Time), 0, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-day%d-%d@travel-agency", tripID, day.Day, i))
			event.SetCreatedTime(time.Now())
			event.SetStartAt(begin)
			event.SetEndAt(begin.Add(2 * time.Hour))
			event.SetSummary(activity.Description)
			if day.Location != "" {
				event.SetLocation(day.Location)
			} else if itinerary.Location.City != "" {
				event.SetLocation(itinerary.Location.City)
			}
		}
	}

	return cal
}

// activityStartHour maps the itinerary's time-of-day labels to clock
// hours. Unknown labels land midday.
func activityStartHour(timeOfDay string) int {
	switch timeOfDay {
	case "Morning":
		return 9
	case "Afternoon":
		return 14
	case "Evening":
		return 19
	}
	return 12
}

// tripLocation resolves the itinerary coordinates to a timezone. The
// itinerary stores [latitude, longitude]; tzf expects (lng, lat).
func tripLocation(finder tzf.F, itinerary trips.Itinerary) *time.Location {
	if finder == nil || len(itinerary.Location.Coordinates) != 2 {
		return time.UTC
	}

	lat := itinerary.Location.Coordinates[0]
	lng := itinerary.Location.Coordinates[1]

	name := finder.GetTimezoneName(lng, lat)
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
