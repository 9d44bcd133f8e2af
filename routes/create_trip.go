package routes

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/RahimHoxha/travel-agency/trips"
)

const tripsCollection = "trips"

// TripPlanner runs the generation flow for one validated request.
type TripPlanner interface {
	Plan(ctx context.Context, req trips.TripRequest) (*trips.PlanResult, error)
}

// tripStore is the slice of core.App the handler needs for persistence.
type tripStore interface {
	FindCollectionByNameOrId(nameOrId string) (*core.Collection, error)
	Save(model core.Model) error
}

// CreateTrip handles POST /api/travel/trips: validates the request,
// generates the itinerary and images, persists the record and answers
// with the store-assigned id. All runtime failures are classified into a
// user-facing message and returned as a 500.
func CreateTrip(planner TripPlanner, store tripStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req trips.TripRequest
		if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{
				"error": trips.MsgMissingFields,
			})
		}

		if err := req.Validate(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{
				"error": trips.MsgMissingFields,
			})
		}

		result, err := planner.Plan(e.Request.Context(), req)
		if err != nil {
			eventLogger(e).Error("Error generating travel plan", "error", err, "country", req.Country, "userId", req.UserID)
			return e.JSON(http.StatusInternalServerError, map[string]string{
				"error": trips.UserMessage(err),
			})
		}

		record, err := persistTrip(store, result, req.UserID)
		if err != nil {
			eventLogger(e).Error("Error saving travel plan", "error", err, "userId", req.UserID)
			return e.JSON(http.StatusInternalServerError, map[string]string{
				"error": trips.UserMessage(err),
			})
		}

		return e.JSON(http.StatusOK, map[string]string{"id": record.Id})
	}
}

// eventLogger falls back to the default logger for events with no bound
// app.
func eventLogger(e *core.RequestEvent) *slog.Logger {
	if e.App != nil {
		return e.App.Logger()
	}
	return slog.Default()
}

func persistTrip(store tripStore, result *trips.PlanResult, userID string) (*core.Record, error) {
	collection, err := store.FindCollectionByNameOrId(tripsCollection)
	if err != nil {
		return nil, err
	}

	record := core.NewRecord(collection)
	record.Set("tripDetails", result.TripDetails)
	record.Set("createdAt", time.Now().UTC().Format(time.RFC3339))
	record.Set("imageUrls", result.ImageURLs)
	record.Set("userId", userID)

	if err := store.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}
