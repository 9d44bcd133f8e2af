package routes

import (
	"net/http"
	"sort"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
)

type tripSummary struct {
	Id          string    `json:"id"`
	TripDetails string    `json:"tripDetails"`
	CreatedAt   string    `json:"createdAt"`
	ImageUrls   []*string `json:"imageUrls"`
	UserId      string    `json:"userId"`
}

// ListTrips handles GET /api/travel/trips?user=<id>, newest first.
func ListTrips(e *core.RequestEvent) error {
	userID := e.Request.URL.Query().Get("user")
	if userID == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{
			"error": "user query parameter is required",
		})
	}

	records, err := e.App.FindAllRecords(tripsCollection,
		dbx.NewExp("userId = {:userId}", dbx.Params{"userId": userID}))
	if err != nil {
		e.App.Logger().Error("Error listing trips", "error", err, "userId", userID)
		return e.JSON(http.StatusInternalServerError, map[string]string{
			"error": "unable to load trips",
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].GetString("createdAt") > records[j].GetString("createdAt")
	})

	summaries := make([]tripSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, toTripSummary(record))
	}

	return e.JSON(http.StatusOK, map[string]any{"trips": summaries})
}

// GetTrip handles GET /api/travel/trips/{id}.
func GetTrip(e *core.RequestEvent) error {
	record, err := e.App.FindRecordById(tripsCollection, e.Request.PathValue("id"))
	if err != nil {
		return e.JSON(http.StatusNotFound, map[string]string{
			"error": "trip not found",
		})
	}

	return e.JSON(http.StatusOK, toTripSummary(record))
}

func toTripSummary(record *core.Record) tripSummary {
	var imageUrls []*string
	_ = record.UnmarshalJSONField("imageUrls", &imageUrls)

	return tripSummary{
		Id:          record.Id,
		TripDetails: record.GetString("tripDetails"),
		CreatedAt:   record.GetString("createdAt"),
		ImageUrls:   imageUrls,
		UserId:      record.GetString("userId"),
	}
}
