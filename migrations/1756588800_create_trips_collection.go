package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("trips")

		collection.Fields.Add(
			&core.TextField{Name: "tripDetails", Required: true},
			&core.TextField{Name: "createdAt"},
			&core.JSONField{Name: "imageUrls", MaxSize: 5000},
			&core.TextField{Name: "userId", Required: true},
		)

		collection.AddIndex("idx_trips_userId", false, "userId", "")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("trips")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}
