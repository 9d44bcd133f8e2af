package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/ringsaturn/tzf"

	"github.com/RahimHoxha/travel-agency/config"
	_ "github.com/RahimHoxha/travel-agency/migrations"
	"github.com/RahimHoxha/travel-agency/routes"
	"github.com/RahimHoxha/travel-agency/trips"
	"github.com/RahimHoxha/travel-agency/unsplash"
)

func main() {
	// Optional .env for local development; the environment wins in
	// deployed setups.
	_ = godotenv.Load()

	app := pocketbase.New()

	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: isGoRun(),
	})

	cfg := config.Load()

	planner := trips.NewPlanner(
		cfg,
		trips.NewGenerator(cfg),
		unsplash.NewClient(cfg.UnsplashAccessKey, cfg.UnsplashBaseURL),
	)

	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		// Calendar exports fall back to UTC event times.
		app.Logger().Warn("Unable to initialize the timezone finder", "error", err)
		finder = nil
	}

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.POST("/api/travel/trips", routes.CreateTrip(planner, app))
		se.Router.GET("/api/travel/trips", routes.ListTrips)
		se.Router.GET("/api/travel/trips/{id}", routes.GetTrip)
		se.Router.GET("/api/travel/trips/{id}/calendar", routes.TripCalendar(finder))
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func isGoRun() bool {
	return strings.HasPrefix(os.Args[0], os.TempDir())
}
