package main

import (
	"log"
	"os"
	"time"

	"vs-server/config"
	"vs-server/di"
	"vs-server/util"
)

// plotVenuesHours renders a weekly-hours chart per stored venue.
// Debugging helper; invoke from main when inspecting catalog data.
func plotVenuesHours(container *di.Container) {
	ids, err := container.RedisVenueDao.ListAllVenueIDs()
	if err != nil {
		log.Printf("[MAIN] Failed to list venue ids: %v", err)
		return
	}
	for _, id := range ids {
		v, err := container.RedisVenueDao.GetVenue(id)
		if err != nil {
			log.Printf("[MAIN] Failed to load venue %s: %v", id, err)
			continue
		}
		out := "hours_" + id + ".html"
		if err := util.PlotWeeklyHours(*v, out); err != nil {
			log.Printf("[MAIN] Failed to plot hours for %s: %v", id, err)
			continue
		}
		log.Printf("[MAIN] Wrote %s", out)
	}
}

func main() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	log.Println("[MAIN] Refreshing venue catalog")
	if err := container.VenuesRefresherService.RefreshVenuesData(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}

	container.VenuesRefresherService.StartPeriodicJob(
		config.VENUES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	// plotVenuesHours(container)

	log.Println("[MAIN] Starting server")
	container.VenueStatusHttpServer.Start()
}
