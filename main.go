package main

import (
	"fmt"
	"log"
	"time"

	"vs-server/config"
	"vs-server/di"
	"vs-server/models"
	"vs-server/util"
)

func testVibeService(container *di.Container) {
	log.Println("Running: testVibeService")
	vote := models.VibeVote{
		ID:           "smoke-vote",
		UserID:       "smoke-user",
		VenueID:      "smoke-venue",
		MusicScore:   4,
		DensityScore: 5,
		EnergyLevel:  models.EnergyHigh,
		WaitTime:     models.WaitShort,
		Timestamp:    time.Now().UTC(),
	}
	state, err := container.VibeService.SubmitVote(vote)
	if err != nil {
		log.Println("Error while running testVibeService:", err)
		return
	}
	fmt.Printf("Aggregate after vote: %+v\n", state)
}

func testFriendCluster(container *di.Container) {
	log.Println("Running: testFriendCluster")
	cluster := container.ClusterService.FindLargestCluster(container.PresenceRefresherService.Snapshot())
	if cluster == nil {
		log.Println("No friend cluster available")
		return
	}
	fmt.Printf("Largest cluster: venue=%s members=%d\n", cluster.VenueID, len(cluster.Members))
	util.PlotFriendCluster(*cluster)
}

func main() {
	config.LoadEnv()
	container := di.NewContainer(config.Env("APP_ENV", "dev"))

	// testVibeService(container)
	// testFriendCluster(container)

	fmt.Println("refreshing presence!")
	if err := container.PresenceRefresherService.Refresh(); err != nil {
		log.Println("Initial presence refresh failed:", err)
	}
	fmt.Println("starting periodic job!")
	container.PresenceRefresherService.StartPeriodicJob(config.PRESENCE_REFRESHER_SCHEDULE_SECONDS * time.Second)

	fmt.Println("starting server!")
	container.VibeSenseHttpServer.Start()
	container.PresenceRefresherService.Stop()
}
