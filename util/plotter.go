package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"vs-server/models"
)

// PlotFriendCluster generates an HTML file rendering a friend cluster's
// member positions and centroid.
func PlotFriendCluster(cluster models.FriendCluster) {
	points := make([]opts.GeoData, 0, len(cluster.Members)+1)
	for _, m := range cluster.Members {
		points = append(points, opts.GeoData{
			Name:  m.UserID,
			Value: []float64{m.Location.Lon, m.Location.Lat},
		})
	}
	points = append(points, opts.GeoData{
		Name:  "centroid",
		Value: []float64{cluster.Centroid.Lon, cluster.Centroid.Lat},
	})

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Friend Cluster Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",         // Select appropriate map (e.g., "world" or custom map).
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	// Add a scatter series with the member and centroid points.
	geo.AddSeries("FriendCluster", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create("friend_cluster_map.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Friend cluster map generated: friend_cluster_map.html")
}
