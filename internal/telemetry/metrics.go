// Package telemetry exposes the service's Prometheus metrics.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PlaylistsGenerated counts successful generations per style.
	PlaylistsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "setforge_playlists_generated_total",
		Help: "Playlists generated, labeled by transition style.",
	}, []string{"style"})

	// GenerationFailures counts aborted generations per failure class.
	GenerationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "setforge_generation_failures_total",
		Help: "Generation requests that returned an error, labeled by reason.",
	}, []string{"reason"})

	// PoolSize observes how many candidates each generation chose from.
	PoolSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "setforge_candidate_pool_size",
		Help:    "Candidate pool size per generation.",
		Buckets: prometheus.ExponentialBuckets(5, 2, 8),
	})

	// PlaylistTracks observes generated playlist lengths.
	PlaylistTracks = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "setforge_playlist_tracks",
		Help:    "Track count of generated playlists.",
		Buckets: prometheus.LinearBuckets(1, 3, 10),
	})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
