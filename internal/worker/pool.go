// Package worker provides background analysis of track preview audio. When a
// generation had to impute a track's energy, the track is queued here; the
// analyzer measures the real value from the stream preview and writes it to
// the cache so the next generation scores it on measured data.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/core/ports"
)

// Job asks for one track preview to be analyzed.
type Job struct {
	TrackID    string
	PreviewURL string
}

// Pool manages the analysis workers.
type Pool struct {
	cache   ports.TrackCache
	logger  zerolog.Logger
	jobs    chan Job
	wg      sync.WaitGroup
	workers int
}

// NewPool creates a worker pool with the given worker count and queue size.
func NewPool(cache ports.TrackCache, logger zerolog.Logger, workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		cache:   cache,
		logger:  logger.With().Str("component", "worker").Logger(),
		jobs:    make(chan Job, queueSize),
		workers: workers,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking; a full queue drops the job, since
// analysis is an optimization, not a contract.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		p.logger.Warn().Str("track_id", job.TrackID).Msg("analysis queue full, dropping job")
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		p.logger.Debug().Str("track_id", job.TrackID).Msg("no preview url, skipping analysis")
		return
	}

	energy, err := AnalyzePreviewFunc(job.PreviewURL)
	if err != nil {
		p.logger.Warn().Err(err).Str("track_id", job.TrackID).Msg("preview analysis failed")
		return
	}

	if err := p.cache.UpdateTrackEnergy(context.Background(), job.TrackID, energy); err != nil {
		p.logger.Warn().Err(err).Str("track_id", job.TrackID).Msg("failed to store measured energy")
		return
	}
	p.logger.Info().Str("track_id", job.TrackID).Float64("energy", energy).Msg("stored measured energy")
}
