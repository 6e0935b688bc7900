package refresher

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"bmkg-forecast/internal/forecast"
	"bmkg-forecast/internal/store"
)

// Fetcher produces a fresh normalized bundle. Satisfied by *bmkg.Client.
type Fetcher interface {
	Fetch(ctx context.Context) (forecast.Bundle, error)
}

// Refresher periodically fetches the upstream forecast and replaces the
// stored bundle. A failed refresh keeps the last good bundle in place.
type Refresher struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	store     *store.LatestStore
	interval  time.Duration
}

// New creates a Refresher.
func New(fetcher Fetcher, st *store.LatestStore, interval time.Duration) *Refresher {
	s := gocron.NewScheduler(time.UTC)
	return &Refresher{
		scheduler: s,
		fetcher:   fetcher,
		store:     st,
		interval:  interval,
	}
}

// Start runs one refresh immediately and then schedules the periodic job.
func (r *Refresher) Start() error {
	minutes := int(r.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	go r.refresh()

	_, err := r.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("refresher: running forecast refresh job")
		r.refresh()
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bundle, err := r.fetcher.Fetch(ctx)
	if err != nil {
		// Keep the last good bundle if any.
		log.Printf("refresher: fetch failed: %v", err)
		return
	}

	r.store.Set(bundle, time.Now().UTC())
	log.Printf("refresher: stored bundle with %d observations", len(bundle.Series))
}

// Stop stops the scheduler and cancels any future jobs.
func (r *Refresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}
