package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/tracker"
	"github.com/talentbridge/go-talent-match/internal/worker"
)

// Scheduler wraps robfig/cron and periodically enqueues evaluation tasks
// for active saved searches, one cron entry per alert frequency.
type Scheduler struct {
	cron        *cron.Cron
	store       db.Store
	distributor worker.TaskDistributor
	dailySpec   string
	weeklySpec  string
}

// NewScheduler creates a Scheduler with the given cron specs for the
// daily and weekly alert frequencies.
func NewScheduler(store db.Store, distributor worker.TaskDistributor, dailySpec, weeklySpec string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLogger(cron.DefaultLogger)),
		store:       store,
		distributor: distributor,
		dailySpec:   dailySpec,
		weeklySpec:  weeklySpec,
	}
}

// Start registers the per-frequency jobs and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.dailySpec, func() {
		s.enqueueFrequency(ctx, tracker.FrequencyDaily)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	_, err = s.cron.AddFunc(s.weeklySpec, func() {
		s.enqueueFrequency(ctx, tracker.FrequencyWeekly)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Info().Str("daily", s.dailySpec).Str("weekly", s.weeklySpec).Msg("scheduler started")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// enqueueFrequency enqueues one evaluation task for every active saved
// search with the given alert frequency.
func (s *Scheduler) enqueueFrequency(ctx context.Context, frequency string) {
	searches, err := s.store.ListActiveSavedSearchesByFrequency(ctx, frequency)
	if err != nil {
		log.Error().Err(err).Str("frequency", frequency).Msg("cannot list saved searches")
		return
	}

	if len(searches) == 0 {
		return
	}

	for _, search := range searches {
		payload := &worker.PayloadEvaluateSavedSearch{ID: search.ID}
		if err := s.distributor.DistributeTaskEvaluateSavedSearch(ctx, payload); err != nil {
			log.Error().Err(err).Str("saved_search_id", search.ID.String()).
				Msg("cannot enqueue evaluation task")
		}
	}

	log.Info().Str("frequency", frequency).Int("count", len(searches)).
		Msg("enqueued saved search evaluations")
}
