package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/match"
	"github.com/talentbridge/go-talent-match/internal/tracker"
)

const TaskEvaluateSavedSearch = "task:evaluate_saved_search"

type PayloadEvaluateSavedSearch struct {
	ID uuid.UUID `json:"id"`
}

// DistributeTaskEvaluateSavedSearch distributes the task of re-running one
// saved search against the current candidate pool. The task ID is derived
// from the saved search ID so that at most one evaluation per search is
// in flight at any time.
func (distributor *RedisTaskDistributor) DistributeTaskEvaluateSavedSearch(
	ctx context.Context,
	payload *PayloadEvaluateSavedSearch,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	opts = append(opts, asynq.TaskID(TaskEvaluateSavedSearch+":"+payload.ID.String()))
	task := asynq.NewTask(TaskEvaluateSavedSearch, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")

	return nil
}

// ProcessTaskEvaluateSavedSearch processes the task of re-running a saved
// search. It loads the candidate pool, recomputes the match set inside the
// saved search transaction and, when alerts are enabled and new candidates
// appeared, enqueues the alert email task.
func (processor *RedisTaskProcessor) ProcessTaskEvaluateSavedSearch(ctx context.Context, task *asynq.Task) error {
	var payload PayloadEvaluateSavedSearch
	err := json.Unmarshal(task.Payload(), &payload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	pool, err := loadCandidatePool(ctx, processor.store)
	if err != nil {
		return fmt.Errorf("failed to load candidate pool: %w", err)
	}

	var tick tracker.TickResult
	savedSearch, err := processor.store.EvaluateSavedSearchTx(ctx, db.EvaluateSavedSearchTxParams{
		ID: payload.ID,
		Evaluate: func(row db.SavedSearch) (db.UpdateSavedSearchTrackingParams, bool, error) {
			query, err := savedQueryFromRow(row)
			if err != nil {
				return db.UpdateSavedSearchTrackingParams{}, false, err
			}

			tick, err = tracker.Tick(query, pool, time.Now())
			if err != nil {
				return db.UpdateSavedSearchTrackingParams{}, false, err
			}
			if !query.IsActive {
				return db.UpdateSavedSearchTrackingParams{}, false, nil
			}

			return db.UpdateSavedSearchTrackingParams{
				ID:             row.ID,
				KnownMatchIds:  pq.Int32Array(tick.Query.KnownMatchIDs),
				CandidateCount: int32(tick.MatchCount),
				NewMatches:     int32(len(tick.NewMatchIDs)),
				LastRunAt:      sql.NullTime{Time: tick.Query.LastRunAt, Valid: true},
			}, true, nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate saved search: %w", err)
	}

	if savedSearch.IsActive && savedSearch.AlertsEnabled && len(tick.NewMatchIDs) > 0 {
		alertPayload := &PayloadSendMatchAlertEmail{
			Email:       savedSearch.OwnerID,
			SearchName:  savedSearch.Name,
			NewMatchIDs: tick.NewMatchIDs,
			MatchCount:  tick.MatchCount,
		}
		err = processor.distributor.DistributeTaskSendMatchAlertEmail(ctx, alertPayload, asynq.Queue(QueueDefault))
		if err != nil {
			return fmt.Errorf("failed to enqueue alert email task: %w", err)
		}
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Int("match_count", tick.MatchCount).Int("new_matches", len(tick.NewMatchIDs)).
		Msg("processed task")

	return nil
}

// loadCandidatePool fetches the candidate pool and normalizes it into the
// shape the matching engine consumes.
func loadCandidatePool(ctx context.Context, store db.Store) ([]match.CandidateRecord, error) {
	rows, err := store.ListCandidateDetails(ctx)
	if err != nil {
		return nil, err
	}

	raws := make([]match.RawRecord, 0, len(rows))
	for _, row := range rows {
		raw, err := row.ToRawRecord()
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}

	pool, skipped := match.NormalizeAll(raws)
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("records skipped during normalization")
	}
	return pool, nil
}

// savedQueryFromRow converts a saved search row into the tracker's shape.
func savedQueryFromRow(row db.SavedSearch) (tracker.SavedQuery, error) {
	var criteria match.QueryCriteria
	if len(row.Criteria) > 0 {
		if err := json.Unmarshal(row.Criteria, &criteria); err != nil {
			return tracker.SavedQuery{}, err
		}
	}

	query := tracker.SavedQuery{
		ID:             row.ID.String(),
		OwnerID:        row.OwnerID,
		Name:           row.Name,
		Criteria:       criteria,
		IsActive:       row.IsActive,
		AlertsEnabled:  row.AlertsEnabled,
		AlertFrequency: row.AlertFrequency,
		KnownMatchIDs:  []int32(row.KnownMatchIds),
	}
	if row.LastRunAt.Valid {
		query.LastRunAt = row.LastRunAt.Time
	}
	return query, nil
}
