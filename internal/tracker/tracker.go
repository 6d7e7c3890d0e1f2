package tracker

import (
	"time"

	"github.com/talentbridge/go-talent-match/internal/match"
)

// Alert frequency values for a saved search.
const (
	FrequencyImmediate = "immediate"
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
)

// SavedQuery is one persisted search with its tracking state. Active and
// AlertsEnabled are independent axes; any combination is valid.
type SavedQuery struct {
	ID             string
	OwnerID        string
	Name           string
	Criteria       match.QueryCriteria
	IsActive       bool
	AlertsEnabled  bool
	AlertFrequency string
	LastRunAt      time.Time
	KnownMatchIDs  []int32
}

// TickResult is the outcome of re-running a saved query against the pool.
type TickResult struct {
	Query SavedQuery
	// NewMatchIDs are candidates in the current result set that were not
	// in the previous KnownMatchIDs. The tracker only produces the set,
	// delivery belongs to the notification dispatcher.
	NewMatchIDs []int32
	// MatchCount is the size of the full current result set.
	MatchCount int
}

// Tick re-runs the saved query's criteria against the current pool and
// computes the delta against the last known result set. The criteria are
// never mutated. A paused query is a no-op: LastRunAt does not advance and
// no delta is produced.
func Tick(query SavedQuery, pool []match.CandidateRecord, now time.Time) (TickResult, error) {
	if !query.IsActive {
		return TickResult{Query: query}, nil
	}

	matchIDs, err := match.MatchIDs(pool, query.Criteria)
	if err != nil {
		return TickResult{}, err
	}

	known := make(map[int32]bool, len(query.KnownMatchIDs))
	for _, id := range query.KnownMatchIDs {
		known[id] = true
	}

	var newIDs []int32
	for _, id := range matchIDs {
		if !known[id] {
			newIDs = append(newIDs, id)
		}
	}

	query.KnownMatchIDs = matchIDs
	query.LastRunAt = now

	return TickResult{
		Query:       query,
		NewMatchIDs: newIDs,
		MatchCount:  len(matchIDs),
	}, nil
}

// Baseline re-runs the query and resets KnownMatchIDs to the current result
// set without emitting a delta. Used when a paused query is reactivated so
// that changes from the paused interval do not flood out as new matches.
func Baseline(query SavedQuery, pool []match.CandidateRecord, now time.Time) (SavedQuery, error) {
	matchIDs, err := match.MatchIDs(pool, query.Criteria)
	if err != nil {
		return SavedQuery{}, err
	}

	query.KnownMatchIDs = matchIDs
	query.LastRunAt = now
	return query, nil
}
