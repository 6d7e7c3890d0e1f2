package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/go-talent-match/pkg/utils"
)

func createRandomSavedSearch(t *testing.T) SavedSearch {
	criteria, err := json.Marshal(map[string]any{
		"required_skills": []string{"python"},
	})
	require.NoError(t, err)

	params := CreateSavedSearchParams{
		ID:             uuid.New(),
		OwnerID:        utils.RandomEmail(),
		Name:           utils.RandomString(10),
		Criteria:       criteria,
		IsActive:       true,
		AlertsEnabled:  true,
		AlertFrequency: "daily",
	}

	savedSearch, err := testQueries.CreateSavedSearch(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, savedSearch)
	require.Equal(t, params.ID, savedSearch.ID)
	require.Equal(t, params.OwnerID, savedSearch.OwnerID)
	require.Equal(t, params.Name, savedSearch.Name)
	require.True(t, savedSearch.IsActive)
	require.Zero(t, savedSearch.CandidateCount)
	require.Zero(t, savedSearch.NewMatches)
	require.False(t, savedSearch.LastRunAt.Valid)

	return savedSearch
}

func TestQueries_CreateSavedSearch(t *testing.T) {
	createRandomSavedSearch(t)
}

func TestQueries_GetSavedSearch(t *testing.T) {
	savedSearch := createRandomSavedSearch(t)

	savedSearch2, err := testQueries.GetSavedSearch(context.Background(), savedSearch.ID)
	require.NoError(t, err)
	require.Equal(t, savedSearch.ID, savedSearch2.ID)
	require.Equal(t, savedSearch.OwnerID, savedSearch2.OwnerID)
	require.JSONEq(t, string(savedSearch.Criteria), string(savedSearch2.Criteria))
}

func TestQueries_DeleteSavedSearch(t *testing.T) {
	savedSearch := createRandomSavedSearch(t)

	err := testQueries.DeleteSavedSearch(context.Background(), savedSearch.ID)
	require.NoError(t, err)

	savedSearch2, err := testQueries.GetSavedSearch(context.Background(), savedSearch.ID)
	require.Error(t, err)
	require.EqualError(t, err, sql.ErrNoRows.Error())
	require.Empty(t, savedSearch2)
}

func TestQueries_ListSavedSearchesByOwner(t *testing.T) {
	owner := utils.RandomEmail()
	for i := 0; i < 5; i++ {
		savedSearch := createRandomSavedSearch(t)
		// reassign the owner so the searches share one
		_, err := testDB.Exec("UPDATE saved_searches SET owner_id = $1 WHERE id = $2", owner, savedSearch.ID)
		require.NoError(t, err)
	}

	params := ListSavedSearchesByOwnerParams{
		OwnerID: owner,
		Limit:   5,
		Offset:  0,
	}

	savedSearches, err := testQueries.ListSavedSearchesByOwner(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, savedSearches, 5)
	for _, savedSearch := range savedSearches {
		require.Equal(t, owner, savedSearch.OwnerID)
	}
}

func TestQueries_ListActiveSavedSearchesByFrequency(t *testing.T) {
	savedSearch := createRandomSavedSearch(t)

	savedSearches, err := testQueries.ListActiveSavedSearchesByFrequency(context.Background(), "daily")
	require.NoError(t, err)

	found := false
	for _, s := range savedSearches {
		require.True(t, s.IsActive)
		require.Equal(t, "daily", s.AlertFrequency)
		if s.ID == savedSearch.ID {
			found = true
		}
	}
	require.True(t, found)

	// paused searches must not show up
	_, err = testQueries.SetSavedSearchActive(context.Background(), SetSavedSearchActiveParams{
		ID:       savedSearch.ID,
		IsActive: false,
	})
	require.NoError(t, err)

	savedSearches, err = testQueries.ListActiveSavedSearchesByFrequency(context.Background(), "daily")
	require.NoError(t, err)
	for _, s := range savedSearches {
		require.NotEqual(t, savedSearch.ID, s.ID)
	}
}

func TestQueries_UpdateSavedSearchCriteria(t *testing.T) {
	savedSearch := createRandomSavedSearch(t)

	newCriteria, err := json.Marshal(map[string]any{
		"required_skills": []string{"java"},
		"min_grade":       80,
	})
	require.NoError(t, err)

	updated, err := testQueries.UpdateSavedSearchCriteria(context.Background(), UpdateSavedSearchCriteriaParams{
		ID:       savedSearch.ID,
		Name:     "Java seniors",
		Criteria: newCriteria,
	})
	require.NoError(t, err)
	require.Equal(t, savedSearch.ID, updated.ID)
	require.Equal(t, "Java seniors", updated.Name)
	require.JSONEq(t, string(newCriteria), string(updated.Criteria))
}

func TestQueries_UpdateSavedSearchTracking(t *testing.T) {
	savedSearch := createRandomSavedSearch(t)

	now := time.Now()
	updated, err := testQueries.UpdateSavedSearchTracking(context.Background(), UpdateSavedSearchTrackingParams{
		ID:             savedSearch.ID,
		KnownMatchIds:  pq.Int32Array{10, 20},
		CandidateCount: 2,
		NewMatches:     1,
		LastRunAt:      sql.NullTime{Time: now, Valid: true},
	})
	require.NoError(t, err)
	require.Equal(t, pq.Int32Array{10, 20}, updated.KnownMatchIds)
	require.Equal(t, int32(2), updated.CandidateCount)
	require.Equal(t, int32(1), updated.NewMatches)
	require.True(t, updated.LastRunAt.Valid)
	require.WithinDuration(t, now, updated.LastRunAt.Time, time.Second)
}

func TestQueries_SetSavedSearchAlerts(t *testing.T) {
	savedSearch := createRandomSavedSearch(t)

	updated, err := testQueries.SetSavedSearchAlerts(context.Background(), SetSavedSearchAlertsParams{
		ID:             savedSearch.ID,
		AlertsEnabled:  false,
		AlertFrequency: "weekly",
	})
	require.NoError(t, err)
	require.False(t, updated.AlertsEnabled)
	require.Equal(t, "weekly", updated.AlertFrequency)
}
