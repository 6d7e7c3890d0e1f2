package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/lib/pq"

	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/match"
	"github.com/talentbridge/go-talent-match/internal/tracker"
	"github.com/talentbridge/go-talent-match/internal/worker"
	"github.com/talentbridge/go-talent-match/pkg/validation"
)

var invalidAlertFrequencyError = errors.New("alert frequency must be one of: immediate, daily, weekly")

type savedSearchResponse struct {
	ID             uuid.UUID           `json:"id"`
	OwnerEmail     string              `json:"owner_email"`
	Name           string              `json:"name"`
	Criteria       match.QueryCriteria `json:"criteria"`
	IsActive       bool                `json:"is_active"`
	AlertsEnabled  bool                `json:"alerts_enabled"`
	AlertFrequency string              `json:"alert_frequency"`
	CandidateCount int32               `json:"candidate_count"`
	NewMatches     int32               `json:"new_matches"`
	LastRunAt      *time.Time          `json:"last_run_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// newSavedSearchResponse creates a saved search response from a db.SavedSearch
func newSavedSearchResponse(savedSearch db.SavedSearch) (savedSearchResponse, error) {
	var criteria match.QueryCriteria
	if len(savedSearch.Criteria) > 0 {
		if err := json.Unmarshal(savedSearch.Criteria, &criteria); err != nil {
			return savedSearchResponse{}, err
		}
	}

	response := savedSearchResponse{
		ID:             savedSearch.ID,
		OwnerEmail:     savedSearch.OwnerID,
		Name:           savedSearch.Name,
		Criteria:       criteria,
		IsActive:       savedSearch.IsActive,
		AlertsEnabled:  savedSearch.AlertsEnabled,
		AlertFrequency: savedSearch.AlertFrequency,
		CandidateCount: savedSearch.CandidateCount,
		NewMatches:     savedSearch.NewMatches,
		CreatedAt:      savedSearch.CreatedAt,
	}
	if savedSearch.LastRunAt.Valid {
		response.LastRunAt = &savedSearch.LastRunAt.Time
	}
	return response, nil
}

func validAlertFrequency(frequency string) bool {
	switch frequency {
	case tracker.FrequencyImmediate, tracker.FrequencyDaily, tracker.FrequencyWeekly:
		return true
	}
	return false
}

type createSavedSearchRequest struct {
	OwnerEmail     string              `json:"owner_email" binding:"required"`
	Name           string              `json:"name" binding:"required"`
	Criteria       match.QueryCriteria `json:"criteria"`
	AlertsEnabled  bool                `json:"alerts_enabled"`
	AlertFrequency string              `json:"alert_frequency"`
}

// @Schemes
// @Summary Create saved search
// @Description Save search criteria and baseline the current match set
// @Tags saved-searches
// @Accept json
// @Produce json
// @param CreateSavedSearchRequest body createSavedSearchRequest true "Saved search details"
// @Success 201 {object} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches [post]
// createSavedSearch handles saving search criteria. The current match set
// becomes the baseline so only future pool changes count as new matches.
func (server *Server) createSavedSearch(ctx *gin.Context) {
	var request createSavedSearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validation.ValidateEmail(request.OwnerEmail); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validation.ValidateStringLength(request.Name, 3, 100); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := request.Criteria.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if request.AlertFrequency == "" {
		request.AlertFrequency = tracker.FrequencyDaily
	}
	if !validAlertFrequency(request.AlertFrequency) {
		ctx.JSON(http.StatusBadRequest, errorResponse(invalidAlertFrequencyError))
		return
	}

	criteriaJSON, err := json.Marshal(request.Criteria)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	savedSearch, err := server.store.CreateSavedSearch(ctx, db.CreateSavedSearchParams{
		ID:             uuid.New(),
		OwnerID:        request.OwnerEmail,
		Name:           request.Name,
		Criteria:       criteriaJSON,
		IsActive:       true,
		AlertsEnabled:  request.AlertsEnabled,
		AlertFrequency: request.AlertFrequency,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// baseline the match set so the first tick only reports future changes
	pool, _, err := server.loadPool(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	matchIDs, err := match.MatchIDs(pool, request.Criteria)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	savedSearch, err = server.store.UpdateSavedSearchTracking(ctx, db.UpdateSavedSearchTrackingParams{
		ID:             savedSearch.ID,
		KnownMatchIds:  pq.Int32Array(matchIDs),
		CandidateCount: int32(len(matchIDs)),
		NewMatches:     0,
		LastRunAt:      sql.NullTime{Time: time.Now(), Valid: true},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response, err := newSavedSearchResponse(savedSearch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

type savedSearchUriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// @Schemes
// @Summary Get saved search
// @Description Get the saved search with the given ID
// @Tags saved-searches
// @Param id path string true "Saved search ID"
// @Produce json
// @Success 200 {object} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches/{id} [get]
// getSavedSearch handles getting a saved search with its tracking state
func (server *Server) getSavedSearch(ctx *gin.Context) {
	var request savedSearchUriRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	savedSearch, err := server.store.GetSavedSearch(ctx, uuid.MustParse(request.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response, err := newSavedSearchResponse(savedSearch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, response)
}

type listSavedSearchesRequest struct {
	OwnerEmail string `form:"owner_email" binding:"required"`
	Page       int32  `form:"page" binding:"required,min=1"`
	PageSize   int32  `form:"page_size" binding:"required,min=5,max=50"`
}

// @Schemes
// @Summary List saved searches
// @Description List the saved searches of the given owner
// @Tags saved-searches
// @Param owner_email query string true "Owner email"
// @Param page query integer true "Page number"
// @Param page_size query integer true "Page size"
// @Produce json
// @Success 200 {array} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches [get]
// listSavedSearches handles listing the saved searches of one owner
func (server *Server) listSavedSearches(ctx *gin.Context) {
	var request listSavedSearchesRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	savedSearches, err := server.store.ListSavedSearchesByOwner(ctx, db.ListSavedSearchesByOwnerParams{
		OwnerID: request.OwnerEmail,
		Limit:   request.PageSize,
		Offset:  (request.Page - 1) * request.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	responses := make([]savedSearchResponse, 0, len(savedSearches))
	for _, savedSearch := range savedSearches {
		response, err := newSavedSearchResponse(savedSearch)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
		responses = append(responses, response)
	}

	ctx.JSON(http.StatusOK, responses)
}

type updateSavedSearchRequest struct {
	Name     string              `json:"name" binding:"required"`
	Criteria match.QueryCriteria `json:"criteria"`
}

// @Schemes
// @Summary Update saved search
// @Description Update the name and criteria of a saved search and re-baseline its match set
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param id path string true "Saved search ID"
// @param UpdateSavedSearchRequest body updateSavedSearchRequest true "New name and criteria"
// @Success 200 {object} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches/{id} [patch]
// updateSavedSearch handles updating the criteria of a saved search.
// The match set is re-baselined because deltas against results of the old
// criteria would be meaningless.
func (server *Server) updateSavedSearch(ctx *gin.Context) {
	var uriRequest savedSearchUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request updateSavedSearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validation.ValidateStringLength(request.Name, 3, 100); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := request.Criteria.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	criteriaJSON, err := json.Marshal(request.Criteria)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	savedSearch, err := server.store.UpdateSavedSearchCriteria(ctx, db.UpdateSavedSearchCriteriaParams{
		ID:       uuid.MustParse(uriRequest.ID),
		Name:     request.Name,
		Criteria: criteriaJSON,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	pool, _, err := server.loadPool(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	matchIDs, err := match.MatchIDs(pool, request.Criteria)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	savedSearch, err = server.store.UpdateSavedSearchTracking(ctx, db.UpdateSavedSearchTrackingParams{
		ID:             savedSearch.ID,
		KnownMatchIds:  pq.Int32Array(matchIDs),
		CandidateCount: int32(len(matchIDs)),
		NewMatches:     0,
		LastRunAt:      sql.NullTime{Time: time.Now(), Valid: true},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response, err := newSavedSearchResponse(savedSearch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// @Schemes
// @Summary Delete saved search
// @Description Delete the saved search with the given ID
// @Tags saved-searches
// @Param id path string true "Saved search ID"
// @Produce json
// @Success 204 {null} null
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches/{id} [delete]
// deleteSavedSearch handles deleting a saved search
func (server *Server) deleteSavedSearch(ctx *gin.Context) {
	var request savedSearchUriRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	id := uuid.MustParse(request.ID)
	_, err := server.store.GetSavedSearch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.store.DeleteSavedSearch(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

// @Schemes
// @Summary Run saved search
// @Description Enqueue an immediate re-evaluation of the saved search
// @Tags saved-searches
// @Param id path string true "Saved search ID"
// @Produce json
// @Success 202 {object} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches/{id}/run [post]
// runSavedSearch handles enqueueing an immediate re-evaluation of the
// saved search against the current candidate pool.
func (server *Server) runSavedSearch(ctx *gin.Context) {
	var request savedSearchUriRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	id := uuid.MustParse(request.ID)
	savedSearch, err := server.store.GetSavedSearch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	payload := &worker.PayloadEvaluateSavedSearch{ID: id}
	err = server.distributor.DistributeTaskEvaluateSavedSearch(ctx, payload, asynq.Queue(worker.QueueCritical))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response, err := newSavedSearchResponse(savedSearch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusAccepted, response)
}

type setSavedSearchActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// @Schemes
// @Summary Pause or resume saved search
// @Description Toggle the active flag of a saved search. Reactivating re-baselines the match set.
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param id path string true "Saved search ID"
// @param SetSavedSearchActiveRequest body setSavedSearchActiveRequest true "New active state"
// @Success 200 {object} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches/{id}/active [patch]
// setSavedSearchActive handles pausing and resuming a saved search. On
// reactivation the match set is re-baselined so changes from the paused
// interval do not flood out as new matches.
func (server *Server) setSavedSearchActive(ctx *gin.Context) {
	var uriRequest savedSearchUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request setSavedSearchActiveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pool, _, err := server.loadPool(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	savedSearch, err := server.store.SetSavedSearchActiveTx(ctx, db.SetSavedSearchActiveTxParams{
		ID:       uuid.MustParse(uriRequest.ID),
		IsActive: *request.IsActive,
		Baseline: func(row db.SavedSearch) (db.UpdateSavedSearchTrackingParams, error) {
			var criteria match.QueryCriteria
			if len(row.Criteria) > 0 {
				if err := json.Unmarshal(row.Criteria, &criteria); err != nil {
					return db.UpdateSavedSearchTrackingParams{}, err
				}
			}

			matchIDs, err := match.MatchIDs(pool, criteria)
			if err != nil {
				return db.UpdateSavedSearchTrackingParams{}, err
			}

			return db.UpdateSavedSearchTrackingParams{
				ID:             row.ID,
				KnownMatchIds:  pq.Int32Array(matchIDs),
				CandidateCount: int32(len(matchIDs)),
				NewMatches:     0,
				LastRunAt:      sql.NullTime{Time: time.Now(), Valid: true},
			}, nil
		},
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response, err := newSavedSearchResponse(savedSearch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, response)
}

type setSavedSearchAlertsRequest struct {
	AlertsEnabled  *bool  `json:"alerts_enabled" binding:"required"`
	AlertFrequency string `json:"alert_frequency"`
}

// @Schemes
// @Summary Configure saved search alerts
// @Description Enable or disable alerts and set the alert frequency
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param id path string true "Saved search ID"
// @param SetSavedSearchAlertsRequest body setSavedSearchAlertsRequest true "New alert settings"
// @Success 200 {object} savedSearchResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /saved-searches/{id}/alerts [patch]
// setSavedSearchAlerts handles the alert settings of a saved search
func (server *Server) setSavedSearchAlerts(ctx *gin.Context) {
	var uriRequest savedSearchUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request setSavedSearchAlertsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if request.AlertFrequency == "" {
		request.AlertFrequency = tracker.FrequencyDaily
	}
	if !validAlertFrequency(request.AlertFrequency) {
		ctx.JSON(http.StatusBadRequest, errorResponse(invalidAlertFrequencyError))
		return
	}

	savedSearch, err := server.store.SetSavedSearchAlerts(ctx, db.SetSavedSearchAlertsParams{
		ID:             uuid.MustParse(uriRequest.ID),
		AlertsEnabled:  *request.AlertsEnabled,
		AlertFrequency: request.AlertFrequency,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response, err := newSavedSearchResponse(savedSearch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, response)
}
