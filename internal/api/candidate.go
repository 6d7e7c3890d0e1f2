package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/esearch"
	"github.com/talentbridge/go-talent-match/internal/match"
	"github.com/talentbridge/go-talent-match/internal/tracker"
	"github.com/talentbridge/go-talent-match/internal/worker"
)

type projectRequest struct {
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category"`
	Score    *float64 `json:"score"`
	Verified bool     `json:"verified"`
}

type createCandidateRequest struct {
	FullName        string           `json:"full_name" binding:"required"`
	City            string           `json:"city"`
	Country         string           `json:"country"`
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	Institution     string           `json:"institution"`
	InstitutionType string           `json:"institution_type"`
	Degree          string           `json:"degree"`
	Major           string           `json:"major"`
	Grade           *float64         `json:"grade"`
	GraduationYear  *int32           `json:"graduation_year"`
	Skills          []string         `json:"skills"`
	Projects        []projectRequest `json:"projects"`
}

type candidateResponse struct {
	ID              int32                 `json:"id"`
	FullName        string                `json:"full_name"`
	City            string                `json:"city"`
	Country         string                `json:"country"`
	Institution     string                `json:"institution"`
	InstitutionType string                `json:"institution_type"`
	Degree          string                `json:"degree"`
	Major           string                `json:"major"`
	Grade           *float64              `json:"grade,omitempty"`
	GraduationYear  *int32                `json:"graduation_year,omitempty"`
	Skills          []string              `json:"skills"`
	Projects        []db.CandidateProject `json:"projects"`
}

// newCandidateResponse creates a candidate response from a db.Candidate
// with its skills and projects
func newCandidateResponse(candidate db.Candidate, skills []db.CandidateSkill, projects []db.CandidateProject) candidateResponse {
	response := candidateResponse{
		ID:              candidate.ID,
		FullName:        candidate.FullName,
		City:            candidate.City,
		Country:         candidate.Country,
		Institution:     candidate.Institution,
		InstitutionType: candidate.InstitutionType,
		Degree:          candidate.Degree,
		Major:           candidate.Major,
		Skills:          []string{},
		Projects:        projects,
	}
	if candidate.Grade.Valid {
		response.Grade = &candidate.Grade.Float64
	}
	if candidate.GraduationYear.Valid {
		response.GraduationYear = &candidate.GraduationYear.Int32
	}
	for _, skill := range skills {
		response.Skills = append(response.Skills, skill.Skill)
	}
	return response
}

// @Schemes
// @Summary Create candidate
// @Description Ingest a new candidate profile with skills and projects
// @Tags candidates
// @Accept json
// @Produce json
// @param CreateCandidateRequest body createCandidateRequest true "Candidate details"
// @Success 201 {object} candidateResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /candidates [post]
// createCandidate handles ingesting a candidate profile - candidate with
// skills and projects
func (server *Server) createCandidate(ctx *gin.Context) {
	var request createCandidateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// reject grades outside every supported scale before touching the db
	if request.Grade != nil {
		if _, err := match.NormalizeGrade(*request.Grade); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	params := db.CreateCandidateProfileTxParams{
		CreateCandidateParams: db.CreateCandidateParams{
			FullName:        request.FullName,
			City:            request.City,
			Country:         request.Country,
			Institution:     request.Institution,
			InstitutionType: request.InstitutionType,
			Degree:          request.Degree,
			Major:           request.Major,
		},
		Skills: request.Skills,
	}
	if request.Latitude != nil {
		params.Latitude = sql.NullFloat64{Float64: *request.Latitude, Valid: true}
	}
	if request.Longitude != nil {
		params.Longitude = sql.NullFloat64{Float64: *request.Longitude, Valid: true}
	}
	if request.Grade != nil {
		params.Grade = sql.NullFloat64{Float64: *request.Grade, Valid: true}
	}
	if request.GraduationYear != nil {
		params.GraduationYear = sql.NullInt32{Int32: *request.GraduationYear, Valid: true}
	}
	for _, project := range request.Projects {
		p := db.CreateCandidateProjectParams{
			Title:    project.Title,
			Category: project.Category,
			Verified: project.Verified,
		}
		if project.Score != nil {
			p.Score = sql.NullFloat64{Float64: *project.Score, Valid: true}
		}
		params.Projects = append(params.Projects, p)
	}

	result, err := server.store.CreateCandidateProfileTx(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// index the new profile so full text lookup sees it
	document := esearch.Candidate{
		ID:              result.Candidate.ID,
		FullName:        result.Candidate.FullName,
		City:            result.Candidate.City,
		Country:         result.Candidate.Country,
		Institution:     result.Candidate.Institution,
		InstitutionType: result.Candidate.InstitutionType,
		Degree:          result.Candidate.Degree,
		Major:           result.Candidate.Major,
		Skills:          request.Skills,
	}
	for _, project := range request.Projects {
		document.ProjectTitles = append(document.ProjectTitles, project.Title)
	}

	err = server.client.IndexCandidateAsDocument(int(result.Candidate.ID), document)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// a new profile is a new potential match: re-run every active saved
	// search with immediate alerts
	searches, err := server.store.ListActiveSavedSearchesByFrequency(ctx, tracker.FrequencyImmediate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	for _, search := range searches {
		payload := &worker.PayloadEvaluateSavedSearch{ID: search.ID}
		err = server.distributor.DistributeTaskEvaluateSavedSearch(ctx, payload, asynq.Queue(worker.QueueCritical))
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
	}

	ctx.JSON(http.StatusCreated, newCandidateResponse(result.Candidate, result.Skills, result.Projects))
}

type candidateUriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// @Schemes
// @Summary Get candidate
// @Description Get the candidate with the given ID
// @Tags candidates
// @Param id path integer true "Candidate ID"
// @Produce json
// @Success 200 {object} candidateResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /candidates/{id} [get]
// getCandidate handles getting a candidate profile with skills and projects
func (server *Server) getCandidate(ctx *gin.Context) {
	var request candidateUriRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	candidate, skills, projects, err := server.store.GetCandidateDetails(ctx, request.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, newCandidateResponse(candidate, skills, projects))
}

// @Schemes
// @Summary Delete candidate
// @Description Delete the candidate with the given ID
// @Tags candidates
// @Param id path integer true "Candidate ID"
// @Produce json
// @Success 204 {null} null
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /candidates/{id} [delete]
// deleteCandidate handles deleting a candidate profile and its search document
func (server *Server) deleteCandidate(ctx *gin.Context) {
	var request candidateUriRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	candidate, err := server.store.GetCandidate(ctx, request.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	documentID, err := server.client.GetDocumentIDByCandidateID(int(candidate.ID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.client.DeleteCandidateDocument(documentID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.store.DeleteCandidate(ctx, request.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}
