package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/talentbridge/go-talent-match/internal/match"
)

type searchCandidatesRequest struct {
	Skills          []string `form:"skills"`
	MatchAllSkills  bool     `form:"match_all_skills"`
	Latitude        *float64 `form:"latitude"`
	Longitude       *float64 `form:"longitude"`
	RadiusKm        *float64 `form:"radius_km"`
	MinGrade        *float64 `form:"min_grade"`
	Degree          string   `form:"degree"`
	Major           string   `form:"major"`
	GraduationYear  *int32   `form:"graduation_year"`
	InstitutionType string   `form:"institution_type"`
	MinProjects     int      `form:"min_projects"`
	Terms           []string `form:"terms"`
	Page            int      `form:"page" binding:"required,min=1"`
	PageSize        int      `form:"page_size" binding:"required,min=5,max=50"`
}

var incompleteLocationError = errors.New("latitude, longitude and radius_km must be provided together")

// searchCandidatesResponse is a ranking result plus the number of pool
// records that failed normalization and were left out of it.
type searchCandidatesResponse struct {
	match.RankResult
	SkippedRecords int `json:"skipped_records"`
}

// criteria builds the matching criteria from the request parameters.
func (request searchCandidatesRequest) criteria() (match.QueryCriteria, error) {
	criteria := match.QueryCriteria{
		FreeTextTerms:   request.Terms,
		RequiredSkills:  request.Skills,
		MatchAllSkills:  request.MatchAllSkills,
		MinGrade:        request.MinGrade,
		Degree:          request.Degree,
		Major:           request.Major,
		GraduationYear:  request.GraduationYear,
		InstitutionKind: match.InstitutionType(request.InstitutionType),
		MinProjects:     request.MinProjects,
	}

	provided := 0
	for _, p := range []bool{request.Latitude != nil, request.Longitude != nil, request.RadiusKm != nil} {
		if p {
			provided++
		}
	}
	if provided != 0 && provided != 3 {
		return match.QueryCriteria{}, incompleteLocationError
	}
	if provided == 3 {
		criteria.Location = &match.LocationFilter{
			Center: match.Coordinates{
				Latitude:  *request.Latitude,
				Longitude: *request.Longitude,
			},
			RadiusKm: *request.RadiusKm,
		}
	}

	return criteria, nil
}

// @Schemes
// @Summary Search candidates
// @Description Search and rank candidates with structured criteria
// @Tags search
// @Param skills query []string false "Required skills"
// @Param match_all_skills query boolean false "Require all skills instead of any"
// @Param latitude query number false "Location filter latitude"
// @Param longitude query number false "Location filter longitude"
// @Param radius_km query number false "Location filter radius in km"
// @Param min_grade query number false "Minimum normalized grade (0-100)"
// @Param degree query string false "Required degree"
// @Param major query string false "Required major"
// @Param graduation_year query integer false "Required graduation year"
// @Param institution_type query string false "Required institution type"
// @Param min_projects query integer false "Minimum number of projects"
// @Param terms query []string false "Free text terms"
// @Param page query integer true "Page number"
// @Param page_size query integer true "Page size"
// @Produce json
// @Success 200 {object} searchCandidatesResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /candidates/search [get]
// searchCandidates handles ranking the candidate pool against structured
// search criteria.
func (server *Server) searchCandidates(ctx *gin.Context) {
	var request searchCandidatesRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	criteria, err := request.criteria()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	pool, skipped, err := server.loadPool(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	result, err := match.Rank(pool, criteria, request.Page, request.PageSize)
	if err != nil {
		var invalidCriteria *match.InvalidCriteriaError
		if errors.As(err, &invalidCriteria) {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, searchCandidatesResponse{
		RankResult:     result,
		SkippedRecords: skipped,
	})
}

type aiSearchCandidatesRequest struct {
	Query    string `json:"query" binding:"required"`
	Page     int    `json:"page" binding:"required,min=1"`
	PageSize int    `json:"page_size" binding:"required,min=5,max=50"`
}

type aiSearchCandidatesResponse struct {
	Criteria       match.QueryCriteria `json:"criteria"`
	MatchedPhrases []string            `json:"matched_phrases"`
	LowConfidence  bool                `json:"low_confidence"`
	Results        []match.MatchResult `json:"results"`
	Stats          match.Stats         `json:"stats"`
	SkippedRecords int                 `json:"skipped_records"`
}

// @Schemes
// @Summary AI search candidates
// @Description Extract structured criteria from a free text query and rank the candidate pool against them
// @Tags search
// @Accept json
// @Produce json
// @param AiSearchCandidatesRequest body aiSearchCandidatesRequest true "Free text query"
// @Success 200 {object} aiSearchCandidatesResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /candidates/ai-search [post]
// aiSearchCandidates handles mapping a free text query onto search criteria
// and ranking the candidate pool against them.
func (server *Server) aiSearchCandidates(ctx *gin.Context) {
	var request aiSearchCandidatesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	extraction := server.extractor.Extract(request.Query)

	pool, skipped, err := server.loadPool(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	result, err := match.Rank(pool, extraction.Criteria, request.Page, request.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, aiSearchCandidatesResponse{
		Criteria:       extraction.Criteria,
		MatchedPhrases: extraction.MatchedPhrases,
		LowConfidence:  extraction.LowConfidence,
		Results:        result.Results,
		Stats:          result.Stats,
		SkippedRecords: skipped,
	})
}

type lookupCandidatesRequest struct {
	Search   string `form:"search" binding:"required"`
	Page     int32  `form:"page" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=15"`
}

// @Schemes
// @Summary Lookup candidates
// @Description Full text candidate lookup with elasticsearch.
// @Tags search
// @Param page query integer true "Page number"
// @Param page_size query integer true "Page size"
// @Param search query string true "Search query"
// @Produce json
// @Success 200 {array} []esearch.Candidate
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /candidates/lookup [get]
// lookupCandidates handles full text candidate lookup with elasticsearch.
// Function uses esearch package that is an implementation of
// elasticsearch in this application.
func (server *Server) lookupCandidates(ctx *gin.Context) {
	var request lookupCandidatesRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	candidates, err := server.client.SearchCandidates(ctx, request.Search, request.Page, request.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// loadPool fetches the candidate pool and normalizes it into the shape the
// matching engine consumes. Records that fail normalization are skipped and
// tallied, never dropped silently.
func (server *Server) loadPool(ctx *gin.Context) ([]match.CandidateRecord, int, error) {
	rows, err := server.store.ListCandidateDetails(ctx)
	if err != nil {
		return nil, 0, err
	}

	raws := make([]match.RawRecord, 0, len(rows))
	for _, row := range rows {
		raw, err := row.ToRawRecord()
		if err != nil {
			return nil, 0, err
		}
		raws = append(raws, raw)
	}

	pool, skipped := match.NormalizeAll(raws)
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("records skipped during normalization")
	}
	return pool, skipped, nil
}
