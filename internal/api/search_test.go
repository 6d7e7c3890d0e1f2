package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	mockdb "github.com/talentbridge/go-talent-match/internal/db/mock"
	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
	"github.com/talentbridge/go-talent-match/internal/esearch"
	mockesearch "github.com/talentbridge/go-talent-match/internal/esearch/mock"
)

// candidateDetailsRow builds a pool row for the matching tests.
func candidateDetailsRow(id int32, name, city string, latitude, longitude, grade float64, skills ...string) db.CandidateDetailsRow {
	return db.CandidateDetailsRow{
		ID:              id,
		FullName:        name,
		City:            city,
		Country:         "Italy",
		Latitude:        sql.NullFloat64{Float64: latitude, Valid: true},
		Longitude:       sql.NullFloat64{Float64: longitude, Valid: true},
		Institution:     "Politecnico",
		InstitutionType: "university",
		Degree:          "Bachelor",
		Major:           "Computer Science",
		Grade:           sql.NullFloat64{Float64: grade, Valid: true},
		GraduationYear:  sql.NullInt32{Int32: 2023, Valid: true},
		Skills:          pq.StringArray(skills),
		Projects:        json.RawMessage(`[]`),
	}
}

func testPoolRows() []db.CandidateDetailsRow {
	return []db.CandidateDetailsRow{
		candidateDetailsRow(1, "Carla Bianchi", "Milan", 45.4642, 9.19, 95, "python", "sql"),
		candidateDetailsRow(2, "Marco Rossi", "Rome", 41.9028, 12.4964, 70, "java"),
	}
}

func TestSearchCandidatesAPI(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			query: "skills=python&page=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(1).
					Return(testPoolRows(), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				result := requireBodyMatchRankResult(t, recorder.Body)
				require.Len(t, result.Results, 1)
				require.Equal(t, int32(1), result.Results[0].Candidate.ID)
				require.Equal(t, 1, result.Stats.TotalMatches)
				require.Equal(t, 0, result.SkippedRecords)
			},
		},
		{
			name:  "Unnormalizable Rows Reported",
			query: "skills=python&page=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				// a grade outside every supported scale fails normalization
				rows := append(testPoolRows(),
					candidateDetailsRow(3, "Luca Verdi", "Turin", 45.0703, 7.6869, 150, "python"))
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				result := requireBodyMatchRankResult(t, recorder.Body)
				require.Equal(t, 1, result.SkippedRecords)
				// the bad row never reaches ranking
				require.Len(t, result.Results, 1)
				require.Equal(t, int32(1), result.Results[0].Candidate.ID)
			},
		},
		{
			name:  "Incomplete Location Filter",
			query: "latitude=45.46&page=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Invalid Radius",
			query: "latitude=45.46&longitude=9.19&radius_km=-5&page=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(1).
					Return(testPoolRows(), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Missing Page",
			query: "skills=python",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Internal Server Error",
			query: "skills=python&page=1&page_size=10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(1).
					Return(nil, sql.ErrConnDone)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("%s/candidates/search?%s", baseUrl, tc.query)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestAiSearchCandidatesAPI(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"query":     "python developer in milano",
				"page":      1,
				"page_size": 10,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(1).
					Return(testPoolRows(), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				response := requireBodyMatchAiSearch(t, recorder.Body)
				require.False(t, response.LowConfidence)
				require.Equal(t, []string{"python"}, response.Criteria.RequiredSkills)
				require.NotNil(t, response.Criteria.Location)
				require.Len(t, response.Results, 1)
				require.Equal(t, int32(1), response.Results[0].Candidate.ID)
			},
		},
		{
			name: "Low Confidence",
			body: gin.H{
				"query":     "xyzzy frobnicate",
				"page":      1,
				"page_size": 10,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(1).
					Return(testPoolRows(), nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				response := requireBodyMatchAiSearch(t, recorder.Body)
				require.True(t, response.LowConfidence)
				require.Empty(t, response.MatchedPhrases)
				// empty criteria matches the whole pool
				require.Len(t, response.Results, 2)
			},
		},
		{
			name: "Missing Query",
			body: gin.H{
				"page":      1,
				"page_size": 10,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCandidateDetails(gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := baseUrl + "/candidates/ai-search"
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestLookupCandidatesAPI(t *testing.T) {
	candidates := []esearch.Candidate{
		{ID: 1, FullName: "Carla Bianchi", City: "Milan", Skills: []string{"python"}},
	}

	testCases := []struct {
		name          string
		query         string
		buildStubs    func(client *mockesearch.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			query: "search=carla&page=1&page_size=10",
			buildStubs: func(client *mockesearch.MockESearchClient) {
				client.EXPECT().
					SearchCandidates(gomock.Any(), gomock.Eq("carla"), gomock.Eq(int32(1)), gomock.Eq(int32(10))).
					Times(1).
					Return(candidates, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "Missing Search",
			query: "page=1&page_size=10",
			buildStubs: func(client *mockesearch.MockESearchClient) {
				client.EXPECT().
					SearchCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Internal Server Error",
			query: "search=carla&page=1&page_size=10",
			buildStubs: func(client *mockesearch.MockESearchClient) {
				client.EXPECT().
					SearchCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, fmt.Errorf("elasticsearch is down"))
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mockesearch.NewMockESearchClient(ctrl)
			tc.buildStubs(client)

			server := newTestServer(t, nil, client, nil)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("%s/candidates/lookup?%s", baseUrl, tc.query)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func requireBodyMatchRankResult(t *testing.T, body *bytes.Buffer) searchCandidatesResponse {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var result searchCandidatesResponse
	err = json.Unmarshal(data, &result)
	require.NoError(t, err)
	return result
}

func requireBodyMatchAiSearch(t *testing.T, body *bytes.Buffer) aiSearchCandidatesResponse {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var response aiSearchCandidatesResponse
	err = json.Unmarshal(data, &response)
	require.NoError(t, err)
	return response
}
