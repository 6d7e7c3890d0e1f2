package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// the scenario pool: Carol and Alice in Rome, Bob in Milan
func scenarioPool() []CandidateRecord {
	return []CandidateRecord{
		{
			ID:       2,
			Name:     "Alice",
			City:     "Rome",
			Location: &Coordinates{Latitude: 41.9028, Longitude: 12.4964},
			Skills:   []string{"python", "sql"},
			Grade:    floatPtr(85),
		},
		{
			ID:       3,
			Name:     "Bob",
			City:     "Milan",
			Location: &Coordinates{Latitude: 45.4642, Longitude: 9.1900},
			Skills:   []string{"java"},
			Grade:    floatPtr(60),
		},
		{
			ID:       1,
			Name:     "Carol",
			City:     "Rome",
			Location: &Coordinates{Latitude: 41.9028, Longitude: 12.4964},
			Skills:   []string{"python"},
			Grade:    floatPtr(95),
		},
	}
}

func scenarioCriteria() QueryCriteria {
	return QueryCriteria{
		RequiredSkills: []string{"python"},
		Location:       &LocationFilter{Center: rome, RadiusKm: 50},
		MinGrade:       floatPtr(80),
	}
}

func TestRankScenario(t *testing.T) {
	result, err := Rank(scenarioPool(), scenarioCriteria(), 1, 10)
	require.NoError(t, err)

	// Carol and Alice both pass with full soft scores; Bob shares no
	// required skill and is out of the set entirely
	require.Len(t, result.Results, 2)
	require.Equal(t, "Carol", result.Results[0].Candidate.Name)
	require.Equal(t, "Alice", result.Results[1].Candidate.Name)

	require.Equal(t, 1.0, result.Results[0].OverallScore)
	require.Equal(t, 1.0, result.Results[1].OverallScore)
}

func TestRankDeterminism(t *testing.T) {
	pool := scenarioPool()
	criteria := scenarioCriteria()

	first, err := Rank(pool, criteria, 1, 2)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Rank(pool, criteria, 1, 2)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRankTieBreakOnID(t *testing.T) {
	// identical candidates except for id: order must be id ascending
	pool := []CandidateRecord{
		{ID: 5, Name: "E", Skills: []string{"go"}},
		{ID: 2, Name: "B", Skills: []string{"go"}},
		{ID: 9, Name: "I", Skills: []string{"go"}},
	}

	result, err := Rank(pool, QueryCriteria{RequiredSkills: []string{"go"}}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Results, 3)
	require.Equal(t, int32(2), result.Results[0].Candidate.ID)
	require.Equal(t, int32(5), result.Results[1].Candidate.ID)
	require.Equal(t, int32(9), result.Results[2].Candidate.ID)
}

func TestRankPagination(t *testing.T) {
	var pool []CandidateRecord
	for i := int32(1); i <= 25; i++ {
		pool = append(pool, CandidateRecord{ID: i, Name: "c", Skills: []string{"go"}})
	}
	criteria := QueryCriteria{RequiredSkills: []string{"go"}}

	page1, err := Rank(pool, criteria, 1, 10)
	require.NoError(t, err)
	require.Len(t, page1.Results, 10)

	page3, err := Rank(pool, criteria, 3, 10)
	require.NoError(t, err)
	require.Len(t, page3.Results, 5)

	// out of range pages are empty, not an error
	page4, err := Rank(pool, criteria, 4, 10)
	require.NoError(t, err)
	require.Empty(t, page4.Results)

	// stats ignore pagination
	require.Equal(t, 25, page1.Stats.TotalMatches)
	require.Equal(t, page1.Stats, page3.Stats)
	require.Equal(t, page1.Stats, page4.Stats)
}

func TestRankHardFilterExclusivity(t *testing.T) {
	pool := []CandidateRecord{
		{ID: 1, Name: "Bachelor", Degree: "Bachelor", Skills: []string{"python"}, Grade: floatPtr(100)},
		{ID: 2, Name: "Master", Degree: "Master", Skills: []string{"python"}, Grade: floatPtr(60)},
	}

	result, err := Rank(pool, QueryCriteria{Degree: "Master", RequiredSkills: []string{"python"}}, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	require.Equal(t, int32(2), result.Results[0].Candidate.ID)
}

func TestRankLocationMonotonicity(t *testing.T) {
	pool := scenarioPool()

	countPositive := func(radius float64) int {
		criteria := QueryCriteria{Location: &LocationFilter{Center: rome, RadiusKm: radius}}
		result, err := Rank(pool, criteria, 1, 10)
		require.NoError(t, err)
		n := 0
		for _, r := range result.Results {
			if r.DimensionScores[DimensionLocation] > 0 {
				n++
			}
		}
		return n
	}

	previous := 0
	for _, radius := range []float64{10, 100, 250, 500, 1000} {
		n := countPositive(radius)
		require.GreaterOrEqual(t, n, previous)
		previous = n
	}
}

func TestRankStats(t *testing.T) {
	pool := []CandidateRecord{
		{ID: 1, Name: "a", City: "Rome", InstitutionKind: InstitutionUniversity, Grade: floatPtr(92)},
		{ID: 2, Name: "b", City: "Rome", InstitutionKind: InstitutionUniversity, Grade: floatPtr(85)},
		{ID: 3, Name: "c", City: "Milan", InstitutionKind: InstitutionVocational, Grade: floatPtr(74)},
		{ID: 4, Name: "d", City: "Milan", InstitutionKind: InstitutionUniversity, Grade: floatPtr(61)},
		{ID: 5, Name: "e", City: "Turin", InstitutionKind: InstitutionAny},
	}

	result, err := Rank(pool, QueryCriteria{}, 1, 2)
	require.NoError(t, err)

	stats := result.Stats
	require.Equal(t, 5, stats.TotalMatches)
	require.Equal(t, 2, stats.CountByCity["Rome"])
	require.Equal(t, 2, stats.CountByCity["Milan"])
	require.Equal(t, 1, stats.CountByCity["Turin"])
	require.Equal(t, 3, stats.CountByInstitutionType[string(InstitutionUniversity)])
	require.Equal(t, 1, stats.CountByInstitutionType[string(InstitutionVocational)])
	require.Equal(t, 1, stats.GradeBands[GradeBand90Plus])
	require.Equal(t, 1, stats.GradeBands[GradeBand80s])
	require.Equal(t, 1, stats.GradeBands[GradeBand70s])
	require.Equal(t, 1, stats.GradeBands[GradeBand60s])
	require.Equal(t, 1.0, stats.AverageMatchScore)
}

func TestRankNoSurvivors(t *testing.T) {
	result, err := Rank(scenarioPool(), QueryCriteria{Degree: "PhD"}, 1, 10)

	// no matches is a valid outcome, not a failure
	require.NoError(t, err)
	require.Empty(t, result.Results)
	require.Equal(t, 0, result.Stats.TotalMatches)
	require.Equal(t, 0.0, result.Stats.AverageMatchScore)
}

func TestRankInvalidCriteria(t *testing.T) {
	_, err := Rank(scenarioPool(), QueryCriteria{MinGrade: floatPtr(130)}, 1, 10)
	require.Error(t, err)

	_, err = Rank(scenarioPool(), QueryCriteria{}, 0, 10)
	require.Error(t, err)

	_, err = Rank(scenarioPool(), QueryCriteria{}, 1, 0)
	require.Error(t, err)
}

func TestMatchIDs(t *testing.T) {
	ids, err := MatchIDs(scenarioPool(), scenarioCriteria())
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2}, ids)
}
