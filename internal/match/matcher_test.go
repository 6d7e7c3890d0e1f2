package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func int32Ptr(v int32) *int32 { return &v }

func testCandidate() CandidateRecord {
	return CandidateRecord{
		ID:              1,
		Name:            "Ada Rossi",
		City:            "Rome",
		Country:         "Italy",
		Location:        &Coordinates{Latitude: 41.9028, Longitude: 12.4964},
		Institution:     "Sapienza",
		InstitutionKind: InstitutionUniversity,
		Degree:          "Master",
		Major:           "Computer Science",
		Grade:           floatPtr(85),
		GraduationYear:  int32Ptr(2024),
		Skills:          []string{"python", "sql"},
		Projects: []Project{
			{Title: "Recommendation Engine", Category: "ml"},
		},
	}
}

func TestEvaluateEmptyCriteria(t *testing.T) {
	result, ok := Evaluate(testCandidate(), QueryCriteria{})
	require.True(t, ok)

	// an empty query matches every candidate with full score
	require.Equal(t, 1.0, result.OverallScore)
	require.Empty(t, result.DimensionScores)
}

func TestEvaluateSkills(t *testing.T) {
	candidate := testCandidate()

	result, ok := Evaluate(candidate, QueryCriteria{RequiredSkills: []string{"Python", "go"}})
	require.True(t, ok)
	require.Equal(t, 1.0, result.DimensionScores[DimensionSkills])

	// matchAll gives partial credit per matched skill
	result, ok = Evaluate(candidate, QueryCriteria{
		RequiredSkills: []string{"python", "go"},
		MatchAllSkills: true,
	})
	require.True(t, ok)
	require.Equal(t, 0.5, result.DimensionScores[DimensionSkills])

	// sharing no required skill excludes the candidate entirely
	_, ok = Evaluate(candidate, QueryCriteria{RequiredSkills: []string{"java"}})
	require.False(t, ok)
}

func TestEvaluateSkillsOnlyRenormalization(t *testing.T) {
	criteria := QueryCriteria{
		RequiredSkills: []string{"python", "go", "rust", "java"},
		MatchAllSkills: true,
	}

	result, ok := Evaluate(testCandidate(), criteria)
	require.True(t, ok)

	// with a single present dimension the overall score equals the sub-score
	require.Equal(t, result.DimensionScores[DimensionSkills], result.OverallScore)
	require.Equal(t, 0.25, result.OverallScore)
}

func TestEvaluateLocation(t *testing.T) {
	candidate := testCandidate()
	center := Coordinates{Latitude: 41.9028, Longitude: 12.4964}

	// inside the radius
	result, ok := Evaluate(candidate, QueryCriteria{
		Location: &LocationFilter{Center: center, RadiusKm: 50},
	})
	require.True(t, ok)
	require.Equal(t, 1.0, result.DimensionScores[DimensionLocation])

	// Milan center, small radius: Rome is far beyond twice the radius
	result, ok = Evaluate(candidate, QueryCriteria{
		Location: &LocationFilter{Center: milan, RadiusKm: 50},
	})
	require.True(t, ok)
	require.Equal(t, 0.0, result.DimensionScores[DimensionLocation])

	// roughly 477 km away with a 300 km radius lands in the decay zone
	result, ok = Evaluate(candidate, QueryCriteria{
		Location: &LocationFilter{Center: milan, RadiusKm: 300},
	})
	require.True(t, ok)
	score := result.DimensionScores[DimensionLocation]
	require.Greater(t, score, 0.0)
	require.Less(t, score, 1.0)
}

func TestEvaluateLocationUnknown(t *testing.T) {
	candidate := testCandidate()
	candidate.Location = nil

	result, ok := Evaluate(candidate, QueryCriteria{
		RequiredSkills: []string{"python"},
		Location:       &LocationFilter{Center: rome, RadiusKm: 50},
	})
	require.True(t, ok)

	// unknown location is excluded from the weighted average, not scored 0
	_, present := result.DimensionScores[DimensionLocation]
	require.False(t, present)
	require.Equal(t, 1.0, result.OverallScore)
}

func TestEvaluateGrade(t *testing.T) {
	candidate := testCandidate()

	result, ok := Evaluate(candidate, QueryCriteria{MinGrade: floatPtr(80)})
	require.True(t, ok)
	require.Equal(t, 1.0, result.DimensionScores[DimensionGrade])

	// below the threshold the score decays with the shortfall
	result, ok = Evaluate(candidate, QueryCriteria{MinGrade: floatPtr(90)})
	require.True(t, ok)
	require.InDelta(t, 1.0-(90.0-85.0)/90.0, result.DimensionScores[DimensionGrade], 0.0001)
}

func TestEvaluateText(t *testing.T) {
	result, ok := Evaluate(testCandidate(), QueryCriteria{
		FreeTextTerms: []string{"sapienza", "recommendation", "berlin"},
	})
	require.True(t, ok)
	require.InDelta(t, 2.0/3.0, result.DimensionScores[DimensionText], 0.0001)
}

func TestEvaluateHardFilters(t *testing.T) {
	candidate := testCandidate()

	testCases := []struct {
		name     string
		criteria QueryCriteria
		pass     bool
	}{
		{name: "degree match", criteria: QueryCriteria{Degree: "master"}, pass: true},
		{name: "degree mismatch", criteria: QueryCriteria{Degree: "Bachelor"}, pass: false},
		{name: "major mismatch", criteria: QueryCriteria{Major: "Physics"}, pass: false},
		{name: "graduation year match", criteria: QueryCriteria{GraduationYear: int32Ptr(2024)}, pass: true},
		{name: "graduation year mismatch", criteria: QueryCriteria{GraduationYear: int32Ptr(2020)}, pass: false},
		{name: "institution type match", criteria: QueryCriteria{InstitutionKind: InstitutionUniversity}, pass: true},
		{name: "institution type mismatch", criteria: QueryCriteria{InstitutionKind: InstitutionVocational}, pass: false},
		{name: "institution type any", criteria: QueryCriteria{InstitutionKind: InstitutionAny}, pass: true},
		{name: "min projects met", criteria: QueryCriteria{MinProjects: 1}, pass: true},
		{name: "min projects unmet", criteria: QueryCriteria{MinProjects: 3}, pass: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Evaluate(candidate, tc.criteria)
			require.Equal(t, tc.pass, ok)
		})
	}
}

func TestEvaluateHardFilterBeatsSoftScores(t *testing.T) {
	// perfect soft scores cannot save a candidate from a failed gate
	criteria := QueryCriteria{
		Degree:         "Bachelor",
		RequiredSkills: []string{"python"},
		MinGrade:       floatPtr(50),
	}

	_, ok := Evaluate(testCandidate(), criteria)
	require.False(t, ok)
}

func TestEvaluateDeterministic(t *testing.T) {
	criteria := QueryCriteria{
		RequiredSkills: []string{"python"},
		Location:       &LocationFilter{Center: milan, RadiusKm: 300},
		MinGrade:       floatPtr(90),
		FreeTextTerms:  []string{"sapienza"},
	}

	first, ok := Evaluate(testCandidate(), criteria)
	require.True(t, ok)
	require.Len(t, first.DimensionScores, 4)

	// the weighted sum must accumulate in a fixed order; with all four
	// dimensions present a map-ordered sum drifts within a few iterations
	for i := 0; i < 10000; i++ {
		again, ok := Evaluate(testCandidate(), criteria)
		require.True(t, ok)
		require.Equal(t, first.OverallScore, again.OverallScore)
		require.Equal(t, first, again)
	}
}

func TestEvaluateDuplicateRequiredSkills(t *testing.T) {
	// duplicates in the required list must not inflate the denominator
	result, ok := Evaluate(testCandidate(), QueryCriteria{
		RequiredSkills: []string{"Python", "python"},
		MatchAllSkills: true,
	})
	require.True(t, ok)
	require.Equal(t, 1.0, result.DimensionScores[DimensionSkills])
}

func TestEvaluateMatchedOn(t *testing.T) {
	result, ok := Evaluate(testCandidate(), QueryCriteria{
		RequiredSkills: []string{"python", "sql"},
		MinGrade:       floatPtr(80),
	})
	require.True(t, ok)

	require.Equal(t, []string{
		"skills: python, sql",
		"grade: 85.0 (minimum 80.0)",
	}, result.MatchedOn)
}

func TestValidateCriteria(t *testing.T) {
	require.NoError(t, QueryCriteria{}.Validate())

	err := QueryCriteria{Location: &LocationFilter{Center: rome, RadiusKm: 0}}.Validate()
	require.Error(t, err)
	var cErr *InvalidCriteriaError
	require.ErrorAs(t, err, &cErr)

	require.Error(t, QueryCriteria{MinGrade: floatPtr(101)}.Validate())
	require.Error(t, QueryCriteria{MinGrade: floatPtr(-1)}.Validate())
	require.Error(t, QueryCriteria{MinProjects: -1}.Validate())
	require.Error(t, QueryCriteria{InstitutionKind: "technical"}.Validate())
	require.NoError(t, QueryCriteria{MinGrade: floatPtr(0)}.Validate())
}
