package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentbridge/go-talent-match/pkg/utils"
)

func createRandomCandidate(t *testing.T) Candidate {
	params := CreateCandidateParams{
		FullName:        utils.RandomString(8),
		City:            utils.Cities[utils.RandomInt(0, int32(len(utils.Cities)-1))],
		Country:         "Italy",
		Latitude:        sql.NullFloat64{Float64: utils.RandomFloat(36.5, 46.5), Valid: true},
		Longitude:       sql.NullFloat64{Float64: utils.RandomFloat(7.0, 18.0), Valid: true},
		Institution:     utils.RandomString(10),
		InstitutionType: utils.InstitutionTypes[utils.RandomInt(0, int32(len(utils.InstitutionTypes)-1))],
		Degree:          utils.Degrees[utils.RandomInt(0, int32(len(utils.Degrees)-1))],
		Major:           utils.Majors[utils.RandomInt(0, int32(len(utils.Majors)-1))],
		Grade:           sql.NullFloat64{Float64: utils.RandomFloat(60, 100), Valid: true},
		GraduationYear:  sql.NullInt32{Int32: utils.RandomInt(2015, 2025), Valid: true},
	}

	candidate, err := testQueries.CreateCandidate(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, candidate)
	require.NotZero(t, candidate.ID)
	require.Equal(t, params.FullName, candidate.FullName)
	require.Equal(t, params.City, candidate.City)
	require.Equal(t, params.InstitutionType, candidate.InstitutionType)
	require.Equal(t, params.Grade, candidate.Grade)

	return candidate
}

func createRandomCandidateSkill(t *testing.T, candidate Candidate) CandidateSkill {
	params := CreateCandidateSkillParams{
		CandidateID: candidate.ID,
		Skill:       utils.Skills[utils.RandomInt(0, int32(len(utils.Skills)-1))],
	}

	skill, err := testQueries.CreateCandidateSkill(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, skill)
	require.Equal(t, candidate.ID, skill.CandidateID)
	require.Equal(t, params.Skill, skill.Skill)

	return skill
}

func createRandomCandidateProject(t *testing.T, candidate Candidate) CandidateProject {
	titles := utils.GenerateProjectTitles()
	params := CreateCandidateProjectParams{
		CandidateID: candidate.ID,
		Title:       titles[utils.RandomInt(0, int32(len(titles)-1))],
		Category:    utils.Categories[utils.RandomInt(0, int32(len(utils.Categories)-1))],
		Score:       sql.NullFloat64{Float64: utils.RandomFloat(0, 100), Valid: true},
		Verified:    true,
	}

	project, err := testQueries.CreateCandidateProject(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, project)
	require.Equal(t, candidate.ID, project.CandidateID)
	require.Equal(t, params.Title, project.Title)

	return project
}

func TestQueries_CreateCandidate(t *testing.T) {
	createRandomCandidate(t)
}

func TestQueries_GetCandidate(t *testing.T) {
	candidate := createRandomCandidate(t)

	candidate2, err := testQueries.GetCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)
	require.NotEmpty(t, candidate2)
	require.Equal(t, candidate.ID, candidate2.ID)
	require.Equal(t, candidate.FullName, candidate2.FullName)
	require.Equal(t, candidate.City, candidate2.City)
	require.Equal(t, candidate.GraduationYear, candidate2.GraduationYear)
}

func TestQueries_DeleteCandidate(t *testing.T) {
	candidate := createRandomCandidate(t)

	err := testQueries.DeleteCandidate(context.Background(), candidate.ID)
	require.NoError(t, err)

	candidate2, err := testQueries.GetCandidate(context.Background(), candidate.ID)
	require.Error(t, err)
	require.EqualError(t, err, sql.ErrNoRows.Error())
	require.Empty(t, candidate2)
}

func TestQueries_ListCandidates(t *testing.T) {
	for i := 0; i < 10; i++ {
		createRandomCandidate(t)
	}

	params := ListCandidatesParams{
		Limit:  5,
		Offset: 5,
	}

	candidates, err := testQueries.ListCandidates(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, candidates, 5)
	for _, candidate := range candidates {
		require.NotEmpty(t, candidate)
	}
}

func TestQueries_CountCandidates(t *testing.T) {
	createRandomCandidate(t)

	count, err := testQueries.CountCandidates(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, int64(1))
}

func TestQueries_ListCandidateSkillsByCandidateID(t *testing.T) {
	candidate := createRandomCandidate(t)
	skill := createRandomCandidateSkill(t, candidate)

	skills, err := testQueries.ListCandidateSkillsByCandidateID(context.Background(), candidate.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	require.Equal(t, skill.Skill, skills[0].Skill)
}

func TestQueries_ListCandidateProjectsByCandidateID(t *testing.T) {
	candidate := createRandomCandidate(t)
	project := createRandomCandidateProject(t, candidate)

	projects, err := testQueries.ListCandidateProjectsByCandidateID(context.Background(), candidate.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, project.Title, projects[0].Title)
	require.Equal(t, project.Category, projects[0].Category)
}
