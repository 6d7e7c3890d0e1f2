package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/talentbridge/go-talent-match/internal/match"
)

type Store interface {
	Querier
	CreateCandidateProfileTx(ctx context.Context, arg CreateCandidateProfileTxParams) (CreateCandidateProfileTxResult, error)
	GetCandidateDetails(ctx context.Context, id int32) (Candidate, []CandidateSkill, []CandidateProject, error)
	ListCandidateDetails(ctx context.Context) ([]CandidateDetailsRow, error)
	EvaluateSavedSearchTx(ctx context.Context, arg EvaluateSavedSearchTxParams) (SavedSearch, error)
	SetSavedSearchActiveTx(ctx context.Context, arg SetSavedSearchActiveTxParams) (SavedSearch, error)
	ExecTx(ctx context.Context, fn func(*Queries) error) error
}

// SQLStore provides all functions to execute db queries and transactions
type SQLStore struct {
	*Queries
	db *sql.DB
}

// NewStore creates a new Store
func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

type CreateCandidateProfileTxParams struct {
	CreateCandidateParams
	Skills   []string
	Projects []CreateCandidateProjectParams
}

type CreateCandidateProfileTxResult struct {
	Candidate Candidate
	Skills    []CandidateSkill
	Projects  []CandidateProject
}

// CreateCandidateProfileTx creates a candidate with its skills and projects
// in one transaction.
func (store *SQLStore) CreateCandidateProfileTx(ctx context.Context, arg CreateCandidateProfileTxParams) (CreateCandidateProfileTxResult, error) {
	var result CreateCandidateProfileTxResult

	err := store.ExecTx(ctx, func(q *Queries) error {
		var err error

		result.Candidate, err = q.CreateCandidate(ctx, arg.CreateCandidateParams)
		if err != nil {
			return err
		}

		for _, skill := range arg.Skills {
			s, err := q.CreateCandidateSkill(ctx, CreateCandidateSkillParams{
				CandidateID: result.Candidate.ID,
				Skill:       skill,
			})
			if err != nil {
				return err
			}
			result.Skills = append(result.Skills, s)
		}

		for _, project := range arg.Projects {
			project.CandidateID = result.Candidate.ID
			p, err := q.CreateCandidateProject(ctx, project)
			if err != nil {
				return err
			}
			result.Projects = append(result.Projects, p)
		}

		return nil
	})

	return result, err
}

// GetCandidateDetails gets a candidate with its skills and projects
func (store *SQLStore) GetCandidateDetails(ctx context.Context, id int32) (Candidate, []CandidateSkill, []CandidateProject, error) {
	candidate, err := store.GetCandidate(ctx, id)
	if err != nil {
		return Candidate{}, nil, nil, err
	}

	skills, err := store.ListCandidateSkillsByCandidateID(ctx, id)
	if err != nil {
		return Candidate{}, nil, nil, err
	}

	projects, err := store.ListCandidateProjectsByCandidateID(ctx, id)
	if err != nil {
		return Candidate{}, nil, nil, err
	}

	return candidate, skills, projects, nil
}

// This query could not be implemented using sqlc.
// Because of that, it is implemented manually.
const listCandidateDetails = `-- name: ListCandidateDetails :many
SELECT c.id, c.full_name, c.city, c.country, c.latitude, c.longitude, c.institution,
       c.institution_type, c.degree, c.major, c.grade, c.graduation_year,
       COALESCE(array_agg(DISTINCT s.skill) FILTER (WHERE s.id IS NOT NULL), '{}')    AS skills,
       COALESCE(jsonb_agg(DISTINCT jsonb_build_object(
               'title', p.title,
               'category', p.category,
               'score', p.score,
               'verified', p.verified)) FILTER (WHERE p.id IS NOT NULL), '[]'::jsonb) AS projects
FROM candidates c
         LEFT JOIN candidate_skills s ON s.candidate_id = c.id
         LEFT JOIN candidate_projects p ON p.candidate_id = c.id
GROUP BY c.id
ORDER BY c.id
`

type CandidateDetailsRow struct {
	ID              int32           `json:"id"`
	FullName        string          `json:"full_name"`
	City            string          `json:"city"`
	Country         string          `json:"country"`
	Latitude        sql.NullFloat64 `json:"latitude"`
	Longitude       sql.NullFloat64 `json:"longitude"`
	Institution     string          `json:"institution"`
	InstitutionType string          `json:"institution_type"`
	Degree          string          `json:"degree"`
	Major           string          `json:"major"`
	Grade           sql.NullFloat64 `json:"grade"`
	GraduationYear  sql.NullInt32   `json:"graduation_year"`
	Skills          pq.StringArray  `json:"skills"`
	Projects        json.RawMessage `json:"projects"`
}

// ListCandidateDetails returns the full candidate pool with skills and
// projects, the snapshot the matching engine runs against.
func (store *SQLStore) ListCandidateDetails(ctx context.Context) ([]CandidateDetailsRow, error) {
	rows, err := store.db.QueryContext(ctx, listCandidateDetails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CandidateDetailsRow{}
	for rows.Next() {
		var i CandidateDetailsRow
		if err := rows.Scan(
			&i.ID,
			&i.FullName,
			&i.City,
			&i.Country,
			&i.Latitude,
			&i.Longitude,
			&i.Institution,
			&i.InstitutionType,
			&i.Degree,
			&i.Major,
			&i.Grade,
			&i.GraduationYear,
			&i.Skills,
			&i.Projects,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ToRawRecord converts a pool row into the raw shape the profile
// normalizer consumes.
func (row CandidateDetailsRow) ToRawRecord() (match.RawRecord, error) {
	raw := match.RawRecord{
		ID:              row.ID,
		Name:            row.FullName,
		City:            row.City,
		Country:         row.Country,
		Institution:     row.Institution,
		InstitutionKind: row.InstitutionType,
		Degree:          row.Degree,
		Major:           row.Major,
		Skills:          row.Skills,
	}

	if row.Latitude.Valid {
		raw.Latitude = &row.Latitude.Float64
	}
	if row.Longitude.Valid {
		raw.Longitude = &row.Longitude.Float64
	}
	if row.Grade.Valid {
		raw.Grade = &row.Grade.Float64
	}
	if row.GraduationYear.Valid {
		raw.GraduationYear = &row.GraduationYear.Int32
	}

	if len(row.Projects) > 0 {
		if err := json.Unmarshal(row.Projects, &raw.Projects); err != nil {
			return match.RawRecord{}, err
		}
	}

	return raw, nil
}

type EvaluateSavedSearchTxParams struct {
	ID uuid.UUID
	// Evaluate receives the row under lock and returns the tracking update
	// to apply. Returning apply = false leaves the row untouched (paused
	// searches). Running as one read-modify-write means overlapping ticks
	// for the same saved search cannot lose updates.
	Evaluate func(SavedSearch) (UpdateSavedSearchTrackingParams, bool, error)
}

// EvaluateSavedSearchTx re-evaluates one saved search atomically.
func (store *SQLStore) EvaluateSavedSearchTx(ctx context.Context, arg EvaluateSavedSearchTxParams) (SavedSearch, error) {
	var result SavedSearch

	err := store.ExecTx(ctx, func(q *Queries) error {
		savedSearch, err := q.GetSavedSearchForUpdate(ctx, arg.ID)
		if err != nil {
			return err
		}

		params, apply, err := arg.Evaluate(savedSearch)
		if err != nil {
			return err
		}
		if !apply {
			result = savedSearch
			return nil
		}

		result, err = q.UpdateSavedSearchTracking(ctx, params)
		return err
	})

	return result, err
}

type SetSavedSearchActiveTxParams struct {
	ID       uuid.UUID
	IsActive bool
	// Baseline is invoked when a paused search is reactivated; it returns
	// the tracking reset that keeps changes from the paused interval from
	// flooding out as new matches.
	Baseline func(SavedSearch) (UpdateSavedSearchTrackingParams, error)
}

// SetSavedSearchActiveTx toggles the active flag and, on reactivation,
// re-baselines the known match set in the same transaction.
func (store *SQLStore) SetSavedSearchActiveTx(ctx context.Context, arg SetSavedSearchActiveTxParams) (SavedSearch, error) {
	var result SavedSearch

	err := store.ExecTx(ctx, func(q *Queries) error {
		previous, err := q.GetSavedSearchForUpdate(ctx, arg.ID)
		if err != nil {
			return err
		}

		result, err = q.SetSavedSearchActive(ctx, SetSavedSearchActiveParams{
			ID:       arg.ID,
			IsActive: arg.IsActive,
		})
		if err != nil {
			return err
		}

		if arg.IsActive && !previous.IsActive && arg.Baseline != nil {
			params, err := arg.Baseline(result)
			if err != nil {
				return err
			}
			result, err = q.UpdateSavedSearchTracking(ctx, params)
			if err != nil {
				return err
			}
		}

		return nil
	})

	return result, err
}

// ExecTx executes a function within a database transaction
func (store *SQLStore) ExecTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
