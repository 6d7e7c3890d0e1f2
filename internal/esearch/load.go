package esearch

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	db "github.com/talentbridge/go-talent-match/internal/db/sqlc"
)

// LoadCandidatesFromDB fetches the full candidate pool from the database,
// converts each row into a search document and stores the slice in the
// context under CandidateKey.
func LoadCandidatesFromDB(ctx context.Context, store db.Store) (context.Context, error) {
	const (
		concurrency = 5
	)

	var (
		candidates []Candidate
		waitGroup  = new(sync.WaitGroup)
		workQueue  = make(chan Candidate)
		mutex      = &sync.Mutex{}
	)

	// Fetch candidates from the database
	rows, err := store.ListCandidateDetails(ctx)
	if err != nil {
		return nil, err
	}

	// Populate the work queue with candidates from the database.
	go func() {
		for _, row := range rows {
			c := Candidate{
				ID:              row.ID,
				FullName:        row.FullName,
				City:            row.City,
				Country:         row.Country,
				Institution:     row.Institution,
				InstitutionType: row.InstitutionType,
				Degree:          row.Degree,
				Major:           row.Major,
				Skills:          row.Skills,
				ProjectTitles:   projectTitles(row.Projects),
			}
			workQueue <- c
		}
		close(workQueue)
	}()

	for i := 0; i < concurrency; i++ {
		waitGroup.Add(1)
		go func(workQueue chan Candidate, waitGroup *sync.WaitGroup) {
			for candidate := range workQueue {
				mutex.Lock()
				candidates = append(candidates, candidate)
				mutex.Unlock()
			}
			waitGroup.Done()
		}(workQueue, waitGroup)
	}

	waitGroup.Wait()

	log.Printf("Candidates loaded from the database: %d\n", len(candidates))
	return context.WithValue(ctx, CandidateKey, candidates), nil
}

func projectTitles(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var projects []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil
	}
	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, p.Title)
	}
	return titles
}
