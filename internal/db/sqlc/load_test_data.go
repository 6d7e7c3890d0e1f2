package db

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"sync/atomic"

	"github.com/bxcodec/faker/v3"

	"github.com/talentbridge/go-talent-match/pkg/utils"
)

// LoadTestData loads the test data into the database
func (store *SQLStore) LoadTestData(ctx context.Context) {
	var wg sync.WaitGroup
	nOfCandidatesCreated := int32(0)
	projectTitles := utils.GenerateProjectTitles()

	// create fake candidates
	for i := 0; i < 10; i++ {
		for _, city := range utils.Cities {
			// Increment the WaitGroup counter for each goroutine
			wg.Add(1)

			go func(city string) {
				// Decrement the WaitGroup counter when the goroutine is done
				defer wg.Done()

				params := CreateCandidateProfileTxParams{
					CreateCandidateParams: CreateCandidateParams{
						FullName: faker.Name(),
						City:     city,
						Country:  "Italy",
						// rough bounding box over Italy
						Latitude:        sql.NullFloat64{Float64: utils.RandomFloat(36.5, 46.5), Valid: true},
						Longitude:       sql.NullFloat64{Float64: utils.RandomFloat(7.0, 18.0), Valid: true},
						Institution:     faker.DomainName(),
						InstitutionType: utils.InstitutionTypes[utils.RandomInt(0, int32(len(utils.InstitutionTypes)-1))],
						Degree:          utils.Degrees[utils.RandomInt(0, int32(len(utils.Degrees)-1))],
						Major:           utils.Majors[utils.RandomInt(0, int32(len(utils.Majors)-1))],
						Grade:           sql.NullFloat64{Float64: utils.RandomFloat(60, 100), Valid: true},
						GraduationYear:  sql.NullInt32{Int32: utils.RandomInt(2015, 2025), Valid: true},
					},
					Skills:   randomSkills(),
					Projects: randomProjects(projectTitles),
				}

				_, err := store.CreateCandidateProfileTx(ctx, params)
				if err != nil {
					log.Println(err)
					return
				}
				atomic.AddInt32(&nOfCandidatesCreated, 1)
			}(city)
		}
	}

	wg.Wait() // Wait for all candidates to finish
	log.Printf("Created %d candidates", nOfCandidatesCreated)
}

// randomSkills picks a random subset of the skill pool
func randomSkills() []string {
	n := utils.RandomInt(2, 6)
	picked := make(map[string]bool)
	var skills []string
	for int32(len(skills)) < n {
		skill := utils.Skills[utils.RandomInt(0, int32(len(utils.Skills)-1))]
		if picked[skill] {
			continue
		}
		picked[skill] = true
		skills = append(skills, skill)
	}
	return skills
}

// randomProjects builds up to three portfolio projects from the title pool
func randomProjects(titles []string) []CreateCandidateProjectParams {
	n := utils.RandomInt(0, 3)
	projects := make([]CreateCandidateProjectParams, 0, n)
	for i := int32(0); i < n; i++ {
		projects = append(projects, CreateCandidateProjectParams{
			Title:    titles[utils.RandomInt(0, int32(len(titles)-1))],
			Category: utils.Categories[utils.RandomInt(0, int32(len(utils.Categories)-1))],
			Score:    sql.NullFloat64{Float64: utils.RandomFloat(0, 100), Valid: true},
			Verified: utils.RandomInt(0, 1) == 1,
		})
	}
	return projects
}
