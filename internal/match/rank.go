package match

import "sort"

// Grade band labels for the stats distribution, on the normalized scale.
const (
	GradeBand90Plus = ">=90"
	GradeBand80s    = "80-89"
	GradeBand70s    = "70-79"
	GradeBand60s    = "60-69"
)

// Rank evaluates the pool against the criteria and returns one page of
// results plus stats over the full filtered set. Hard filters are applied
// before any scoring; survivors are sorted by overall score descending with
// a stable tie-break on candidate id, so pagination is deterministic across
// repeated calls with identical inputs. Pagination never affects stats.
func Rank(pool []CandidateRecord, criteria QueryCriteria, page, pageSize int) (RankResult, error) {
	if err := criteria.Validate(); err != nil {
		return RankResult{}, err
	}
	if page < 1 {
		return RankResult{}, &InvalidCriteriaError{Field: "page", Reason: "page numbering starts at 1"}
	}
	if pageSize < 1 {
		return RankResult{}, &InvalidCriteriaError{Field: "page_size", Reason: "page size must be positive"}
	}

	var matches []MatchResult
	for _, candidate := range pool {
		result, ok := Evaluate(candidate, criteria)
		if !ok {
			continue
		}
		matches = append(matches, result)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].OverallScore != matches[j].OverallScore {
			return matches[i].OverallScore > matches[j].OverallScore
		}
		return matches[i].Candidate.ID < matches[j].Candidate.ID
	})

	stats := computeStats(matches)

	start := (page - 1) * pageSize
	if start >= len(matches) {
		return RankResult{Results: []MatchResult{}, Stats: stats}, nil
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	return RankResult{Results: matches[start:end], Stats: stats}, nil
}

// MatchIDs returns the ids of every candidate in the full filtered set, in
// ranked order. Used by the saved-search tracker, which needs membership,
// not pages.
func MatchIDs(pool []CandidateRecord, criteria QueryCriteria) ([]int32, error) {
	result, err := Rank(pool, criteria, 1, maxPoolPage(pool))
	if err != nil {
		return nil, err
	}
	ids := make([]int32, 0, len(result.Results))
	for _, r := range result.Results {
		ids = append(ids, r.Candidate.ID)
	}
	return ids, nil
}

func maxPoolPage(pool []CandidateRecord) int {
	if len(pool) == 0 {
		return 1
	}
	return len(pool)
}

func computeStats(matches []MatchResult) Stats {
	stats := Stats{
		TotalMatches:           len(matches),
		CountByCity:            make(map[string]int),
		CountByInstitutionType: make(map[string]int),
		GradeBands: map[string]int{
			GradeBand90Plus: 0,
			GradeBand80s:    0,
			GradeBand70s:    0,
			GradeBand60s:    0,
		},
	}

	var scoreSum float64
	for _, m := range matches {
		scoreSum += m.OverallScore

		if m.Candidate.City != "" {
			stats.CountByCity[m.Candidate.City]++
		}
		stats.CountByInstitutionType[string(m.Candidate.InstitutionKind)]++

		if m.Candidate.Grade == nil {
			continue
		}
		switch grade := *m.Candidate.Grade; {
		case grade >= 90:
			stats.GradeBands[GradeBand90Plus]++
		case grade >= 80:
			stats.GradeBands[GradeBand80s]++
		case grade >= 70:
			stats.GradeBands[GradeBand70s]++
		case grade >= 60:
			stats.GradeBands[GradeBand60s]++
		}
	}

	if len(matches) > 0 {
		stats.AverageMatchScore = scoreSum / float64(len(matches))
	}

	return stats
}
