package match

import (
	"fmt"
	"strings"
)

// Validate checks the criteria bounds before any matching begins.
// Contradictory bounds are surfaced to the caller, never silently clamped.
func (c QueryCriteria) Validate() error {
	if c.Location != nil && c.Location.RadiusKm <= 0 {
		return &InvalidCriteriaError{Field: "location.radius_km", Reason: "radius must be positive"}
	}
	if c.MinGrade != nil && (*c.MinGrade < 0 || *c.MinGrade > 100) {
		return &InvalidCriteriaError{Field: "min_grade", Reason: "must be on the normalized 0-100 scale"}
	}
	if c.MinProjects < 0 {
		return &InvalidCriteriaError{Field: "min_projects", Reason: "cannot be negative"}
	}
	switch c.InstitutionKind {
	case "", InstitutionAny, InstitutionVocational, InstitutionUniversity:
	default:
		return &InvalidCriteriaError{Field: "institution_type", Reason: "unknown institution type"}
	}
	return nil
}

// PassesHardFilters reports whether the candidate survives the requirement
// dimensions (degree, major, graduation year, institution type, minimum
// project count). A present and failed gate excludes the candidate from the
// result set regardless of its soft scores.
func PassesHardFilters(candidate CandidateRecord, criteria QueryCriteria) bool {
	if criteria.Degree != "" && !strings.EqualFold(candidate.Degree, criteria.Degree) {
		return false
	}
	if criteria.Major != "" && !strings.EqualFold(candidate.Major, criteria.Major) {
		return false
	}
	if criteria.GraduationYear != nil {
		if candidate.GraduationYear == nil || *candidate.GraduationYear != *criteria.GraduationYear {
			return false
		}
	}
	if criteria.InstitutionKind != "" && criteria.InstitutionKind != InstitutionAny {
		if candidate.InstitutionKind != criteria.InstitutionKind {
			return false
		}
	}
	if criteria.MinProjects > 0 && candidate.ProjectCount() < criteria.MinProjects {
		return false
	}
	return true
}

// Evaluate scores one candidate against one query. The second return value
// is false when the candidate fails a hard filter; the MatchResult is then
// the zero value. Pure: identical inputs always produce identical results.
func Evaluate(candidate CandidateRecord, criteria QueryCriteria) (MatchResult, bool) {
	if !PassesHardFilters(candidate, criteria) {
		return MatchResult{}, false
	}

	scores := make(map[string]float64)
	reasons := make(map[string]string)

	if len(criteria.RequiredSkills) > 0 {
		score, matched := scoreSkills(candidate.Skills, criteria.RequiredSkills, criteria.MatchAllSkills)
		// a candidate sharing no required skill is not a match at all;
		// partial overlaps stay in and rank by their sub-score
		if len(matched) == 0 {
			return MatchResult{}, false
		}
		scores[DimensionSkills] = score
		reasons[DimensionSkills] = fmt.Sprintf("skills: %s", strings.Join(matched, ", "))
	}

	if criteria.Location != nil && candidate.Location != nil {
		distance := DistanceKm(*candidate.Location, criteria.Location.Center)
		scores[DimensionLocation] = scoreLocation(distance, criteria.Location.RadiusKm)
		reasons[DimensionLocation] = fmt.Sprintf("location: %.0f km from center", distance)
	}

	if criteria.MinGrade != nil && candidate.Grade != nil {
		scores[DimensionGrade] = scoreGrade(*candidate.Grade, *criteria.MinGrade)
		reasons[DimensionGrade] = fmt.Sprintf("grade: %.1f (minimum %.1f)", *candidate.Grade, *criteria.MinGrade)
	}

	if len(criteria.FreeTextTerms) > 0 {
		score, matched := scoreText(candidate, criteria.FreeTextTerms)
		scores[DimensionText] = score
		if len(matched) > 0 {
			reasons[DimensionText] = fmt.Sprintf("text: %s", strings.Join(matched, ", "))
		}
	}

	return MatchResult{
		Candidate:       candidate,
		OverallScore:    overallScore(scores),
		DimensionScores: scores,
		MatchedOn:       matchedOn(scores, reasons),
	}, true
}

// scoreSkills returns the skills sub-score plus the matched tokens.
// With matchAll the score is the matched fraction, otherwise any
// intersection scores full.
func scoreSkills(skills, required []string, matchAll bool) (float64, []string) {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[s] = true
	}

	wanted := NormalizeSkills(required)
	var matched []string
	for _, r := range wanted {
		if have[r] {
			matched = append(matched, r)
		}
	}

	if matchAll {
		return float64(len(matched)) / float64(len(wanted)), matched
	}
	if len(matched) > 0 {
		return 1.0, matched
	}
	return 0.0, nil
}

// scoreLocation is 1.0 inside the radius and decays linearly to 0.0 at
// twice the radius.
func scoreLocation(distanceKm, radiusKm float64) float64 {
	if distanceKm <= radiusKm {
		return 1.0
	}
	score := 1.0 - (distanceKm-radiusKm)/radiusKm
	if score < 0 {
		return 0.0
	}
	return score
}

func scoreGrade(grade, minGrade float64) float64 {
	if grade >= minGrade {
		return 1.0
	}
	score := 1.0 - (minGrade-grade)/minGrade
	if score < 0 {
		return 0.0
	}
	return score
}

// scoreText checks substring containment of each term across name,
// institution and project titles. Every matched term contributes equally.
func scoreText(candidate CandidateRecord, terms []string) (float64, []string) {
	var haystack strings.Builder
	haystack.WriteString(candidate.Name)
	haystack.WriteString(" ")
	haystack.WriteString(candidate.Institution)
	for _, p := range candidate.Projects {
		haystack.WriteString(" ")
		haystack.WriteString(p.Title)
	}
	text := strings.ToLower(haystack.String())

	var matched []string
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if strings.Contains(text, t) {
			matched = append(matched, t)
		}
	}

	return float64(len(matched)) / float64(len(terms)), matched
}

// overallScore is the weighted average of the present soft dimensions, with
// the default weights renormalized over only those dimensions. A query with
// no soft dimensions matches with full score.
func overallScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 1.0
	}

	// accumulate in a fixed dimension order; ranging over the map would
	// make the float sum order-dependent between calls
	var weightSum, total float64
	for _, dimension := range dimensionOrder {
		score, ok := scores[dimension]
		if !ok {
			continue
		}
		w := defaultWeights[dimension]
		weightSum += w
		total += w * score
	}
	if weightSum == 0 {
		return 0.0
	}
	return total / weightSum
}

// matchedOn lists human-readable reasons for every dimension scoring at
// least 0.5, in a fixed dimension order so results are deterministic.
func matchedOn(scores map[string]float64, reasons map[string]string) []string {
	var out []string
	for _, dimension := range dimensionOrder {
		score, ok := scores[dimension]
		if !ok || score < 0.5 {
			continue
		}
		if reason, ok := reasons[dimension]; ok {
			out = append(out, reason)
		}
	}
	return out
}
