package match

// InstitutionType classifies the school a candidate graduated from.
type InstitutionType string

const (
	InstitutionVocational InstitutionType = "vocational"
	InstitutionUniversity InstitutionType = "university"
	InstitutionAny        InstitutionType = "any"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Project is one portfolio entry on a candidate profile.
type Project struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Score    *float64 `json:"score,omitempty"`
	Verified bool     `json:"verified"`
}

// CandidateRecord is the canonical profile shape the engine compares.
// Grade is always on the normalized 0-100 scale; nil means unknown.
type CandidateRecord struct {
	ID              int32           `json:"id"`
	Name            string          `json:"name"`
	City            string          `json:"city"`
	Country         string          `json:"country"`
	Location        *Coordinates    `json:"location,omitempty"`
	Institution     string          `json:"institution"`
	InstitutionKind InstitutionType `json:"institution_type"`
	Degree          string          `json:"degree"`
	Major           string          `json:"major"`
	Grade           *float64        `json:"grade,omitempty"`
	GraduationYear  *int32          `json:"graduation_year,omitempty"`
	Skills          []string        `json:"skills"`
	Projects        []Project       `json:"projects"`
}

// ProjectCount returns the number of portfolio projects.
func (r CandidateRecord) ProjectCount() int {
	return len(r.Projects)
}

// TopProjectScore returns the highest project score, or nil if no project
// carries a score.
func (r CandidateRecord) TopProjectScore() *float64 {
	var top *float64
	for i := range r.Projects {
		s := r.Projects[i].Score
		if s == nil {
			continue
		}
		if top == nil || *s > *top {
			top = s
		}
	}
	return top
}

// LocationFilter restricts candidates to a radius around a center point.
type LocationFilter struct {
	Center   Coordinates `json:"center"`
	RadiusKm float64     `json:"radius_km"`
}

// QueryCriteria is one structured search. All fields are optional; the
// zero value matches every candidate with full score.
// Degree, Major, GraduationYear and InstitutionKind are hard gates,
// the rest are soft ranking dimensions.
type QueryCriteria struct {
	FreeTextTerms   []string        `json:"free_text_terms,omitempty"`
	RequiredSkills  []string        `json:"required_skills,omitempty"`
	MatchAllSkills  bool            `json:"match_all_skills,omitempty"`
	Location        *LocationFilter `json:"location,omitempty"`
	MinGrade        *float64        `json:"min_grade,omitempty"`
	Degree          string          `json:"degree,omitempty"`
	Major           string          `json:"major,omitempty"`
	GraduationYear  *int32          `json:"graduation_year,omitempty"`
	InstitutionKind InstitutionType `json:"institution_type,omitempty"`
	MinProjects     int             `json:"min_projects,omitempty"`
}

// Soft dimension names used as DimensionScores keys.
const (
	DimensionSkills   = "skills"
	DimensionLocation = "location"
	DimensionGrade    = "grade"
	DimensionText     = "text"
)

// defaultWeights are the relative weights of the soft dimensions. They are
// renormalized over the dimensions actually present in a query.
var defaultWeights = map[string]float64{
	DimensionSkills:   0.35,
	DimensionLocation: 0.25,
	DimensionGrade:    0.25,
	DimensionText:     0.15,
}

// dimensionOrder fixes the iteration order wherever dimension maps are
// walked, keeping scoring and reasons deterministic.
var dimensionOrder = []string{DimensionSkills, DimensionLocation, DimensionGrade, DimensionText}

// MatchResult is one candidate scored against one query.
type MatchResult struct {
	Candidate       CandidateRecord    `json:"candidate"`
	OverallScore    float64            `json:"overall_score"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
	MatchedOn       []string           `json:"matched_on"`
}

// Stats are aggregates over the full filtered set, independent of the
// requested page.
type Stats struct {
	TotalMatches           int            `json:"total_matches"`
	CountByCity            map[string]int `json:"count_by_city"`
	CountByInstitutionType map[string]int `json:"count_by_institution_type"`
	GradeBands             map[string]int `json:"grade_bands"`
	AverageMatchScore      float64        `json:"average_match_score"`
}

// RankResult is one page of ranked matches plus full-set stats.
type RankResult struct {
	Results []MatchResult `json:"results"`
	Stats   Stats         `json:"stats"`
}
