package esearch

// === Types for the ES part of the Application ===

type Candidate struct {
	ID              int32    `json:"id"`
	FullName        string   `json:"full_name"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Institution     string   `json:"institution"`
	InstitutionType string   `json:"institution_type"`
	Degree          string   `json:"degree"`
	Major           string   `json:"major"`
	Skills          []string `json:"skills"`
	ProjectTitles   []string `json:"project_titles"`
}

// === for the Context ===
type contextKey struct {
	Key int
}

var CandidateKey = contextKey{Key: 1}
var ClientKey = contextKey{Key: 2}

// === Queries and Searches ===

type GetResponse struct {
	Index   string     `json:"_index"`
	ID      string     `json:"_id"`
	Version int        `json:"_version"`
	Source  *Candidate `json:"_source"`
}

type SearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []*struct {
			Source *Candidate `json:"_source"`
			ID     string     `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}
