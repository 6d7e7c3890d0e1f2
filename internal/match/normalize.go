package match

import "strings"

// RawProject is a portfolio entry as delivered by a data source.
type RawProject struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Score    *float64 `json:"score,omitempty"`
	Verified bool     `json:"verified"`
}

// RawRecord is a profile as delivered by one of the supported sources
// (candidate profile, imported spreadsheet row, job posting requirement set)
// before normalization. Grade is on whatever scale the source uses.
type RawRecord struct {
	ID              int32        `json:"id"`
	Name            string       `json:"name"`
	City            string       `json:"city"`
	Country         string       `json:"country"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	Institution     string       `json:"institution"`
	InstitutionKind string       `json:"institution_type"`
	Degree          string       `json:"degree"`
	Major           string       `json:"major"`
	Grade           *float64     `json:"grade,omitempty"`
	GraduationYear  *int32       `json:"graduation_year,omitempty"`
	Skills          []string     `json:"skills"`
	Projects        []RawProject `json:"projects"`
}

// NormalizeGrade converts a source grade to the internal 0-100 scale.
// The source scale is detected from the value with a fixed table:
//
//	value in [0, 4]    GPA scale, multiplied by 25
//	value in (4, 30]   Italian 30-point scale, multiplied by 100/30
//	value in (30, 100] already a percentage, kept as is
//	anything else      invalid
//
// The bands are fixed and deliberately not configurable; boundary values
// belong to the lower band (4.0 is a GPA, 30 is an Italian grade).
func NormalizeGrade(value float64) (float64, error) {
	switch {
	case value < 0:
		return 0, &NormalizationError{Field: "grade", Reason: "grade cannot be negative"}
	case value <= 4:
		return value * 25, nil
	case value <= 30:
		return value * 100 / 30, nil
	case value <= 100:
		return value, nil
	default:
		return 0, &NormalizationError{Field: "grade", Reason: "grade exceeds every known scale"}
	}
}

// NormalizeSkills lower-cases and trims skill tokens and collapses
// duplicates, preserving first-seen order. Synonyms are not resolved.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	var out []string
	for _, s := range skills {
		token := strings.ToLower(strings.TrimSpace(s))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}

// Normalize converts a raw source record into the canonical CandidateRecord.
// It returns a NormalizationError when identity fields are missing or the
// grade does not fit any known scale.
func Normalize(raw RawRecord) (CandidateRecord, error) {
	if raw.ID == 0 {
		return CandidateRecord{}, &NormalizationError{RecordID: raw.ID, Field: "id", Reason: "missing identity"}
	}
	if strings.TrimSpace(raw.Name) == "" {
		return CandidateRecord{}, &NormalizationError{RecordID: raw.ID, Field: "name", Reason: "missing identity"}
	}

	record := CandidateRecord{
		ID:              raw.ID,
		Name:            strings.TrimSpace(raw.Name),
		City:            strings.TrimSpace(raw.City),
		Country:         strings.TrimSpace(raw.Country),
		Institution:     strings.TrimSpace(raw.Institution),
		InstitutionKind: normalizeInstitutionType(raw.InstitutionKind),
		Degree:          strings.TrimSpace(raw.Degree),
		Major:           strings.TrimSpace(raw.Major),
		GraduationYear:  raw.GraduationYear,
		Skills:          NormalizeSkills(raw.Skills),
	}

	// a coordinate is only usable when both halves are known
	if raw.Latitude != nil && raw.Longitude != nil {
		record.Location = &Coordinates{
			Latitude:  *raw.Latitude,
			Longitude: *raw.Longitude,
		}
	}

	if raw.Grade != nil {
		grade, err := NormalizeGrade(*raw.Grade)
		if err != nil {
			if nErr, ok := err.(*NormalizationError); ok {
				nErr.RecordID = raw.ID
			}
			return CandidateRecord{}, err
		}
		record.Grade = &grade
	}

	for _, p := range raw.Projects {
		record.Projects = append(record.Projects, Project{
			Title:    strings.TrimSpace(p.Title),
			Category: strings.TrimSpace(p.Category),
			Score:    p.Score,
			Verified: p.Verified,
		})
	}

	return record, nil
}

// NormalizeAll normalizes a batch of raw records. Records failing
// normalization are skipped and counted; the batch never aborts.
func NormalizeAll(raws []RawRecord) (records []CandidateRecord, skipped int) {
	for _, raw := range raws {
		record, err := Normalize(raw)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, skipped
}

func normalizeInstitutionType(value string) InstitutionType {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "vocational", "its":
		return InstitutionVocational
	case "university":
		return InstitutionUniversity
	default:
		return InstitutionAny
	}
}
