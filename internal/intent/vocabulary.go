package intent

import "github.com/talentbridge/go-talent-match/internal/match"

// City is a static city lookup entry: keywords that mention the city and
// the coordinate used as a location filter center.
type City struct {
	Name     string
	Keywords []string
	Center   match.Coordinates
}

// Vocabulary is the static configuration the extractor works from. It is
// loaded once at process start and passed in explicitly; the extractor never
// mutates it.
type Vocabulary struct {
	// Skills is the closed skill vocabulary. Tokens outside it are never
	// promoted to required skills.
	Skills []string
	// Cities, in lookup order.
	Cities []City
	// StopWords are tokens ignored during free-text term extraction.
	StopWords map[string]bool
	// DefaultRadiusKm is the radius applied when a query names a city
	// without an explicit distance.
	DefaultRadiusKm float64
}

// DefaultVocabulary returns the built-in vocabulary: the platform's skill
// list, the Italian cities it operates in, and bilingual stop words.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		DefaultRadiusKm: 50,
		Skills: []string{
			"react", "vue", "angular", "javascript", "typescript", "python",
			"java", "node", "rust", "sql", "database", "cloud", "aws",
			"docker", "kubernetes", "devops", "mobile", "ios", "android",
			"flutter", "swift", "kotlin", "machine learning", "deep learning",
			"cybersecurity", "security", "network", "figma", "photoshop",
			"illustrator", "design", "marketing", "seo", "excel", "finance",
			"accounting", "legal", "analytics", "economics", "management",
			"robotics", "automation", "biomedical", "biotechnology",
			"chemistry", "physics", "mechanical", "electrical", "civil",
			"aerospace", "architecture", "psychology", "linguistics",
		},
		Cities: []City{
			{Name: "Milan", Keywords: []string{"milano", "milan"}, Center: match.Coordinates{Latitude: 45.4642, Longitude: 9.1900}},
			{Name: "Rome", Keywords: []string{"roma", "rome"}, Center: match.Coordinates{Latitude: 41.9028, Longitude: 12.4964}},
			{Name: "Turin", Keywords: []string{"torino", "turin"}, Center: match.Coordinates{Latitude: 45.0703, Longitude: 7.6869}},
			{Name: "Florence", Keywords: []string{"firenze", "florence"}, Center: match.Coordinates{Latitude: 43.7696, Longitude: 11.2558}},
			{Name: "Bologna", Keywords: []string{"bologna"}, Center: match.Coordinates{Latitude: 44.4949, Longitude: 11.3426}},
			{Name: "Naples", Keywords: []string{"napoli", "naples"}, Center: match.Coordinates{Latitude: 40.8518, Longitude: 14.2681}},
			{Name: "Venice", Keywords: []string{"venezia", "venice"}, Center: match.Coordinates{Latitude: 45.4408, Longitude: 12.3155}},
			{Name: "Padova", Keywords: []string{"padova", "padua"}, Center: match.Coordinates{Latitude: 45.4064, Longitude: 11.8768}},
			{Name: "Genova", Keywords: []string{"genova", "genoa"}, Center: match.Coordinates{Latitude: 44.4056, Longitude: 8.9463}},
			{Name: "Bari", Keywords: []string{"bari"}, Center: match.Coordinates{Latitude: 41.1171, Longitude: 16.8719}},
			{Name: "Palermo", Keywords: []string{"palermo"}, Center: match.Coordinates{Latitude: 38.1157, Longitude: 13.3615}},
		},
		StopWords: stopWords(),
	}
}

// English and Italian filler words stripped before term extraction.
func stopWords() map[string]bool {
	words := []string{
		"i", "we", "you", "want", "to", "find", "the", "a", "an", "in",
		"for", "and", "or", "with", "at", "of", "my", "me", "looking",
		"search", "show", "get", "need", "who", "are", "is", "good",
		"great", "best", "top", "some", "that", "this", "those", "people",
		"person", "students", "student", "graduated", "graduates", "from",
		"have", "has", "their", "our", "can", "hire", "hiring", "jobs",
		"job", "work", "experience", "hello", "hi", "hey", "there",
		"please", "thanks", "thank", "yes", "sure", "ok", "okay",
		"voglio", "cerco", "cerca", "trovami", "trova", "mostrami", "per",
		"con", "che", "di", "il", "la", "un", "una", "dei", "delle", "del",
		"dalla", "dal", "le", "lo", "gli", "sono", "da", "su", "come",
		"mi", "si", "ciao", "grazie", "prego",
	}
	out := make(map[string]bool, len(words))
	for _, w := range words {
		out[w] = true
	}
	return out
}
