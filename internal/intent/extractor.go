package intent

import (
	"regexp"
	"strings"

	"github.com/talentbridge/go-talent-match/internal/match"
)

// Extraction is the best-effort mapping of one free-text query onto the
// structured criteria shape. LowConfidence is set when nothing in the input
// could be mapped; the resulting empty criteria matches everything and the
// caller may want to ask a clarifying question instead of searching.
type Extraction struct {
	Criteria       match.QueryCriteria `json:"criteria"`
	MatchedPhrases []string            `json:"matched_phrases"`
	LowConfidence  bool                `json:"low_confidence"`
}

// followUpPatterns recognize conversational follow-ups in English and
// Italian: acknowledgements, clarification requests, and pagination asks.
// They carry no search intent, so they must be caught before phrase and
// skill extraction or short words like "sure" fuzzy-match into the skill
// vocabulary.
var followUpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[?!.…]+$`),
	regexp.MustCompile(`^(yes|no|ok|sure|thanks|thank you|grazie|si|sì|va bene)[\s?!.]*$`),
	regexp.MustCompile(`^(are you sure|sei sicuro|really|davvero|what|cosa|why|perché|how|come)[\s?!.]*$`),
	regexp.MustCompile(`^(show me more|more|altro|altri|di più|tell me more)[\s?!.]*$`),
	regexp.MustCompile(`^(they don.?t match|not what i|non è quello|wrong|sbagliato)[\s?!.]*$`),
}

// phraseRule maps one phrase to a criteria mutation. Rules are applied in
// table order over case-insensitive substring matches, so overlapping
// phrases resolve deterministically.
type phraseRule struct {
	phrase string
	apply  func(*match.QueryCriteria)
}

// Extractor maps free text to QueryCriteria using a fixed rule table and a
// static vocabulary. No external NLU: the behavior is a deterministic,
// testable lookup.
type Extractor struct {
	vocab Vocabulary
	rules []phraseRule
}

// NewExtractor builds an extractor over the given vocabulary.
func NewExtractor(vocab Vocabulary) *Extractor {
	e := &Extractor{vocab: vocab}

	// "full-stack" must come before any "full-time" handling: both contain
	// "full" and earlier rules win
	e.rules = []phraseRule{
		{phrase: "full-stack", apply: addSkill("full-stack")},
		{phrase: "full stack", apply: addSkill("full-stack")},
		{phrase: "full-time", apply: addTerm("full-time")},
		{phrase: "full time", apply: addTerm("full-time")},
		{phrase: "part-time", apply: addTerm("part-time")},
		{phrase: "part time", apply: addTerm("part-time")},
		{phrase: "internship", apply: addTerm("internship")},
		{phrase: "remote", apply: func(c *match.QueryCriteria) { c.Location = nil }},
		{phrase: "entry level", apply: addTerm("junior")},
		{phrase: "junior", apply: addTerm("junior")},
		{phrase: "senior", apply: addTerm("senior")},
		{phrase: "top grades", apply: setMinGrade(90)},
		{phrase: "high gpa", apply: setMinGrade(90)},
		{phrase: "eccellente", apply: setMinGrade(90)},
		{phrase: "master", apply: setDegree("Master")},
		{phrase: "laurea magistrale", apply: setDegree("Master")},
		{phrase: "bachelor", apply: setDegree("Bachelor")},
		{phrase: "laurea triennale", apply: setDegree("Bachelor")},
		{phrase: "phd", apply: setDegree("PhD")},
		{phrase: "vocational", apply: setInstitution(match.InstitutionVocational)},
		{phrase: "its ", apply: setInstitution(match.InstitutionVocational)},
		{phrase: "university", apply: setInstitution(match.InstitutionUniversity)},
		{phrase: "università", apply: setInstitution(match.InstitutionUniversity)},
	}

	return e
}

// Extract maps free text onto QueryCriteria. Pure with respect to its
// input and the extractor's vocabulary.
func (e *Extractor) Extract(freeText string) Extraction {
	lower := strings.ToLower(strings.TrimSpace(freeText))

	var out Extraction
	if lower == "" || e.isFollowUp(lower) {
		out.LowConfidence = true
		return out
	}

	matched := make(map[string]bool)

	// phrase table, in priority order; a matched region never matches a
	// later rule again
	remaining := lower
	for _, rule := range e.rules {
		if !strings.Contains(remaining, rule.phrase) {
			continue
		}
		rule.apply(&out.Criteria)
		out.MatchedPhrases = append(out.MatchedPhrases, strings.TrimSpace(rule.phrase))
		matched[rule.phrase] = true
		remaining = strings.ReplaceAll(remaining, rule.phrase, " ")
	}

	// named cities become a location filter; the first named city wins
	for _, city := range e.vocab.Cities {
		if out.Criteria.Location != nil {
			break
		}
		for _, keyword := range city.Keywords {
			if strings.Contains(remaining, keyword) {
				out.Criteria.Location = &match.LocationFilter{
					Center:   city.Center,
					RadiusKm: e.vocab.DefaultRadiusKm,
				}
				out.MatchedPhrases = append(out.MatchedPhrases, city.Name)
				remaining = strings.ReplaceAll(remaining, keyword, " ")
				break
			}
		}
	}

	// closed skill vocabulary: multi-word skills match as phrases,
	// single-word skills on whole tokens, leftovers fuzzily
	terms := e.extractTerms(remaining)
	tokens := make(map[string]bool, len(terms))
	for _, term := range terms {
		tokens[term] = true
	}
	for _, skill := range e.vocab.Skills {
		found := false
		if strings.Contains(skill, " ") {
			found = strings.Contains(remaining, skill)
		} else {
			found = tokens[skill]
		}
		if found {
			out.Criteria.RequiredSkills = append(out.Criteria.RequiredSkills, skill)
			out.MatchedPhrases = append(out.MatchedPhrases, skill)
			delete(tokens, skill)
		}
	}
	for _, term := range terms {
		if !tokens[term] {
			continue
		}
		if skill, ok := e.fuzzySkill(term); ok {
			out.Criteria.RequiredSkills = append(out.Criteria.RequiredSkills, skill)
			out.MatchedPhrases = append(out.MatchedPhrases, skill)
		}
	}
	out.Criteria.RequiredSkills = match.NormalizeSkills(out.Criteria.RequiredSkills)

	if len(out.MatchedPhrases) == 0 {
		// nothing mapped: an empty criteria matches everything, flag it so
		// callers can show a clarifying prompt
		out.LowConfidence = true
	}

	return out
}

// isFollowUp reports whether a lowered, trimmed input is a conversational
// follow-up rather than a search query. Inputs of one or two characters and
// one-or-two-word inputs that yield no extractable terms also count.
func (e *Extractor) isFollowUp(lower string) bool {
	if len(lower) <= 2 {
		return true
	}
	if len(strings.Fields(lower)) <= 2 && len(e.extractTerms(lower)) == 0 {
		return true
	}
	for _, pattern := range followUpPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// extractTerms splits the input into meaningful tokens: at least three
// characters and not a stop word.
func (e *Extractor) extractTerms(text string) []string {
	var b strings.Builder
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	var terms []string
	for _, token := range strings.Fields(b.String()) {
		if len(token) < 3 || e.vocab.StopWords[token] {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// fuzzySkill matches a token against the skill vocabulary allowing an edit
// distance of at most 2. Tokens under four characters are too short to
// fuzzy-match.
func (e *Extractor) fuzzySkill(token string) (string, bool) {
	if len(token) < 4 {
		return "", false
	}

	best := ""
	bestDistance := 3
	for _, skill := range e.vocab.Skills {
		if abs(len(token)-len(skill)) > 2 {
			continue
		}
		if d := levenshtein(token, skill); d < bestDistance {
			bestDistance = d
			best = skill
		}
	}
	return best, best != ""
}

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		previous[j] = j
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			current[j] = min(previous[j]+1, min(current[j-1]+1, previous[j-1]+cost))
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func addSkill(skill string) func(*match.QueryCriteria) {
	return func(c *match.QueryCriteria) {
		c.RequiredSkills = append(c.RequiredSkills, skill)
	}
}

func addTerm(term string) func(*match.QueryCriteria) {
	return func(c *match.QueryCriteria) {
		c.FreeTextTerms = append(c.FreeTextTerms, term)
	}
}

func setMinGrade(grade float64) func(*match.QueryCriteria) {
	return func(c *match.QueryCriteria) {
		if c.MinGrade == nil {
			c.MinGrade = &grade
		}
	}
}

func setDegree(degree string) func(*match.QueryCriteria) {
	return func(c *match.QueryCriteria) {
		if c.Degree == "" {
			c.Degree = degree
		}
	}
}

func setInstitution(kind match.InstitutionType) func(*match.QueryCriteria) {
	return func(c *match.QueryCriteria) {
		if c.InstitutionKind == "" {
			c.InstitutionKind = kind
		}
	}
}
