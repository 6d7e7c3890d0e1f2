package esearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GetDocumentIDByCandidateID finds the document ID of the document
// that contains the candidate with the given ID.
func (client ESClient) GetDocumentIDByCandidateID(candidateID int) (string, error) {
	query := fmt.Sprintf(`{"query": {"term": {"id": %d}}}`, candidateID)

	res, err := client.client.Search(
		client.client.Search.WithIndex(candidateIndex),
		client.client.Search.WithBody(strings.NewReader(query)),
	)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.IsError() {
		return "", fmt.Errorf("error searching for the document: %s", res.String())
	}

	var response SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return "", err
	}

	if len(response.Hits.Hits) == 0 {
		return "", fmt.Errorf("no document found for candidate with ID %d", candidateID)
	}

	return response.Hits.Hits[0].ID, nil
}

// SearchCandidates performs a fuzzy full text search over the candidate
// index and returns the requested page of matching candidates.
func (client ESClient) SearchCandidates(ctx context.Context, search string, page, pageSize int32) ([]Candidate, error) {
	from := (page - 1) * pageSize

	query := fmt.Sprintf(`{
		"from": %d,
		"size": %d,
		"query": {
			"multi_match": {
				"query": %q,
				"fields": ["full_name", "city", "institution", "degree", "major", "skills", "project_titles"],
				"fuzziness": "AUTO"
			}
		}
	}`, from, pageSize, search)

	res, err := client.client.Search(
		client.client.Search.WithContext(ctx),
		client.client.Search.WithIndex(candidateIndex),
		client.client.Search.WithBody(strings.NewReader(query)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching for candidates: %s", res.String())
	}

	var response SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(response.Hits.Hits))
	for _, hit := range response.Hits.Hits {
		if hit.Source != nil {
			candidates = append(candidates, *hit.Source)
		}
	}

	return candidates, nil
}
