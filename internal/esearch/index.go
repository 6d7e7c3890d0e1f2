package esearch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

const candidateIndex = "candidates"

// ESearchClient defines all functions the elasticsearch client
// performs on the candidate index.
type ESearchClient interface {
	IndexCandidatesAsDocuments(ctx context.Context) error
	IndexCandidateAsDocument(documentID int, candidate Candidate) error
	UpdateCandidateDocument(documentID string, candidate Candidate) error
	DeleteCandidateDocument(documentID string) error
	GetDocumentIDByCandidateID(candidateID int) (string, error)
	SearchCandidates(ctx context.Context, search string, page, pageSize int32) ([]Candidate, error)
}

type ESClient struct {
	client *elasticsearch.Client
}

// NewClient creates a new ESClient wrapping the given elasticsearch client
func NewClient(client *elasticsearch.Client) ESearchClient {
	return &ESClient{
		client: client,
	}
}

// IndexCandidatesAsDocuments indexes the candidates stored in the context
// (under CandidateKey) as documents in the candidate index.
func (client ESClient) IndexCandidatesAsDocuments(ctx context.Context) error {
	candidates, ok := ctx.Value(CandidateKey).([]Candidate)
	if !ok {
		return fmt.Errorf("no candidates found in the context")
	}

	bulkIndexer, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      candidateIndex,
		Client:     client.client,
		NumWorkers: 5,
	})
	if err != nil {
		return err
	}

	for documentID, candidate := range candidates {
		body, err := readerToReadSeeker(esutil.NewJSONReader(candidate))
		if err != nil {
			return err
		}

		err = bulkIndexer.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: strconv.Itoa(documentID),
				Body:       body,
			},
		)
		if err != nil {
			return err
		}
	}

	return bulkIndexer.Close(ctx)
}

// IndexCandidateAsDocument indexes a single candidate as a document.
// It is used after a new candidate profile is ingested.
func (client ESClient) IndexCandidateAsDocument(documentID int, candidate Candidate) error {
	body, err := readerToReadSeeker(esutil.NewJSONReader(candidate))
	if err != nil {
		return err
	}

	res, err := client.client.Index(
		candidateIndex,
		body,
		client.client.Index.WithDocumentID(strconv.Itoa(documentID)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return nil
}

// UpdateCandidateDocument updates the document with the given ID
// with the new candidate data.
func (client ESClient) UpdateCandidateDocument(documentID string, candidate Candidate) error {
	body, err := readerToReadSeeker(esutil.NewJSONReader(map[string]interface{}{
		"doc": candidate,
	}))
	if err != nil {
		return err
	}

	res, err := client.client.Update(candidateIndex, documentID, body)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return nil
}

// DeleteCandidateDocument deletes the document with the given ID
func (client ESClient) DeleteCandidateDocument(documentID string) error {
	res, err := client.client.Delete(candidateIndex, documentID)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return nil
}

// readerToReadSeeker converts an io.Reader to an io.ReadSeeker
func readerToReadSeeker(reader io.Reader) (io.ReadSeeker, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
