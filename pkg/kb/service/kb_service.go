package service

import "context"

type RetrieveStatus int

const (
	// StatusFound means the knowledge base was searched successfully.
	StatusFound RetrieveStatus = iota
	// StatusNotFound means no knowledge base has been built yet.
	StatusNotFound
	// StatusUnavailable means the store or embedder could not be reached.
	StatusUnavailable
)

// RetrieveResult carries retrieved context together with how retrieval went.
// Callers that only need the "always answer" contract can treat an empty
// Context uniformly; the status keeps failures diagnosable.
type RetrieveResult struct {
	Status  RetrieveStatus
	Context string
}

type KBService interface {
	// Rebuild replaces the whole knowledge base with text. Readers never
	// observe a partially built index; a failed rebuild leaves the previous
	// one serving.
	Rebuild(ctx context.Context, text string) error
	// Retrieve returns the top-k chunks for query joined by blank lines.
	// It never returns an error: failures degrade to a non-Found status.
	Retrieve(ctx context.Context, query string, topK int) RetrieveResult
	// Current returns the raw text of the last successful rebuild and its
	// generation number. Empty text and generation 0 mean no rebuild yet.
	Current() (string, uint64)
}
