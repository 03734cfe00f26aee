package vectorstore

import "context"

// Chunk is one indexed piece of shop text.
type Chunk struct {
	Ord  int
	Text string
}

// Hit is a matching chunk with a relevance score.
type Hit struct {
	Chunk Chunk
	Score float64
}

// Storage is the external vector search engine. It is addressed per
// collection so a rebuild can prepare a fresh collection in full before
// anything points at it.
type Storage interface {
	CreateCollection(ctx context.Context, name string, dimension int) error
	Upsert(ctx context.Context, collection string, chunks []Chunk, vectors [][]float32) error
	Search(ctx context.Context, collection string, vector []float32, topK int) ([]Hit, error)
	DropCollection(ctx context.Context, name string) error
}
