package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"shoopaholic/pkg/kb/vectorstore"
)

// Storage is an in-memory vector store using brute-force cosine similarity.
// It backs local development and tests where no Qdrant is running.
type Storage struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	dimension int
	chunks    []vectorstore.Chunk
	vectors   [][]float32
}

func NewStorage() *Storage {
	return &Storage{collections: map[string]*collection{}}
}

func (s *Storage) CreateCollection(_ context.Context, name string, dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = &collection{dimension: dimension}
	return nil
}

func (s *Storage) Upsert(_ context.Context, name string, chunks []vectorstore.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("collection %s not found", name)
	}
	for _, v := range vectors {
		if len(v) != col.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	col.chunks = append(col.chunks, chunks...)
	col.vectors = append(col.vectors, vectors...)
	return nil
}

func (s *Storage) Search(_ context.Context, name string, vector []float32, topK int) ([]vectorstore.Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("collection %s not found", name)
	}
	if topK <= 0 {
		topK = 3
	}
	hits := make([]vectorstore.Hit, 0, len(col.chunks))
	for i := range col.vectors {
		hits = append(hits, vectorstore.Hit{Chunk: col.chunks[i], Score: cosine(col.vectors[i], vector)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if topK > len(hits) {
		topK = len(hits)
	}
	return hits[:topK], nil
}

func (s *Storage) DropCollection(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, name)
	return nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
