package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"shoopaholic/pkg/kb/service"
	"shoopaholic/pkg/kb/vectorstore"
)

// Embedder converts texts into embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// snapshot is one committed generation of the knowledge base. Snapshots are
// immutable; the service swaps the pointer as a whole.
type snapshot struct {
	collection string
	text       string
	gen        uint64
}

type Svc struct {
	store vectorstore.Storage
	emb   Embedder
	base  string

	buildMu sync.Mutex // serializes rebuilds; never held while serving reads
	mu      sync.RWMutex
	cur     *snapshot
	gen     uint64
}

func New(store vectorstore.Storage, emb Embedder, collectionBase string) *Svc {
	return &Svc{store: store, emb: emb, base: collectionBase}
}

func (s *Svc) Rebuild(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("text is empty")
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	gen := s.generation() + 1
	name := fmt.Sprintf("%s_v%d", s.base, gen)

	chunks := chunkText(text, 1000)
	if len(chunks) == 0 {
		return errors.New("text produced no chunks")
	}
	vectors, err := s.emb.Embed(ctx, chunks)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return errors.New("embedder returned no vectors")
	}

	rows := make([]vectorstore.Chunk, len(chunks))
	for i := range chunks {
		rows[i] = vectorstore.Chunk{Ord: i, Text: chunks[i]}
	}

	if err := s.store.CreateCollection(ctx, name, len(vectors[0])); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	if err := s.store.Upsert(ctx, name, rows, vectors); err != nil {
		// roll back the half-built collection; the committed one was never touched
		if dropErr := s.store.DropCollection(ctx, name); dropErr != nil {
			log.Printf("[kb] drop of failed build %s: %v", name, dropErr)
		}
		return fmt.Errorf("index chunks: %w", err)
	}

	// commit: readers flip to the new generation in one pointer swap
	s.mu.Lock()
	old := s.cur
	s.cur = &snapshot{collection: name, text: text, gen: gen}
	s.gen = gen
	s.mu.Unlock()

	if old != nil {
		if err := s.store.DropCollection(ctx, old.collection); err != nil {
			log.Printf("[kb] drop superseded %s: %v", old.collection, err)
		}
	}
	log.Printf("[kb] rebuilt generation %d (%d chunks)", gen, len(rows))
	return nil
}

func (s *Svc) Retrieve(ctx context.Context, query string, topK int) service.RetrieveResult {
	s.mu.RLock()
	snap := s.cur
	s.mu.RUnlock()
	if snap == nil {
		return service.RetrieveResult{Status: service.StatusNotFound}
	}

	vecs, err := s.emb.Embed(ctx, []string{query})
	if err != nil || len(vecs) == 0 {
		log.Printf("[kb] embed query: %v", err)
		return service.RetrieveResult{Status: service.StatusUnavailable}
	}
	hits, err := s.store.Search(ctx, snap.collection, vecs[0], topK)
	if err != nil {
		log.Printf("[kb] search %s: %v", snap.collection, err)
		return service.RetrieveResult{Status: service.StatusUnavailable}
	}

	parts := make([]string, 0, len(hits))
	for _, h := range hits {
		parts = append(parts, h.Chunk.Text)
	}
	return service.RetrieveResult{Status: service.StatusFound, Context: strings.Join(parts, "\n\n")}
}

func (s *Svc) Current() (string, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return "", 0
	}
	return s.cur.text, s.cur.gen
}

func (s *Svc) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// chunkText splits text into pieces of roughly maxRunes, breaking at the
// first newline or sentence end past the limit.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	cur := strings.Builder{}
	count := 0
	flush := func() {
		if p := strings.TrimSpace(cur.String()); p != "" {
			parts = append(parts, p)
		}
		cur.Reset()
		count = 0
	}
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && (r == '\n' || r == '.' || r == '!' || r == '?') {
			flush()
		}
	}
	flush()
	return parts
}
