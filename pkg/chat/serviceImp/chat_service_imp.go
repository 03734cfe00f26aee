package serviceImp

import (
	"context"
	"log"

	"shoopaholic/pkg/ai"
	kbservice "shoopaholic/pkg/kb/service"
	"shoopaholic/pkg/querylog/repository"
)

const (
	// placeholderContext stands in when retrieval produced nothing, so the
	// completion call still happens and the model can say it doesn't know.
	placeholderContext = "No shop information is available yet. Ask the admin to upload shop data."

	apologyAnswer = "Sorry, I couldn't process that right now. Please try again in a moment."
)

type Svc struct {
	log  repository.Repository
	kb   kbservice.KBService
	llm  ai.Client
	topK int
}

func New(log repository.Repository, kb kbservice.KBService, llm ai.Client, topK int) *Svc {
	if topK <= 0 {
		topK = 3
	}
	return &Svc{log: log, kb: kb, llm: llm, topK: topK}
}

func (s *Svc) Answer(ctx context.Context, query string) string {
	// best-effort: a broken log must not break the chat turn
	if _, err := s.log.Record(query); err != nil {
		log.Printf("[chat] query log unavailable: %v", err)
	}

	res := s.kb.Retrieve(ctx, query, s.topK)
	contextText := res.Context
	if contextText == "" {
		switch res.Status {
		case kbservice.StatusNotFound:
			log.Printf("[chat] no knowledge base built yet")
		case kbservice.StatusUnavailable:
			log.Printf("[chat] retrieval degraded, answering without context")
		}
		contextText = placeholderContext
	}

	answer, err := s.llm.Answer(ctx, contextText, query)
	if err != nil {
		log.Printf("[chat] completion failed: %v", err)
		return apologyAnswer
	}
	return answer
}
