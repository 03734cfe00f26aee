package serviceImp

import (
	"shoopaholic/pkg/analytics/service"
	kbservice "shoopaholic/pkg/kb/service"
	"shoopaholic/pkg/querylog/repository"
)

// extraction window: keyword signals come from the last N logged queries
const recentWindow = 50

const (
	maxRecentShown = 5
	maxTopKeywords = 5
)

type Svc struct {
	log repository.Repository
	kb  kbservice.KBService
	th  Thresholds
}

func New(log repository.Repository, kb kbservice.KBService, th Thresholds) *Svc {
	return &Svc{log: log, kb: kb, th: th}
}

func (s *Svc) Summary() (service.Summary, error) {
	total, err := s.log.Total()
	if err != nil {
		return service.Summary{}, err
	}
	recent, err := s.log.Recent(recentWindow)
	if err != nil {
		return service.Summary{}, err
	}

	shown := recent
	if len(shown) > maxRecentShown {
		shown = shown[:maxRecentShown]
	}
	top := TopKeywords(ExtractKeywords(recent), maxTopKeywords)

	return service.Summary{
		TotalQueries:  total,
		RecentQueries: shown,
		TopKeywords:   top,
	}, nil
}

func (s *Svc) Recommendations() ([]service.Recommendation, error) {
	summary, err := s.Summary()
	if err != nil {
		return nil, err
	}
	inventory, _ := s.kb.Current()
	return Recommend(summary.TopKeywords, summary.TotalQueries, inventory, s.th), nil
}
