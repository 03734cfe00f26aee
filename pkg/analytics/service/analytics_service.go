package service

// KeywordCount is one normalized token and how often it appeared across
// logged queries.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Recommendation kinds.
const (
	KindInfo         = "info"
	KindOpportunity  = "opportunity"
	KindConfirmation = "confirmation"
)

type Recommendation struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Summary is the analytics payload served to the admin dashboard.
type Summary struct {
	TotalQueries  int64          `json:"total_queries"`
	RecentQueries []string       `json:"recent_queries"`
	TopKeywords   []KeywordCount `json:"top_keywords"`
}

type AnalyticsService interface {
	Summary() (Summary, error)
	Recommendations() ([]Recommendation, error)
}
