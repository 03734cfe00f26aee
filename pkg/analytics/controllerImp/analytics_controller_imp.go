package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shoopaholic/pkg/analytics/service"
)

type AnalyticsCtrl struct {
	s service.AnalyticsService
}

func New(s service.AnalyticsService) *AnalyticsCtrl { return &AnalyticsCtrl{s: s} }

func (h *AnalyticsCtrl) Analytics(c echo.Context) error {
	summary, err := h.s.Summary()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
	if summary.RecentQueries == nil {
		summary.RecentQueries = []string{}
	}
	if summary.TopKeywords == nil {
		summary.TopKeywords = []service.KeywordCount{}
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsCtrl) Recommendations(c echo.Context) error {
	recs, err := h.s.Recommendations()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
	msgs := make([]string, 0, len(recs))
	for _, r := range recs {
		msgs = append(msgs, r.Text)
	}
	return c.JSON(http.StatusOK, map[string]any{"msgs": msgs})
}
