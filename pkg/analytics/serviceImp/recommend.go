package serviceImp

import (
	"fmt"
	"strings"

	"shoopaholic/pkg/analytics/service"
)

// Thresholds tune when gap analysis is considered meaningful. Defaults match
// the shipped configuration; both knobs are environment-overridable.
type Thresholds struct {
	MinQueries int // minimum logged queries before any gap analysis
	MinCount   int // minimum repetitions before a keyword counts as demand
}

const insufficientDataMsg = "Wait for more customers to ask questions to get insights."

// Recommend compares top query keywords against the current inventory text
// and emits opportunity or confirmation messages. Output order follows the
// input keyword order.
func Recommend(top []service.KeywordCount, totalQueries int64, inventoryText string, th Thresholds) []service.Recommendation {
	if totalQueries < int64(th.MinQueries) {
		return []service.Recommendation{{Kind: service.KindInfo, Text: insufficientDataMsg}}
	}

	inventory := strings.ToLower(inventoryText)
	var out []service.Recommendation
	for _, kw := range top {
		if kw.Count < th.MinCount {
			continue
		}
		if strings.Contains(inventory, kw.Word) {
			continue
		}
		out = append(out, service.Recommendation{
			Kind: service.KindOpportunity,
			Text: fmt.Sprintf("📈 Opportunity: Customers are asking about '%s', but it's not in your catalog.", kw.Word),
		})
	}
	if len(out) == 0 {
		out = append(out, service.Recommendation{Kind: service.KindConfirmation, Text: "✅ Inventory matches demand."})
	}
	return out
}
