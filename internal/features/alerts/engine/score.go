package engine

import (
	"slices"

	"shipment-monitor/internal/features/alerts/domain"
	"shipment-monitor/internal/features/alerts/rules"
)

const maxScore = 100

type finding struct {
	reason domain.RiskReason
	weight int
}

// evaluate runs every detector in declaration order.
func evaluate(in *input) []finding {
	var found []finding
	for _, d := range detectors {
		if d.trigger(in) {
			found = append(found, finding{reason: d.reason, weight: in.rules.Weight(d.reason)})
		}
	}
	return found
}

// aggregate turns findings into a bounded score, a severity and ranked reasons.
// Findings must arrive in detector order so the stable sort keeps it for ties.
func aggregate(found []finding, r *rules.Rules) (int, domain.Severity, []domain.RiskReason) {
	ranked := slices.Clone(found)
	slices.SortStableFunc(ranked, func(a, b finding) int {
		return b.weight - a.weight
	})

	reasons := make([]domain.RiskReason, 0, len(ranked))
	lost := false
	score := 0
	for _, f := range ranked {
		reasons = append(reasons, f.reason)
		score += f.weight
		if f.reason == domain.ReasonLost {
			lost = true
		}
	}

	if lost {
		return maxScore, domain.SeverityHigh, reasons
	}

	score = min(score, maxScore)
	return score, severityFor(score, r.Severity), reasons
}

func severityFor(score int, cutoffs rules.SeverityCutoffs) domain.Severity {
	switch {
	case score >= cutoffs.High:
		return domain.SeverityHigh
	case score >= cutoffs.Medium:
		return domain.SeverityMedium
	}
	return domain.SeverityLow
}
