package privacy

import "github.com/jonathan/ats-scorer/internal/types"

// mediumRiskThreshold is the mention count above which risk escalates
// from low to medium.
const mediumRiskThreshold = 3

// riskLevel rates the unacceptable mentions. Any street address or ZIP
// code is high risk regardless of count.
func riskLevel(risky []types.LocationMention) string {
	if len(risky) == 0 {
		return types.RiskNone
	}
	for _, m := range risky {
		if m.Type == types.LocationAddress || m.Type == types.LocationZip {
			return types.RiskHigh
		}
	}
	if len(risky) > mediumRiskThreshold {
		return types.RiskMedium
	}
	return types.RiskLow
}

// penaltyFor maps the risk level to the score penalty. Address plus ZIP
// together is the worst case.
func penaltyFor(risk string, risky []types.LocationMention) float64 {
	hasAddress, hasZip := false, false
	for _, m := range risky {
		switch m.Type {
		case types.LocationAddress:
			hasAddress = true
		case types.LocationZip:
			hasZip = true
		}
	}

	switch {
	case hasAddress && hasZip:
		return 5
	case hasAddress || hasZip:
		return 4
	case risk == types.RiskMedium:
		return 3
	case risk == types.RiskLow:
		return 2
	}
	return 0
}
