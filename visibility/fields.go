package visibility

import "github.com/mohitkumar/engage/step"

const RISK_RATING_FIELD = "riskRating"
const RISK_IMPACT_COMMENTS_FIELD = "riskImpactComments"

var riskEditableAt = step.Only("relationshipPartnerApproval")

// RiskFields are read-only outside relationship partner approval.
var RiskFields = []string{RISK_RATING_FIELD, RISK_IMPACT_COMMENTS_FIELD}

func RiskFieldEditable(id step.Id) bool {
	return riskEditableAt.Contains(id)
}
