// Package visibility decides which parts of the engagement approval wizard are
// shown and editable for a workflow step and a set of loaded facts. Every
// function is pure and total: unknown steps resolve to hidden or disabled.
package visibility

import (
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/step"
)

// Evaluate computes a fresh decision for every element the wizard renders.
func Evaluate(id step.Id, f facts.Engagement) Decisions {
	out := make(Decisions, len(permitted)+len(Questions)+len(RiskFields)+4)
	for _, b := range StepButtons() {
		out[string(b)] = ButtonDecision(b, id)
	}
	out[string(START_WORKFLOW_BUTTON)] = StartWorkflowDecision(f)

	out[ATTEST_SECTION] = visibleIf(ShowAttestSection(f.IsAttest, id))
	out[NON_ATTEST_SECTION] = visibleIf(ShowNonAttestSection(f.IsAttest, id))

	for _, q := range Questions {
		out[CommentField(q)] = visibleIf(CommentVisible(f.Answer(q)))
	}

	out[BILLING_SCHEDULES] = BillingScheduleDecision(f.HasBiller(), f.HasBillToClient())

	editable := RiskFieldEditable(id)
	for _, field := range RiskFields {
		out[field] = editableIf(editable)
	}
	return out
}
