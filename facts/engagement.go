// Package facts holds the loaded engagement state the visibility rules read.
// Nothing here mutates; the editing flow owns the values.
package facts

import "github.com/mohitkumar/engage/step"

const EXISTING_CLIENT_SEARCH = "Existing"
const NEW_CLIENT_SEARCH = "New"

type Engagement struct {
	IsAttest           *bool             `json:"isAttest"`
	JobRoles           []JobRole         `json:"jobRoles"`
	BillToClientNumber ClientNumber      `json:"billToClientNumber"`
	Answers            map[string]Answer `json:"answers"`
	InstanceId         *string           `json:"instanceId"`
	ClientSearchType   string            `json:"clientSearchType"`
	ClientNumber       ClientNumber      `json:"clientNumber"`
}

// Answer returns Unanswered for questions that are not present.
func (e Engagement) Answer(question string) Answer {
	return e.Answers[question]
}

func (e Engagement) HasBiller() bool {
	return HasBiller(e.JobRoles)
}

func (e Engagement) HasBillToClient() bool {
	return HasBillToClient(e.BillToClientNumber)
}

func (e Engagement) WorkflowStarted() bool {
	return e.InstanceId != nil
}

// Document is what the service stores per engagement: the workflow position
// reported by the backend plus the loaded facts.
type Document struct {
	Id            string     `json:"id"`
	CurrentStepId step.Id    `json:"currentStepId"`
	Facts         Engagement `json:"facts"`
}
