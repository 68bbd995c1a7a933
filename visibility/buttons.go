package visibility

import (
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/step"
)

type Button string

const SAVE_BUTTON Button = "saveButton"
const DELETE_BUTTON Button = "deleteButton"
const SUBMIT_BUTTON Button = "submitButton"
const APPROVE_BUTTON Button = "approveButton"
const RETURN_BUTTON Button = "returnButton"
const TERMINATE_BUTTON Button = "terminateButton"
const HISTORY_BUTTON Button = "historyButton"
const START_WORKFLOW_BUTTON Button = "startWorkflowButton"

var permitted = map[Button]step.Set{
	SAVE_BUTTON:      step.AllExcept("internalAccountingForeignDataEntry"),
	DELETE_BUTTON:    step.Only("draft"),
	SUBMIT_BUTTON:    step.Only("draft"),
	APPROVE_BUTTON:   step.AllExcept("draft"),
	RETURN_BUTTON:    step.AllExcept("draft", "internalAccountingForeignDataEntry"),
	TERMINATE_BUTTON: step.AllExcept("draft", "internalAccountingForeignDataEntry"),
	HISTORY_BUTTON:   step.AllExcept(),
}

// StepButtons lists the buttons whose visibility depends only on the step.
func StepButtons() []Button {
	return []Button{
		SAVE_BUTTON,
		DELETE_BUTTON,
		SUBMIT_BUTTON,
		APPROVE_BUTTON,
		RETURN_BUTTON,
		TERMINATE_BUTTON,
		HISTORY_BUTTON,
	}
}

func Permitted(b Button) (step.Set, bool) {
	s, ok := permitted[b]
	return s, ok
}

func ButtonVisible(b Button, id step.Id) bool {
	return permitted[b].Contains(id)
}

func ButtonDecision(b Button, id step.Id) Decision {
	return visibleIf(ButtonVisible(b, id))
}

// StartWorkflowDecision applies before any workflow instance exists, so it
// ignores the step.
func StartWorkflowDecision(f facts.Engagement) Decision {
	if f.WorkflowStarted() {
		return Decision{State: Hidden}
	}
	return editableIf(f.ClientSearchType == facts.EXISTING_CLIENT_SEARCH && f.ClientNumber.Present())
}
