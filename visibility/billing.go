package visibility

const BILLING_SCHEDULES = "billingSchedules"

const NEED_BOTH_MESSAGE = "Add a Biller job role and select a bill-to client before creating billing schedules."
const NEED_BILLER_MESSAGE = "Add a Biller job role before creating billing schedules."
const NEED_BILL_TO_CLIENT_MESSAGE = "Select a bill-to client before creating billing schedules."

// BillingScheduleDecision carries exactly one explanatory message when the
// schedules are disabled.
func BillingScheduleDecision(hasBiller bool, hasBillToClient bool) Decision {
	if !hasBiller && !hasBillToClient {
		return Decision{State: Disabled, Message: NEED_BOTH_MESSAGE}
	} else if !hasBiller {
		return Decision{State: Disabled, Message: NEED_BILLER_MESSAGE}
	} else if !hasBillToClient {
		return Decision{State: Disabled, Message: NEED_BILL_TO_CLIENT_MESSAGE}
	}
	return Decision{State: Enabled}
}
