package visibility

import "github.com/mohitkumar/engage/step"

const ATTEST_SECTION = "attestSection"
const NON_ATTEST_SECTION = "nonAttestSection"

var attestHiddenAt = step.Only("pmfaPumApproval", "pmiaPartnerApproval", "pmtPartnerApproval", "pumApproval")
var nonAttestHiddenAt = step.Only("industryGroupLeaderApproval", "secApproval", "ebpaApproval")

// ShowAttestSection and ShowNonAttestSection need opposite isAttest values,
// so at most one of them holds. Both are false while isAttest is unknown.
func ShowAttestSection(isAttest *bool, id step.Id) bool {
	return isAttest != nil && *isAttest && !attestHiddenAt.Contains(id)
}

func ShowNonAttestSection(isAttest *bool, id step.Id) bool {
	return isAttest != nil && !*isAttest && !nonAttestHiddenAt.Contains(id)
}
