package facts

type RoleId int

const (
	RoleRelationshipPartner RoleId = 1
	RoleEngagementPartner   RoleId = 2
	RoleBiller              RoleId = 3
	RoleManager             RoleId = 4
)

type JobRole struct {
	RoleId    RoleId `json:"roleId"`
	StaffId   string `json:"staffId,omitempty"`
	StaffName string `json:"staffName,omitempty"`
}

// HasRole reports whether any job role carries the given role. No roles is
// the normal case for a fresh engagement.
func HasRole(jobRoles []JobRole, role RoleId) bool {
	for _, jr := range jobRoles {
		if jr.RoleId == role {
			return true
		}
	}
	return false
}

func HasBiller(jobRoles []JobRole) bool {
	return HasRole(jobRoles, RoleBiller)
}
