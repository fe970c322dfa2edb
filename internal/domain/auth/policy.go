// Package auth holds the portal's roles, their capabilities and the
// per-request session.
package auth

import "strings"

type Role string

const (
	RoleAdmin                  Role = "Admin"
	RoleDataEntryOperator      Role = "Data Entry Operator"
	RoleTechnicalApprover      Role = "Technical Approver"
	RoleAdministrativeApprover Role = "Administrative Approver"
	RoleTenderManager          Role = "Tender Manager"
	RoleWorkOrderManager       Role = "Work Order Manager"
	RoleProgressMonitor        Role = "Progress Monitor"
	RoleViewer                 Role = "Viewer"
)

var roles = []Role{
	RoleAdmin,
	RoleDataEntryOperator,
	RoleTechnicalApprover,
	RoleAdministrativeApprover,
	RoleTenderManager,
	RoleWorkOrderManager,
	RoleProgressMonitor,
	RoleViewer,
}

// ParseRole matches a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

type Capability string

const (
	CapCreateWork            Capability = "create_work"
	CapApproveTechnical      Capability = "approve_technical"
	CapApproveAdministrative Capability = "approve_administrative"
	CapManageTender          Capability = "manage_tender"
	CapIssueWorkOrder        Capability = "issue_work_order"
	CapRecordProgress        Capability = "record_progress"
	CapReleaseInstallment    Capability = "release_installment"
	CapCompleteWork          Capability = "complete_work"
	CapViewProgress          Capability = "view_progress"
	CapAdminister            Capability = "administer"
)

// Policy decides whether a role holds a capability.
type Policy interface {
	Allows(role Role, capability Capability) bool
}

// RolePolicy is a static role -> capability table.
type RolePolicy map[Role]map[Capability]bool

var _ Policy = RolePolicy(nil)

func (p RolePolicy) Allows(role Role, capability Capability) bool {
	return p[role][capability]
}

func capabilities(caps ...Capability) map[Capability]bool {
	out := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		out[c] = true
	}
	return out
}

// DefaultPolicy is the table the portal ships with.
func DefaultPolicy() RolePolicy {
	return RolePolicy{
		RoleAdmin: capabilities(
			CapCreateWork, CapApproveTechnical, CapApproveAdministrative, CapManageTender,
			CapIssueWorkOrder, CapRecordProgress, CapReleaseInstallment, CapCompleteWork,
			CapViewProgress, CapAdminister,
		),
		RoleDataEntryOperator:      capabilities(CapCreateWork, CapViewProgress),
		RoleTechnicalApprover:      capabilities(CapApproveTechnical, CapViewProgress),
		RoleAdministrativeApprover: capabilities(CapApproveAdministrative, CapViewProgress),
		RoleTenderManager:          capabilities(CapManageTender, CapViewProgress),
		RoleWorkOrderManager:       capabilities(CapIssueWorkOrder, CapViewProgress),
		RoleProgressMonitor:        capabilities(CapRecordProgress, CapReleaseInstallment, CapCompleteWork, CapViewProgress),
		RoleViewer:                 capabilities(CapViewProgress),
	}
}
