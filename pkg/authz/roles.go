package authz

import "backend/entity"

// Role is the resolved authorization role of a request, computed once per
// request from the authenticated user's group memberships.
type Role int

const (
	RoleCustomer Role = iota
	RoleDeliveryCrew
	RoleManager
)

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleDeliveryCrew:
		return "delivery-crew"
	default:
		return "customer"
	}
}

// Operation names a permission-checked action.
type Operation string

const (
	OpCatalogWrite    Operation = "catalog:write"
	OpOrderListAll    Operation = "order:list-all"
	OpOrderAssignCrew Operation = "order:assign-crew"
	OpOrderSetStatus  Operation = "order:set-status"
	OpOrderAdmin      Operation = "order:admin"
	OpGroupManage     Operation = "group:manage"
)

// capabilities backs every permission decision, one row per role and one
// column per operation. Managers have no order:set-status entry; only the
// assigned crew member flips delivery status.
var capabilities = map[Role]map[Operation]bool{
	RoleCustomer: {},
	RoleDeliveryCrew: {
		OpOrderSetStatus: true,
	},
	RoleManager: {
		OpCatalogWrite:    true,
		OpOrderListAll:    true,
		OpOrderAssignCrew: true,
		OpOrderAdmin:      true,
		OpGroupManage:     true,
	},
}

// Can reports whether the role may perform the operation.
func Can(role Role, op Operation) bool {
	return capabilities[role][op]
}

// Resolve collapses the staff flag and group memberships into one role.
// Staff counts as Manager; Manager membership outranks Delivery Crew.
func Resolve(isStaff bool, groupNames []string) Role {
	if isStaff {
		return RoleManager
	}
	role := RoleCustomer
	for _, name := range groupNames {
		switch name {
		case entity.GroupManager:
			return RoleManager
		case entity.GroupDeliveryCrew:
			role = RoleDeliveryCrew
		}
	}
	return role
}
