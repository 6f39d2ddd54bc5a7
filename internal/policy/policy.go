package policy

import "github.com/harshhadiyal7/Resource-Management-System-V2/internal/model"

// Action names a guarded group of routes. Routes that only require a valid
// session (the per-category item listings) carry no action at all.
type Action string

const (
	CanteenWrite    Action = "canteen:write"
	StationeryWrite Action = "stationery:write"
	HostelWrite     Action = "hostel:write"
	StudentViews    Action = "student:views"
	ManageUsers     Action = "admin:users"
	ViewInventory   Action = "admin:inventory"
)

// table is the complete route policy. It is data, not logic: every entry
// that lists a staff role also lists admin, matching the uniform
// staff-plus-admin pairing on write endpoints.
var table = map[Action][]model.Role{
	CanteenWrite:    {model.RoleCanteen, model.RoleAdmin},
	StationeryWrite: {model.RoleStationery, model.RoleAdmin},
	HostelWrite:     {model.RoleHostel, model.RoleAdmin},
	StudentViews:    {model.RoleStudent, model.RoleAdmin},
	ManageUsers:     {model.RoleAdmin},
	ViewInventory:   {model.RoleAdmin},
}

// Allowed reports whether the role may invoke the action. Unknown actions
// allow nobody.
func Allowed(action Action, role model.Role) bool {
	for _, allowed := range table[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Roles returns a copy of the allowed set, for audits and tests.
func Roles(action Action) []model.Role {
	allowed := table[action]
	out := make([]model.Role, len(allowed))
	copy(out, allowed)
	return out
}
