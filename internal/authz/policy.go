package authz

import "site-tracker/internal/models"

// Action is something a logged-in user may try to do. Checks go through
// Allowed so every route consults the same table.
type Action string

const (
	ActionViewMaterials   Action = "view_materials"
	ActionManageMaterials Action = "manage_materials" // create + full edit
	ActionUpdateQuantity  Action = "update_quantity"
	ActionDeleteMaterial  Action = "delete_material"
	ActionViewEquipment   Action = "view_equipment"
	ActionManageEquipment Action = "manage_equipment" // create equipment + add service log
	ActionViewActivity    Action = "view_activity"
)

var policy = map[Action][]models.UserRole{
	ActionViewMaterials:   {models.RoleAdmin, models.RoleCrewLeader, models.RoleCrewMember},
	ActionManageMaterials: {models.RoleAdmin, models.RoleCrewLeader, models.RoleCrewMember},
	ActionUpdateQuantity:  {models.RoleAdmin, models.RoleCrewLeader, models.RoleCrewMember},
	ActionDeleteMaterial:  {models.RoleAdmin},
	ActionViewEquipment:   {models.RoleAdmin, models.RoleCrewLeader, models.RoleCrewMember},
	ActionManageEquipment: {models.RoleAdmin, models.RoleCrewLeader, models.RoleCrewMember},
	ActionViewActivity:    {models.RoleAdmin},
}

// Allowed reports whether role may perform action. Unknown roles and
// unknown actions are denied.
func Allowed(role models.UserRole, action Action) bool {
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}
