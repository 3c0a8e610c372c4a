package entity

// Claves de permiso. Coinciden con las columnas booleanas de la tabla roles.
const (
	PermEditInventory    = "can_edit_inventory"
	PermRegisterMovement = "can_register_movement"
	PermAddProduct       = "can_add_product"
	PermManageUsers      = "can_manage_users"
	PermManageRoles      = "can_manage_roles"
	PermSaveInventory    = "can_save_inventory"
	PermReviewInventory  = "can_review_inventory"
)

// Role define un conjunto fijo de permisos con nombre y un tope opcional de
// usuarios asignados. Un rol con usuarios asignados no puede borrarse.
type Role struct {
	ID                  int64  `json:"id"`
	Nombre              string `json:"nombre"`
	MaxUsers            *int64 `json:"max_users"`
	CanEditInventory    bool   `json:"can_edit_inventory"`
	CanRegisterMovement bool   `json:"can_register_movement"`
	CanAddProduct       bool   `json:"can_add_product"`
	CanManageUsers      bool   `json:"can_manage_users"`
	CanManageRoles      bool   `json:"can_manage_roles"`
	CanSaveInventory    bool   `json:"can_save_inventory"`
	CanReviewInventory  bool   `json:"can_review_inventory"`
}

// Has responde si el rol concede el permiso con la clave dada.
func (r Role) Has(perm string) bool {
	switch perm {
	case PermEditInventory:
		return r.CanEditInventory
	case PermRegisterMovement:
		return r.CanRegisterMovement
	case PermAddProduct:
		return r.CanAddProduct
	case PermManageUsers:
		return r.CanManageUsers
	case PermManageRoles:
		return r.CanManageRoles
	case PermSaveInventory:
		return r.CanSaveInventory
	case PermReviewInventory:
		return r.CanReviewInventory
	}
	return false
}
