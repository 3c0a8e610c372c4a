package dto

// RoleRequest alta o edición de rol con su matriz de permisos.
type RoleRequest struct {
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

// RoleOption entrada mínima del listado público (dropdown de registro).
type RoleOption struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// RoleResponse rol con permisos y conteo de usuarios asignados.
type RoleResponse struct {
	ID                  int64  `json:"id"`
	Nombre              string `json:"nombre"`
	MaxUsers            *int64 `json:"max_users,omitempty"`
	UserCount           int64  `json:"user_count"`
	CanEditInventory    bool   `json:"can_edit_inventory"`
	CanRegisterMovement bool   `json:"can_register_movement"`
	CanAddProduct       bool   `json:"can_add_product"`
	CanManageUsers      bool   `json:"can_manage_users"`
	CanManageRoles      bool   `json:"can_manage_roles"`
	CanSaveInventory    bool   `json:"can_save_inventory"`
	CanReviewInventory  bool   `json:"can_review_inventory"`
}
