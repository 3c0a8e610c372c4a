package dto

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Celular  string `json:"celular"`
	RolID    int64  `json:"rol_id"`
}

// LoginRequest inicio de sesión. Identificador acepta email o "Nombre Apellido".
type LoginRequest struct {
	Identificador string `json:"identificador"`
	Password      string `json:"password"`
}

// LoginResponse token emitido más el perfil básico.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse perfil de usuario expuesto por la API.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Celular  string `json:"celular,omitempty"`
	RolID    int64  `json:"rol_id"`
}

// UpdateProfileRequest edición del perfil propio.
type UpdateProfileRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Celular  string `json:"celular"`
}

// UserListItem fila del listado privilegiado de usuarios.
type UserListItem struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
	Email    string `json:"email"`
}
