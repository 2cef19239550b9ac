package dto

import "time"

// RegisterRequest entrada del formulario de registro.
type RegisterRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"` // client | seller; vacío o desconocido -> client
}

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
