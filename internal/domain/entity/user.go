package entity

import "time"

// Roles válidos para User. Conjunto cerrado: no hay jerarquía entre roles,
// la comparación es siempre por igualdad exacta.
const (
	RoleClient = "client"
	RoleSeller = "seller"
)

// ValidRole indica si el rol pertenece al conjunto cerrado {client, seller}.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleSeller
}

// User representa un usuario de la tienda. Inmutable después del registro:
// ninguna operación expuesta lo modifica ni lo elimina.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // client | seller
	CreatedAt    time.Time
}
