package entity

import "time"

// Estados de ciclo de vida. Cualquier otro valor se trata como no-activo.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del sistema. El email es la clave natural:
// el flujo de login no usa un ID sustituto para las búsquedas.
// Roles solo viene poblado cuando se carga el grafo completo de
// autorización (FindAuthWithRoles); en el resto de consultas queda vacío.
type User struct {
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active, inactive
	Roles        []RoleAssignment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
