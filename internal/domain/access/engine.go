// Package access contiene el motor de decisión de autorización del login:
// lógica pura sobre el grafo usuario→roles→ventanas, sin I/O propio.
package access

import (
	"github.com/tu-usuario/sedes-api/internal/domain"
	"github.com/tu-usuario/sedes-api/internal/domain/entity"
)

// PasswordVerifier es la capacidad opaca de verificación de secretos.
// Se inyecta para que el motor (y sus tests) puedan sustituirla por una
// implementación determinista.
type PasswordVerifier interface {
	Matches(plain, hash string) bool
	Hash(plain string) (string, error)
}

// Decision es el payload de identidad de un login aceptado.
// Nunca incluye el hash de la contraseña ni el grafo de roles.
type Decision struct {
	Email  string
	Name   string
	Status string
}

// Engine evalúa intentos de login sobre un grafo de autorización ya
// cargado. Es función pura de sus entradas: sin estado mutable, seguro
// para uso concurrente sin coordinación.
type Engine struct {
	verifier PasswordVerifier
}

// NewEngine construye el motor con el verificador de contraseñas.
func NewEngine(verifier PasswordVerifier) *Engine {
	return &Engine{verifier: verifier}
}

// Evaluate decide si un intento de login se acepta. user es el grafo
// completo precargado, o nil si la cuenta no existe.
//
// El orden de los chequeos importa: determina qué razón de rechazo ve el
// llamador. Existencia → estado → contraseña → roles → rol activo →
// permiso de lectura sobre la ventana.
func (e *Engine) Evaluate(user *entity.User, password, windowName string) (*Decision, error) {
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrUserInactive
	}
	if !e.verifier.Matches(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if len(user.Roles) == 0 {
		return nil, domain.ErrNoRolesAssigned
	}

	var activeRoles []entity.RoleAssignment
	for _, ur := range user.Roles {
		if ur.Role.Status == entity.StatusActive {
			activeRoles = append(activeRoles, ur)
		}
	}
	if len(activeRoles) == 0 {
		return nil, domain.ErrInactiveRole
	}

	// Búsqueda plana sobre (rol activo × permisos de ventana); basta la
	// primera coincidencia, los permisos no se jerarquizan.
	if !hasReadAccess(activeRoles, windowName) {
		return nil, domain.ErrNoReadAccess
	}

	return &Decision{Email: user.Email, Name: user.Name, Status: user.Status}, nil
}

func hasReadAccess(roles []entity.RoleAssignment, windowName string) bool {
	for _, ur := range roles {
		for _, rw := range ur.Role.Windows {
			if rw.Window.Name == windowName &&
				rw.Window.Status == entity.StatusActive &&
				rw.Read == 1 {
				return true
			}
		}
	}
	return false
}
