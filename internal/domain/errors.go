package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los rechazos de login son resultados esperados de cara al usuario, no
// fallos de sistema: cada razón se expone como un error distinto para que
// la capa HTTP pueda diferenciar los mensajes. "Usuario no existe" y
// "contraseña incorrecta" comparten ErrInvalidCredentials a propósito,
// para no permitir enumerar cuentas.
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserInactive       = errors.New("el usuario está inactivo, contacte al administrador")
	ErrNoRolesAssigned    = errors.New("el usuario no tiene roles asignados")
	ErrInactiveRole       = errors.New("el rol del usuario está inactivo")
	ErrNoReadAccess       = errors.New("el usuario no tiene permisos de lectura o la página está inactiva")

	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
