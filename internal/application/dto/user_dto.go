package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el use case). IDHeadquarter es opcional: si viene, se crea el
// vínculo usuario↔sede además del usuario.
type CreateUserRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Password      string `json:"password" validate:"required,min=8"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
	IDHeadquarter int    `json:"id_headquarter" validate:"omitempty,min=1"`
}

// UpdateUserRequest entrada para actualizar un usuario por email.
// Si Password viene, solo se actualiza la contraseña (hasheada).
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// UpdateStatusRequest entrada para cambiar solo el estado.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// UpdatePasswordRequest entrada para cambiar solo la contraseña.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// LoginRequest entrada para login: credenciales más la ventana solicitada.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Window   string `json:"window" validate:"required"`
}

// LoginResponse salida de un login aceptado: resumen de identidad,
// nunca el hash ni el grafo de roles.
type LoginResponse struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
