package repository

import (
	"context"

	"github.com/tu-usuario/sedes-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas devuelven (nil, nil) cuando no hay fila, no error.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateStatus(ctx context.Context, email, status string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, email string) error

	// FindAuthWithRoles carga en una sola llamada el grafo completo de
	// autorización: usuario → roles → permisos de ventana → ventanas.
	// El motor de decisión no hace fetches incrementales.
	FindAuthWithRoles(ctx context.Context, email string) (*entity.User, error)

	// CreateLoginAccess inserta el registro de auditoría de un login
	// exitoso. Best-effort: el llamador no revierte la decisión si falla.
	CreateLoginAccess(ctx context.Context, email string) error
}
