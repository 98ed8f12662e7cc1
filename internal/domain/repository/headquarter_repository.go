package repository

import (
	"context"

	"github.com/tu-usuario/sedes-api/internal/domain/entity"
)

// HeadquarterRepository puerto de persistencia para sedes.
type HeadquarterRepository interface {
	ListActive(ctx context.Context) ([]*entity.Headquarter, error)
	GetByID(ctx context.Context, id int) (*entity.Headquarter, error)
}

// HeadquarterUserRepository puerto para el vínculo usuario↔sede.
// Solo creación: la membresía se da de alta junto con el usuario.
type HeadquarterUserRepository interface {
	Create(ctx context.Context, email string, headquarterID int) error
}
