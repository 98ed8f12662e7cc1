package auth

import (
	"context"

	"github.com/tu-usuario/sedes-api/internal/application/dto"
	"github.com/tu-usuario/sedes-api/internal/domain"
	"github.com/tu-usuario/sedes-api/internal/domain/access"
	"github.com/tu-usuario/sedes-api/internal/domain/repository"
	"github.com/tu-usuario/sedes-api/pkg/logger"
)

// AuthUseCase orquesta el login: fetch del grafo de autorización,
// evaluación en el motor y registro del acceso.
type AuthUseCase struct {
	userRepo repository.UserRepository
	engine   *access.Engine
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, engine *access.Engine, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, engine: engine, log: log}
}

// Login valida la petición, carga el grafo completo del usuario y delega
// la decisión al motor. Los rechazos del motor se propagan tal cual: la
// capa HTTP diferencia los mensajes por razón.
//
// El registro de acceso es best-effort: si falla, se loguea en warn y la
// decisión aceptada no se revierte.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindAuthWithRoles(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	decision, err := uc.engine.Evaluate(user, in.Password, in.Window)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.CreateLoginAccess(ctx, decision.Email); err != nil {
		uc.log.Warn().Err(err).Str("email", decision.Email).
			Msg("no se pudo registrar el acceso de login")
	}

	return &dto.LoginResponse{
		Email:  decision.Email,
		Name:   decision.Name,
		Status: decision.Status,
	}, nil
}
