package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/sedes-api/internal/application/dto"
	"github.com/tu-usuario/sedes-api/internal/domain"
	"github.com/tu-usuario/sedes-api/internal/domain/access"
	"github.com/tu-usuario/sedes-api/internal/domain/entity"
	"github.com/tu-usuario/sedes-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios: CRUD pass-through al
// puerto de persistencia, con hashing de contraseñas antes de persistir.
// Nunca se guarda texto plano.
type UserUseCase struct {
	repo       repository.UserRepository
	hqUserRepo repository.HeadquarterUserRepository
	verifier   access.PasswordVerifier
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia
// y el verificador (para hashear).
func NewUserUseCase(repo repository.UserRepository, hqUserRepo repository.HeadquarterUserRepository, verifier access.PasswordVerifier) *UserUseCase {
	return &UserUseCase{repo: repo, hqUserRepo: hqUserRepo, verifier: verifier}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Get obtiene un usuario por email. Devuelve ErrUserNotFound si no existe.
func (uc *UserUseCase) Get(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Create crea un usuario: hashea la contraseña y persiste. Si la petición
// trae sede, crea además el vínculo usuario↔sede (membresía, no permisos).
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := uc.verifier.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	now := time.Now()
	user := &entity.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if in.IDHeadquarter != 0 {
		if err := uc.hqUserRepo.Create(ctx, user.Email, in.IDHeadquarter); err != nil {
			return nil, err
		}
	}

	return toUserResponse(user), nil
}

// Update actualiza un usuario por email. Si viene contraseña, se hashea y
// solo se actualiza la contraseña; si no, nombre y estado.
func (uc *UserUseCase) Update(ctx context.Context, email string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Password != "" {
		hash, err := uc.verifier.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.UpdatePassword(ctx, email, hash); err != nil {
			return nil, err
		}
		return toUserResponse(user), nil
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateStatus cambia solo el estado del usuario.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, email, status string) error {
	return uc.repo.UpdateStatus(ctx, email, status)
}

// UpdatePassword cambia solo la contraseña, hasheada antes de guardar.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, email, password string) error {
	if password == "" {
		return domain.ErrInvalidInput
	}
	hash, err := uc.verifier.Hash(password)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(ctx, email, hash)
}

// Delete elimina un usuario por email.
func (uc *UserUseCase) Delete(ctx context.Context, email string) error {
	return uc.repo.Delete(ctx, email)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
