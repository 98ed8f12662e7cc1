package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sedes-api/internal/application/auth"
	"github.com/tu-usuario/sedes-api/internal/application/dto"
	"github.com/tu-usuario/sedes-api/internal/domain"
	"github.com/tu-usuario/sedes-api/internal/domain/access"
	"github.com/tu-usuario/sedes-api/internal/domain/entity"
	"github.com/tu-usuario/sedes-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeVerifier struct{}

func (fakeVerifier) Matches(plain, hash string) bool   { return "hash:"+plain == hash }
func (fakeVerifier) Hash(plain string) (string, error) { return "hash:" + plain, nil }

// fakeUserRepo solo implementa lo que el login usa; el resto no se invoca.
type fakeUserRepo struct {
	user          *entity.User
	findErr       error
	accessErr     error
	accessInserts int
}

func (f *fakeUserRepo) FindAuthWithRoles(ctx context.Context, email string) (*entity.User, error) {
	return f.user, f.findErr
}

func (f *fakeUserRepo) CreateLoginAccess(ctx context.Context, email string) error {
	f.accessInserts++
	return f.accessErr
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) UpdateStatus(ctx context.Context, email, status string) error {
	return nil
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, email string) error { return nil }

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	engine := access.NewEngine(fakeVerifier{})
	return auth.NewAuthUseCase(repo, engine, logger.Nop())
}

func authorizedUser() *entity.User {
	return &entity.User{
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "hash:clave-correcta",
		Status:       entity.StatusActive,
		Roles: []entity.RoleAssignment{{Role: entity.Role{
			ID:     1,
			Name:   "consulta",
			Status: entity.StatusActive,
			Windows: []entity.WindowPermission{
				{Window: entity.Window{ID: 10, Name: "dashboard", Status: entity.StatusActive}, Read: 1},
			},
		}}},
	}
}

func loginReq() dto.LoginRequest {
	return dto.LoginRequest{Email: "ana@example.com", Password: "clave-correcta", Window: "dashboard"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Email o password vacíos se rechazan antes de tocar el store.
func TestLogin_PeticionInvalida(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	for _, in := range []dto.LoginRequest{
		{Email: "", Password: "x", Window: "dashboard"},
		{Email: "ana@example.com", Password: "", Window: "dashboard"},
	} {
		out, err := uc.Login(context.Background(), in)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, repo.accessInserts, "no debe registrarse ningún acceso")
}

// Login aceptado: devuelve el resumen de identidad y registra el acceso una vez.
func TestLogin_AceptadoRegistraAcceso(t *testing.T) {
	repo := &fakeUserRepo{user: authorizedUser()}
	uc := newUseCase(repo)

	out, err := uc.Login(context.Background(), loginReq())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.Equal(t, 1, repo.accessInserts, "exactamente un registro de acceso por login")
}

// El fallo al registrar el acceso no revierte la decisión aceptada.
func TestLogin_FalloDeAuditoriaNoEsFatal(t *testing.T) {
	repo := &fakeUserRepo{
		user:      authorizedUser(),
		accessErr: errors.New("login_access no disponible"),
	}
	uc := newUseCase(repo)

	out, err := uc.Login(context.Background(), loginReq())
	require.NoError(t, err, "el fallo de auditoría se loguea, no se propaga")
	assert.Equal(t, "ana@example.com", out.Email)
}

// Los rechazos del motor llegan al llamador sin colapsar en error genérico.
func TestLogin_RazonesDeRechazoSePropagan(t *testing.T) {
	cases := []struct {
		name string
		user func() *entity.User
		in   dto.LoginRequest
		want error
	}{
		{
			name: "usuario inexistente",
			user: func() *entity.User { return nil },
			in:   loginReq(),
			want: domain.ErrInvalidCredentials,
		},
		{
			name: "usuario inactivo",
			user: func() *entity.User {
				u := authorizedUser()
				u.Status = entity.StatusInactive
				return u
			},
			in:   loginReq(),
			want: domain.ErrUserInactive,
		},
		{
			name: "sin roles",
			user: func() *entity.User {
				u := authorizedUser()
				u.Roles = nil
				return u
			},
			in:   loginReq(),
			want: domain.ErrNoRolesAssigned,
		},
		{
			name: "rol inactivo",
			user: func() *entity.User {
				u := authorizedUser()
				u.Roles[0].Role.Status = entity.StatusInactive
				return u
			},
			in:   loginReq(),
			want: domain.ErrInactiveRole,
		},
		{
			name: "sin lectura en la ventana pedida",
			user: authorizedUser,
			in:   dto.LoginRequest{Email: "ana@example.com", Password: "clave-correcta", Window: "reports"},
			want: domain.ErrNoReadAccess,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeUserRepo{user: tc.user()}
			uc := newUseCase(repo)

			out, err := uc.Login(context.Background(), tc.in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, repo.accessInserts, "un rechazo nunca registra acceso")
		})
	}
}

// El error de infraestructura del fetch se propaga tal cual.
func TestLogin_ErrorDeStoreSePropaga(t *testing.T) {
	storeErr := errors.New("DB caída")
	repo := &fakeUserRepo{findErr: storeErr}
	uc := newUseCase(repo)

	out, err := uc.Login(context.Background(), loginReq())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, storeErr)
}
