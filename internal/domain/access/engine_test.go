package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sedes-api/internal/domain"
	"github.com/tu-usuario/sedes-api/internal/domain/access"
	"github.com/tu-usuario/sedes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeVerifier verificador determinista: el hash de p es "hash:"+p.
type fakeVerifier struct{}

func (fakeVerifier) Matches(plain, hash string) bool { return "hash:"+plain == hash }
func (fakeVerifier) Hash(plain string) (string, error) {
	return "hash:" + plain, nil
}

const (
	goodPassword = "clave-correcta"
	goodHash     = "hash:" + goodPassword
)

func newEngine() *access.Engine {
	return access.NewEngine(fakeVerifier{})
}

// activeUser usuario activo con contraseña correcta y los roles indicados.
func activeUser(roles ...entity.RoleAssignment) *entity.User {
	return &entity.User{
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: goodHash,
		Status:       entity.StatusActive,
		Roles:        roles,
	}
}

// roleWithWindow rol con un único permiso sobre una ventana.
func roleWithWindow(roleStatus, windowName, windowStatus string, read int) entity.RoleAssignment {
	return entity.RoleAssignment{Role: entity.Role{
		ID:     1,
		Name:   "consulta",
		Status: roleStatus,
		Windows: []entity.WindowPermission{
			{Window: entity.Window{ID: 10, Name: windowName, Status: windowStatus}, Read: read},
		},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de rechazo
// ──────────────────────────────────────────────────────────────────────────────

// Escenario E: cuenta ausente del store → credenciales inválidas (misma
// razón que contraseña incorrecta, para no enumerar cuentas).
func TestEvaluate_UsuarioInexistente(t *testing.T) {
	dec, err := newEngine().Evaluate(nil, goodPassword, "dashboard")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Escenario F: contraseña incorrecta con cuenta activa → credenciales inválidas.
func TestEvaluate_PasswordIncorrecta(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))
	dec, err := newEngine().Evaluate(user, "otra-clave", "dashboard")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Cuenta no activa → rechazada aunque la contraseña y los roles sean válidos.
func TestEvaluate_UsuarioInactivo(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))
	user.Status = entity.StatusInactive

	dec, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

// Estado desconocido se trata como no-activo.
func TestEvaluate_EstadoDesconocidoEsInactivo(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))
	user.Status = "suspended"

	_, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

// El estado inactivo se reporta antes que la contraseña incorrecta.
func TestEvaluate_InactivoPrevaleceSobrePassword(t *testing.T) {
	user := activeUser()
	user.Status = entity.StatusInactive

	_, err := newEngine().Evaluate(user, "clave-incorrecta", "dashboard")
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

// Escenario A: cuenta activa, contraseña correcta, cero roles.
func TestEvaluate_SinRoles(t *testing.T) {
	dec, err := newEngine().Evaluate(activeUser(), goodPassword, "dashboard")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, domain.ErrNoRolesAssigned)
}

// Escenario B: todos los roles asignados están inactivos.
func TestEvaluate_RolInactivo(t *testing.T) {
	user := activeUser(
		roleWithWindow("inactive", "dashboard", "active", 1),
		roleWithWindow("inactive", "reports", "active", 1),
	)
	dec, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, domain.ErrInactiveRole)
}

// Escenario C: rol activo pero ninguna ventana coincide con la pedida.
func TestEvaluate_SinPermisoDeLectura(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))
	dec, err := newEngine().Evaluate(user, goodPassword, "reports")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, domain.ErrNoReadAccess)
}

// La ventana coincide pero está inactiva → sin acceso.
func TestEvaluate_VentanaInactiva(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "inactive", 1))
	_, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	assert.ErrorIs(t, err, domain.ErrNoReadAccess)
}

// La ventana coincide y está activa pero read=0 → sin acceso.
func TestEvaluate_SinFlagDeLectura(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 0))
	_, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	assert.ErrorIs(t, err, domain.ErrNoReadAccess)
}

// El permiso de un rol inactivo no cuenta, aunque apunte a la ventana pedida.
func TestEvaluate_PermisoDeRolInactivoNoCuenta(t *testing.T) {
	user := activeUser(
		roleWithWindow("inactive", "dashboard", "active", 1),
		roleWithWindow("active", "reports", "active", 1),
	)
	_, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	assert.ErrorIs(t, err, domain.ErrNoReadAccess)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de aceptación
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: rol activo con lectura sobre la ventana activa pedida.
func TestEvaluate_Aceptado(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))

	dec, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	require.NoError(t, err)
	require.NotNil(t, dec)
	assert.Equal(t, "ana@example.com", dec.Email)
	assert.Equal(t, "Ana", dec.Name)
	assert.Equal(t, entity.StatusActive, dec.Status)
}

// Basta que uno de varios roles activos otorgue la lectura.
func TestEvaluate_AceptadoPorSegundoRol(t *testing.T) {
	user := activeUser(
		roleWithWindow("active", "dashboard", "active", 0),
		roleWithWindow("active", "dashboard", "active", 1),
	)
	dec, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", dec.Email)
}

// La decisión nunca expone el hash: el payload solo lleva email/nombre/estado.
func TestEvaluate_NoExponeHash(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))

	dec, err := newEngine().Evaluate(user, goodPassword, "dashboard")
	require.NoError(t, err)
	assert.NotContains(t, []string{dec.Email, dec.Name, dec.Status}, goodHash)
}

// Evaluar dos veces las mismas entradas produce la misma decisión:
// el motor es función pura de sus entradas.
func TestEvaluate_Idempotente(t *testing.T) {
	user := activeUser(roleWithWindow("active", "dashboard", "active", 1))
	eng := newEngine()

	dec1, err1 := eng.Evaluate(user, goodPassword, "dashboard")
	dec2, err2 := eng.Evaluate(user, goodPassword, "dashboard")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, dec1, dec2)

	_, errA := eng.Evaluate(user, "mala", "dashboard")
	_, errB := eng.Evaluate(user, "mala", "dashboard")
	assert.ErrorIs(t, errA, domain.ErrInvalidCredentials)
	assert.Equal(t, errA, errB)
}
