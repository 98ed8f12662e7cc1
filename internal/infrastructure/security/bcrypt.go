// Package security implementa el verificador de contraseñas sobre bcrypt.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/sedes-api/internal/domain/access"
)

var _ access.PasswordVerifier = (*BcryptVerifier)(nil)

// BcryptVerifier implementa access.PasswordVerifier con bcrypt.
// El coste se fija por configuración y no se expone al motor.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier construye el verificador. Con cost <= 0 usa el coste
// por defecto de bcrypt.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Matches informa si plain corresponde al hash almacenado.
func (v *BcryptVerifier) Matches(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Hash genera un hash bcrypt nuevo para plain.
func (v *BcryptVerifier) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), v.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
