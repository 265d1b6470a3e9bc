package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashea y verifica contraseñas con bcrypt. El costo regula el
// factor de trabajo; cero usa el default de la librería.
type Hasher struct {
	cost int
}

// NewHasher construye un Hasher con el costo indicado (0 = bcrypt.DefaultCost).
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash genera el hash bcrypt de una contraseña en texto plano.
// Cada llamada incorpora un salt aleatorio propio.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compara una contraseña en texto plano contra un hash almacenado.
// Devuelve false si no coinciden; error solo si el hash está malformado.
func (h *Hasher) Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, fmt.Errorf("verificar hash: %w", err)
}
