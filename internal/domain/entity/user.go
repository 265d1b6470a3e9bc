package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// Roles lista los roles conocidos del sistema.
var Roles = []string{RoleAdmin, RoleEmpleado}

// ValidRole indica si el valor corresponde a un rol conocido.
func ValidRole(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}

// User representa un usuario interno del sistema (empleado o administrador).
type User struct {
	ID           int
	Nombre       string
	Correo       string
	PasswordHash string // hash bcrypt, nunca en texto plano después de persistir
	Rol          string // admin, empleado
	IsActive     bool   // false = baja lógica
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
