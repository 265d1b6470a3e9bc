package repository

import "github.com/nmoreno/alquiler-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las implementaciones devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id int) (*entity.User, error)
	FindByEmail(correo string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
