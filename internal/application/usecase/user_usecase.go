package usecase

import (
	"time"

	"github.com/nmoreno/alquiler-api/internal/application/dto"
	"github.com/nmoreno/alquiler-api/internal/domain"
	"github.com/nmoreno/alquiler-api/internal/domain/entity"
	"github.com/nmoreno/alquiler-api/internal/domain/repository"
	"github.com/nmoreno/alquiler-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para la gestión de usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher *password.Hasher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, hasher *password.Hasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Register crea un usuario: hashea el password y persiste.
// Devuelve ErrEmailAlreadyExists si el correo ya está registrado.
// Sin rol explícito, el usuario nace como empleado.
func (uc *UserUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.FindByEmail(in.Correo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RoleEmpleado
	}
	if !entity.ValidRole(rol) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Nombre:       in.Nombre,
		Correo:       in.Correo,
		PasswordHash: hash,
		Rol:          rol,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. Devuelve ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(id int) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

// List devuelve todos los usuarios (sin password).
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, entityToUserResponse(u))
	}
	return out, nil
}

// Update edita un usuario; los campos vacíos se conservan y el password,
// si viene, se re-hashea.
func (uc *UserUseCase) Update(id int, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombre != "" {
		user.Nombre = in.Nombre
	}
	if in.Correo != "" {
		user.Correo = in.Correo
	}
	if in.Rol != "" {
		if !entity.ValidRole(in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		user.Rol = in.Rol
	}
	if in.Password != "" {
		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Deactivate da de baja lógica al usuario (is_active = false).
// El flujo de auth nunca borra usuarios de la DB.
func (uc *UserUseCase) Deactivate(id int) error {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.IsActive = false
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Roles devuelve el catálogo de roles del sistema.
func (uc *UserUseCase) Roles() []string {
	return entity.Roles
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Rol:       u.Rol,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
