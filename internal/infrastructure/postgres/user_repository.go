package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmoreno/alquiler-api/internal/domain"
	"github.com/nmoreno/alquiler-api/internal/domain/entity"
	"github.com/nmoreno/alquiler-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y asigna el ID generado por la DB.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (nombre, correo, password, rol, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		user.Nombre, user.Correo, user.PasswordHash, user.Rol, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(id int) (*entity.User, error) {
	query := `
		SELECT id, nombre, correo, password, rol, is_active, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Nombre, &u.Correo, &u.PasswordHash, &u.Rol, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// FindByEmail obtiene un usuario por correo. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(correo string) (*entity.User, error) {
	query := `
		SELECT id, nombre, correo, password, rol, is_active, created_at, updated_at
		FROM users WHERE correo = $1 LIMIT 1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, correo).Scan(
		&u.ID, &u.Nombre, &u.Correo, &u.PasswordHash, &u.Rol, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario (incluye la baja lógica vía IsActive).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET nombre = $2, correo = $3, password = $4, rol = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Nombre, user.Correo, user.PasswordHash, user.Rol, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios ordenados por fecha de alta.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT id, nombre, correo, password, rol, is_active, created_at, updated_at
		FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Correo, &u.PasswordHash, &u.Rol, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
