package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/sedes-api/internal/domain"
	"github.com/tu-usuario/sedes-api/internal/domain/entity"
	"github.com/tu-usuario/sedes-api/internal/domain/repository"
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

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email, sin el grafo de roles.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT email, name, password_hash, status, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.Email, &u.Name, &u.PasswordHash, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT email, name, password_hash, status, created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.Email, &u.Name, &u.PasswordHash, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza nombre y estado de un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, status = $3, updated_at = $4
		WHERE email = $1`
	_, err := r.pool.Exec(ctx, query, user.Email, user.Name, user.Status, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado.
func (r *UserRepo) UpdateStatus(ctx context.Context, email, status string) error {
	query := `UPDATE users SET status = $2, updated_at = $3 WHERE email = $1`
	_, err := r.pool.Exec(ctx, query, email, status, time.Now())
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	return nil
}

// UpdatePassword cambia solo el hash de la contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE email = $1`
	_, err := r.pool.Exec(ctx, query, email, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// Delete elimina un usuario por email.
func (r *UserRepo) Delete(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// FindAuthWithRoles carga el grafo completo de autorización en una sola
// consulta: usuario → roles → permisos de ventana → ventanas. Los LEFT
// JOIN permiten distinguir "usuario sin roles" (fila con rol NULL) de
// "usuario inexistente" (cero filas → nil, nil).
func (r *UserRepo) FindAuthWithRoles(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT u.email, u.name, u.password_hash, u.status, u.created_at, u.updated_at,
		       r.id, r.name, r.status,
		       rw.read, rw.write,
		       w.id, w.window_name, w.status
		FROM users u
		LEFT JOIN user_roles ur ON ur.email = u.email
		LEFT JOIN roles r ON r.id = ur.role_id
		LEFT JOIN role_windows rw ON rw.role_id = r.id
		LEFT JOIN windows w ON w.id = rw.window_id
		WHERE u.email = $1
		ORDER BY r.id, w.id`
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("find auth with roles: %w", err)
	}
	defer rows.Close()

	var user *entity.User
	roleIdx := map[int]int{} // role.ID → índice en user.Roles

	for rows.Next() {
		var u entity.User
		var roleID *int
		var roleName, roleStatus *string
		var read, write *int
		var windowID *int
		var windowName, windowStatus *string

		if err := rows.Scan(
			&u.Email, &u.Name, &u.PasswordHash, &u.Status, &u.CreatedAt, &u.UpdatedAt,
			&roleID, &roleName, &roleStatus,
			&read, &write,
			&windowID, &windowName, &windowStatus,
		); err != nil {
			return nil, fmt.Errorf("scan auth row: %w", err)
		}

		if user == nil {
			user = &u
		}
		if roleID == nil {
			continue // usuario sin roles
		}

		idx, ok := roleIdx[*roleID]
		if !ok {
			user.Roles = append(user.Roles, entity.RoleAssignment{Role: entity.Role{
				ID:     *roleID,
				Name:   derefString(roleName),
				Status: derefString(roleStatus),
			}})
			idx = len(user.Roles) - 1
			roleIdx[*roleID] = idx
		}

		if windowID == nil {
			continue // rol sin ventanas
		}
		user.Roles[idx].Role.Windows = append(user.Roles[idx].Role.Windows, entity.WindowPermission{
			Window: entity.Window{
				ID:     *windowID,
				Name:   derefString(windowName),
				Status: derefString(windowStatus),
			},
			Read:  derefInt(read),
			Write: derefInt(write),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find auth with roles: %w", err)
	}
	return user, nil
}

// CreateLoginAccess inserta el registro de auditoría de un login exitoso.
func (r *UserRepo) CreateLoginAccess(ctx context.Context, email string) error {
	query := `INSERT INTO login_access (id, email, created_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, uuid.New().String(), email, time.Now())
	if err != nil {
		return fmt.Errorf("insert login access: %w", err)
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
