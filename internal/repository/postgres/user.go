package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/internal/domain"
)

// UserRepository реализует repository.UserRepository для PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create создает нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, role, project_role)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`

	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Role, user.ProjectRole)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if pgErr.ConstraintName == "users_email_key" {
				return domain.ErrEmailExists
			}
			return domain.ErrUserExists
		}
		return err
	}

	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT id, name, email, role, COALESCE(project_role, '')
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.ProjectRole,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// List возвращает всех пользователей, отсортированных по имени
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, name, email, role, COALESCE(project_role, '')
		FROM users
		ORDER BY name, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.ProjectRole); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// Update обновляет имя, email и project_role пользователя. Роль через
// этот путь не меняется.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, project_role = NULLIF($3, ''), updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, user.Name, user.Email, user.ProjectRole, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailExists
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Delete удаляет пользователя вместе с его реестрами, проектами и задачами.
// Порядок удаления соблюдает внешние ключи: сначала задачи, затем проекты
// и записи реестра, последней — каноническая запись.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `
		DELETE FROM tasks
		WHERE assigned_to = $1
		   OR project IN (SELECT pid FROM projects WHERE owner_id = $1)
	`, userID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE owner_id = $1`, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE id = $1 OR admin_id = $1`, userID); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit(ctx)
}

// DeleteAll удаляет всех пользователей и все зависимые записи
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE users, team_members, projects, tasks, task_comments`)
	return err
}
