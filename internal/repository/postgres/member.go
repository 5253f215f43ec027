package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/internal/domain"
)

// MemberRepository реализует repository.MemberRepository для PostgreSQL
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository создает новый экземпляр MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `id, name, email, role, project_role, admin_id`

// Create добавляет участника в реестр и создает/обновляет каноническую
// запись пользователя в одной транзакции. Каноническая запись пишется
// первой, иначе вставка в реестр нарушит внешний ключ.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Существующего администратора нельзя превратить в участника
	var existingRole domain.Role
	err = tx.QueryRow(ctx, `SELECT role FROM users WHERE id = $1 FOR UPDATE`, member.ID).Scan(&existingRole)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err == nil && existingRole == domain.RoleAdmin {
		return domain.ErrMemberIsAdmin
	}

	upsert := `
		INSERT INTO users (id, name, email, role, project_role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    project_role = EXCLUDED.project_role,
		    updated_at = NOW()
	`
	_, err = tx.Exec(ctx, upsert, member.ID, member.Name, member.Email, domain.RoleMember, member.ProjectRole)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrEmailExists
		}
		return err
	}

	insert := `
		INSERT INTO team_members (id, name, email, role, project_role, admin_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(ctx, insert, member.ID, member.Name, member.Email, domain.RoleMember, member.ProjectRole, member.AdminID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return domain.ErrMemberExists
			}
			if pgErr.Code == "23503" { // foreign_key_violation: неизвестный admin_id
				return domain.ErrUserNotFound
			}
		}
		return err
	}

	return tx.Commit(ctx)
}

// GetByID получает участника по ID
func (r *MemberRepository) GetByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`

	var m domain.Member
	err := r.db.QueryRow(ctx, query, memberID).Scan(
		&m.ID, &m.Name, &m.Email, &m.Role, &m.ProjectRole, &m.AdminID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

// ListByAdmin возвращает реестр указанного администратора
func (r *MemberRepository) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE admin_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.ProjectRole, &m.AdminID); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}

	if members == nil {
		members = []*domain.Member{}
	}

	return members, rows.Err()
}

// Update обновляет запись реестра и каноническую запись пользователя в
// одной транзакции. Роль остается Member, владелец реестра не меняется.
func (r *MemberRepository) Update(ctx context.Context, member *domain.Member) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	rosterQuery := `
		UPDATE team_members
		SET name = $1, email = $2, project_role = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := tx.Exec(ctx, rosterQuery, member.Name, member.Email, member.ProjectRole, member.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	userQuery := `
		UPDATE users
		SET name = $1, email = $2, project_role = $3, updated_at = NOW()
		WHERE id = $4
	`
	if _, err := tx.Exec(ctx, userQuery, member.Name, member.Email, member.ProjectRole, member.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailExists
		}
		return err
	}

	return tx.Commit(ctx)
}

// Delete удаляет задачи участника, запись реестра и каноническую запись
// в одной транзакции. Повторное удаление возвращает ErrMemberNotFound.
func (r *MemberRepository) Delete(ctx context.Context, memberID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE assigned_to = $1`, memberID); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, memberID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, memberID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
