package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/internal/domain"
)

// ProjectRepository реализует repository.ProjectRepository для PostgreSQL
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository создает новый экземпляр ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `project_id, pid, owner_id, title, description, start_date, due_date, status`

// Create создает новый проект
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (project_id, pid, owner_id, title, description, start_date, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		project.ProjectID,
		project.PID,
		project.OwnerID,
		project.Title,
		project.Description,
		project.StartDate,
		project.DueDate,
		project.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation: pid занят
				return domain.ErrProjectExists
			}
			if pgErr.Code == "23503" { // foreign_key_violation: неизвестный владелец
				return domain.ErrUserNotFound
			}
		}
		return err
	}

	return nil
}

// GetByID получает проект по сгенерированному хранилищем ID
func (r *ProjectRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1`

	var p domain.Project
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&p.ProjectID, &p.PID, &p.OwnerID, &p.Title, &p.Description,
		&p.StartDate, &p.DueDate, &p.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	return &p, nil
}

// GetOwnerByPID возвращает ID администратора-владельца проекта с данным pid
func (r *ProjectRepository) GetOwnerByPID(ctx context.Context, pid string) (string, error) {
	var ownerID string
	err := r.db.QueryRow(ctx, `SELECT owner_id FROM projects WHERE pid = $1`, pid).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrProjectNotFound
		}
		return "", err
	}

	return ownerID, nil
}

// ListByOwner возвращает проекты администратора по возрастанию срока
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY due_date, pid`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ProjectID, &p.PID, &p.OwnerID, &p.Title, &p.Description,
			&p.StartDate, &p.DueDate, &p.Status,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}

	if projects == nil {
		projects = []*domain.Project{}
	}

	return projects, rows.Err()
}

// Update обновляет проект. pid и владелец неизменяемы после создания.
func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, start_date = $3, due_date = $4, status = $5, updated_at = NOW()
		WHERE project_id = $6
	`

	result, err := r.db.Exec(ctx, query,
		project.Title,
		project.Description,
		project.StartDate,
		project.DueDate,
		project.Status,
		project.ProjectID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

// Delete удаляет проект и все задачи с его pid в одной транзакции.
// Задачи сопоставляются по идентификатору проекта, не по владельцу.
func (r *ProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var pid string
	err = tx.QueryRow(ctx, `SELECT pid FROM projects WHERE project_id = $1 FOR UPDATE`, projectID).Scan(&pid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProjectNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE project = $1`, pid); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
