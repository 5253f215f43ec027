package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/internal/domain"
)

// TaskRepository реализует repository.TaskRepository для PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository создает новый экземпляр TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create создает новую задачу
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (task_id, title, description, due_date, assigned_to, project, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		task.TaskID,
		task.Title,
		task.Description,
		task.DueDate,
		task.AssignedTo,
		task.Project,
		task.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			if pgErr.ConstraintName == "tasks_project_fkey" {
				return domain.ErrProjectNotFound
			}
			return domain.ErrUserNotFound
		}
		return err
	}

	return nil
}

// GetByID получает задачу с комментариями по ID
func (r *TaskRepository) GetByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT task_id, title, description, due_date, assigned_to, project, status
		FROM tasks
		WHERE task_id = $1
	`

	var t domain.Task
	err := r.db.QueryRow(ctx, query, taskID).Scan(
		&t.TaskID, &t.Title, &t.Description, &t.DueDate,
		&t.AssignedTo, &t.Project, &t.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	comments, err := r.getComments(ctx, taskID)
	if err != nil {
		return nil, err
	}
	t.Comments = comments

	return &t, nil
}

// getComments возвращает комментарии задачи в порядке добавления
func (r *TaskRepository) getComments(ctx context.Context, taskID uuid.UUID) ([]string, error) {
	query := `
		SELECT comment
		FROM task_comments
		WHERE task_id = $1
		ORDER BY comment_id
	`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// List возвращает задачи по фильтру по возрастанию срока. Непустой
// OwnerID ограничивает выдачу задачами проектов этого администратора.
func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	query := `
		SELECT t.task_id, t.title, t.description, t.due_date, t.assigned_to, t.project, t.status
		FROM tasks t
	`

	var conds []string
	var args []interface{}

	if filter.OwnerID != "" {
		query += ` JOIN projects p ON t.project = p.pid`
		args = append(args, filter.OwnerID)
		conds = append(conds, fmt.Sprintf("p.owner_id = $%d", len(args)))
	}
	if filter.Project != "" {
		args = append(args, filter.Project)
		conds = append(conds, fmt.Sprintf("t.project = $%d", len(args)))
	}
	if filter.AssignedTo != "" {
		args = append(args, filter.AssignedTo)
		conds = append(conds, fmt.Sprintf("t.assigned_to = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY t.due_date, t.task_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.TaskID, &t.Title, &t.Description, &t.DueDate,
			&t.AssignedTo, &t.Project, &t.Status,
		); err != nil {
			return nil, err
		}
		t.Comments = []string{}
		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}

// Update обновляет задачу. Ссылки на исполнителя и проект проверяются
// внешними ключами так же, как при создании.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, assigned_to = $4,
		    project = $5, status = $6, updated_at = NOW()
		WHERE task_id = $7
	`

	result, err := r.db.Exec(ctx, query,
		task.Title,
		task.Description,
		task.DueDate,
		task.AssignedTo,
		task.Project,
		task.Status,
		task.TaskID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "tasks_project_fkey" {
				return domain.ErrProjectNotFound
			}
			return domain.ErrUserNotFound
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// Delete удаляет задачу; комментарии удаляются каскадом внешнего ключа
func (r *TaskRepository) Delete(ctx context.Context, taskID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1`, taskID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// SetStatus обновляет статус задачи
func (r *TaskRepository) SetStatus(ctx context.Context, taskID uuid.UUID, status domain.Status) error {
	query := `UPDATE tasks SET status = $1, updated_at = NOW() WHERE task_id = $2`

	result, err := r.db.Exec(ctx, query, status, taskID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// AddComment добавляет комментарий в конец списка комментариев задачи
func (r *TaskRepository) AddComment(ctx context.Context, taskID uuid.UUID, comment string) error {
	query := `INSERT INTO task_comments (task_id, comment) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, taskID, comment)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrTaskNotFound
		}
		return err
	}

	return nil
}
