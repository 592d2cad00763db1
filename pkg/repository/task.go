package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"deskhub/pkg/domain"
)

// TaskRepository handles task database operations
type TaskRepository struct {
	db *sqlx.DB
}

// taskSQL represents a task for SQL operations
type taskSQL struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	DueAt          *time.Time `db:"due_at"`
	Priority       string     `db:"priority"`
	Recurrence     string     `db:"recurrence"`
	Completed      bool       `db:"completed"`
	CompletedAt    *time.Time `db:"completed_at"`
	RolledOver     bool       `db:"rolled_over"`
	PredecessorID  *int64     `db:"predecessor_id"`
	LastRemindedAt *time.Time `db:"last_reminded_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(database *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: database}
}

// CreateTask inserts a new task
func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Recurrence == "" {
		task.Recurrence = domain.RecurrenceNone
	}

	sqlTask := r.toSQLTask(task)
	query := `
		INSERT INTO tasks (title, description, due_at, priority, recurrence, predecessor_id)
		VALUES (:title, :description, :due_at, :priority, :recurrence, :predecessor_id)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlTask)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *TaskRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var sqlTask taskSQL
	err := r.db.GetContext(ctx, &sqlTask, "SELECT * FROM tasks WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return r.toDomainTask(&sqlTask), nil
}

// UpdateTask updates the mutable fields of a task
func (r *TaskRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	sqlTask := r.toSQLTask(task)
	query := `
		UPDATE tasks
		SET title = :title,
		    description = :description,
		    due_at = :due_at,
		    priority = :priority,
		    recurrence = :recurrence,
		    completed = :completed,
		    completed_at = :completed_at
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, sqlTask)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// CompleteTask marks a task completed
func (r *TaskRepository) CompleteTask(ctx context.Context, id int64) error {
	query := "UPDATE tasks SET completed = 1, completed_at = datetime('now') WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// DeleteTask removes a task
func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// ListTasks retrieves tasks ordered by due date, optionally including completed ones
func (r *TaskRepository) ListTasks(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := "SELECT * FROM tasks"
	if !includeCompleted {
		query += " WHERE completed = 0"
	}
	query += " ORDER BY due_at IS NULL, due_at, priority"

	var sqlTasks []taskSQL
	err := r.db.SelectContext(ctx, &sqlTasks, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return r.toDomainTasks(sqlTasks), nil
}

// ListDueTasks retrieves incomplete tasks with due_at at or before the given time
func (r *TaskRepository) ListDueTasks(ctx context.Context, asOf time.Time) ([]*domain.Task, error) {
	query := `
		SELECT * FROM tasks
		WHERE completed = 0 AND due_at IS NOT NULL AND due_at <= ?
		ORDER BY due_at
	`
	var sqlTasks []taskSQL
	err := r.db.SelectContext(ctx, &sqlTasks, query, asOf.UTC())
	if err != nil {
		return nil, fmt.Errorf("list due tasks: %w", err)
	}
	return r.toDomainTasks(sqlTasks), nil
}

// ListTasksForRollover retrieves completed recurring tasks that have not yet
// spawned their successor
func (r *TaskRepository) ListTasksForRollover(ctx context.Context) ([]*domain.Task, error) {
	query := `
		SELECT * FROM tasks
		WHERE completed = 1 AND recurrence != 'none' AND rolled_over = 0
		ORDER BY id
	`
	var sqlTasks []taskSQL
	err := r.db.SelectContext(ctx, &sqlTasks, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks for rollover: %w", err)
	}
	return r.toDomainTasks(sqlTasks), nil
}

// RolloverTask creates the successor of a completed recurring task and marks
// the original as rolled over, both in one transaction. The successor carries
// a predecessor_id back-reference only, keeping the chain unidirectional.
func (r *TaskRepository) RolloverTask(ctx context.Context, task *domain.Task, nextDue time.Time) (*domain.Task, error) {
	next := &domain.Task{
		Title:         task.Title,
		Description:   task.Description,
		DueAt:         &nextDue,
		Priority:      task.Priority,
		Recurrence:    task.Recurrence,
		PredecessorID: &task.ID,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		txErr := inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			query := `
				INSERT INTO tasks (title, description, due_at, priority, recurrence, predecessor_id)
				VALUES (:title, :description, :due_at, :priority, :recurrence, :predecessor_id)
			`
			result, err := tx.NamedExecContext(ctx, query, r.toSQLTask(next))
			if err != nil {
				return fmt.Errorf("insert successor task: %w", err)
			}

			id, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("get insert id: %w", err)
			}
			next.ID = id

			if _, err := tx.ExecContext(ctx, "UPDATE tasks SET rolled_over = 1 WHERE id = ?", task.ID); err != nil {
				return fmt.Errorf("mark task rolled over: %w", err)
			}
			return nil
		})
		if txErr != nil {
			if isLockError(txErr) {
				return txErr // retry
			}
			return &criticalError{err: txErr}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// MarkTasksReminded stamps last_reminded_at on the given tasks in a single
// transaction; due_at is never touched by the reminder path
func (r *TaskRepository) MarkTasksReminded(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	return inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, "UPDATE tasks SET last_reminded_at = ? WHERE id = ?", at.UTC(), id); err != nil {
				return fmt.Errorf("mark task reminded: %w", err)
			}
		}
		return nil
	})
}

func (r *TaskRepository) toSQLTask(task *domain.Task) *taskSQL {
	return &taskSQL{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		DueAt:         task.DueAt,
		Priority:      string(task.Priority),
		Recurrence:    string(task.Recurrence),
		Completed:     task.Completed,
		CompletedAt:   task.CompletedAt,
		PredecessorID: task.PredecessorID,
	}
}

func (r *TaskRepository) toDomainTask(sqlTask *taskSQL) *domain.Task {
	return &domain.Task{
		ID:             sqlTask.ID,
		Title:          sqlTask.Title,
		Description:    sqlTask.Description,
		DueAt:          sqlTask.DueAt,
		Priority:       domain.Priority(sqlTask.Priority),
		Recurrence:     domain.Recurrence(sqlTask.Recurrence),
		Completed:      sqlTask.Completed,
		CompletedAt:    sqlTask.CompletedAt,
		RolledOver:     sqlTask.RolledOver,
		PredecessorID:  sqlTask.PredecessorID,
		LastRemindedAt: sqlTask.LastRemindedAt,
		CreatedAt:      sqlTask.CreatedAt,
	}
}

func (r *TaskRepository) toDomainTasks(sqlTasks []taskSQL) []*domain.Task {
	tasks := make([]*domain.Task, len(sqlTasks))
	for i, t := range sqlTasks {
		tasks[i] = r.toDomainTask(&t)
	}
	return tasks
}
