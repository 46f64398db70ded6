package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, title, company, description, deadline, status,
		payment, progress, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db *sql.DB
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(db *sql.DB) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: db}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (` + workItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		w.Company,
		w.Description,
		w.Deadline,
		string(w.Status),
		w.Payment,
		w.Progress,
		formatTime(w.CreatedAt),
		formatTime(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	w, err := scanWorkItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work item %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("loading work item %s: %w", id, err)
	}
	return w, nil
}

func (r *SQLiteWorkItemRepo) Fetch(ctx context.Context) ([]domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching work items: %w", err)
	}
	defer rows.Close()

	var items []domain.WorkItem
	for rows.Next() {
		w, err := scanWorkItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning work item: %w", err)
		}
		items = append(items, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items
		SET title = ?, company = ?, description = ?, deadline = ?, status = ?,
		    payment = ?, progress = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Title,
		w.Company,
		w.Description,
		w.Deadline,
		string(w.Status),
		w.Payment,
		w.Progress,
		formatTime(w.UpdatedAt),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item %s: %w", w.ID, err)
	}
	return requireRow(res, w.ID)
}

func (r *SQLiteWorkItemRepo) UpdateStatus(ctx context.Context, id string, status domain.ItemStatus) error {
	query := `UPDATE work_items SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("updating work item %s status: %w", id, err)
	}
	return requireRow(res, id)
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item %s: %w", id, err)
	}
	return requireRow(res, id)
}

// requireRow maps zero affected rows to ErrNotFound.
func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan path.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkItem(row scanner) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&w.ID, &w.Title, &w.Company, &w.Description, &w.Deadline, &statusStr,
		&w.Payment, &w.Progress, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	w.Status = domain.ItemStatus(statusStr)
	if w.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if w.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &w, nil
}
