package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteNotificationStateRepo implements NotificationStateRepo using a
// SQLite database.
type SQLiteNotificationStateRepo struct {
	db *sql.DB
}

// NewSQLiteNotificationStateRepo creates a new SQLiteNotificationStateRepo.
func NewSQLiteNotificationStateRepo(db *sql.DB) *SQLiteNotificationStateRepo {
	return &SQLiteNotificationStateRepo{db: db}
}

func (r *SQLiteNotificationStateRepo) GetAll(ctx context.Context) (map[string]NotificationState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, is_read, is_dismissed FROM notification_state`)
	if err != nil {
		return nil, fmt.Errorf("loading notification state: %w", err)
	}
	defer rows.Close()

	states := make(map[string]NotificationState)
	for rows.Next() {
		var key string
		var readInt, dismissedInt int
		if err := rows.Scan(&key, &readInt, &dismissedInt); err != nil {
			return nil, fmt.Errorf("scanning notification state: %w", err)
		}
		states[key] = NotificationState{
			IsRead:      intToBool(readInt),
			IsDismissed: intToBool(dismissedInt),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification state: %w", err)
	}
	return states, nil
}

func (r *SQLiteNotificationStateRepo) MarkRead(ctx context.Context, key, workItemID string) error {
	return r.upsert(ctx, key, workItemID, true, false)
}

func (r *SQLiteNotificationStateRepo) Dismiss(ctx context.Context, key, workItemID string) error {
	// Dismissal implies read.
	return r.upsert(ctx, key, workItemID, true, true)
}

func (r *SQLiteNotificationStateRepo) upsert(ctx context.Context, key, workItemID string, read, dismissed bool) error {
	query := `INSERT INTO notification_state (key, work_item_id, is_read, is_dismissed, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			is_read = MAX(is_read, excluded.is_read),
			is_dismissed = MAX(is_dismissed, excluded.is_dismissed),
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		key, workItemID, boolToInt(read), boolToInt(dismissed), formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("storing notification state %s: %w", key, err)
	}
	return nil
}
