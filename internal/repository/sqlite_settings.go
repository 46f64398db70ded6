package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evanmorales/dueline/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// The table holds one row; absence means the defaults have never been
// overridden.
type SQLiteSettingsRepo struct {
	db *sql.DB
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db *sql.DB) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.NotificationSettings, error) {
	query := `SELECT urgent_threshold_days, reminder_threshold_days, upcoming_threshold_days
		FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.NotificationSettings
	err := row.Scan(&s.UrgentThresholdDays, &s.ReminderThresholdDays, &s.UpcomingThresholdDays)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.DefaultNotificationSettings(), nil
		}
		return domain.NotificationSettings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

func (r *SQLiteSettingsRepo) Put(ctx context.Context, s domain.NotificationSettings) error {
	query := `INSERT OR REPLACE INTO settings
		(id, urgent_threshold_days, reminder_threshold_days, upcoming_threshold_days, updated_at)
		VALUES (1, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.UrgentThresholdDays,
		s.ReminderThresholdDays,
		s.UpcomingThresholdDays,
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("storing settings: %w", err)
	}
	return nil
}
