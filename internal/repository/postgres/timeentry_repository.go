package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

type timeEntryRepository struct {
	executor DBExecutor
}

func NewTimeEntryRepository(db *sql.DB) *timeEntryRepository {
	return &timeEntryRepository{executor: db}
}

func NewTimeEntryRepositoryWithTx(tx *sql.Tx) *timeEntryRepository {
	return &timeEntryRepository{executor: tx}
}

func (r *timeEntryRepository) UpsertHours(ctx context.Context, userID int, date time.Time, hours float64) (domain.ApprovalStatus, error) {
	query := `
		INSERT INTO hours (user_id, date, hours, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (user_id, date) DO UPDATE
		SET hours = EXCLUDED.hours
		RETURNING status
	`

	// The update never touches status, so the returned value is the
	// pre-existing status on conflict and 'pending' on a fresh insert.
	var status domain.ApprovalStatus
	err := r.executor.QueryRowContext(ctx, query, userID, date, hours).Scan(&status)
	if err != nil {
		return "", err
	}

	return status, nil
}

func (r *timeEntryRepository) GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.TimeEntry, error) {
	query := `
		SELECT user_id, date, hours, status
		FROM hours
		WHERE user_id = $1 AND date = $2
	`

	entry := &domain.TimeEntry{}
	err := r.executor.QueryRowContext(ctx, query, userID, date).Scan(
		&entry.UserID,
		&entry.Date,
		&entry.Hours,
		&entry.Status,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("time entry")
		}
		return nil, err
	}

	return entry, nil
}

func (r *timeEntryRepository) ApproveRange(ctx context.Context, userID int, start, end time.Time) (int64, error) {
	query := `
		UPDATE hours
		SET status = 'approved'
		WHERE user_id = $1 AND status = 'pending' AND date BETWEEN $2 AND $3
	`

	result, err := r.executor.ExecContext(ctx, query, userID, start, end)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *timeEntryRepository) SumTotalsByUser(ctx context.Context, start, end time.Time) ([]*domain.ReportRow, error) {
	query := `
		SELECT u.user_id, u.name, COALESCE(SUM(h.hours), 0) AS total
		FROM users u
		LEFT JOIN hours h ON u.user_id = h.user_id AND h.date BETWEEN $1 AND $2
		WHERE u.role = 'user'
		GROUP BY u.user_id, u.name
		ORDER BY u.name ASC
	`

	rows, err := r.executor.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*domain.ReportRow
	for rows.Next() {
		row := &domain.ReportRow{}
		if err := rows.Scan(&row.UserID, &row.Name, &row.Total); err != nil {
			return nil, err
		}
		report = append(report, row)
	}

	return report, rows.Err()
}

func (r *timeEntryRepository) SumWeekdaysByUser(ctx context.Context, start, end time.Time) ([]*domain.ReportRow, error) {
	// Saturday and Sunday (ISODOW 6 and 7) fall through every CASE arm,
	// so weekend hours never reach the columns or the total.
	query := `
		SELECT u.user_id, u.name,
			COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM h.date) = 1 THEN h.hours ELSE 0 END), 0) AS ma,
			COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM h.date) = 2 THEN h.hours ELSE 0 END), 0) AS di,
			COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM h.date) = 3 THEN h.hours ELSE 0 END), 0) AS wo,
			COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM h.date) = 4 THEN h.hours ELSE 0 END), 0) AS do,
			COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM h.date) = 5 THEN h.hours ELSE 0 END), 0) AS vr
		FROM users u
		LEFT JOIN hours h ON u.user_id = h.user_id AND h.date BETWEEN $1 AND $2
		WHERE u.role = 'user'
		GROUP BY u.user_id, u.name
		ORDER BY u.name ASC
	`

	rows, err := r.executor.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*domain.ReportRow
	for rows.Next() {
		days := &domain.WeekdayHours{}
		row := &domain.ReportRow{Days: days}
		err := rows.Scan(&row.UserID, &row.Name, &days.Ma, &days.Di, &days.Wo, &days.Do, &days.Vr)
		if err != nil {
			return nil, err
		}
		row.Total = days.Total()
		report = append(report, row)
	}

	return report, rows.Err()
}
