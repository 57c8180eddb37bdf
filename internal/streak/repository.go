package streak

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/internal/user"
)

// ErrConflict is returned by Repository.Save when the record changed since it was read.
var ErrConflict = errors.New("streak record changed concurrently")

// Repository stores streak records.
type Repository interface {
	// Get returns the record of a user, or nil when the user never studied.
	Get(ctx context.Context, userID string) (*Record, error)
	// Save writes record and the user's streak summary if the stored last active date still equals
	// expectedLastActive (nil meaning no record). Otherwise it returns ErrConflict.
	Save(ctx context.Context, record *Record, expectedLastActive *time.Time) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Get returns the record of a user, or nil if not found.
func (r *DBRepository) Get(ctx context.Context, userID string) (*Record, error) {
	var record Record
	err := r.db.GetContext(ctx, &record, "SELECT * FROM streaks WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Unavailable("get streak", fmt.Errorf("db.GetContext(streaks) > %w", err))
	}
	return &record, nil
}

// Save compares and swaps the record on its last active date.
func (r *DBRepository) Save(ctx context.Context, record *Record, expectedLastActive *time.Time) error {
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var stored time.Time
		err := tx.GetContext(ctx, &stored, "SELECT last_active_date FROM streaks WHERE user_id = ? FOR UPDATE", record.UserID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			if expectedLastActive != nil {
				return ErrConflict
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO streaks (user_id, current_streak, longest_streak, last_active_date, today_message, streak_history)
				VALUES (?, ?, ?, ?, ?, ?)`,
				record.UserID, record.CurrentStreak, record.LongestStreak, record.LastActiveDate,
				record.TodayMessage, record.StreakHistory); err != nil {
				return fmt.Errorf("tx.ExecContext(insert streaks) > %w", err)
			}
		case err != nil:
			return fmt.Errorf("tx.GetContext(streaks) > %w", err)
		default:
			if expectedLastActive == nil || daysBetween(*expectedLastActive, stored) != 0 {
				return ErrConflict
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE streaks SET current_streak = ?, longest_streak = ?, last_active_date = ?, today_message = ?,
				streak_history = ? WHERE user_id = ?`,
				record.CurrentStreak, record.LongestStreak, record.LastActiveDate,
				record.TodayMessage, record.StreakHistory, record.UserID); err != nil {
				return fmt.Errorf("tx.ExecContext(update streaks) > %w", err)
			}
		}

		return user.UpdateStreakSummary(ctx, tx, record.UserID, record.CurrentStreak, record.LongestStreak, record.LastActiveDate)
	})
	if errors.Is(err, ErrConflict) || isConflict(err) {
		return ErrConflict
	}
	if err != nil {
		return apperr.Unavailable("save streak", err)
	}
	return nil
}

// isConflict reports whether err is a duplicate key or deadlock raised by two first-time inserts racing.
func isConflict(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	switch mysqlErr.Number {
	case 1062, 1213:
		return true
	default:
		return false
	}
}
