package streak

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysaathi/studysaathi/internal/apperr"
)

var streakColumns = []string{
	"user_id", "current_streak", "longest_streak", "last_active_date", "today_message", "streak_history", "updated_at",
}

func TestDBRepository_Get(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Record
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM streaks WHERE user_id = \\?").
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(streakColumns).
						AddRow("u1", 2, 5, date(2025, 3, 10), "keep going", []byte(`[{"date":"2025-03-09","streak":1},{"date":"2025-03-10","streak":2}]`), now))
			},
			want: &Record{
				UserID: "u1", CurrentStreak: 2, LongestStreak: 5, LastActiveDate: date(2025, 3, 10), TodayMessage: "keep going",
				StreakHistory: History{{Date: "2025-03-09", Streak: 1}, {Date: "2025-03-10", Streak: 2}},
				UpdatedAt:     now,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM streaks WHERE user_id = \\?").
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(streakColumns))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM streaks").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.Get(context.Background(), "u1")
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_Save(t *testing.T) {
	yesterday := date(2025, 3, 9)
	today := date(2025, 3, 10)
	record := &Record{
		UserID: "u1", CurrentStreak: 3, LongestStreak: 3, LastActiveDate: today, TodayMessage: "day 3",
		StreakHistory: History{{Date: "2025-03-10", Streak: 3}},
	}
	historyJSON := `[{"date":"2025-03-10","streak":3}]`

	tests := []struct {
		name      string
		expected  *time.Time
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "inserts the first record",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks WHERE user_id = \\? FOR UPDATE").
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}))
				mock.ExpectExec("INSERT INTO streaks").
					WithArgs("u1", 3, 3, today, "day 3", historyJSON).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO users").
					WithArgs("u1", 3, 3, today).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:     "updates when the stored date matches",
			expected: &yesterday,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks").
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}).AddRow(yesterday))
				mock.ExpectExec("UPDATE streaks SET").
					WithArgs(3, 3, today, "day 3", historyJSON, "u1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO users").
					WithArgs("u1", 3, 3, today).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:     "conflict when another request already wrote today",
			expected: &yesterday,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}).AddRow(today))
				mock.ExpectRollback()
			},
			wantErr: ErrConflict,
		},
		{
			name: "conflict when a record appeared",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}).AddRow(today))
				mock.ExpectRollback()
			},
			wantErr: ErrConflict,
		},
		{
			name:     "conflict when the record disappeared",
			expected: &yesterday,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}))
				mock.ExpectRollback()
			},
			wantErr: ErrConflict,
		},
		{
			name: "duplicate first insert is a conflict",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}))
				mock.ExpectExec("INSERT INTO streaks").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'u1' for key 'PRIMARY'"})
				mock.ExpectRollback()
			},
			wantErr: ErrConflict,
		},
		{
			name:     "summary write failure rolls back",
			expected: &yesterday,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT last_active_date FROM streaks").
					WillReturnRows(sqlmock.NewRows([]string{"last_active_date"}).AddRow(yesterday))
				mock.ExpectExec("UPDATE streaks SET").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO users").WillReturnError(fmt.Errorf("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: apperr.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			err = repo.Save(context.Background(), record, tt.expected)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
