// Package user stores exam profiles and the denormalized study summary of each learner.
package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
)

// Profile is the exam profile a learner sets up during onboarding.
type Profile struct {
	UserID            string                             `db:"user_id" json:"userId"`
	DisplayName       string                             `db:"display_name" json:"displayName"`
	ExamName          string                             `db:"exam_name" json:"examName"`
	ExamDate          *time.Time                         `db:"exam_date" json:"examDate,omitempty"`
	Subjects          database.JSON[[]string]            `db:"subjects" json:"subjects"`
	Topics            database.JSON[map[string][]string] `db:"topics" json:"topics"`
	WeakSubjects      database.JSON[map[string]int]      `db:"weak_subjects" json:"weakSubjects"`
	DailyStudyHours   float64                            `db:"daily_study_hours" json:"dailyStudyHours"`
	ActiveStudyPlanID *string                            `db:"active_study_plan_id" json:"activeStudyPlanId,omitempty"`
	CurrentStreak     int                                `db:"current_streak" json:"currentStreak"`
	LongestStreak     int                                `db:"longest_streak" json:"longestStreak"`
	LastStudyDate     *time.Time                         `db:"last_study_date" json:"lastStudyDate,omitempty"`
	CreatedAt         time.Time                          `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time                          `db:"updated_at" json:"updatedAt"`
}

// DaysToExam returns the whole days between today and the exam, or nil without an exam date.
func (p *Profile) DaysToExam(today time.Time) *int {
	if p == nil || p.ExamDate == nil {
		return nil
	}
	days := int(truncateDay(*p.ExamDate).Sub(truncateDay(today)).Hours() / 24)
	return &days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

//go:generate mockgen -source=profile.go -destination=../mocks/user/mock_profile.go -package=mock_user

// Repository stores profiles.
type Repository interface {
	// Get returns the profile of a user, or nil when the user never onboarded.
	Get(ctx context.Context, userID string) (*Profile, error)
	// Upsert creates or replaces the onboarding fields of a profile.
	Upsert(ctx context.Context, profile *Profile) error
	// SetActiveStudyPlan points the profile at a plan, creating the profile row when missing.
	SetActiveStudyPlan(ctx context.Context, userID, planID string) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Get returns the profile of a user, or nil if not found.
func (r *DBRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	err := r.db.GetContext(ctx, &profile, "SELECT * FROM users WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Unavailable("get profile", fmt.Errorf("db.GetContext(users) > %w", err))
	}
	return &profile, nil
}

// Upsert writes the onboarding fields. Streak and plan fields are left untouched.
func (r *DBRepository) Upsert(ctx context.Context, profile *Profile) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, display_name, exam_name, exam_date, subjects, topics, weak_subjects, daily_study_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE display_name = VALUES(display_name), exam_name = VALUES(exam_name),
		exam_date = VALUES(exam_date), subjects = VALUES(subjects), topics = VALUES(topics),
		weak_subjects = VALUES(weak_subjects), daily_study_hours = VALUES(daily_study_hours)`,
		profile.UserID, profile.DisplayName, profile.ExamName, profile.ExamDate,
		profile.Subjects, profile.Topics, profile.WeakSubjects, profile.DailyStudyHours); err != nil {
		return apperr.Unavailable("upsert profile", fmt.Errorf("db.ExecContext(upsert users) > %w", err))
	}
	return nil
}

// SetActiveStudyPlan records the plan the user currently follows.
func (r *DBRepository) SetActiveStudyPlan(ctx context.Context, userID, planID string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, active_study_plan_id) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE active_study_plan_id = VALUES(active_study_plan_id)`,
		userID, planID); err != nil {
		return apperr.Unavailable("set active study plan", fmt.Errorf("db.ExecContext(update users) > %w", err))
	}
	return nil
}

// UpdateStreakSummary copies the streak counters onto the user row inside tx.
func UpdateStreakSummary(ctx context.Context, tx *sqlx.Tx, userID string, current, longest int, lastStudyDate time.Time) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (user_id, current_streak, longest_streak, last_study_date) VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE current_streak = VALUES(current_streak), longest_streak = VALUES(longest_streak),
		last_study_date = VALUES(last_study_date)`,
		userID, current, longest, lastStudyDate); err != nil {
		return fmt.Errorf("tx.ExecContext(update users streak) > %w", err)
	}
	return nil
}
