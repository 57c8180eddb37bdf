// Package studyplan generates, stores and adjusts personalized study plans.
package studyplan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/internal/inference"
	"github.com/studysaathi/studysaathi/internal/statistics"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Plan is a stored study plan. Plan is nil when the generated text was not valid JSON,
// in which case RawPlan holds the text.
type Plan struct {
	ID                      string                                               `db:"id" json:"planId" yaml:"plan_id"`
	UserID                  string                                               `db:"user_id" json:"userId" yaml:"user_id"`
	Status                  Status                                               `db:"status" json:"status" yaml:"status"`
	Plan                    database.JSON[*inference.StudyPlan]                  `db:"plan" json:"plan" yaml:"plan"`
	RawPlan                 *string                                              `db:"raw_plan" json:"rawPlan,omitempty" yaml:"raw_plan,omitempty"`
	Metadata                database.JSON[inference.PlanMetadata]                `db:"metadata" json:"metadata" yaml:"metadata"`
	AdjustedBasedOnProgress bool                                                 `db:"adjusted_based_on_progress" json:"adjustedBasedOnProgress" yaml:"adjusted_based_on_progress"`
	TopicStrengths          database.JSON[map[string][]statistics.TopicStrength] `db:"topic_strengths" json:"topicStrengths,omitempty" yaml:"topic_strengths,omitempty"`
	CreatedAt               time.Time                                            `db:"created_at" json:"createdAt" yaml:"created_at"`
}

//go:generate mockgen -source=plan.go -destination=../mocks/studyplan/mock_plan.go -package=mock_studyplan

// Repository stores study plans.
type Repository interface {
	// Create stores plan as the only active plan of its user.
	Create(ctx context.Context, plan *Plan) error
	// Get returns a plan by id, or nil when it does not exist.
	Get(ctx context.Context, planID string) (*Plan, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db, now: time.Now, newID: uuid.NewString}
}

// Create archives the previous active plans of the user and inserts plan.
func (r *DBRepository) Create(ctx context.Context, plan *Plan) error {
	plan.ID = r.newID()
	plan.Status = StatusActive
	plan.CreatedAt = r.now().UTC()

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"UPDATE study_plans SET status = ? WHERE user_id = ? AND status = ?",
			StatusArchived, plan.UserID, StatusActive); err != nil {
			return fmt.Errorf("tx.ExecContext(archive study_plans) > %w", err)
		}
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO study_plans (id, user_id, status, plan, raw_plan, metadata, adjusted_based_on_progress, topic_strengths, created_at)
			VALUES (:id, :user_id, :status, :plan, :raw_plan, :metadata, :adjusted_based_on_progress, :topic_strengths, :created_at)`,
			plan); err != nil {
			return fmt.Errorf("tx.NamedExecContext(insert study_plans) > %w", err)
		}
		return nil
	})
	if err != nil {
		return apperr.Unavailable("create study plan", err)
	}
	return nil
}

func (r *DBRepository) Get(ctx context.Context, planID string) (*Plan, error) {
	var plan Plan
	err := r.db.GetContext(ctx, &plan, "SELECT * FROM study_plans WHERE id = ?", planID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Unavailable("get study plan", fmt.Errorf("db.GetContext(study_plans) > %w", err))
	}
	return &plan, nil
}
