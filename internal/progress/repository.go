package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
)

// Repository stores topic progress records.
type Repository interface {
	// Mutate loads the record of key, creating it when missing, and applies fn to it.
	// The load, fn and the write happen atomically; nothing is written when fn fails.
	Mutate(ctx context.Context, key Key, fn func(p *TopicProgress) error) (*TopicProgress, error)
	// FindByUser returns the records of a user in creation order, optionally filtered by subject.
	FindByUser(ctx context.Context, userID, subject string) ([]TopicProgress, error)
	// FindRecent returns up to limit records of a user, most recently updated first.
	FindRecent(ctx context.Context, userID string, limit int) ([]TopicProgress, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db, now: time.Now}
}

// Mutate runs fn against a row locked with SELECT ... FOR UPDATE, so concurrent updates of a topic serialize.
func (r *DBRepository) Mutate(ctx context.Context, key Key, fn func(p *TopicProgress) error) (*TopicProgress, error) {
	var (
		result *TopicProgress
		fnErr  error
	)
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		now := r.now().UTC()
		topicKey := key.TopicKey()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topic_progress (user_id, topic_key, subject, topic, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE id = id`,
			key.UserID, topicKey, key.Subject, key.Topic, now, now); err != nil {
			return fmt.Errorf("tx.ExecContext(insert topic_progress) > %w", err)
		}

		var p TopicProgress
		if err := tx.GetContext(ctx, &p,
			"SELECT * FROM topic_progress WHERE user_id = ? AND topic_key = ? FOR UPDATE",
			key.UserID, topicKey); err != nil {
			return fmt.Errorf("tx.GetContext(topic_progress) > %w", err)
		}

		if fnErr = fn(&p); fnErr != nil {
			return fnErr
		}
		p.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`UPDATE topic_progress SET time_spent_minutes = ?, notes_count = ?, confidence = ?, quiz_avg_score = ?,
			strength_score = ?, strength_label = ?, last_studied = ?, last_note_saved = ?, updated_at = ?
			WHERE id = ?`,
			p.TimeSpentMinutes, p.NotesCount, p.Confidence, p.QuizAvgScore,
			p.StrengthScore, p.StrengthLabel, p.LastStudied, p.LastNoteSaved, p.UpdatedAt,
			p.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(update topic_progress) > %w", err)
		}
		result = &p
		return nil
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, apperr.Unavailable("mutate topic progress", err)
	}
	return result, nil
}

// FindByUser returns the records of a user in creation order.
func (r *DBRepository) FindByUser(ctx context.Context, userID, subject string) ([]TopicProgress, error) {
	query := "SELECT * FROM topic_progress WHERE user_id = ?"
	args := []any{userID}
	if subject != "" {
		query += " AND subject = ?"
		args = append(args, subject)
	}
	query += " ORDER BY id"

	var topics []TopicProgress
	if err := r.db.SelectContext(ctx, &topics, query, args...); err != nil {
		return nil, apperr.Unavailable("find topic progress", fmt.Errorf("db.SelectContext(topic_progress) > %w", err))
	}
	return topics, nil
}

// FindRecent returns the most recently updated records of a user.
func (r *DBRepository) FindRecent(ctx context.Context, userID string, limit int) ([]TopicProgress, error) {
	var topics []TopicProgress
	if err := r.db.SelectContext(ctx, &topics,
		"SELECT * FROM topic_progress WHERE user_id = ? ORDER BY updated_at DESC, id DESC LIMIT ?",
		userID, limit); err != nil {
		return nil, apperr.Unavailable("find recent topic progress", fmt.Errorf("db.SelectContext(recent topic_progress) > %w", err))
	}
	return topics, nil
}
