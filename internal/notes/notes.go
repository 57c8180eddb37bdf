// Package notes stores study notes written by learners.
package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/studysaathi/studysaathi/internal/apperr"
	"github.com/studysaathi/studysaathi/internal/database"
	"github.com/studysaathi/studysaathi/internal/progress"
)

// ListLimit is the number of notes returned by List.
const ListLimit = 50

type Note struct {
	ID        string                  `db:"id" json:"id"`
	UserID    string                  `db:"user_id" json:"userId"`
	Subject   string                  `db:"subject" json:"subject"`
	Topic     string                  `db:"topic" json:"topic"`
	Content   string                  `db:"content" json:"content"`
	Tags      database.JSON[[]string] `db:"tags" json:"tags"`
	CreatedAt time.Time               `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time               `db:"updated_at" json:"updatedAt"`
}

//go:generate mockgen -source=notes.go -destination=../mocks/notes/mock_notes.go -package=mock_notes

// Repository stores notes.
type Repository interface {
	Create(ctx context.Context, note *Note) error
	// ListByUser returns up to limit notes of a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Note, error)
}

// NoteTracker counts saved notes towards topic progress.
type NoteTracker interface {
	TrackNoteSaved(ctx context.Context, userID, subject, topic string) (*progress.NoteResult, error)
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

func (r *DBRepository) Create(ctx context.Context, note *Note) error {
	now := r.now().UTC()
	note.ID = r.newID()
	note.CreatedAt = now
	note.UpdatedAt = now
	if _, err := r.db.NamedExecContext(ctx,
		`INSERT INTO notes (id, user_id, subject, topic, content, tags, created_at, updated_at)
		VALUES (:id, :user_id, :subject, :topic, :content, :tags, :created_at, :updated_at)`,
		note); err != nil {
		return apperr.Unavailable("create note", fmt.Errorf("db.NamedExecContext(insert notes) > %w", err))
	}
	return nil
}

func (r *DBRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Note, error) {
	notes := []Note{}
	if err := r.db.SelectContext(ctx, &notes,
		"SELECT * FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?",
		userID, limit); err != nil {
		return nil, apperr.Unavailable("list notes", fmt.Errorf("db.SelectContext(notes) > %w", err))
	}
	return notes, nil
}

type SaveRequest struct {
	UserID  string
	Subject string
	Topic   string
	Content string
	Tags    []string
}

// Service saves notes and credits them to topic progress.
type Service struct {
	repo    Repository
	tracker NoteTracker
	logger  *zap.Logger
}

func NewService(repo Repository, tracker NoteTracker, logger *zap.Logger) *Service {
	return &Service{repo: repo, tracker: tracker, logger: logger}
}

// Save stores a note. When a subject is given the note is also counted for the topic;
// a failure there is logged because the note itself is already stored.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*Note, error) {
	note := &Note{
		UserID:  strings.TrimSpace(req.UserID),
		Subject: strings.TrimSpace(req.Subject),
		Topic:   strings.TrimSpace(req.Topic),
		Content: req.Content,
		Tags:    database.NewJSON(req.Tags),
	}
	if note.Tags.V == nil {
		note.Tags.V = []string{}
	}

	var missing []string
	if note.UserID == "" {
		missing = append(missing, "userId")
	}
	if note.Topic == "" {
		missing = append(missing, "topic")
	}
	if strings.TrimSpace(note.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("%s required", strings.Join(missing, ", "))
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}

	if note.Subject != "" {
		if _, err := s.tracker.TrackNoteSaved(ctx, note.UserID, note.Subject, note.Topic); err != nil {
			s.logger.Warn("failed to track saved note",
				zap.String("user_id", note.UserID),
				zap.String("note_id", note.ID),
				zap.Error(err))
		}
	}
	return note, nil
}

// List returns the newest notes of a user.
func (s *Service) List(ctx context.Context, userID string) ([]Note, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId required")
	}
	return s.repo.ListByUser(ctx, userID, ListLimit)
}
