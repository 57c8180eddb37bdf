package progress

import (
	"strings"
	"unicode/utf8"

	"github.com/studysaathi/studysaathi/internal/apperr"
)

// Column widths of topic_progress.
const (
	maxUserIDLength   = 128
	maxNameLength     = 255
	maxTopicKeyLength = 512
)

// Key identifies the progress record of one topic of one user.
type Key struct {
	UserID  string
	Subject string
	Topic   string
}

// NewKey trims every part of the key.
func NewKey(userID, subject, topic string) Key {
	return Key{
		UserID:  strings.TrimSpace(userID),
		Subject: strings.TrimSpace(subject),
		Topic:   strings.TrimSpace(topic),
	}
}

// TopicKey returns the storage key of the topic, e.g. "physics_rotational_motion".
func (k Key) TopicKey() string {
	return TopicKey(k.Subject, k.Topic)
}

// TopicKey lowercases "subject_topic" and replaces every whitespace run with an underscore.
func TopicKey(subject, topic string) string {
	parts := []string{
		strings.Join(strings.Fields(subject), "_"),
		strings.Join(strings.Fields(topic), "_"),
	}
	return strings.ToLower(strings.Join(parts, "_"))
}

func (k Key) validate() error {
	var missing []string
	if k.UserID == "" {
		missing = append(missing, "userId")
	}
	if k.Subject == "" {
		missing = append(missing, "subject")
	}
	if k.Topic == "" {
		missing = append(missing, "topic")
	}
	if len(missing) > 0 {
		return apperr.Validation("%s required", strings.Join(missing, ", "))
	}

	if utf8.RuneCountInString(k.UserID) > maxUserIDLength {
		return apperr.Validation("userId must be at most %d characters", maxUserIDLength)
	}
	if utf8.RuneCountInString(k.Subject) > maxNameLength {
		return apperr.Validation("subject must be at most %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(k.Topic) > maxNameLength {
		return apperr.Validation("topic must be at most %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(k.TopicKey()) > maxTopicKeyLength {
		return apperr.Validation("subject and topic must be at most %d characters together", maxTopicKeyLength)
	}
	return nil
}
