package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicKey(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		topic   string
		want    string
	}{
		{name: "simple", subject: "Physics", topic: "Kinematics", want: "physics_kinematics"},
		{name: "spaces in topic", subject: "Physics", topic: "Rotational Motion", want: "physics_rotational_motion"},
		{name: "whitespace runs collapse", subject: "Organic  Chemistry", topic: "Aldehydes\tand Ketones", want: "organic_chemistry_aldehydes_and_ketones"},
		{name: "leading and trailing whitespace", subject: "  Maths ", topic: " Calculus  ", want: "maths_calculus"},
		{name: "already normalized", subject: "biology", topic: "cell_division", want: "biology_cell_division"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopicKey(tt.subject, tt.topic))
		})
	}
}

func TestKey_validate(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		wantErr string
	}{
		{name: "valid", key: NewKey("u1", "Physics", "Optics")},
		{name: "missing user", key: NewKey(" ", "Physics", "Optics"), wantErr: "userId required"},
		{name: "missing subject and topic", key: NewKey("u1", "", ""), wantErr: "subject, topic required"},
		{name: "longest topic", key: NewKey("u1", "Physics", strings.Repeat("a", 255))},
		{name: "topic too long", key: NewKey("u1", "Physics", strings.Repeat("a", 256)), wantErr: "topic must be at most 255 characters"},
		{name: "multibyte topic counts characters", key: NewKey("u1", "Hindi", strings.Repeat("क", 255))},
		{name: "subject too long", key: NewKey("u1", strings.Repeat("s", 300), "Optics"), wantErr: "subject must be at most 255 characters"},
		{name: "user too long", key: NewKey(strings.Repeat("u", 129), "Physics", "Optics"), wantErr: "userId must be at most 128 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
