package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedMessageError(t *testing.T) {
	tests := []struct {
		name string
		err  *MalformedMessageError
		want string
	}{
		{
			name: "with declared type",
			err:  &MalformedMessageError{MessageType: "recipe_started", Reason: "missing required field session_id"},
			want: `malformed "recipe_started" message: missing required field session_id`,
		},
		{
			name: "unreadable type",
			err:  &MalformedMessageError{Reason: "frame is not a JSON object"},
			want: "malformed message: frame is not a JSON object",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMalformed(t *testing.T) {
	wrapped := fmt.Errorf("decode frame: %w", &MalformedMessageError{Reason: "bad json"})
	assert.True(t, IsMalformed(wrapped))
	assert.False(t, IsMalformed(New("other")))
}

func TestOrphanSessionError(t *testing.T) {
	err := &OrphanSessionError{SessionID: "s-1", Event: "recipe_step_advanced"}
	assert.Equal(t, `recipe_step_advanced references unknown session "s-1"`, err.Error())
}
