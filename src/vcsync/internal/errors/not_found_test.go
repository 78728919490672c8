package errors

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/voicecode/vcsync/src/vcsync/factory"
)

func TestWorkstreamNotFound(t *testing.T) {
	id := uuid.Must(uuid.FromString("4d8c6b36-4e9b-4469-8a05-2c60b9671590"))
	err := &WorkstreamNotFoundError{ID: id}
	msg := `workstream "4d8c6b36-4e9b-4469-8a05-2c60b9671590" not found`
	assert.Equal(t, msg, err.Error())
}

func TestNotFoundWorkstream(t *testing.T) {
	id := factory.UUID()
	tests := []struct {
		name   string
		err    error
		wantOK bool
		wantID uuid.UUID
	}{
		{
			name:   "workstream not found",
			err:    &WorkstreamNotFoundError{ID: id},
			wantOK: true,
			wantID: id,
		},
		{
			name:   "random error",
			err:    New("err"),
			wantOK: false,
			wantID: uuid.Nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			id, ok := NotFoundWorkstream(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
