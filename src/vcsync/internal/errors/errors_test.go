package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "not connected",
			err:  NotConnectedError,
			want: true,
		},
		{
			name: "no active session",
			err:  NoActiveSessionError,
			want: false,
		},
		{
			name: "other error",
			err:  New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
