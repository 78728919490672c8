package wire

import (
	"encoding/json"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClearContextLowercasesID(t *testing.T) {
	id := uuid.Must(uuid.FromString("123E4567-E89B-42D3-A456-426614174000"))
	req := NewClearContext(id)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"clear_context","workstream_id":"123e4567-e89b-42d3-a456-426614174000"}`, string(data))
}

func TestNewStartRecipe(t *testing.T) {
	sessionID := uuid.Must(uuid.FromString("9f2c6b36-4e9b-4469-8a05-2c60b9671590"))
	req := NewStartRecipe(sessionID, "fix-tests", "/home/dev/api-server")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"start_recipe",
		"session_id":"9f2c6b36-4e9b-4469-8a05-2c60b9671590",
		"recipe_id":"fix-tests",
		"working_directory":"/home/dev/api-server"
	}`, string(data))
}

func TestNewUploadFileEncodesContent(t *testing.T) {
	req := NewUploadFile("notes.md", []byte("hello"), "/srv/uploads")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"upload_file",
		"filename":"notes.md",
		"content":"aGVsbG8=",
		"storage_location":"/srv/uploads"
	}`, string(data))
}

func TestNewSetDirectoryUsesHyphenatedTag(t *testing.T) {
	data, err := json.Marshal(NewSetDirectory("/home/dev/api-server"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"set-directory","path":"/home/dev/api-server"}`, string(data))
}

func TestNewPromptAndPing(t *testing.T) {
	assert.Equal(t, Prompt{Type: "prompt", Text: "run the tests"}, NewPrompt("run the tests"))
	assert.Equal(t, Ping{Type: "ping"}, NewPing())
}
