package wire

import (
	"github.com/gofrs/uuid"
)

// ClearContext asks the backend to end a workstream's session and drop its
// conversation context. The backend answers with clear_context_confirmed.
type ClearContext struct {
	Type         string `json:"type"`
	WorkstreamID string `json:"workstream_id"`
}

// NewClearContext builds a clear request. uuid.UUID.String always renders
// the lowercase canonical form the backend requires, whatever casing the
// identifier originally arrived in.
func NewClearContext(workstreamID uuid.UUID) ClearContext {
	return ClearContext{
		Type:         TypeClearContext,
		WorkstreamID: workstreamID.String(),
	}
}

// StartRecipe asks the backend to run a recipe in the given session.
type StartRecipe struct {
	Type             string `json:"type"`
	SessionID        string `json:"session_id"`
	RecipeID         string `json:"recipe_id"`
	WorkingDirectory string `json:"working_directory"`
}

// NewStartRecipe builds a start request for the session.
func NewStartRecipe(sessionID uuid.UUID, recipeID string, workingDirectory string) StartRecipe {
	return StartRecipe{
		Type:             TypeStartRecipe,
		SessionID:        sessionID.String(),
		RecipeID:         recipeID,
		WorkingDirectory: workingDirectory,
	}
}

// UploadFile pushes one file into the backend's storage location. Content is
// carried base64-encoded on the wire.
type UploadFile struct {
	Type            string `json:"type"`
	Filename        string `json:"filename"`
	Content         []byte `json:"content"`
	StorageLocation string `json:"storage_location"`
}

// NewUploadFile builds an upload request.
func NewUploadFile(filename string, content []byte, storageLocation string) UploadFile {
	return UploadFile{
		Type:            TypeUploadFile,
		Filename:        filename,
		Content:         content,
		StorageLocation: storageLocation,
	}
}

// SetDirectory points the backend's session at a working directory.
type SetDirectory struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// NewSetDirectory builds a set-directory request.
func NewSetDirectory(path string) SetDirectory {
	return SetDirectory{Type: TypeSetDirectory, Path: path}
}

// Prompt forwards one user prompt to the active session.
type Prompt struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewPrompt builds a prompt request.
func NewPrompt(text string) Prompt {
	return Prompt{Type: TypePrompt, Text: text}
}

// Ping is the application-level keepalive probe. The backend answers pong.
type Ping struct {
	Type string `json:"type"`
}

// NewPing builds a ping request.
func NewPing() Ping {
	return Ping{Type: TypePing}
}
