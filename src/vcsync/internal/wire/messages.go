// Package wire defines the JSON frame taxonomy spoken over the backend
// socket: a closed set of inbound message variants plus the outbound request
// bodies. Every frame is a single JSON object with a "type" discriminator.
package wire

// Inbound type tags.
const (
	TypeClearContextConfirmed = "clear_context_confirmed"
	TypeRecipeStarted         = "recipe_started"
	TypeRecipeStepAdvanced    = "recipe_step_advanced"
	TypeRecipeCompleted       = "recipe_completed"
	TypeRecipeCancelled       = "recipe_cancelled"
	TypeResourcesList         = "resources_list"
	TypeResourceDeleted       = "resource_deleted"
	TypeFileUploaded          = "file_uploaded"
	TypeConnected             = "connected"
	TypeAck                   = "ack"
	TypeError                 = "error"
	TypePong                  = "pong"
)

// Outbound type tags. The backend names set-directory with a hyphen.
const (
	TypeClearContext = "clear_context"
	TypeStartRecipe  = "start_recipe"
	TypeUploadFile   = "upload_file"
	TypeSetDirectory = "set-directory"
	TypePrompt       = "prompt"
	TypePing         = "ping"
)

// Message is one successfully decoded inbound frame. The variant set is
// closed: routing matches exhaustively on the concrete type, with
// Unrecognized standing in for tags added by newer backends.
type Message interface {
	isMessage()
}

// ClearContextConfirmed reports that the backend finished detaching a
// workstream's session and dropping its conversation context.
type ClearContextConfirmed struct {
	WorkstreamID string
}

// RecipeStarted reports that a recipe began executing in a session.
type RecipeStarted struct {
	SessionID   string
	RecipeID    string
	Label       string
	CurrentStep int
	StepCount   int
}

// RecipeStepAdvanced reports step progress for a session's running recipe.
type RecipeStepAdvanced struct {
	SessionID   string
	CurrentStep int
	StepCount   int
}

// RecipeCompleted reports that a session's recipe ran to completion.
type RecipeCompleted struct {
	SessionID string
}

// RecipeCancelled reports that a session's recipe was cancelled.
type RecipeCancelled struct {
	SessionID string
}

// ResourceEntry is one file in a resources_list frame.
type ResourceEntry struct {
	Filename  string
	Path      string
	Size      int64
	Timestamp string
}

// ResourcesList carries the authoritative resource collection. An empty
// Resources slice is a valid empty collection.
type ResourcesList struct {
	StorageLocation string
	Resources       []ResourceEntry
}

// ResourceDeleted reports that the backend removed one stored file.
type ResourceDeleted struct {
	Filename string
	Path     string
}

// FileUploaded confirms one upload. It carries no listing authority; the
// collection is only refreshed by a ResourcesList.
type FileUploaded struct {
	Filename  string
	Path      string
	Size      int64
	Timestamp string
}

// Connected is the backend's greeting after the socket is established.
type Connected struct {
	Message string
}

// Ack acknowledges a fire-and-forget command.
type Ack struct {
	Message string
}

// BackendError reports a backend-side failure. Never fatal to the stream.
type BackendError struct {
	Message string
}

// Pong answers an application-level ping.
type Pong struct{}

// Unrecognized is a syntactically valid frame whose tag is outside the known
// set. Carried for forward compatibility; routing ignores it.
type Unrecognized struct {
	Type string
}

func (*ClearContextConfirmed) isMessage() {}
func (*RecipeStarted) isMessage()         {}
func (*RecipeStepAdvanced) isMessage()    {}
func (*RecipeCompleted) isMessage()       {}
func (*RecipeCancelled) isMessage()       {}
func (*ResourcesList) isMessage()         {}
func (*ResourceDeleted) isMessage()       {}
func (*FileUploaded) isMessage()          {}
func (*Connected) isMessage()             {}
func (*Ack) isMessage()                   {}
func (*BackendError) isMessage()          {}
func (*Pong) isMessage()                  {}
func (*Unrecognized) isMessage()          {}
