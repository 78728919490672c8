package wire

import (
	"encoding/json"
	"fmt"

	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
)

// Decode classifies one inbound frame. It returns a validated Message
// variant, or a *errors.MalformedMessageError when the frame is not a JSON
// object, lacks a string type tag, or a required field of the tagged variant
// is absent or of the wrong JSON type. Unknown tags are not an error; they
// decode to *Unrecognized. Callers drop malformed frames and continue.
func Decode(data []byte) (Message, error) {
	var env struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &errors.MalformedMessageError{Reason: fmt.Sprintf("frame is not a JSON object: %v", err)}
	}
	if env.Type == nil {
		return nil, &errors.MalformedMessageError{Reason: "missing required field type"}
	}

	switch *env.Type {
	case TypeClearContextConfirmed:
		return decodeClearContextConfirmed(data)
	case TypeRecipeStarted:
		return decodeRecipeStarted(data)
	case TypeRecipeStepAdvanced:
		return decodeRecipeStepAdvanced(data)
	case TypeRecipeCompleted:
		return decodeRecipeCompleted(data)
	case TypeRecipeCancelled:
		return decodeRecipeCancelled(data)
	case TypeResourcesList:
		return decodeResourcesList(data)
	case TypeResourceDeleted:
		return decodeResourceDeleted(data)
	case TypeFileUploaded:
		return decodeFileUploaded(data)
	case TypeConnected:
		return decodeConnected(data)
	case TypeAck:
		return decodeAck(data)
	case TypeError:
		return decodeError(data)
	case TypePong:
		return &Pong{}, nil
	default:
		return &Unrecognized{Type: *env.Type}, nil
	}
}

func decodeClearContextConfirmed(data []byte) (Message, error) {
	var raw struct {
		WorkstreamID *string `json:"workstream_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeClearContextConfirmed, err)
	}
	if raw.WorkstreamID == nil {
		return nil, missingField(TypeClearContextConfirmed, "workstream_id")
	}
	return &ClearContextConfirmed{WorkstreamID: *raw.WorkstreamID}, nil
}

func decodeRecipeStarted(data []byte) (Message, error) {
	var raw struct {
		SessionID   *string `json:"session_id"`
		RecipeID    *string `json:"recipe_id"`
		Label       *string `json:"recipe_label"`
		CurrentStep *int    `json:"current_step"`
		StepCount   *int    `json:"step_count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeRecipeStarted, err)
	}
	switch {
	case raw.SessionID == nil:
		return nil, missingField(TypeRecipeStarted, "session_id")
	case raw.RecipeID == nil:
		return nil, missingField(TypeRecipeStarted, "recipe_id")
	case raw.Label == nil:
		return nil, missingField(TypeRecipeStarted, "recipe_label")
	case raw.CurrentStep == nil:
		return nil, missingField(TypeRecipeStarted, "current_step")
	case raw.StepCount == nil:
		return nil, missingField(TypeRecipeStarted, "step_count")
	}
	return &RecipeStarted{
		SessionID:   *raw.SessionID,
		RecipeID:    *raw.RecipeID,
		Label:       *raw.Label,
		CurrentStep: *raw.CurrentStep,
		StepCount:   *raw.StepCount,
	}, nil
}

func decodeRecipeStepAdvanced(data []byte) (Message, error) {
	var raw struct {
		SessionID   *string `json:"session_id"`
		CurrentStep *int    `json:"current_step"`
		StepCount   *int    `json:"step_count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeRecipeStepAdvanced, err)
	}
	switch {
	case raw.SessionID == nil:
		return nil, missingField(TypeRecipeStepAdvanced, "session_id")
	case raw.CurrentStep == nil:
		return nil, missingField(TypeRecipeStepAdvanced, "current_step")
	case raw.StepCount == nil:
		return nil, missingField(TypeRecipeStepAdvanced, "step_count")
	}
	return &RecipeStepAdvanced{
		SessionID:   *raw.SessionID,
		CurrentStep: *raw.CurrentStep,
		StepCount:   *raw.StepCount,
	}, nil
}

func decodeRecipeCompleted(data []byte) (Message, error) {
	sessionID, err := decodeSessionOnly(TypeRecipeCompleted, data)
	if err != nil {
		return nil, err
	}
	return &RecipeCompleted{SessionID: sessionID}, nil
}

func decodeRecipeCancelled(data []byte) (Message, error) {
	sessionID, err := decodeSessionOnly(TypeRecipeCancelled, data)
	if err != nil {
		return nil, err
	}
	return &RecipeCancelled{SessionID: sessionID}, nil
}

func decodeSessionOnly(msgType string, data []byte) (string, error) {
	var raw struct {
		SessionID *string `json:"session_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", malformed(msgType, err)
	}
	if raw.SessionID == nil {
		return "", missingField(msgType, "session_id")
	}
	return *raw.SessionID, nil
}

func decodeResourcesList(data []byte) (Message, error) {
	// Resources unmarshals through a pointer so an absent field is
	// distinguishable from an explicit empty array, which is valid.
	var raw struct {
		StorageLocation *string     `json:"storage_location"`
		Resources       *[]rawEntry `json:"resources"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeResourcesList, err)
	}
	switch {
	case raw.StorageLocation == nil:
		return nil, missingField(TypeResourcesList, "storage_location")
	case raw.Resources == nil:
		return nil, missingField(TypeResourcesList, "resources")
	}
	entries := make([]ResourceEntry, 0, len(*raw.Resources))
	for i, e := range *raw.Resources {
		entry, err := e.validate(TypeResourcesList, i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return &ResourcesList{
		StorageLocation: *raw.StorageLocation,
		Resources:       entries,
	}, nil
}

type rawEntry struct {
	Filename  *string `json:"filename"`
	Path      *string `json:"path"`
	Size      *int64  `json:"size"`
	Timestamp *string `json:"timestamp"`
}

func (e rawEntry) validate(msgType string, index int) (ResourceEntry, error) {
	var field string
	switch {
	case e.Filename == nil:
		field = "filename"
	case e.Path == nil:
		field = "path"
	case e.Size == nil:
		field = "size"
	case e.Timestamp == nil:
		field = "timestamp"
	default:
		return ResourceEntry{
			Filename:  *e.Filename,
			Path:      *e.Path,
			Size:      *e.Size,
			Timestamp: *e.Timestamp,
		}, nil
	}
	return ResourceEntry{}, &errors.MalformedMessageError{
		MessageType: msgType,
		Reason:      fmt.Sprintf("resource entry %d missing required field %s", index, field),
	}
}

func decodeResourceDeleted(data []byte) (Message, error) {
	var raw struct {
		Filename *string `json:"filename"`
		Path     *string `json:"path"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeResourceDeleted, err)
	}
	switch {
	case raw.Filename == nil:
		return nil, missingField(TypeResourceDeleted, "filename")
	case raw.Path == nil:
		return nil, missingField(TypeResourceDeleted, "path")
	}
	return &ResourceDeleted{Filename: *raw.Filename, Path: *raw.Path}, nil
}

func decodeFileUploaded(data []byte) (Message, error) {
	var raw rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeFileUploaded, err)
	}
	switch {
	case raw.Filename == nil:
		return nil, missingField(TypeFileUploaded, "filename")
	case raw.Path == nil:
		return nil, missingField(TypeFileUploaded, "path")
	case raw.Size == nil:
		return nil, missingField(TypeFileUploaded, "size")
	case raw.Timestamp == nil:
		return nil, missingField(TypeFileUploaded, "timestamp")
	}
	return &FileUploaded{
		Filename:  *raw.Filename,
		Path:      *raw.Path,
		Size:      *raw.Size,
		Timestamp: *raw.Timestamp,
	}, nil
}

func decodeConnected(data []byte) (Message, error) {
	var raw struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeConnected, err)
	}
	return &Connected{Message: raw.Message}, nil
}

func decodeAck(data []byte) (Message, error) {
	var raw struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeAck, err)
	}
	return &Ack{Message: raw.Message}, nil
}

func decodeError(data []byte) (Message, error) {
	var raw struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(TypeError, err)
	}
	if raw.Message == nil {
		return nil, missingField(TypeError, "message")
	}
	return &BackendError{Message: *raw.Message}, nil
}

func malformed(msgType string, err error) error {
	return &errors.MalformedMessageError{MessageType: msgType, Reason: err.Error()}
}

func missingField(msgType, field string) error {
	return &errors.MalformedMessageError{MessageType: msgType, Reason: "missing required field " + field}
}
