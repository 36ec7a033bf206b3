package request

import "encoding/json"

// SaveDraftRequest represents an autosave payload for an in-progress form
type SaveDraftRequest struct {
	FormKey string          `json:"form_key" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}
