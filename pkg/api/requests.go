package api

// MaxPromptSize bounds the user request body; anything larger is almost
// certainly a pasted file, not a scene instruction.
const MaxPromptSize = 32 * 1024

// SubmitRequest is the body for POST /api/v1/requests.
type SubmitRequest struct {
	Prompt         string            `json:"prompt"`
	ConversationID string            `json:"conversation_id,omitempty"`
	Images         []ImageAttachment `json:"images,omitempty"`
}

// ImageAttachment is a base64-encoded image included with a request.
type ImageAttachment struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}
