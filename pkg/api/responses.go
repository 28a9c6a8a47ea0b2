package api

import (
	"time"

	"github.com/scenecraft/scenecraft/ent"
)

// SubmitResponse is returned for an accepted request.
type SubmitResponse struct {
	RunID          string `json:"run_id"`
	ConversationID string `json:"conversation_id,omitempty"`
	Status         string `json:"status"`
	Message        string `json:"message"`
}

// RunResponse is the API view of an agent run.
type RunResponse struct {
	RunID         string     `json:"run_id"`
	Prompt        string     `json:"prompt"`
	Status        string     `json:"status"`
	Loops         int        `json:"loops"`
	Replanned     bool       `json:"replanned"`
	FinalResponse string     `json:"final_response,omitempty"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func runResponse(run *ent.AgentRun) *RunResponse {
	resp := &RunResponse{
		RunID:       run.ID,
		Prompt:      run.Prompt,
		Status:      string(run.Status),
		Loops:       run.Loops,
		Replanned:   run.Replanned,
		CreatedAt:   run.CreatedAt,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
	}
	if run.FinalResponse != nil {
		resp.FinalResponse = *run.FinalResponse
	}
	if run.ErrorMessage != nil {
		resp.ErrorMessage = *run.ErrorMessage
	}
	return resp
}

// MessageResponse is the API view of a conversation message.
type MessageResponse struct {
	MessageID string    `json:"message_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	RunID     string    `json:"run_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func messageResponse(msg *ent.Message) *MessageResponse {
	resp := &MessageResponse{
		MessageID: msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	if msg.RunID != nil {
		resp.RunID = *msg.RunID
	}
	return resp
}

// ConversationResponse is the API view of a conversation.
type ConversationResponse struct {
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func conversationResponse(conv *ent.Conversation) *ConversationResponse {
	resp := &ConversationResponse{
		ConversationID: conv.ID,
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
	}
	if conv.Title != nil {
		resp.Title = *conv.Title
	}
	return resp
}
