// Package llm is the gateway to chat completion providers. Callers build
// provider-neutral typed messages; the gateway translates them to the
// provider wire format and returns the raw textual reply. Callers that
// require JSON strip markdown fences themselves (StripFences).
package llm

import (
	"context"
	"errors"
)

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ImagePart is an inline base64 image attached to a message.
type ImagePart struct {
	// MediaType is the MIME type, e.g. "image/png".
	MediaType string
	// Data is the base64-encoded image payload, without a data-URL prefix.
	Data string
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
	Images  []ImagePart
}

// Request is a single stateless completion call.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Client is the provider-neutral completion interface.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

var (
	// ErrNoMessages is returned for a request without any messages.
	ErrNoMessages = errors.New("llm: request has no messages")

	// ErrEmptyResponse is returned when the provider replies without any
	// usable text content.
	ErrEmptyResponse = errors.New("llm: provider returned no text content")

	// ErrUnknownProvider is returned by the factory for an unrecognized
	// provider name.
	ErrUnknownProvider = errors.New("llm: unknown provider")
)

const defaultMaxTokens = 4096

// SystemMsg is a convenience constructor.
func SystemMsg(content string) Message { return Message{Role: RoleSystem, Content: content} }

// UserMsg is a convenience constructor.
func UserMsg(content string) Message { return Message{Role: RoleUser, Content: content} }

// AssistantMsg is a convenience constructor.
func AssistantMsg(content string) Message { return Message{Role: RoleAssistant, Content: content} }
