package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/scenecraft/scenecraft/ent"
	"github.com/scenecraft/scenecraft/ent/conversation"
	"github.com/scenecraft/scenecraft/ent/message"
)

const titleMaxRunes = 80

// ConversationService manages conversations and their message history.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversation starts a new conversation. The first user message
// (added separately) sets the title.
func (s *ConversationService) CreateConversation(httpCtx context.Context) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	conv, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// GetConversation fetches one conversation by ID.
func (s *ConversationService) GetConversation(httpCtx context.Context, conversationID string) (*ent.Conversation, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// AddUserMessage appends a user message. The conversation's title is set
// from the first user message if still empty.
func (s *ConversationService) AddUserMessage(httpCtx context.Context, conversationID, content string) (*ent.Message, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	msg, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetRole(message.RoleUser).
		SetContent(content).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add user message: %w", err)
	}

	if conv.Title == nil {
		err := s.client.Conversation.UpdateOneID(conversationID).
			SetTitle(truncateTitle(content)).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to set conversation title: %w", err)
		}
	}

	return msg, nil
}

// AddAssistantMessage appends an assistant message produced by an agent
// run.
func (s *ConversationService) AddAssistantMessage(httpCtx context.Context, conversationID, runID, content string) (*ent.Message, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetRole(message.RoleAssistant).
		SetContent(content).
		SetCreatedAt(time.Now())
	if runID != "" {
		create = create.SetRunID(runID)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add assistant message: %w", err)
	}
	return msg, nil
}

// GetMessages returns a conversation's messages oldest-first.
func (s *ConversationService) GetMessages(httpCtx context.Context, conversationID string) ([]*ent.Message, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// ListConversations returns conversations most recently updated first.
func (s *ConversationService) ListConversations(httpCtx context.Context, limit int) ([]*ent.Conversation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, dbTimeout)
	defer cancel()

	convs, err := s.client.Conversation.Query().
		Order(ent.Desc(conversation.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

func truncateTitle(content string) string {
	if utf8.RuneCountInString(content) <= titleMaxRunes {
		return content
	}
	runes := []rune(content)
	return string(runes[:titleMaxRunes-1]) + "…"
}
