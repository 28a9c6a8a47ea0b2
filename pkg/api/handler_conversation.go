package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// createConversationHandler handles POST /api/v1/conversations.
func (s *Server) createConversationHandler(c echo.Context) error {
	conv, err := s.convService.CreateConversation(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, conversationResponse(conv))
}

// listConversationsHandler handles GET /api/v1/conversations.
func (s *Server) listConversationsHandler(c echo.Context) error {
	convs, err := s.convService.ListConversations(c.Request().Context(), 50)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]*ConversationResponse, len(convs))
	for i, conv := range convs {
		resp[i] = conversationResponse(conv)
	}
	return c.JSON(http.StatusOK, resp)
}

// getMessagesHandler handles GET /api/v1/conversations/:id/messages.
func (s *Server) getMessagesHandler(c echo.Context) error {
	conversationID := c.PathParam("id")
	if conversationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}

	msgs, err := s.convService.GetMessages(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]*MessageResponse, len(msgs))
	for i, msg := range msgs {
		resp[i] = messageResponse(msg)
	}
	return c.JSON(http.StatusOK, resp)
}
