package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scenecraft/scenecraft/ent/agentrun"
	"github.com/scenecraft/scenecraft/ent/schema"
	"github.com/scenecraft/scenecraft/pkg/services"
)

// submitRequestHandler handles POST /api/v1/requests. The run is created
// in "pending" status and picked up by a queue worker; the response
// returns immediately with the run id.
func (s *Server) submitRequestHandler(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt field is required")
	}
	if len(req.Prompt) > MaxPromptSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("prompt exceeds maximum size of %d bytes", MaxPromptSize))
	}
	for _, img := range req.Images {
		if img.Data == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "image data is required")
		}
	}

	ctx := c.Request().Context()

	if err := s.pool.CheckBacklog(ctx); err != nil {
		return mapServiceError(err)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conv, err := s.convService.CreateConversation(ctx)
		if err != nil {
			return mapServiceError(err)
		}
		conversationID = conv.ID
	}
	if _, err := s.convService.AddUserMessage(ctx, conversationID, req.Prompt); err != nil {
		return mapServiceError(err)
	}

	images := make([]schema.ImageAttachment, 0, len(req.Images))
	for _, img := range req.Images {
		mediaType := img.MediaType
		if mediaType == "" {
			mediaType = "image/png"
		}
		images = append(images, schema.ImageAttachment{MediaType: mediaType, Data: img.Data})
	}

	run, err := s.runService.CreateRun(ctx, services.CreateRunInput{
		Prompt:         req.Prompt,
		ConversationID: conversationID,
		Images:         images,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &SubmitResponse{
		RunID:          run.ID,
		ConversationID: conversationID,
		Status:         "queued",
		Message:        "Request submitted for processing",
	})
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c echo.Context) error {
	runID := c.PathParam("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	run, err := s.runService.GetRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, runResponse(run))
}

// listRunsHandler handles GET /api/v1/runs.
func (s *Server) listRunsHandler(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &limit); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	runs, err := s.runService.ListRuns(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]*RunResponse, len(runs))
	for i, run := range runs {
		resp[i] = runResponse(run)
	}
	return c.JSON(http.StatusOK, resp)
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. An in-flight
// run is cancelled through its worker context; a pending run is flipped
// to cancelled directly.
func (s *Server) cancelRunHandler(c echo.Context) error {
	runID := c.PathParam("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	if s.pool.CancelRun(runID) {
		return c.JSON(http.StatusOK, map[string]string{
			"run_id": runID,
			"status": "cancelling",
		})
	}

	if err := s.runService.CancelRun(c.Request().Context(), runID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"run_id": runID,
		"status": string(agentrun.StatusCancelled),
	})
}
