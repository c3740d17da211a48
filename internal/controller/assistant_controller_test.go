package controller

import (
	"context"
	"net/http"
	"testing"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeAssistantService struct {
	lastReq *dto.AssistantChatRequest
	res     *dto.AssistantChatResponse
	err     error
}

func (f *fakeAssistantService) Chat(_ context.Context, req *dto.AssistantChatRequest) (*dto.AssistantChatResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newAssistantApp(svc service.IAssistantService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewAssistantController(svc).RegisterRoutes(api)
	return app
}

func TestAssistantChat_Success(t *testing.T) {
	svc := &fakeAssistantService{res: &dto.AssistantChatResponse{Message: "## Skills\n- Go"}}
	app := newAssistantApp(svc)

	resp, body := postJSON(t, app, "/api/assistant/chat", dto.AssistantChatRequest{Message: "List all skills"}, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "## Skills\n- Go", body["message"])
	assert.Equal(t, "List all skills", svc.lastReq.Message)
}

func TestAssistantChat_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: service.NewValidationError("message", "message is required"), wantStatus: http.StatusBadRequest},
		{name: "upstream rate limited", err: service.ErrUpstreamRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "upstream quota", err: service.ErrUpstreamQuota, wantStatus: http.StatusServiceUnavailable},
		{name: "upstream failure", err: service.ErrUpstreamFailure, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAssistantApp(&fakeAssistantService{err: tc.err})

			resp, body := postJSON(t, app, "/api/assistant/chat", dto.AssistantChatRequest{Message: "hi"}, nil)

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}
