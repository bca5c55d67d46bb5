package api

import (
	"Playhub/models"
	"context"
)

type assistantRequest struct {
	Message string `json:"message"`
}

// SendMessage sends text to the assistant and returns its reply
func (c *Client) SendMessage(ctx context.Context, text string) (models.AssistantReply, error) {
	return postJSON[assistantRequest, models.AssistantReply](ctx, c, c.baseURL, "/api/assistant/message",
		assistantRequest{Message: text})
}

func (c *Client) ResetConversation(ctx context.Context) error {
	return post(ctx, c, c.baseURL, "/api/assistant/reset")
}

func (c *Client) History(ctx context.Context) ([]models.AssistantMessage, error) {
	return getJSON[[]models.AssistantMessage](ctx, c, c.baseURL, "/api/assistant/history")
}
