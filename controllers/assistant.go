package controllers

import (
	"net/http"
	"strings"

	"Playhub/models"
	"Playhub/utils"

	"github.com/gin-gonic/gin"
)

type assistantMessage struct {
	Message string `json:"message" binding:"required"`
}

// @Summary Sends a message to the assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param message body assistantMessage true "Message"
// @Success 200 {object} models.AssistantReply
// @Failure 400 {object} object{error=string}
// @Router /auth/assistant/messages [post]
// @Security ApiKeyAuth
func SendAssistantMessage(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		var req assistantMessage
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
			utils.RespondError(c, utils.BadRequest("message can't be empty"))
			return
		}
		reply, err := client.SendMessage(c.Request.Context(), req.Message)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reply)
	}
}

// @Summary Conversation with the assistant
// @Tags assistant
// @Produce json
// @Success 200 {array} models.AssistantMessage
// @Router /auth/assistant/messages [get]
// @Security ApiKeyAuth
func AssistantHistory(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		history, err := client.History(c.Request.Context())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if history == nil {
			history = []models.AssistantMessage{}
		}
		c.JSON(http.StatusOK, history)
	}
}

// @Summary Starts a new conversation
// @Tags assistant
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/assistant/messages [delete]
// @Security ApiKeyAuth
func ResetAssistant(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		if err := client.ResetConversation(c.Request.Context()); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
	}
}
