package handlers

import (
	"net/http"
	"strings"

	"lab_hours_bot/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	statusOK = "ok"

	errInvalidActivity = "invalid activity"
	errInvalidMessage  = "invalid body: text is required"
)

// messageRequest is the plain JSON form of an inbound chat message.
type messageRequest struct {
	Text string `json:"text" binding:"required"`
}

// MessageResponse carries the reply text for a plain JSON message.
type MessageResponse struct {
	Reply string `json:"reply" example:"Logged 2.00h (14:30-16:30): doing tasks"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Bot Framework messaging endpoint
// @Description  Message activities are routed to the bot and answered with a reply activity in the response body. Other activity types are acknowledged with an empty 200.
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        activity  body      models.Activity  true  "Inbound activity"
// @Success      200       {object}  models.Activity  "reply activity"
// @Failure      400       {object}  map[string]string
// @Router       /api/messages [post]
func (h *Handler) postActivity(c *gin.Context) {
	var in models.Activity
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidActivity})
		return
	}
	if !strings.EqualFold(in.Type, models.ActivityMessage) {
		if h.log != nil {
			h.log.Debugw("activity_ignored", "type", in.Type, "conversation", in.Conversation.ID)
		}
		c.Status(http.StatusOK)
		return
	}

	reply := h.services.Router.Handle(c.Request.Context(), in.Text)
	c.JSON(http.StatusOK, in.Reply(uuid.NewString(), reply))
}

// @Summary      Send a chat message
// @Tags         bot
// @Accept       json
// @Produce      json
// @Param        body  body      messageRequest   true  "Message text, e.g. 14:30-16:30 doing tasks or show 3-2024"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/messages [post]
func (h *Handler) postMessage(c *gin.Context) {
	var in messageRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidMessage})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{
		Reply: h.services.Router.Handle(c.Request.Context(), in.Text),
	})
}
