package chatcontroller

import (
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/chatbot"
	"github.com/7248-om/gshock12/metrics"
	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const coffeeBreak = "I am taking a quick coffee break. Please try again in a moment."

type ChatRequest struct {
	Message string `json:"message"`
}

// Chat answers POST /api/chat. The reply text is returned exactly as the
// model produced it; cards are parsed out for clients that want them.
func Chat(db *gorm.DB, gen chatbot.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
			response.BadRequest(c, "Message is required")
			return
		}
		if gen == nil {
			metrics.RecordChat("unavailable")
			response.Error(c, http.StatusServiceUnavailable, coffeeBreak, chatbot.ErrGeneratorUnavailable)
			return
		}

		ctx := c.Request.Context()
		prompt := chatbot.BuildPrompt(chatbot.BuildContext(ctx, db), req.Message)
		reply, err := gen.Generate(ctx, prompt)
		if err != nil {
			metrics.RecordChat("error")
			response.Error(c, http.StatusInternalServerError, coffeeBreak, err)
			return
		}

		interaction := models.Interaction{
			Query:    req.Message,
			Intent:   chatbot.IntentGeneralChat,
			Response: reply,
		}
		if uid := middleware.UserID(c); uid != "" {
			interaction.UserID = &uid
		}
		if err := db.Create(&interaction).Error; err != nil {
			metrics.RecordChat("error")
			response.Error(c, http.StatusInternalServerError, coffeeBreak, err)
			return
		}

		cards := []chatbot.Card{}
		for _, seg := range chatbot.ParseReply(reply) {
			if seg.Card != nil {
				cards = append(cards, *seg.Card)
			}
		}

		metrics.RecordChat("ok")
		c.JSON(http.StatusOK, gin.H{
			"response": reply,
			"cards":    cards,
			"message":  "Success",
		})
	}
}
