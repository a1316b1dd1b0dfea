// README: Travel assistant handler (credit-guarded Gemini Q&A).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"andariego/internal/http/middleware"
	"andariego/internal/modules/assistant"
)

type AssistantHandler struct {
	assistant *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistant: svc}
}

type askReq struct {
	Question string `json:"question"`
}

// Ask handles POST /api/assistant/ask.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(c, http.StatusBadRequest, "missing question")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	answer, err := h.assistant.Ask(ctx, middleware.CallerUID(c), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrInsufficientCredits):
			writeError(c, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, assistant.ErrNotConfigured):
			writeError(c, http.StatusServiceUnavailable, "assistant unavailable")
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"answer": answer})
}

// Credits handles GET /api/assistant/credits.
func (h *AssistantHandler) Credits(c *gin.Context) {
	left, err := h.assistant.CreditsLeft(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"creditsLeft": left})
}
