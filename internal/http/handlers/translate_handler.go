// README: Phrase translation endpoints for the traveler toolkit.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"andariego/internal/translate"
)

type TranslateHandler struct {
	translator *translate.Service
}

func NewTranslateHandler(svc *translate.Service) *TranslateHandler {
	return &TranslateHandler{translator: svc}
}

type translateReq struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	res, err := h.translator.Translate(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		switch {
		case errors.Is(err, translate.ErrEmptyText):
			writeError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, translate.ErrNotConfigured):
			writeError(c, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(c, http.StatusBadGateway, "translation failed")
		}
		return
	}

	writeJSON(c, http.StatusOK, res)
}

// Languages handles GET /api/translate/languages.
func (h *TranslateHandler) Languages(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"languages": translate.Languages()})
}
