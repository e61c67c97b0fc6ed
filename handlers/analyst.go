package handlers

import (
	"net/http"

	"vango/services/content"
	"vango/utils"

	"github.com/gin-gonic/gin"
)

// AnalystHandler serves the one-turn business Q&A endpoint for admins.
type AnalystHandler struct {
	Service *content.AnalystService
}

func NewAnalystHandler(svc *content.AnalystService) *AnalystHandler {
	return &AnalystHandler{Service: svc}
}

type analystRequest struct {
	Question string `json:"question" binding:"required"`
}

func (h *AnalystHandler) AskHandler(c *gin.Context) {
	var req analystRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid question payload", err.Error())
		return
	}

	answer, err := h.Service.Ask(c.Request.Context(), req.Question)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "The analyst is temporarily unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
