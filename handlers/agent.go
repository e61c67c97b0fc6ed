package handlers

import (
	"errors"
	"net/http"

	"vango/models"
	"vango/services/agent"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler serves the conversational booking endpoint.
type AgentHandler struct {
	Service agent.Service
}

func NewAgentHandler(svc agent.Service) *AgentHandler {
	return &AgentHandler{Service: svc}
}

// TurnHandler runs one dialogue turn. Failed turns leave the caller's state
// untouched, so the client may resubmit the same transcript.
func (h *AgentHandler) TurnHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AgentTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid turn payload", err.Error())
		return
	}

	resp, err := h.Service.ProcessTurn(c.Request.Context(), req)
	if err != nil {
		var turnErr *agent.TurnError
		if errors.As(err, &turnErr) {
			switch turnErr.Kind {
			case agent.KindInput:
				utils.JSONError(c, http.StatusBadRequest, turnErr.Message, "")
			case agent.KindIntegrity:
				// Operator problem; the customer only gets the generic copy.
				logger.Error("turn failed on data integrity", zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError,
					"Something went wrong on our side. Please contact support.", "")
			default:
				logger.Error("turn failed on upstream service", zap.Error(err))
				utils.JSONError(c, http.StatusBadGateway,
					"The assistant is temporarily unavailable. Please try again.", "")
			}
			return
		}
		logger.Error("turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process turn", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}
