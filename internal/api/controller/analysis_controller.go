package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/minimax-tic-tac-toe/internal/api/response"
	"ctchen222/minimax-tic-tac-toe/internal/api/service"
	"ctchen222/minimax-tic-tac-toe/internal/game"
	"ctchen222/minimax-tic-tac-toe/internal/validator"
	"ctchen222/minimax-tic-tac-toe/pkg/proto"

	"github.com/gin-gonic/gin"
)

// AnalysisController handles board analysis requests.
type AnalysisController struct {
	analysisService service.AnalysisService
}

// NewAnalysisController creates a new AnalysisController.
func NewAnalysisController(analysisService service.AnalysisService) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

// Analyze handles the board analysis endpoint.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	var req proto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := ac.analysisService.Analyze(c.Request.Context(), req.ToBoard(), game.PlayerMark(req.Next))
	if err != nil {
		if errors.Is(err, service.ErrImpossibleBoard) || errors.Is(err, service.ErrUnknownSide) {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(c.Request.Context(), "analysis failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.SuccessResponse(c, proto.AnalyzeResponse{
		Result:   analysis.Result.String(),
		Score:    analysis.Score,
		BestMove: analysis.BestMove,
	})
}

// Health reports that the server is up.
func Health(c *gin.Context) {
	response.SuccessResponseContent(c, "ok")
}
