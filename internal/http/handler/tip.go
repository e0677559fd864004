package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tipcast.app/frames/internal/http/dto"
	"tipcast.app/frames/internal/service"
)

type TipHandler struct {
	tips service.TipService
}

func NewTipHandler(tips service.TipService) *TipHandler {
	return &TipHandler{tips: tips}
}

// Record persists a confirmed tip posted by the web UI after broadcast.
func (h *TipHandler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RecordTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid tip record request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, duplicated, err := h.tips.Record(ctx, service.RecordTipParams{
		TxHash:    req.TxHash,
		Recipient: req.Recipient,
		Sender:    req.Sender,
		Amount:    req.Amount,
		Token:     req.Token,
		ChainID:   req.ChainID,
		Message:   req.Message,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to record tip", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record tip"})
		return
	}

	status := http.StatusCreated
	if duplicated {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToTipResponse(tip, duplicated))
}

// Leaderboard returns ranked tip totals for a token and period.
func (h *TipHandler) Leaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.DefaultQuery("token", "ETH")
	period := c.DefaultQuery("period", "all")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.tips.Leaderboard(ctx, token, period, limit)
	if err != nil {
		if errors.Is(err, service.ErrBadPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to load leaderboard", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Token:   token,
		Period:  period,
		Entries: entries,
	})
}
