package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/http/dto"
	"tipcast.app/frames/internal/model"
	"tipcast.app/frames/internal/service"
)

var transactionsPrepared = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "frames_transactions_prepared_total",
	Help: "Unsigned transactions handed to wallets, by token.",
}, []string{"token"})

type FrameHandler struct {
	frames service.FrameService
	tips   service.TipService
}

func NewFrameHandler(frames service.FrameService, tips service.TipService) *FrameHandler {
	return &FrameHandler{frames: frames, tips: tips}
}

// Get renders the Initial screen from query parameters; missing amount and
// token fall back to the smallest preset and the native symbol inside the
// template.
func (h *FrameHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	screen := frame.Initial{
		Recipient: c.Query("recipient"),
		Amount:    c.Query("amount"),
		Token:     c.Query("token"),
	}

	doc, err := h.frames.RenderScreen(ctx, screen)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render initial screen", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render frame"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dto.FrameHTML(doc, "Send a tip")))
}

// Post accepts an interaction message and advances the flow. The current
// screen rides in the post target's query string; there is no server-side
// session to consult.
func (h *FrameHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	current, err := frame.FromQuery(c.Request.URL.Query())
	if err != nil {
		slog.WarnContext(ctx, "unknown screen in post target", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	doc, err := h.frames.HandleInteraction(ctx, current, body)
	if err != nil {
		if errors.Is(err, frame.ErrInvalidMessage) {
			slog.WarnContext(ctx, "invalid interaction message", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to handle interaction", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to handle interaction"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dto.FrameHTML(doc, "Send a tip")))
}

// PrepareTip builds the unsigned transaction for the confirmed tip. User
// rejections come back 200 with an Error document so the client still
// renders; only server-side configuration gaps escalate to 500.
func (h *FrameHandler) PrepareTip(c *gin.Context) {
	ctx := c.Request.Context()

	chainID, _ := strconv.ParseInt(c.Query("chainId"), 10, 64)
	req := model.TipRequest{
		Amount:    c.Query("amount"),
		Token:     c.Query("token"),
		Recipient: c.Query("recipient"),
		ChainID:   chainID,
		Message:   c.Query("message"),
	}

	doc, tx, err := h.frames.PrepareTip(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to prepare tip", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare transaction"})
		return
	}

	resp := dto.PrepareTipResponse{Frame: doc}
	if tx != nil {
		transactionsPrepared.WithLabelValues(req.Token).Inc()
		resp.Transaction = dto.ToTransactionResponse(tx)
	}
	c.JSON(http.StatusOK, resp)
}

// TipCallback is the wallet redirect target after broadcast. It renders the
// Success screen and, when the callback carries the full tip parameters,
// records the tip for the leaderboard. Recording is best effort; a store
// failure never hides the success screen from the user.
func (h *FrameHandler) TipCallback(c *gin.Context) {
	ctx := c.Request.Context()

	txHash := c.Query("txHash")
	if txHash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "txHash is required"})
		return
	}

	if recipient := c.Query("recipient"); recipient != "" {
		chainID, _ := strconv.ParseInt(c.Query("chainId"), 10, 64)
		_, _, err := h.tips.Record(ctx, service.RecordTipParams{
			TxHash:    txHash,
			Recipient: recipient,
			Sender:    c.Query("sender"),
			Amount:    c.Query("amount"),
			Token:     c.Query("token"),
			ChainID:   chainID,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to record tip from callback", "error", err)
		}
	}

	doc, err := h.frames.RenderScreen(ctx, frame.Success{TxHash: txHash})
	if err != nil {
		slog.ErrorContext(ctx, "failed to render success screen", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render frame"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dto.FrameHTML(doc, "Tip sent")))
}
