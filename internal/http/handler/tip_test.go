package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tipcast.app/frames/internal/http/handler"
	"tipcast.app/frames/internal/model"
	"tipcast.app/frames/internal/service"
)

var _ = Describe("TipHandler", func() {
	var (
		router *gin.Engine
		tips   *mockTipService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		tips = &mockTipService{}
		h := handler.NewTipHandler(tips)
		router.POST("/tips", h.Record)
		router.GET("/leaderboard", h.Leaderboard)
	})

	Describe("POST /tips", func() {
		record := func(body any) *httptest.ResponseRecorder {
			raw, _ := json.Marshal(body)
			req := httptest.NewRequest(http.MethodPost, "/tips", bytes.NewBuffer(raw))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		validBody := func() map[string]any {
			return map[string]any{
				"tx_hash":   "0xdeadbeef",
				"recipient": "0xabc",
				"sender":    "0xdef",
				"amount":    "0.05",
				"token":     "ETH",
				"chain_id":  8453,
			}
		}

		It("returns 201 with the stored tip", func() {
			tips.recordFn = func(_ context.Context, params service.RecordTipParams) (*model.Tip, bool, error) {
				Expect(params.TxHash).To(Equal("0xdeadbeef"))
				Expect(params.Amount).To(Equal("0.05"))
				return &model.Tip{
					ID:        1,
					Recipient: params.Recipient,
					Amount:    params.Amount,
					Token:     params.Token,
					ChainID:   params.ChainID,
					TxHash:    params.TxHash,
				}, false, nil
			}

			w := record(validBody())

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["tx_hash"]).To(Equal("0xdeadbeef"))
			Expect(resp["duplicated"]).To(BeFalse())
		})

		It("returns 200 when the transaction was already recorded", func() {
			tips.recordFn = func(_ context.Context, params service.RecordTipParams) (*model.Tip, bool, error) {
				return &model.Tip{ID: 1, TxHash: params.TxHash}, true, nil
			}

			w := record(validBody())

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["duplicated"]).To(BeTrue())
		})

		It("returns 400 on a body missing required fields", func() {
			body := validBody()
			delete(body, "tx_hash")

			w := record(body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 when the service fails", func() {
			tips.recordFn = func(_ context.Context, _ service.RecordTipParams) (*model.Tip, bool, error) {
				return nil, false, errors.New("boom")
			}

			w := record(validBody())

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("GET /leaderboard", func() {
		It("returns ranked entries with defaults applied", func() {
			tips.leaderboardFn = func(_ context.Context, token, period string, limit int) ([]model.LeaderboardEntry, error) {
				Expect(token).To(Equal("ETH"))
				Expect(period).To(Equal("all"))
				Expect(limit).To(Equal(10))
				return []model.LeaderboardEntry{
					{Rank: 1, Recipient: "0xabc", Total: "1.5", TipCount: 12},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["token"]).To(Equal("ETH"))
			Expect(resp["entries"]).To(HaveLen(1))
		})

		It("passes explicit query parameters through", func() {
			tips.leaderboardFn = func(_ context.Context, token, period string, limit int) ([]model.LeaderboardEntry, error) {
				Expect(token).To(Equal("USDC"))
				Expect(period).To(Equal("week"))
				Expect(limit).To(Equal(5))
				return nil, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/leaderboard?token=USDC&period=week&limit=5", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 400 on an unknown period", func() {
			tips.leaderboardFn = func(_ context.Context, _, _ string, _ int) ([]model.LeaderboardEntry, error) {
				return nil, service.ErrBadPeriod
			}

			req := httptest.NewRequest(http.MethodGet, "/leaderboard?period=fortnight", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 when the service fails", func() {
			tips.leaderboardFn = func(_ context.Context, _, _ string, _ int) ([]model.LeaderboardEntry, error) {
				return nil, errors.New("boom")
			}

			req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
