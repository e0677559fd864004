package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/http/handler"
)

var _ = Describe("ImageHandler", func() {
	var (
		router *gin.Engine
		images *mockImageService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		images = &mockImageService{}
		h := handler.NewImageHandler(images)
		router.GET("/frame/image", h.Get)
	})

	It("renders the decoded screen as SVG", func() {
		images.renderFn = func(_ context.Context, s frame.Screen) ([]byte, error) {
			Expect(s).To(Equal(frame.Selected{Recipient: "0xabc", Amount: "0.05", Token: "ETH"}))
			return []byte("<svg>tip</svg>"), nil
		}

		req := httptest.NewRequest(http.MethodGet, "/frame/image?screen=selected&recipient=0xabc&amount=0.05&token=ETH", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("image/svg+xml"))
		Expect(w.Body.String()).To(Equal("<svg>tip</svg>"))
	})

	It("returns 400 on an unknown screen tag", func() {
		req := httptest.NewRequest(http.MethodGet, "/frame/image?screen=checkout", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when rendering fails", func() {
		images.renderFn = func(_ context.Context, _ frame.Screen) ([]byte, error) {
			return nil, errors.New("boom")
		}

		req := httptest.NewRequest(http.MethodGet, "/frame/image", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
