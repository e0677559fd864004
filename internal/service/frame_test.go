package service_test

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/model"
	"tipcast.app/frames/internal/service"
)

var _ = Describe("FrameService", func() {
	var (
		svc      service.FrameService
		verifier *mockVerifier
	)

	template := frame.TemplateConfig{
		BaseURL:    "https://tipcast.app",
		LinkOutURL: "https://tipcast.app/about",
		Registry:   chain.Default(),
	}

	BeforeEach(func() {
		verifier = &mockVerifier{}
		svc = service.NewFrameService(template, chain.Default(), verifier, nil)
	})

	interaction := func(button int) []byte {
		body, err := json.Marshal(map[string]any{
			"actorId":     int64(4242),
			"sourceUrl":   "https://tipcast.app/frame",
			"messageHash": "0x1234567890abcdef",
			"timestamp":   int64(1717243200),
			"networkId":   int64(1),
			"buttonIndex": button,
		})
		Expect(err).NotTo(HaveOccurred())
		return body
	}

	Describe("HandleInteraction", func() {
		It("advances from the entry screen to a selected amount", func() {
			doc, err := svc.HandleInteraction(context.Background(), frame.Initial{Recipient: "0xabc"}, interaction(2))
			Expect(err).NotTo(HaveOccurred())

			Expect(doc.Buttons[0].Label).To(Equal("Confirm"))
			Expect(doc.Buttons[0].Target).To(ContainSubstring("screen=selected"))
			Expect(doc.Buttons[0].Target).To(ContainSubstring("amount=0.05"))
		})

		It("rejects an unparseable interaction", func() {
			_, err := svc.HandleInteraction(context.Background(), frame.Initial{}, []byte(`{"actorId":0}`))
			Expect(err).To(MatchError(frame.ErrInvalidMessage))
		})

		It("treats a verifier rejection as an invalid message", func() {
			verifier.verifyFn = func(_ context.Context, _ *model.InteractionMessage) error {
				return errors.New("hub says no")
			}

			_, err := svc.HandleInteraction(context.Background(), frame.Initial{}, interaction(1))
			Expect(err).To(MatchError(frame.ErrInvalidMessage))
		})

		It("re-renders the current screen on a link-out press", func() {
			doc, err := svc.HandleInteraction(context.Background(), frame.Initial{}, interaction(4))
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Buttons[0].Label).To(Equal("0.01 ETH"))
		})
	})

	Describe("PrepareTip", func() {
		It("returns the document and transaction for a valid native tip", func() {
			doc, tx, err := svc.PrepareTip(context.Background(), model.TipRequest{
				Amount:    "0.05",
				Token:     "ETH",
				Recipient: "0x000000000000000000000000000000000000dEaD",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tx).NotTo(BeNil())
			Expect(tx.ChainID).To(Equal(int64(8453)))
			Expect(tx.Value).To(Equal("50000000000000000"))
			Expect(doc.Buttons[0].Kind).To(Equal(model.ButtonTransaction))
		})

		It("degrades a validation failure to an error document", func() {
			doc, tx, err := svc.PrepareTip(context.Background(), model.TipRequest{
				Amount:    "-1",
				Token:     "ETH",
				Recipient: "0x000000000000000000000000000000000000dEaD",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tx).To(BeNil())
			Expect(doc.Buttons[0].Label).To(Equal("Try again"))
		})

		It("degrades a missing token deployment to an error document", func() {
			doc, tx, err := svc.PrepareTip(context.Background(), model.TipRequest{
				Amount:    "100",
				Token:     "DEGEN",
				Recipient: "0x000000000000000000000000000000000000dEaD",
				ChainID:   1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tx).To(BeNil())
			Expect(doc.Buttons[0].Label).To(Equal("Try again"))
		})

		It("fails outright when no chains are configured", func() {
			empty := chain.NewRegistry(nil,
				map[string]map[int64]chain.Deployment{"ETH": {}},
				map[string][3]string{"ETH": {"0.01", "0.05", "0.1"}},
			)
			bare := service.NewFrameService(frame.TemplateConfig{
				BaseURL:    "https://tipcast.app",
				LinkOutURL: "https://tipcast.app/about",
				Registry:   empty,
			}, empty, verifier, nil)

			_, _, err := bare.PrepareTip(context.Background(), model.TipRequest{
				Amount:    "0.05",
				Token:     "ETH",
				Recipient: "0x000000000000000000000000000000000000dEaD",
			})
			Expect(err).To(MatchError(chain.ErrNoChains))
		})
	})
})
