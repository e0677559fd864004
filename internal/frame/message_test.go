package frame_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tipcast.app/frames/internal/frame"
)

func validMessage() map[string]any {
	return map[string]any{
		"actorId":     int64(4242),
		"sourceUrl":   "https://tipcast.app/frame",
		"messageHash": "0x1234567890abcdef",
		"timestamp":   int64(1717243200),
		"networkId":   int64(1),
	}
}

var _ = Describe("ParseInteraction", func() {
	It("accepts a minimal valid message and defaults buttonIndex to 1", func() {
		body, _ := json.Marshal(validMessage())
		msg, err := frame.ParseInteraction(body)
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ActorID).To(Equal(int64(4242)))
		Expect(msg.ButtonIndex).To(Equal(1))
		Expect(msg.InputText).To(BeEmpty())
		Expect(msg.Cast).To(BeNil())
	})

	It("rejects non-object input", func() {
		_, err := frame.ParseInteraction([]byte(`"just a string"`))
		Expect(err).To(MatchError(frame.ErrInvalidMessage))
	})

	It("rejects null input", func() {
		_, err := frame.ParseInteraction([]byte(`null`))
		Expect(err).To(MatchError(frame.ErrInvalidMessage))
	})

	DescribeTable("required field violations",
		func(mutate func(map[string]any)) {
			m := validMessage()
			mutate(m)
			body, _ := json.Marshal(m)
			_, err := frame.ParseInteraction(body)
			Expect(err).To(MatchError(frame.ErrInvalidMessage))
		},
		Entry("missing actorId", func(m map[string]any) { delete(m, "actorId") }),
		Entry("zero actorId", func(m map[string]any) { m["actorId"] = 0 }),
		Entry("negative actorId", func(m map[string]any) { m["actorId"] = -3 }),
		Entry("missing sourceUrl", func(m map[string]any) { delete(m, "sourceUrl") }),
		Entry("relative sourceUrl", func(m map[string]any) { m["sourceUrl"] = "/frame" }),
		Entry("garbage sourceUrl", func(m map[string]any) { m["sourceUrl"] = "not a url" }),
		Entry("missing messageHash", func(m map[string]any) { delete(m, "messageHash") }),
		Entry("short messageHash", func(m map[string]any) { m["messageHash"] = "0x123" }),
		Entry("missing timestamp", func(m map[string]any) { delete(m, "timestamp") }),
		Entry("zero timestamp", func(m map[string]any) { m["timestamp"] = 0 }),
		Entry("missing networkId", func(m map[string]any) { delete(m, "networkId") }),
		Entry("string actorId", func(m map[string]any) { m["actorId"] = "4242" }),
	)

	DescribeTable("buttonIndex bounds",
		func(index int, ok bool) {
			m := validMessage()
			m["buttonIndex"] = index
			body, _ := json.Marshal(m)
			msg, err := frame.ParseInteraction(body)
			if ok {
				Expect(err).NotTo(HaveOccurred())
				Expect(msg.ButtonIndex).To(Equal(index))
			} else {
				Expect(err).To(MatchError(frame.ErrInvalidMessage))
			}
		},
		Entry("1 is valid", 1, true),
		Entry("4 is valid", 4, true),
		Entry("0 is rejected", 0, false),
		Entry("5 is rejected before any state machine sees it", 5, false),
		Entry("negative is rejected", -1, false),
	)

	It("rejects inputText over 256 characters", func() {
		m := validMessage()
		long := make([]byte, 257)
		for i := range long {
			long[i] = 'x'
		}
		m["inputText"] = string(long)
		body, _ := json.Marshal(m)
		_, err := frame.ParseInteraction(body)
		Expect(err).To(MatchError(frame.ErrInvalidMessage))
	})

	It("accepts a full castReference", func() {
		m := validMessage()
		m["castReference"] = map[string]any{"actorId": int64(7), "hash": "0xcast"}
		body, _ := json.Marshal(m)
		msg, err := frame.ParseInteraction(body)
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Cast).NotTo(BeNil())
		Expect(msg.Cast.ActorID).To(Equal(int64(7)))
		Expect(msg.Cast.Hash).To(Equal("0xcast"))
	})

	It("rejects a castReference missing a sub-field", func() {
		m := validMessage()
		m["castReference"] = map[string]any{"actorId": int64(7)}
		body, _ := json.Marshal(m)
		_, err := frame.ParseInteraction(body)
		Expect(err).To(MatchError(frame.ErrInvalidMessage))
	})

	It("never returns a partial message on failure", func() {
		m := validMessage()
		m["buttonIndex"] = 9
		body, _ := json.Marshal(m)
		msg, err := frame.ParseInteraction(body)
		Expect(err).To(HaveOccurred())
		Expect(msg).To(BeNil())
	})
})
