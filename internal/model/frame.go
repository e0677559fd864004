package model

type ButtonKind string

const (
	ButtonPost        ButtonKind = "post"
	ButtonLink        ButtonKind = "link"
	ButtonTransaction ButtonKind = "tx"
)

type AspectRatio string

const (
	AspectWide   AspectRatio = "1.91:1"
	AspectSquare AspectRatio = "1:1"
)

type FrameButton struct {
	Label  string     `json:"label"`
	Kind   ButtonKind `json:"kind"`
	Target string     `json:"target,omitempty"`
}

// FrameDocument is the rendered response to one step of the frame flow.
// Construction goes through frame.Render, which enforces the protocol
// limits (button count, label and placeholder lengths).
type FrameDocument struct {
	ImageURL         string        `json:"image_url"`
	AspectRatio      AspectRatio   `json:"aspect_ratio"`
	Buttons          []FrameButton `json:"buttons"`
	InputPlaceholder string        `json:"input_placeholder,omitempty"`
	State            string        `json:"state,omitempty"`
}
