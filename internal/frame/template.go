package frame

import (
	"errors"
	"fmt"
	"net/url"

	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/model"
)

const (
	maxButtons     = 4
	maxLabelLength = 32
)

// ErrBadTemplate wraps construction-time template violations: too many
// buttons, over-long labels, missing image URL. These indicate a programming
// error in a template, not bad user input.
var ErrBadTemplate = errors.New("invalid frame template")

// TemplateConfig carries everything Render needs to build absolute URLs.
type TemplateConfig struct {
	// BaseURL is the public origin of this server, no trailing slash.
	BaseURL string
	// LinkOutURL is the target of "what is this" link buttons.
	LinkOutURL string
	Registry   *chain.Registry
}

// Render maps a screen to its frame document. Pure: same screen and config,
// same document. Construction is validated; a violated protocol limit comes
// back as an error rather than a malformed document.
func Render(s Screen, cfg TemplateConfig) (*model.FrameDocument, error) {
	var doc *model.FrameDocument
	switch sc := s.(type) {
	case Initial:
		doc = cfg.renderInitial(sc)
	case Selected:
		doc = cfg.renderSelected(sc)
	case TransactionReady:
		doc = cfg.renderTransactionReady(sc)
	case Success:
		doc = cfg.renderSuccess(sc)
	case ErrorScreen:
		doc = cfg.renderError(sc)
	case Leaderboard:
		doc = cfg.renderLeaderboard(sc)
	default:
		return nil, fmt.Errorf("%w: no template for screen %q", ErrBadTemplate, s.Kind())
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (cfg TemplateConfig) renderInitial(s Initial) *model.FrameDocument {
	token := s.Token
	if token == "" {
		token = "ETH"
	}
	presets := cfg.Registry.Presets(token)

	buttons := make([]model.FrameButton, 0, maxButtons)
	for _, amount := range presets {
		buttons = append(buttons, model.FrameButton{
			Label:  amount + " " + token,
			Kind:   model.ButtonPost,
			Target: cfg.postURL(Initial{Recipient: s.Recipient, Amount: s.Amount, Token: token}),
		})
	}
	buttons = append(buttons, model.FrameButton{
		Label:  "What is this?",
		Kind:   model.ButtonLink,
		Target: cfg.LinkOutURL,
	})

	doc := &model.FrameDocument{
		ImageURL:    cfg.imageURL(s),
		AspectRatio: model.AspectWide,
		Buttons:     buttons,
	}
	if s.Recipient == "" {
		doc.InputPlaceholder = "0x address or name.eth"
	}
	return doc
}

func (cfg TemplateConfig) renderSelected(s Selected) *model.FrameDocument {
	return &model.FrameDocument{
		ImageURL:    cfg.imageURL(s),
		AspectRatio: model.AspectWide,
		Buttons: []model.FrameButton{
			{Label: "Confirm", Kind: model.ButtonPost, Target: cfg.postURL(s)},
			{Label: "Change amount", Kind: model.ButtonPost, Target: cfg.postURL(s)},
			{Label: "What is this?", Kind: model.ButtonLink, Target: cfg.LinkOutURL},
		},
	}
}

func (cfg TemplateConfig) renderTransactionReady(s TransactionReady) *model.FrameDocument {
	label := fmt.Sprintf("Send %s %s", s.Amount, s.Token)
	if len(label) > maxLabelLength {
		label = "Send " + s.Token
	}

	target := url.Values{}
	target.Set("amount", s.Amount)
	target.Set("token", s.Token)
	target.Set("recipient", s.Recipient)
	if s.ChainID != 0 {
		target.Set("chainId", fmt.Sprintf("%d", s.ChainID))
	}

	return &model.FrameDocument{
		ImageURL:    cfg.imageURL(s),
		AspectRatio: model.AspectWide,
		Buttons: []model.FrameButton{
			{
				Label:  label,
				Kind:   model.ButtonTransaction,
				Target: cfg.BaseURL + "/frame/prepare-tip?" + target.Encode(),
			},
		},
	}
}

func (cfg TemplateConfig) renderSuccess(s Success) *model.FrameDocument {
	buttons := []model.FrameButton{
		{Label: "Send another", Kind: model.ButtonPost, Target: cfg.postURL(s)},
	}
	if chain, err := cfg.Registry.Preferred(); err == nil && s.TxHash != "" {
		buttons = append(buttons, model.FrameButton{
			Label:  "View transaction",
			Kind:   model.ButtonLink,
			Target: chain.ExplorerURL + "/tx/" + s.TxHash,
		})
	}
	return &model.FrameDocument{
		ImageURL:    cfg.imageURL(s),
		AspectRatio: model.AspectWide,
		Buttons:     buttons,
	}
}

func (cfg TemplateConfig) renderError(s ErrorScreen) *model.FrameDocument {
	return &model.FrameDocument{
		ImageURL:    cfg.imageURL(s),
		AspectRatio: model.AspectWide,
		Buttons: []model.FrameButton{
			{Label: "Try again", Kind: model.ButtonPost, Target: cfg.postURL(s)},
		},
	}
}

func (cfg TemplateConfig) renderLeaderboard(s Leaderboard) *model.FrameDocument {
	return &model.FrameDocument{
		ImageURL:    cfg.imageURL(s),
		AspectRatio: model.AspectWide,
		Buttons: []model.FrameButton{
			{Label: "Send a tip", Kind: model.ButtonPost, Target: cfg.postURL(s)},
			{Label: "Refresh", Kind: model.ButtonPost, Target: cfg.postURL(s)},
		},
	}
}

func (cfg TemplateConfig) imageURL(s Screen) string {
	return cfg.BaseURL + "/frame/image?" + Query(s).Encode()
}

// postURL embeds the current screen in the post target so the next request
// can reconstruct where the user is. This is the only state handoff.
func (cfg TemplateConfig) postURL(s Screen) string {
	return cfg.BaseURL + "/frame?" + Query(s).Encode()
}

func validateDocument(doc *model.FrameDocument) error {
	if doc.ImageURL == "" {
		return fmt.Errorf("%w: image URL is required", ErrBadTemplate)
	}
	if len(doc.Buttons) > maxButtons {
		return fmt.Errorf("%w: %d buttons exceeds limit of %d", ErrBadTemplate, len(doc.Buttons), maxButtons)
	}
	for i, b := range doc.Buttons {
		if len(b.Label) > maxLabelLength {
			return fmt.Errorf("%w: button %d label exceeds %d characters", ErrBadTemplate, i+1, maxLabelLength)
		}
	}
	if len(doc.InputPlaceholder) > maxLabelLength {
		return fmt.Errorf("%w: input placeholder exceeds %d characters", ErrBadTemplate, maxLabelLength)
	}
	return nil
}
