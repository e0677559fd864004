package service

import (
	"context"
	"fmt"
	"html"

	"tipcast.app/frames/internal/frame"
)

// ImageService renders the still image for a screen. Pure and side-effect
// free, so responses are cacheable by screen parameters.
type ImageService interface {
	Render(ctx context.Context, s frame.Screen) ([]byte, error)
}

type imageService struct{}

func NewImageService() ImageService {
	return imageService{}
}

func (imageService) Render(_ context.Context, s frame.Screen) ([]byte, error) {
	var title, subtitle string
	switch sc := s.(type) {
	case frame.Initial:
		title = "Send a tip"
		subtitle = recipientLine(sc.Recipient)
	case frame.Selected:
		title = fmt.Sprintf("Tip %s %s?", sc.Amount, sc.Token)
		subtitle = recipientLine(sc.Recipient)
	case frame.TransactionReady:
		title = fmt.Sprintf("Ready: %s %s", sc.Amount, sc.Token)
		subtitle = "Confirm in your wallet"
	case frame.Success:
		title = "Tip sent"
		subtitle = shorten(sc.TxHash)
	case frame.ErrorScreen:
		title = "Something went wrong"
		subtitle = sc.Message
	case frame.Leaderboard:
		title = "Top recipients"
		subtitle = sc.Period
	default:
		return nil, fmt.Errorf("no image for screen %q", s.Kind())
	}

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1146" height="600" viewBox="0 0 1146 600">
  <rect width="1146" height="600" fill="#10131a"/>
  <text x="573" y="270" text-anchor="middle" font-family="sans-serif" font-size="64" fill="#f4f6fb">%s</text>
  <text x="573" y="360" text-anchor="middle" font-family="sans-serif" font-size="32" fill="#8b93a7">%s</text>
</svg>`, html.EscapeString(title), html.EscapeString(subtitle))

	return []byte(svg), nil
}

func recipientLine(recipient string) string {
	if recipient == "" {
		return "Enter a recipient below"
	}
	return "to " + shorten(recipient)
}

// shorten elides long hex strings the way explorers do.
func shorten(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:8] + "…" + s[len(s)-4:]
}
