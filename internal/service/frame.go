package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tipcast.app/frames/common/logger"
	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/model"
	"tipcast.app/frames/internal/wallet"
)

// FrameService drives the frame flow: it validates inbound interactions,
// advances the state machine and renders the next document. Recoverable
// failures come back as Error-screen documents so the protocol client always
// has something to render; only invalid messages and server-side faults
// surface as errors.
type FrameService interface {
	RenderScreen(ctx context.Context, s frame.Screen) (*model.FrameDocument, error)
	HandleInteraction(ctx context.Context, current frame.Screen, body []byte) (*model.FrameDocument, error)
	PrepareTip(ctx context.Context, req model.TipRequest) (*model.FrameDocument, *model.UnsignedTransaction, error)
}

type frameService struct {
	template frame.TemplateConfig
	registry *chain.Registry
	verifier Verifier
	logger   *slog.Logger
}

func NewFrameService(template frame.TemplateConfig, registry *chain.Registry, verifier Verifier, log *slog.Logger) FrameService {
	if log == nil {
		log = slog.Default()
	}
	return &frameService{
		template: template,
		registry: registry,
		verifier: verifier,
		logger:   log,
	}
}

func (s *frameService) RenderScreen(ctx context.Context, screen frame.Screen) (*model.FrameDocument, error) {
	doc, err := frame.Render(screen, s.template)
	if err != nil {
		return nil, fmt.Errorf("rendering %s screen: %w", screen.Kind(), err)
	}
	return doc, nil
}

func (s *frameService) HandleInteraction(ctx context.Context, current frame.Screen, body []byte) (*model.FrameDocument, error) {
	msg, err := frame.ParseInteraction(body)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ActorID: logger.Ptr(msg.ActorID),
		Screen:  logger.Ptr(string(current.Kind())),
	})

	if err := s.verifier.Verify(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "interaction rejected by verifier", "error", err)
		return nil, fmt.Errorf("%w: %v", frame.ErrInvalidMessage, err)
	}

	transition := frame.Advance(current, msg, s.registry)
	if transition.LinkOut {
		// Link buttons are handled client-side; re-render where we are.
		return s.RenderScreen(ctx, transition.Next)
	}

	s.logger.InfoContext(ctx, "frame advanced",
		"button", msg.ButtonIndex,
		"next", transition.Next.Kind(),
	)
	return s.RenderScreen(ctx, transition.Next)
}

func (s *frameService) PrepareTip(ctx context.Context, req model.TipRequest) (*model.FrameDocument, *model.UnsignedTransaction, error) {
	tx, err := wallet.Prepare(req, s.registry)
	if err != nil {
		return s.prepareFailure(ctx, err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ChainID: logger.Ptr(tx.ChainID)})
	s.logger.InfoContext(ctx, "transaction prepared",
		"token", req.Token,
		"amount", req.Amount,
	)

	doc, err := s.RenderScreen(ctx, frame.TransactionReady{
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Token:     req.Token,
		ChainID:   tx.ChainID,
	})
	if err != nil {
		return nil, nil, err
	}
	return doc, tx, nil
}

// prepareFailure maps the preparer's taxonomy onto the error screen. Only a
// missing chain table escalates; everything else degrades so the client can
// still render.
func (s *frameService) prepareFailure(ctx context.Context, err error) (*model.FrameDocument, *model.UnsignedTransaction, error) {
	switch {
	case errors.Is(err, chain.ErrNoChains):
		return nil, nil, err
	case errors.Is(err, chain.ErrTokenNotOnChain):
		// Server-side data gap, not user error.
		s.logger.ErrorContext(ctx, "token missing deployment for resolved chain", "error", err)
		doc, renderErr := s.RenderScreen(ctx, frame.ErrorScreen{Message: "That token is not available on the selected chain"})
		return doc, nil, renderErr
	case errors.Is(err, wallet.ErrValidation):
		s.logger.WarnContext(ctx, "tip request rejected", "error", err)
		doc, renderErr := s.RenderScreen(ctx, frame.ErrorScreen{Message: "Check the tip amount and recipient"})
		return doc, nil, renderErr
	default:
		return nil, nil, err
	}
}
