package handler_test

import (
	"context"

	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/model"
	"tipcast.app/frames/internal/service"
)

type mockFrameService struct {
	renderScreenFn      func(ctx context.Context, s frame.Screen) (*model.FrameDocument, error)
	handleInteractionFn func(ctx context.Context, current frame.Screen, body []byte) (*model.FrameDocument, error)
	prepareTipFn        func(ctx context.Context, req model.TipRequest) (*model.FrameDocument, *model.UnsignedTransaction, error)
}

func (m *mockFrameService) RenderScreen(ctx context.Context, s frame.Screen) (*model.FrameDocument, error) {
	if m.renderScreenFn != nil {
		return m.renderScreenFn(ctx, s)
	}
	return &model.FrameDocument{ImageURL: "https://tipcast.app/frame/image"}, nil
}

func (m *mockFrameService) HandleInteraction(ctx context.Context, current frame.Screen, body []byte) (*model.FrameDocument, error) {
	if m.handleInteractionFn != nil {
		return m.handleInteractionFn(ctx, current, body)
	}
	return &model.FrameDocument{ImageURL: "https://tipcast.app/frame/image"}, nil
}

func (m *mockFrameService) PrepareTip(ctx context.Context, req model.TipRequest) (*model.FrameDocument, *model.UnsignedTransaction, error) {
	if m.prepareTipFn != nil {
		return m.prepareTipFn(ctx, req)
	}
	return &model.FrameDocument{ImageURL: "https://tipcast.app/frame/image"}, nil, nil
}

type mockTipService struct {
	recordFn      func(ctx context.Context, params service.RecordTipParams) (*model.Tip, bool, error)
	leaderboardFn func(ctx context.Context, token, period string, limit int) ([]model.LeaderboardEntry, error)
}

func (m *mockTipService) Record(ctx context.Context, params service.RecordTipParams) (*model.Tip, bool, error) {
	if m.recordFn != nil {
		return m.recordFn(ctx, params)
	}
	return &model.Tip{}, false, nil
}

func (m *mockTipService) Leaderboard(ctx context.Context, token, period string, limit int) ([]model.LeaderboardEntry, error) {
	if m.leaderboardFn != nil {
		return m.leaderboardFn(ctx, token, period, limit)
	}
	return []model.LeaderboardEntry{}, nil
}

type mockImageService struct {
	renderFn func(ctx context.Context, s frame.Screen) ([]byte, error)
}

func (m *mockImageService) Render(ctx context.Context, s frame.Screen) ([]byte, error) {
	if m.renderFn != nil {
		return m.renderFn(ctx, s)
	}
	return []byte("<svg></svg>"), nil
}
