package service_test

import (
	"context"
	"time"

	"tipcast.app/frames/internal/model"
)

type mockTipStore struct {
	createFn        func(ctx context.Context, tip *model.Tip) error
	getByTxHashFn   func(ctx context.Context, txHash string) (*model.Tip, error)
	topRecipientsFn func(ctx context.Context, token string, since time.Time, limit int) ([]model.LeaderboardEntry, error)
}

func (m *mockTipStore) Create(ctx context.Context, tip *model.Tip) error {
	if m.createFn != nil {
		return m.createFn(ctx, tip)
	}
	return nil
}

func (m *mockTipStore) GetByTxHash(ctx context.Context, txHash string) (*model.Tip, error) {
	if m.getByTxHashFn != nil {
		return m.getByTxHashFn(ctx, txHash)
	}
	return nil, nil
}

func (m *mockTipStore) TopRecipients(ctx context.Context, token string, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	if m.topRecipientsFn != nil {
		return m.topRecipientsFn(ctx, token, since, limit)
	}
	return []model.LeaderboardEntry{}, nil
}

type mockVerifier struct {
	verifyFn func(ctx context.Context, msg *model.InteractionMessage) error
}

func (m *mockVerifier) Verify(ctx context.Context, msg *model.InteractionMessage) error {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, msg)
	}
	return nil
}
