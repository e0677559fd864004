package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tipcast.app/frames/common/id"
	"tipcast.app/frames/common/logger"
	"tipcast.app/frames/internal/model"
	"tipcast.app/frames/internal/store"
)

type RecordTipParams struct {
	TxHash    string
	Recipient string
	Sender    string
	Amount    string
	Token     string
	ChainID   int64
	Message   *string
}

// TipService records confirmed tips and serves the leaderboard read model.
type TipService interface {
	// Record persists a confirmed tip. Recording the same tx hash twice
	// returns the original record with duplicated=true.
	Record(ctx context.Context, params RecordTipParams) (*model.Tip, bool, error)
	Leaderboard(ctx context.Context, token, period string, limit int) ([]model.LeaderboardEntry, error)
}

var ErrBadPeriod = errors.New("unknown leaderboard period")

type tipService struct {
	tips     store.TipStore
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewTipService(tips store.TipStore, redisClient *redis.Client, cacheTTL time.Duration, log *slog.Logger) TipService {
	if log == nil {
		log = slog.Default()
	}
	return &tipService{
		tips:     tips,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func (s *tipService) Record(ctx context.Context, params RecordTipParams) (*model.Tip, bool, error) {
	if params.TxHash == "" || params.Recipient == "" || params.Amount == "" || params.Token == "" {
		return nil, false, fmt.Errorf("tx_hash, recipient, amount, and token are required")
	}

	existing, err := s.tips.GetByTxHash(ctx, params.TxHash)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("checking for existing tip: %w", err)
	}

	tip := &model.Tip{
		ID:        id.New(),
		Recipient: params.Recipient,
		Sender:    params.Sender,
		Amount:    params.Amount,
		Token:     params.Token,
		ChainID:   params.ChainID,
		TxHash:    params.TxHash,
		Message:   params.Message,
	}
	if err := s.tips.Create(ctx, tip); err != nil {
		return nil, false, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{TipID: logger.Ptr(tip.ID), ChainID: logger.Ptr(tip.ChainID)})
	s.logger.InfoContext(ctx, "tip recorded", "token", tip.Token, "amount", tip.Amount)

	s.invalidateLeaderboard(ctx, tip.Token)
	return tip, false, nil
}

func (s *tipService) Leaderboard(ctx context.Context, token, period string, limit int) ([]model.LeaderboardEntry, error) {
	since, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	key := leaderboardKey(token, period)
	if cached, err := s.redis.Get(ctx, key).Bytes(); err == nil {
		var entries []model.LeaderboardEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Cache trouble degrades to a store read.
		s.logger.WarnContext(ctx, "leaderboard cache read failed", "error", err)
	}

	entries, err := s.tips.TopRecipients(ctx, token, since, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.redis.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
			s.logger.WarnContext(ctx, "leaderboard cache write failed", "error", err)
		}
	}
	return entries, nil
}

func (s *tipService) invalidateLeaderboard(ctx context.Context, token string) {
	keys := []string{
		leaderboardKey(token, "day"),
		leaderboardKey(token, "week"),
		leaderboardKey(token, "all"),
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.WarnContext(ctx, "leaderboard cache invalidation failed", "error", err)
	}
}

func leaderboardKey(token, period string) string {
	return "leaderboard:" + token + ":" + period
}

func periodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "day":
		return now.Add(-24 * time.Hour), nil
	case "week":
		return now.Add(-7 * 24 * time.Hour), nil
	case "all", "":
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadPeriod, period)
	}
}
