package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tipcast.app/frames/internal/model"
)

type tipStore struct {
	pool *pgxpool.Pool
}

func newTipStore(pool *pgxpool.Pool) TipStore {
	return &tipStore{pool: pool}
}

func (s *tipStore) Create(ctx context.Context, tip *model.Tip) error {
	// Amounts are stored as NUMERIC so leaderboard sums stay exact.
	row := s.pool.QueryRow(ctx, `
		INSERT INTO tips (id, recipient, sender, amount, token, chain_id, tx_hash, message)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		RETURNING created_at`,
		tip.ID, tip.Recipient, tip.Sender, tip.Amount, tip.Token, tip.ChainID, tip.TxHash, tip.Message,
	)
	if err := row.Scan(&tip.CreatedAt); err != nil {
		return fmt.Errorf("inserting tip: %w", err)
	}
	return nil
}

func (s *tipStore) GetByTxHash(ctx context.Context, txHash string) (*model.Tip, error) {
	var tip model.Tip
	err := s.pool.QueryRow(ctx, `
		SELECT id, recipient, sender, amount::text, token, chain_id, tx_hash, message, created_at
		FROM tips WHERE tx_hash = $1`,
		txHash,
	).Scan(&tip.ID, &tip.Recipient, &tip.Sender, &tip.Amount, &tip.Token, &tip.ChainID, &tip.TxHash, &tip.Message, &tip.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tip, nil
}

func (s *tipStore) TopRecipients(ctx context.Context, token string, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT recipient, SUM(amount)::text AS total, COUNT(*) AS tip_count
		FROM tips
		WHERE token = $1 AND created_at >= $2
		GROUP BY recipient
		ORDER BY SUM(amount) DESC
		LIMIT $3`,
		token, since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top recipients: %w", err)
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	rank := 0
	for rows.Next() {
		rank++
		entry := model.LeaderboardEntry{Rank: rank, Token: token}
		if err := rows.Scan(&entry.Recipient, &entry.Total, &entry.TipCount); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
