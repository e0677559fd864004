package store

import (
	"context"
	"errors"
	"time"

	"tipcast.app/frames/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// TipStore defines the contract for recorded-tip data access
type TipStore interface {
	Create(ctx context.Context, tip *model.Tip) error
	GetByTxHash(ctx context.Context, txHash string) (*model.Tip, error)
	// TopRecipients ranks recipients by total amount received for one token
	// since the given time. A zero time means all time.
	TopRecipients(ctx context.Context, token string, since time.Time, limit int) ([]model.LeaderboardEntry, error)
}
