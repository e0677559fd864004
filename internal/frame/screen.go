// Package frame implements the tipping frame protocol: interaction message
// validation, the screen state machine, and document templates. The flow is
// stateless on the server; every screen's identity and parameters travel in
// URL query strings, so FromQuery/Query are the codec the whole package
// hangs off.
package frame

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

type ScreenKind string

const (
	ScreenInitial     ScreenKind = "initial"
	ScreenSelected    ScreenKind = "selected"
	ScreenTxReady     ScreenKind = "tx-ready"
	ScreenSuccess     ScreenKind = "success"
	ScreenError       ScreenKind = "error"
	ScreenLeaderboard ScreenKind = "leaderboard"
)

// Screen is the tagged union of frame flow steps. Each variant carries
// exactly the parameters its templates and transitions need.
type Screen interface {
	Kind() ScreenKind
}

// Initial is the entry screen offering the preset amounts.
type Initial struct {
	Recipient string
	Amount    string
	Token     string
}

// Selected shows the chosen amount awaiting confirmation.
type Selected struct {
	Recipient string
	Amount    string
	Token     string
}

// TransactionReady offers the wallet-executed transaction button.
// ChainID of zero means the preferred chain will be resolved at prepare time.
type TransactionReady struct {
	Recipient string
	Amount    string
	Token     string
	ChainID   int64
}

// Success reports a broadcast transaction.
type Success struct {
	TxHash string
}

// ErrorScreen reports a recoverable failure and offers a restart.
type ErrorScreen struct {
	Message string
}

// Leaderboard shows ranked tip totals.
type Leaderboard struct {
	Period string
}

func (Initial) Kind() ScreenKind          { return ScreenInitial }
func (Selected) Kind() ScreenKind         { return ScreenSelected }
func (TransactionReady) Kind() ScreenKind { return ScreenTxReady }
func (Success) Kind() ScreenKind          { return ScreenSuccess }
func (ErrorScreen) Kind() ScreenKind      { return ScreenError }
func (Leaderboard) Kind() ScreenKind      { return ScreenLeaderboard }

var ErrUnknownScreen = errors.New("unknown screen")

// Query encodes a screen as URL state. The inverse of FromQuery.
func Query(s Screen) url.Values {
	v := url.Values{}
	v.Set("screen", string(s.Kind()))
	switch sc := s.(type) {
	case Initial:
		setNonEmpty(v, "recipient", sc.Recipient)
		setNonEmpty(v, "amount", sc.Amount)
		setNonEmpty(v, "token", sc.Token)
	case Selected:
		setNonEmpty(v, "recipient", sc.Recipient)
		setNonEmpty(v, "amount", sc.Amount)
		setNonEmpty(v, "token", sc.Token)
	case TransactionReady:
		setNonEmpty(v, "recipient", sc.Recipient)
		setNonEmpty(v, "amount", sc.Amount)
		setNonEmpty(v, "token", sc.Token)
		if sc.ChainID != 0 {
			v.Set("chainId", strconv.FormatInt(sc.ChainID, 10))
		}
	case Success:
		setNonEmpty(v, "txHash", sc.TxHash)
	case ErrorScreen:
		setNonEmpty(v, "message", sc.Message)
	case Leaderboard:
		setNonEmpty(v, "period", sc.Period)
	}
	return v
}

// FromQuery decodes URL state back into a screen. A missing screen parameter
// means the entry point, so it decodes as Initial.
func FromQuery(v url.Values) (Screen, error) {
	kind := ScreenKind(v.Get("screen"))
	if kind == "" {
		kind = ScreenInitial
	}
	switch kind {
	case ScreenInitial:
		return Initial{
			Recipient: v.Get("recipient"),
			Amount:    v.Get("amount"),
			Token:     v.Get("token"),
		}, nil
	case ScreenSelected:
		return Selected{
			Recipient: v.Get("recipient"),
			Amount:    v.Get("amount"),
			Token:     v.Get("token"),
		}, nil
	case ScreenTxReady:
		chainID, _ := strconv.ParseInt(v.Get("chainId"), 10, 64)
		return TransactionReady{
			Recipient: v.Get("recipient"),
			Amount:    v.Get("amount"),
			Token:     v.Get("token"),
			ChainID:   chainID,
		}, nil
	case ScreenSuccess:
		return Success{TxHash: v.Get("txHash")}, nil
	case ScreenError:
		return ErrorScreen{Message: v.Get("message")}, nil
	case ScreenLeaderboard:
		return Leaderboard{Period: v.Get("period")}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, kind)
	}
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
