package frame

import (
	"strings"

	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/model"
)

// Transition is the state machine's verdict for one interaction: the screen
// to render next, whether the caller must run the transaction preparer
// before rendering it, and whether the press was a pure link-out that
// changes no state.
type Transition struct {
	Next               Screen
	PrepareTransaction bool
	LinkOut            bool
}

// Advance interprets a validated interaction against the current screen.
// The validator guarantees ButtonIndex is in [1,4]; an index with no action
// on the current screen (stale clients after a button-count change) clamps
// to the lowest-numbered valid action rather than silently doing nothing.
func Advance(current Screen, msg *model.InteractionMessage, reg *chain.Registry) Transition {
	switch sc := current.(type) {
	case Initial:
		return advanceInitial(sc, msg, reg)
	case Selected:
		return advanceSelected(sc, msg)
	case TransactionReady:
		// The only button is the wallet-executed transaction itself;
		// a post back here just re-renders it. Success arrives via the
		// wallet callback, not through this machine.
		return Transition{Next: sc}
	case Leaderboard:
		if msg.ButtonIndex == 2 {
			return Transition{Next: sc}
		}
		return Transition{Next: Initial{}}
	default:
		// Success and Error are terminal; every action restarts.
		return Transition{Next: Initial{}}
	}
}

func advanceInitial(sc Initial, msg *model.InteractionMessage, reg *chain.Registry) Transition {
	if sc.Recipient == "" {
		if typed := strings.TrimSpace(msg.InputText); typed != "" {
			sc.Recipient = typed
		}
	}

	token := sc.Token
	if token == "" {
		token = "ETH"
	}

	if msg.ButtonIndex == 4 {
		return Transition{Next: sc, LinkOut: true}
	}

	// Buttons 1..3 map order-dependently onto the presets, smallest first.
	presets := reg.Presets(token)
	amount := presets[msg.ButtonIndex-1]
	return Transition{Next: Selected{Recipient: sc.Recipient, Amount: amount, Token: token}}
}

func advanceSelected(sc Selected, msg *model.InteractionMessage) Transition {
	switch msg.ButtonIndex {
	case 2:
		return Transition{Next: Initial{Recipient: sc.Recipient, Amount: sc.Amount, Token: sc.Token}}
	case 3:
		return Transition{Next: sc, LinkOut: true}
	default:
		// 1 is confirm; 4 has no button here and clamps down to it.
		return Transition{
			Next:               TransactionReady{Recipient: sc.Recipient, Amount: sc.Amount, Token: sc.Token},
			PrepareTransaction: true,
		}
	}
}
