// Package wallet prepares unsigned tip transactions. Its responsibility ends
// at handing back an UnsignedTransaction; signing and broadcast belong to
// the user's wallet.
package wallet

import (
	"errors"
	"fmt"
	"regexp"

	"tipcast.app/frames/internal/chain"
	"tipcast.app/frames/internal/model"
)

// ErrValidation wraps tip-parameter rejections: bad amount, unknown token,
// malformed recipient. Distinct from the chain package's configuration
// errors so callers can tell user error from server-side data gaps.
var ErrValidation = errors.New("invalid tip request")

const maxTipMessageLength = 280

var ensNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*\.eth$`)

// ValidateTip applies the tip-request rules shared by every screen
// transition: amount bounds, token allow-list, recipient shape, supported
// chain, message length.
func ValidateTip(req model.TipRequest, reg *chain.Registry) error {
	if err := CheckAmount(req.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !reg.Listed(req.Token) {
		return fmt.Errorf("%w: token %q is not in the allow-list", ErrValidation, req.Token)
	}
	if !IsHexAddress(req.Recipient) && !ensNamePattern.MatchString(req.Recipient) {
		return fmt.Errorf("%w: recipient must be a 0x address or a name.eth name", ErrValidation)
	}
	if req.ChainID != 0 {
		if _, err := reg.ByID(req.ChainID); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if len(req.Message) > maxTipMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrValidation, maxTipMessageLength)
	}
	return nil
}

// Prepare builds the unsigned transaction for a validated tip. ChainID of
// zero resolves to the preferred (lowest-fee) supported chain. A token with
// no deployment on the resolved chain is a configuration rejection
// (chain.ErrTokenNotOnChain), never a silent fallback.
func Prepare(req model.TipRequest, reg *chain.Registry) (*model.UnsignedTransaction, error) {
	if err := ValidateTip(req, reg); err != nil {
		return nil, err
	}
	// Names must be resolved before a transaction can be built; resolution
	// happens upstream of this server.
	if !IsHexAddress(req.Recipient) {
		return nil, fmt.Errorf("%w: recipient must be a resolved 0x address", ErrValidation)
	}

	var (
		ch  chain.Chain
		err error
	)
	if req.ChainID != 0 {
		ch, err = reg.ByID(req.ChainID)
	} else {
		ch, err = reg.Preferred()
	}
	if err != nil {
		return nil, err
	}

	if reg.IsNative(req.Token, ch) {
		value, err := ParseAmount(req.Amount, chain.NativeDecimals)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return &model.UnsignedTransaction{
			To:      req.Recipient,
			Value:   value.String(),
			Data:    "0x",
			ChainID: ch.ID,
		}, nil
	}

	dep, err := reg.DeploymentOn(req.Token, ch.ID)
	if err != nil {
		return nil, err
	}
	value, err := ParseAmount(req.Amount, dep.Decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	data, err := EncodeTransfer(req.Recipient, value)
	if err != nil {
		return nil, err
	}
	return &model.UnsignedTransaction{
		To:      dep.Address,
		Value:   "0",
		Data:    data,
		ChainID: ch.ID,
	}, nil
}
