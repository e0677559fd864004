package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// transferSelector is the first four bytes of keccak256("transfer(address,uint256)").
const transferSelector = "a9059cbb"

const wordBytes = 32

var hexAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsHexAddress reports whether s is a 0x-prefixed 40-hex-character address.
func IsHexAddress(s string) bool {
	return hexAddressPattern.MatchString(s)
}

// EncodeTransfer builds ERC-20 transfer call data: the 4-byte selector
// followed by the recipient and amount, each left-padded to a 32-byte word.
func EncodeTransfer(recipient string, amount *big.Int) (string, error) {
	if !IsHexAddress(recipient) {
		return "", fmt.Errorf("encode transfer: recipient %q is not a hex address", recipient)
	}
	if amount == nil || amount.Sign() < 0 {
		return "", errors.New("encode transfer: amount must be non-negative")
	}

	addr, err := hex.DecodeString(strings.ToLower(recipient[2:]))
	if err != nil {
		return "", fmt.Errorf("encode transfer: %w", err)
	}

	data := make([]byte, 0, 4+2*wordBytes)
	selector, _ := hex.DecodeString(transferSelector)
	data = append(data, selector...)
	data = append(data, leftPad(addr)...)
	data = append(data, leftPad(amount.Bytes())...)

	return "0x" + hex.EncodeToString(data), nil
}

// DecodeTransfer is the inverse of EncodeTransfer. It recovers the recipient
// address and the scaled amount from transfer call data.
func DecodeTransfer(data string) (recipient string, amount *big.Int, err error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return "", nil, fmt.Errorf("decode transfer: %w", err)
	}
	if len(raw) != 4+2*wordBytes {
		return "", nil, fmt.Errorf("decode transfer: unexpected length %d", len(raw))
	}
	if hex.EncodeToString(raw[:4]) != transferSelector {
		return "", nil, errors.New("decode transfer: not a transfer call")
	}

	addrWord := raw[4 : 4+wordBytes]
	recipient = "0x" + hex.EncodeToString(addrWord[wordBytes-20:])
	amount = new(big.Int).SetBytes(raw[4+wordBytes:])
	return recipient, amount, nil
}

func leftPad(b []byte) []byte {
	if len(b) >= wordBytes {
		return b[len(b)-wordBytes:]
	}
	padded := make([]byte, wordBytes)
	copy(padded[wordBytes-len(b):], b)
	return padded
}
