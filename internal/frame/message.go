package frame

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"tipcast.app/frames/internal/model"
)

// ErrInvalidMessage wraps every structural rejection from ParseInteraction.
var ErrInvalidMessage = errors.New("invalid interaction message")

const (
	minHashLength  = 10
	maxInputLength = 256
	minButtonIndex = 1
	maxButtonIndex = 4
)

type rawCastReference struct {
	ActorID *int64  `json:"actorId"`
	Hash    *string `json:"hash"`
}

type rawInteraction struct {
	ActorID       *int64            `json:"actorId"`
	SourceURL     *string           `json:"sourceUrl"`
	MessageHash   *string           `json:"messageHash"`
	Timestamp     *int64            `json:"timestamp"`
	NetworkID     *int64            `json:"networkId"`
	ButtonIndex   *int              `json:"buttonIndex"`
	InputText     *string           `json:"inputText"`
	CastReference *rawCastReference `json:"castReference"`
}

// ParseInteraction validates a raw interaction body and returns a typed
// message. Validation is all-or-nothing: any failure rejects the whole
// message, never a partial one. Checks are structural only; authenticity of
// the message is a separate concern (see service.Verifier).
func ParseInteraction(body []byte) (*model.InteractionMessage, error) {
	var raw rawInteraction
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: not a structured value: %v", ErrInvalidMessage, err)
	}

	if raw.ActorID == nil || *raw.ActorID <= 0 {
		return nil, fmt.Errorf("%w: actorId must be a positive integer", ErrInvalidMessage)
	}
	if raw.SourceURL == nil || *raw.SourceURL == "" {
		return nil, fmt.Errorf("%w: sourceUrl is required", ErrInvalidMessage)
	}
	if raw.MessageHash == nil || *raw.MessageHash == "" {
		return nil, fmt.Errorf("%w: messageHash is required", ErrInvalidMessage)
	}
	if raw.Timestamp == nil || *raw.Timestamp <= 0 {
		return nil, fmt.Errorf("%w: timestamp must be a positive integer", ErrInvalidMessage)
	}
	if raw.NetworkID == nil {
		return nil, fmt.Errorf("%w: networkId is required", ErrInvalidMessage)
	}

	u, err := url.Parse(*raw.SourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: sourceUrl is not a well-formed URL", ErrInvalidMessage)
	}
	if len(*raw.MessageHash) < minHashLength {
		return nil, fmt.Errorf("%w: messageHash too short", ErrInvalidMessage)
	}

	buttonIndex := minButtonIndex
	if raw.ButtonIndex != nil {
		if *raw.ButtonIndex < minButtonIndex || *raw.ButtonIndex > maxButtonIndex {
			return nil, fmt.Errorf("%w: buttonIndex %d out of range [%d,%d]", ErrInvalidMessage, *raw.ButtonIndex, minButtonIndex, maxButtonIndex)
		}
		buttonIndex = *raw.ButtonIndex
	}

	inputText := ""
	if raw.InputText != nil {
		if len(*raw.InputText) > maxInputLength {
			return nil, fmt.Errorf("%w: inputText exceeds %d characters", ErrInvalidMessage, maxInputLength)
		}
		inputText = *raw.InputText
	}

	var cast *model.CastReference
	if raw.CastReference != nil {
		if raw.CastReference.ActorID == nil || raw.CastReference.Hash == nil {
			return nil, fmt.Errorf("%w: castReference requires both actorId and hash", ErrInvalidMessage)
		}
		cast = &model.CastReference{
			ActorID: *raw.CastReference.ActorID,
			Hash:    *raw.CastReference.Hash,
		}
	}

	return &model.InteractionMessage{
		ActorID:     *raw.ActorID,
		SourceURL:   *raw.SourceURL,
		MessageHash: *raw.MessageHash,
		Timestamp:   *raw.Timestamp,
		NetworkID:   *raw.NetworkID,
		ButtonIndex: buttonIndex,
		InputText:   inputText,
		Cast:        cast,
	}, nil
}
