package model

// CastReference points at the feed post a frame interaction originated from.
type CastReference struct {
	ActorID int64  `json:"actor_id"`
	Hash    string `json:"hash"`
}

// InteractionMessage is one validated inbound frame action: which actor
// pressed which button, and any text they typed. Instances only exist after
// passing the frame validator; handlers never see a partially valid message.
type InteractionMessage struct {
	ActorID     int64          `json:"actor_id"`
	SourceURL   string         `json:"source_url"`
	MessageHash string         `json:"message_hash"`
	Timestamp   int64          `json:"timestamp"`
	NetworkID   int64          `json:"network_id"`
	ButtonIndex int            `json:"button_index"`
	InputText   string         `json:"input_text,omitempty"`
	Cast        *CastReference `json:"cast,omitempty"`
}
