package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are structured fields automatically added to every log record
// emitted within a context. Handlers set them once per request; every log
// statement below picks them up without plumbing.
type LogFields struct {
	ActorID   *int64  // interaction message actor
	Screen    *string // current frame screen
	ChainID   *int64  // resolved chain for a prepared transaction
	TipID     *int64  // recorded tip id
	Component string  // component name, e.g. "frames.service.tip"
}

// WithLogFields enriches the context. Repeated calls merge, newer non-nil
// values winning.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields set on the context, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, update LogFields) LogFields {
	result := existing
	if update.ActorID != nil {
		result.ActorID = update.ActorID
	}
	if update.Screen != nil {
		result.Screen = update.Screen
	}
	if update.ChainID != nil {
		result.ChainID = update.ChainID
	}
	if update.TipID != nil {
		result.TipID = update.TipID
	}
	if update.Component != "" {
		result.Component = update.Component
	}
	return result
}

// Ptr creates a pointer from a value, for setting LogFields inline.
func Ptr[T any](v T) *T {
	return &v
}
