// pkg/effect/effect.go

package effect

import "go.uber.org/zap"

type Effect interface {
	Handle() error
}

// EffectFunc adapts a plain function to Effect.
type EffectFunc func() error

func (f EffectFunc) Handle() error {
	return f()
}

type LogEffect struct {
	Logger  *zap.Logger
	Message string
	Fields  []zap.Field
}

// NewLogEffect returns an effect that logs msg at info level when performed.
// A nil logger falls back to the global zap logger.
func NewLogEffect(logger *zap.Logger, msg string, fields ...zap.Field) LogEffect {
	return LogEffect{Logger: logger, Message: msg, Fields: fields}
}

func (le LogEffect) Handle() error {
	logger := le.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info(le.Message, le.Fields...)
	return nil
}

func Perform(e Effect) error {
	return e.Handle()
}

// PerformAll performs effs in order and stops at the first failure.
func PerformAll(effs []Effect) error {
	for _, e := range effs {
		if err := Perform(e); err != nil {
			return err
		}
	}
	return nil
}
