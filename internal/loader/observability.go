package loader

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// LoadEvent records the outcome of one load.
type LoadEvent struct {
	Source  string
	Count   int
	Latency time.Duration
	Err     error
}

// Observer receives load events for logging.
type Observer interface {
	OnLoad(event LoadEvent)
}

// ZapObserver logs load events to a zap logger.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates an Observer that logs to logger.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) OnLoad(event LoadEvent) {
	fields := []zap.Field{
		zap.String("source", event.Source),
		zap.Duration("latency", event.Latency),
	}
	if event.Err != nil {
		var le *LoadError
		if errors.As(event.Err, &le) {
			fields = append(fields, zap.String("kind", string(le.Kind)))
			if le.StatusCode != 0 {
				fields = append(fields, zap.Int("status_code", le.StatusCode))
			}
		}
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("case load failed", fields...)
		return
	}
	fields = append(fields, zap.Int("cases", event.Count))
	o.logger.Info("cases loaded", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnLoad(LoadEvent) {}
