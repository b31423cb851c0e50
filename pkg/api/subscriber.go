package api

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LoggingSubscriber writes structured logs for lifecycle events using
// log/slog. Attach it to a step or tour emitter via its Handler:
//
//	step.On(...) registers per event; emitters expose OnAny for subscribers:
//
//	sub := api.NewLoggingSubscriber(nil)
//	emitter.OnAny(sub.Handler)
type LoggingSubscriber struct {
	Logger *slog.Logger
}

// NewLoggingSubscriber creates a subscriber logging with the provided
// logger. If logger is nil, slog.Default() is used.
func NewLoggingSubscriber(logger *slog.Logger) *LoggingSubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingSubscriber{Logger: logger}
}

// Handler logs one event. Cancel events log at warn level, everything else
// at info.
func (s *LoggingSubscriber) Handler(ev Event) {
	level := slog.LevelInfo
	if ev.Type == EventCancel {
		level = slog.LevelWarn
	}
	attrs := []any{
		slog.String("event", string(ev.Type)),
	}
	if ev.StepID != "" {
		attrs = append(attrs, slog.String("step", ev.StepID))
	}
	if ev.TourID != "" {
		attrs = append(attrs, slog.String("tour", ev.TourID))
	}
	s.Logger.Log(context.Background(), level, "guidepost_event", attrs...)
}

// TourMetrics collects simple lifecycle counters. It is a subscriber like
// LoggingSubscriber and can be attached to the same emitter.
type TourMetrics struct {
	shows     atomic.Int64
	hides     atomic.Int64
	cancels   atomic.Int64
	completes atomic.Int64
	destroys  atomic.Int64
}

// TourMetricsSnapshot is an immutable snapshot of TourMetrics.
type TourMetricsSnapshot struct {
	Shows     int64
	Hides     int64
	Cancels   int64
	Completes int64
	Destroys  int64
}

// Handler counts one event.
func (m *TourMetrics) Handler(ev Event) {
	switch ev.Type {
	case EventShow:
		m.shows.Add(1)
	case EventHide:
		m.hides.Add(1)
	case EventCancel:
		m.cancels.Add(1)
	case EventComplete:
		m.completes.Add(1)
	case EventDestroy:
		m.destroys.Add(1)
	}
}

// Snapshot returns the current counters.
func (m *TourMetrics) Snapshot() TourMetricsSnapshot {
	return TourMetricsSnapshot{
		Shows:     m.shows.Load(),
		Hides:     m.hides.Load(),
		Cancels:   m.cancels.Load(),
		Completes: m.completes.Load(),
		Destroys:  m.destroys.Load(),
	}
}
