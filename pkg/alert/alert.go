// Package alert surfaces transient, best-effort alerts for newly dispatched
// notifications. Sinks never retry; a failing sink is logged and skipped.
package alert

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// Alert is the transient message shown when a notification is created
type Alert struct {
	Type    model.NotificationType
	Title   string
	Message string
	From    string
}

// Alerter delivers an alert to one sink
type Alerter interface {
	Alert(ctx context.Context, a Alert) error
}

// Multi fans an alert out to every sink. Failures are logged and do not stop the others.
type Multi struct {
	sinks  []namedSink
	logger *zap.Logger
}

type namedSink struct {
	name    string
	alerter Alerter
}

// NewMulti creates an empty fan-out alerter
func NewMulti(logger *zap.Logger) *Multi {
	return &Multi{logger: logger}
}

// Add registers a sink under name (used in logs and metrics)
func (m *Multi) Add(name string, alerter Alerter) *Multi {
	m.sinks = append(m.sinks, namedSink{name: name, alerter: alerter})
	return m
}

// Len returns the number of registered sinks
func (m *Multi) Len() int {
	return len(m.sinks)
}

// Alert always returns nil: delivery is fire-and-forget
func (m *Multi) Alert(ctx context.Context, a Alert) error {
	for _, sink := range m.sinks {
		if err := sink.alerter.Alert(ctx, a); err != nil {
			alertsTotal.WithLabelValues(sink.name, string(a.Type), OutcomeFailed).Inc()
			m.logger.Warn("Alert sink failed",
				zap.String("sink", sink.name),
				zap.String("title", a.Title),
				zap.Error(err))
			continue
		}
		alertsTotal.WithLabelValues(sink.name, string(a.Type), OutcomeDelivered).Inc()
	}
	return nil
}

// Log writes alerts to the structured logger
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Alert(ctx context.Context, a Alert) error {
	l.logger.Info(a.Title,
		zap.String("type", string(a.Type)),
		zap.String("message", a.Message),
		zap.String("from", a.From))
	return nil
}

// Recorder keeps every alert in memory; handy in tests and for the HTTP surface
type Recorder struct {
	mu     sync.Mutex
	alerts []Alert
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Alert(ctx context.Context, a Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, a)
	return nil
}

// Alerts returns a copy of what has been recorded so far
func (r *Recorder) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}
