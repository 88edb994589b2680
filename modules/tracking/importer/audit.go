package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/siviack/portal/pkg/eventbus"
)

// Summary is the end-of-run tally. RowsRead is rows after the header block,
// before any filtering; RowsImported + RowsSkipped == RowsRead on a
// completed run.
type Summary struct {
	RunID        uuid.UUID `json:"runId"`
	RowsRead     int       `json:"rowsRead"`
	RowsImported int       `json:"rowsImported"`
	RowsSkipped  int       `json:"rowsSkipped"`
	Error        string    `json:"error,omitempty"`
}

// AuditSink receives the outcome of a run after it has settled, whether
// committed or rolled back.
type AuditSink interface {
	RunCompleted(ctx context.Context, summary Summary)
}

type logSink struct {
	log *logrus.Logger
}

// NewLogSink records run outcomes as structured log entries.
func NewLogSink(log *logrus.Logger) AuditSink {
	return &logSink{log: log}
}

func (s *logSink) RunCompleted(_ context.Context, summary Summary) {
	entry := s.log.WithFields(logrus.Fields{
		"run_id":   summary.RunID,
		"read":     summary.RowsRead,
		"imported": summary.RowsImported,
		"skipped":  summary.RowsSkipped,
	})
	if summary.Error != "" {
		entry.WithField("error", summary.Error).Warn("import run aborted")
		return
	}
	entry.Info("import run recorded")
}

// ImportCompletedEvent is published on the bus after every run.
type ImportCompletedEvent struct {
	Summary Summary
}

type eventSink struct {
	bus eventbus.EventBus
}

// NewEventSink publishes run outcomes to the event bus so other modules can
// react without the importer knowing about them.
func NewEventSink(bus eventbus.EventBus) AuditSink {
	return &eventSink{bus: bus}
}

func (s *eventSink) RunCompleted(_ context.Context, summary Summary) {
	s.bus.Publish(&ImportCompletedEvent{Summary: summary})
}

type multiSink struct {
	sinks []AuditSink
}

// MultiSink fans a run outcome out to several sinks in order.
func MultiSink(sinks ...AuditSink) AuditSink {
	return &multiSink{sinks: sinks}
}

func (s *multiSink) RunCompleted(ctx context.Context, summary Summary) {
	for _, sink := range s.sinks {
		sink.RunCompleted(ctx, summary)
	}
}
