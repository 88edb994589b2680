package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/activity"
	"github.com/siviack/portal/pkg/composables"
)

// RunState tracks where a run is in its lifecycle. Aborted is reachable only
// through an infrastructure failure; business skips never leave
// StateProcessingRows.
type RunState string

const (
	StateNotStarted     RunState = "not_started"
	StateReadingSource  RunState = "reading_source"
	StateProcessingRows RunState = "processing_rows"
	StateCommitting     RunState = "committing"
	StateCompleted      RunState = "completed"
	StateAborted        RunState = "aborted"
)

// Config is the per-run configuration, injected at invocation time.
type Config struct {
	DefaultOrgName string
	DefaultOrgRUC  string
}

// Importer drives one batch run: read the extract, process rows
// sequentially, persist facts, commit once, report the summary.
type Importer struct {
	source     TabularSource
	resolver   *Resolver
	processor  *RowProcessor
	activities activity.Repository
	sink       AuditSink
	log        *logrus.Logger
	cfg        Config

	// inTx wraps the whole run; defaults to a real database transaction
	inTx  func(context.Context, func(context.Context) error) error
	state RunState
}

func New(
	source TabularSource,
	resolver *Resolver,
	activities activity.Repository,
	sink AuditSink,
	log *logrus.Logger,
	cfg Config,
) *Importer {
	return &Importer{
		source:     source,
		resolver:   resolver,
		processor:  NewRowProcessor(resolver),
		activities: activities,
		sink:       sink,
		log:        log,
		cfg:        cfg,
		inTx:       composables.InTx,
		state:      StateNotStarted,
	}
}

func (imp *Importer) State() RunState {
	return imp.state
}

// Run executes one import inside a single transaction. Dimension creations
// flush immediately so later rows in the run observe them; activity facts
// and the final tallies commit together at the end. Row-level rejections are
// counted and logged, never fatal; any infrastructure error rolls everything
// back and aborts the run.
func (imp *Importer) Run(ctx context.Context) (Summary, error) {
	runID := uuid.New()
	log := imp.log.WithField("run_id", runID)

	summary := Summary{RunID: runID}
	imp.state = StateReadingSource

	err := imp.inTx(ctx, func(txCtx context.Context) error {
		org, err := imp.resolver.ResolveOrganization(txCtx, imp.cfg.DefaultOrgName, imp.cfg.DefaultOrgRUC)
		if err != nil {
			return err
		}

		rows, err := imp.source.Rows(txCtx)
		if err != nil {
			return err
		}
		summary.RowsRead = len(rows)
		log.WithField("rows", len(rows)).Info("source read")

		imp.state = StateProcessingRows
		for _, row := range rows {
			// cancellation discards the open transaction; a partial import
			// is worse than none
			if err := txCtx.Err(); err != nil {
				return err
			}

			// structural pre-filter: rows with no usable description are
			// dropped before business processing
			if isBlank(row.Get(ColDescription)) {
				summary.RowsSkipped++
				continue
			}

			draft, skip, err := imp.processor.Process(txCtx, org, row)
			if err != nil {
				return err
			}
			if skip != "" {
				summary.RowsSkipped++
				log.WithFields(logrus.Fields{
					"row":    row.Ordinal,
					"reason": skip,
				}).Debug("row skipped")
				continue
			}

			if _, err := imp.activities.Create(txCtx, draft); err != nil {
				return err
			}
			summary.RowsImported++
		}

		imp.state = StateCommitting
		return nil
	})
	if err != nil {
		imp.state = StateAborted
		summary.Error = err.Error()
		log.WithError(err).Error("import aborted")
		imp.sink.RunCompleted(ctx, summary)
		return summary, err
	}

	imp.state = StateCompleted
	log.WithFields(logrus.Fields{
		"read":     summary.RowsRead,
		"imported": summary.RowsImported,
		"skipped":  summary.RowsSkipped,
	}).Info("import completed")
	imp.sink.RunCompleted(ctx, summary)
	return summary, nil
}
