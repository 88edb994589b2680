package importer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/activity"
	"github.com/siviack/portal/modules/tracking/domain/aggregates/organization"
)

// Skip reasons for row-level business rejections.
const (
	SkipNoDescription = "no description"
	SkipNoAreaCode    = "no area code"
	SkipAreaResolve   = "area resolution failed"
)

// RowProcessor turns one raw row plus a resolved organization into an
// activity draft ready to persist, or a skip verdict with a reason.
type RowProcessor struct {
	resolver *Resolver
}

func NewRowProcessor(resolver *Resolver) *RowProcessor {
	return &RowProcessor{resolver: resolver}
}

// Process applies the row pipeline: description gate, area gate, dimension
// resolution, field normalization, draft assembly. A non-empty skip reason
// means the row was rejected on business grounds; err is reserved for
// infrastructure failures that must abort the run.
func (p *RowProcessor) Process(ctx context.Context, org organization.Organization, row Row) (activity.Activity, string, error) {
	description := row.GetString(ColDescription)
	if description == "" {
		return activity.Activity{}, SkipNoDescription, nil
	}

	code := row.GetString(ColAreaCode)
	if code == "" {
		return activity.Activity{}, SkipNoAreaCode, nil
	}

	resolvedArea, err := p.resolver.ResolveArea(ctx, org, code)
	if err != nil {
		// A lost get-or-create race surfaces here as a constraint violation;
		// the row is skipped, the run continues.
		return activity.Activity{}, SkipAreaResolve, nil
	}

	responsible, err := p.resolver.ResolvePerson(ctx, row.GetString(ColResponsible), org, row.Ordinal)
	if err != nil {
		return activity.Activity{}, "", err
	}

	originDate := optionalDate(row.Get(ColOriginDate))
	committedDate := optionalDate(row.Get(ColCommittedDate))
	deliveredDate := optionalDate(row.Get(ColDeliveredDate))
	progress := decimal.NewFromFloat(NormalizePercent(row.Get(ColProgress)))
	status := NormalizeStatus(row.Get(ColStatus))

	responsibleID := responsible.ID()
	draft := activity.New(
		org.ID(),
		resolvedArea.ID(),
		&responsibleID,
		description,
		originDate,
		committedDate,
		deliveredDate,
		progress,
		status,
		// evidence and notes pass through verbatim
		cellString(row.Get(ColEvidence)),
		cellString(row.Get(ColNotes)),
	)
	return draft, "", nil
}

func optionalDate(raw any) *time.Time {
	t, ok := NormalizeDate(raw)
	if !ok {
		return nil
	}
	return &t
}
