package persistence

import (
	"context"
	"errors"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/activity"
	"github.com/siviack/portal/pkg/composables"
)

type ActivityRepository struct{}

func NewActivityRepository() activity.Repository {
	return &ActivityRepository{}
}

const activityColumns = `
	id, empresa_id, area_id, responsable_id, descripcion,
	fecha_origen, fecha_compromiso, fecha_entrega_real,
	avance, estado, link_evidencia, observaciones, created_at
`

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (activity.Activity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return activity.Activity{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT `+activityColumns+`
FROM actividades
WHERE id = $1
`, id)
	return scanActivity(row)
}

func (r *ActivityRepository) List(ctx context.Context, params *activity.FindParams) ([]activity.Activity, error) {
	if params == nil {
		params = &activity.FindParams{}
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := tx.Query(ctx, `
SELECT `+activityColumns+`
FROM actividades
WHERE ($1 = 0 OR empresa_id = $1)
ORDER BY id ASC
OFFSET $2 LIMIT $3
`, params.OrganizationID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activity.Activity, 0, limit)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *ActivityRepository) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return activity.Activity{}, err
	}

	var id int64
	var createdAt time.Time
	if err := tx.QueryRow(ctx, `
INSERT INTO actividades (
	empresa_id, area_id, responsable_id, descripcion,
	fecha_origen, fecha_compromiso, fecha_entrega_real,
	avance, estado, link_evidencia, observaciones
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING id, created_at
`,
		a.OrganizationID(),
		a.AreaID(),
		pgInt8(a.ResponsibleID()),
		a.Description(),
		pgDate(a.OriginDate()),
		pgDate(a.CommittedDate()),
		pgDate(a.DeliveredDate()),
		a.Progress(),
		string(a.Status()),
		a.EvidenceLink(),
		a.Notes(),
	).Scan(&id, &createdAt); err != nil {
		return activity.Activity{}, gerrors.Wrap(err, "insert actividades")
	}

	return activity.Hydrate(
		id,
		a.OrganizationID(),
		a.AreaID(),
		a.ResponsibleID(),
		a.Description(),
		a.OriginDate(),
		a.CommittedDate(),
		a.DeliveredDate(),
		a.Progress(),
		a.Status(),
		a.EvidenceLink(),
		a.Notes(),
		createdAt,
	), nil
}

func (r *ActivityRepository) Update(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return activity.Activity{}, err
	}

	tag, err := tx.Exec(ctx, `
UPDATE actividades
SET estado = $2,
	avance = $3,
	link_evidencia = $4,
	fecha_entrega_real = $5,
	observaciones = $6
WHERE id = $1
`,
		a.ID(),
		string(a.Status()),
		a.Progress(),
		a.EvidenceLink(),
		pgDate(a.DeliveredDate()),
		a.Notes(),
	)
	if err != nil {
		return activity.Activity{}, gerrors.Wrap(err, "update actividades")
	}
	if tag.RowsAffected() == 0 {
		return activity.Activity{}, activity.ErrNotFound
	}
	return a, nil
}

func scanActivity(row pgx.Row) (activity.Activity, error) {
	var (
		id            int64
		orgID         int64
		areaID        int64
		responsibleID pgtype.Int8
		description   string
		originDate    pgtype.Date
		committedDate pgtype.Date
		deliveredDate pgtype.Date
		progress      decimal.Decimal
		status        string
		evidenceLink  string
		notes         string
		createdAt     time.Time
	)
	if err := row.Scan(
		&id, &orgID, &areaID, &responsibleID, &description,
		&originDate, &committedDate, &deliveredDate,
		&progress, &status, &evidenceLink, &notes, &createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.Activity{}, activity.ErrNotFound
		}
		return activity.Activity{}, err
	}
	return activity.Hydrate(
		id, orgID, areaID, fromPgInt8(responsibleID), description,
		fromPgDate(originDate), fromPgDate(committedDate), fromPgDate(deliveredDate),
		progress, activity.Status(status), evidenceLink, notes, createdAt,
	), nil
}
