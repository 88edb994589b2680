package persistence

import (
	"context"
	"errors"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/area"
	"github.com/siviack/portal/pkg/composables"
)

type AreaRepository struct{}

func NewAreaRepository() area.Repository {
	return &AreaRepository{}
}

func (r *AreaRepository) GetByCode(ctx context.Context, organizationID int64, code string) (area.Area, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return area.Area{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, empresa_id, codigo, nombre
FROM areas
WHERE empresa_id = $1 AND codigo = $2
LIMIT 1
`, organizationID, strings.TrimSpace(code))
	return scanArea(row)
}

func (r *AreaRepository) ListByOrganization(ctx context.Context, organizationID int64) ([]area.Area, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, empresa_id, codigo, nombre
FROM areas
WHERE empresa_id = $1
ORDER BY codigo ASC
`, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]area.Area, 0, 16)
	for rows.Next() {
		a, err := scanArea(rows)
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

func (r *AreaRepository) Create(ctx context.Context, a area.Area) (area.Area, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return area.Area{}, err
	}

	var id int64
	if err := tx.QueryRow(ctx, `
INSERT INTO areas (empresa_id, codigo, nombre)
VALUES ($1, $2, $3)
RETURNING id
`, a.OrganizationID(), a.Code(), a.Name()).Scan(&id); err != nil {
		return area.Area{}, gerrors.Wrap(err, "insert areas")
	}

	return area.Hydrate(id, a.OrganizationID(), a.Code(), a.Name()), nil
}

func scanArea(row pgx.Row) (area.Area, error) {
	var (
		id             int64
		organizationID int64
		code           string
		name           string
	)
	if err := row.Scan(&id, &organizationID, &code, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return area.Area{}, area.ErrNotFound
		}
		return area.Area{}, err
	}
	return area.Hydrate(id, organizationID, code, name), nil
}
