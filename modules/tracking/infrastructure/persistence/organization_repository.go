package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/organization"
	"github.com/siviack/portal/pkg/composables"
)

type OrganizationRepository struct{}

func NewOrganizationRepository() organization.Repository {
	return &OrganizationRepository{}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Organization{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, razon_social, ruc, activo, created_at
FROM empresas
WHERE id = $1
`, id)
	return scanOrganization(row)
}

func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Organization{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, razon_social, ruc, activo, created_at
FROM empresas
WHERE razon_social = $1
LIMIT 1
`, strings.TrimSpace(name))
	return scanOrganization(row)
}

func (r *OrganizationRepository) Create(ctx context.Context, o organization.Organization) (organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return organization.Organization{}, err
	}

	var id int64
	var createdAt time.Time
	if err := tx.QueryRow(ctx, `
INSERT INTO empresas (razon_social, ruc, activo)
VALUES ($1, $2, $3)
RETURNING id, created_at
`, o.Name(), o.RUC(), o.Active()).Scan(&id, &createdAt); err != nil {
		return organization.Organization{}, gerrors.Wrap(err, "insert empresas")
	}

	return organization.Hydrate(id, o.Name(), o.RUC(), o.Active(), createdAt), nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, razon_social, ruc, activo, created_at
FROM empresas
ORDER BY razon_social ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]organization.Organization, 0, 16)
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var (
		id        int64
		name      string
		ruc       string
		active    bool
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &ruc, &active, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return organization.Organization{}, organization.ErrNotFound
		}
		return organization.Organization{}, err
	}
	return organization.Hydrate(id, name, ruc, active, createdAt), nil
}
