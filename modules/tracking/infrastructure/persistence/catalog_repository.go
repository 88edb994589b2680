package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/siviack/portal/modules/tracking/domain/entities/catalog"
	"github.com/siviack/portal/pkg/composables"
)

type CatalogRepository struct{}

func NewCatalogRepository() catalog.Repository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) EnsureValue(ctx context.Context, v catalog.Value) (catalog.Value, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return catalog.Value{}, err
	}

	var id int64
	err = tx.QueryRow(ctx, `
SELECT id FROM catalogos WHERE tipo = $1 AND nombre = $2 LIMIT 1
`, string(v.Kind()), v.Name()).Scan(&id)
	if err == nil {
		return catalog.Hydrate(id, v.Kind(), v.Name()), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return catalog.Value{}, err
	}

	if err := tx.QueryRow(ctx, `
INSERT INTO catalogos (tipo, nombre)
VALUES ($1, $2)
RETURNING id
`, string(v.Kind()), v.Name()).Scan(&id); err != nil {
		return catalog.Value{}, gerrors.Wrap(err, "insert catalogos")
	}
	return catalog.Hydrate(id, v.Kind(), v.Name()), nil
}

func (r *CatalogRepository) ListByKind(ctx context.Context, kind catalog.Kind) ([]catalog.Value, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, tipo, nombre
FROM catalogos
WHERE tipo = $1
ORDER BY nombre ASC
`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Value, 0, 8)
	for rows.Next() {
		var (
			id   int64
			k    string
			name string
		)
		if err := rows.Scan(&id, &k, &name); err != nil {
			return nil, err
		}
		out = append(out, catalog.Hydrate(id, catalog.Kind(k), name))
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
