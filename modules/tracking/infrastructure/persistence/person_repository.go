package persistence

import (
	"context"
	"errors"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/siviack/portal/modules/tracking/domain/aggregates/person"
	"github.com/siviack/portal/pkg/composables"
)

type PersonRepository struct{}

func NewPersonRepository() person.Repository {
	return &PersonRepository{}
}

func (r *PersonRepository) GetByFullName(ctx context.Context, fullName string) (person.Person, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return person.Person{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, nombre_completo, email, password_hash, rol, empresa_id
FROM usuarios
WHERE nombre_completo = $1
LIMIT 1
`, strings.TrimSpace(fullName))
	return scanPerson(row)
}

func (r *PersonRepository) GetByEmail(ctx context.Context, email string) (person.Person, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return person.Person{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT id, nombre_completo, email, password_hash, rol, empresa_id
FROM usuarios
WHERE lower(email) = lower($1)
LIMIT 1
`, strings.TrimSpace(email))
	return scanPerson(row)
}

func (r *PersonRepository) Create(ctx context.Context, p person.Person) (person.Person, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return person.Person{}, err
	}

	var id int64
	if err := tx.QueryRow(ctx, `
INSERT INTO usuarios (nombre_completo, email, password_hash, rol, empresa_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, p.FullName(), p.Email(), p.PasswordHash(), string(p.Role()), pgInt8(p.OrganizationID())).Scan(&id); err != nil {
		return person.Person{}, gerrors.Wrap(err, "insert usuarios")
	}

	return person.Hydrate(id, p.FullName(), p.Email(), p.PasswordHash(), p.Role(), p.OrganizationID()), nil
}

func scanPerson(row pgx.Row) (person.Person, error) {
	var (
		id           int64
		fullName     string
		email        string
		passwordHash string
		role         string
		orgID        pgtype.Int8
	)
	if err := row.Scan(&id, &fullName, &email, &passwordHash, &role, &orgID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrNotFound
		}
		return person.Person{}, err
	}
	return person.Hydrate(id, fullName, email, passwordHash, person.Role(role), fromPgInt8(orgID)), nil
}
