package area

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("area not found")

type Repository interface {
	GetByCode(ctx context.Context, organizationID int64, code string) (Area, error)
	ListByOrganization(ctx context.Context, organizationID int64) ([]Area, error)
	Create(ctx context.Context, a Area) (Area, error)
}
