package organization

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("organization not found")

type Repository interface {
	GetByID(ctx context.Context, id int64) (Organization, error)
	GetByName(ctx context.Context, name string) (Organization, error)
	Create(ctx context.Context, o Organization) (Organization, error)
	List(ctx context.Context) ([]Organization, error)
}
