package activity

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("activity not found")

type FindParams struct {
	OrganizationID int64 // 0 means all organizations
	Limit          int
	Offset         int
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (Activity, error)
	List(ctx context.Context, params *FindParams) ([]Activity, error)
	Create(ctx context.Context, a Activity) (Activity, error)
	Update(ctx context.Context, a Activity) (Activity, error)
}
