package person

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("person not found")

type Repository interface {
	GetByFullName(ctx context.Context, fullName string) (Person, error)
	GetByEmail(ctx context.Context, email string) (Person, error)
	Create(ctx context.Context, p Person) (Person, error)
}
