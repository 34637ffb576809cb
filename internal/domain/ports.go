package domain

import (
	"context"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

// Repository is the persistence port for one entity type. Add, Update and Remove only stage
// changes on the unit of work begun in ctx; they are written by its SaveChanges.
type Repository[E any, K comparable] interface {
	GetByID(ctx context.Context, key K) (E, error)
	Query() query.Source[E]
	Exists(ctx context.Context, key K) (bool, error)
	Add(ctx context.Context, entity *E) error
	Update(ctx context.Context, entity *E) error
	Remove(ctx context.Context, entity *E) error
}

// UnitOfWork scopes staged writes to one operation. Begin returns a context carrying a fresh
// batch, and SaveChanges commits only the batch carried by its ctx.
type UnitOfWork interface {
	Begin(ctx context.Context) context.Context
	SaveChanges(ctx context.Context) error
}
