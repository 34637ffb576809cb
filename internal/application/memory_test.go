package application

import (
	"context"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

// memUnit commits the operations staged by memRepo instances in the batch carried by ctx.
type memUnit struct {
	fail  error
	saves int
}

type memBatchKey struct{ unit *memUnit }

type memBatch struct {
	ops []func() error
}

func (u *memUnit) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, memBatchKey{u}, &memBatch{})
}

func (u *memUnit) stage(ctx context.Context, op func() error) error {
	b, ok := ctx.Value(memBatchKey{u}).(*memBatch)
	if !ok {
		return domain.ErrNoUnitOfWork
	}
	b.ops = append(b.ops, op)
	return nil
}

func (u *memUnit) SaveChanges(ctx context.Context) error {
	b, ok := ctx.Value(memBatchKey{u}).(*memBatch)
	if !ok {
		return nil
	}
	staged := b.ops
	b.ops = nil
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.fail != nil {
		return u.fail
	}
	for _, op := range staged {
		if err := op(); err != nil {
			return err
		}
	}
	u.saves++
	return nil
}

type memRepo[E any, K comparable] struct {
	uow  *memUnit
	rows []E
	key  func(*E) K
	// setID assigns a generated key on insert. Nil for natural keys.
	setID func(*E, int)
	next  int
}

func newMemRepo[E any, K comparable](uow *memUnit, key func(*E) K, setID func(*E, int), rows ...E) *memRepo[E, K] {
	return &memRepo[E, K]{uow: uow, rows: rows, key: key, setID: setID, next: len(rows)}
}

func (r *memRepo[E, K]) index(key K) int {
	for i := range r.rows {
		if r.key(&r.rows[i]) == key {
			return i
		}
	}
	return -1
}

func (r *memRepo[E, K]) GetByID(ctx context.Context, key K) (E, error) {
	var zero E
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	i := r.index(key)
	if i < 0 {
		return zero, domain.ErrNotFound
	}
	return r.rows[i], nil
}

func (r *memRepo[E, K]) Query() query.Source[E] {
	return query.Slice(append([]E(nil), r.rows...))
}

func (r *memRepo[E, K]) Exists(ctx context.Context, key K) (bool, error) {
	return r.index(key) >= 0, ctx.Err()
}

func (r *memRepo[E, K]) Add(ctx context.Context, entity *E) error {
	return r.uow.stage(ctx, func() error {
		if r.setID != nil {
			r.next++
			r.setID(entity, r.next)
		}
		if r.index(r.key(entity)) >= 0 {
			return domain.ErrDuplicate
		}
		r.rows = append(r.rows, *entity)
		return nil
	})
}

func (r *memRepo[E, K]) Update(ctx context.Context, entity *E) error {
	return r.uow.stage(ctx, func() error {
		if i := r.index(r.key(entity)); i >= 0 {
			r.rows[i] = *entity
		}
		return nil
	})
}

func (r *memRepo[E, K]) Remove(ctx context.Context, entity *E) error {
	return r.uow.stage(ctx, func() error {
		if i := r.index(r.key(entity)); i >= 0 {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
		}
		return nil
	})
}

func ptr[T any](v T) *T { return &v }
