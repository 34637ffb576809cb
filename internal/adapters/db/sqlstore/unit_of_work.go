package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"gorm.io/gorm"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// UnitOfWork commits the writes staged by repositories in one transaction. Staged writes live
// in a batch carried by the context returned from Begin; SaveChanges only sees that batch.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

type batchKey struct{ uow *UnitOfWork }

type batch struct {
	mu  sync.Mutex
	ops []func(tx *gorm.DB) error
}

// Begin returns a context carrying a fresh, empty batch for this unit of work.
func (u *UnitOfWork) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, batchKey{u}, &batch{})
}

func (u *UnitOfWork) current(ctx context.Context) *batch {
	b, _ := ctx.Value(batchKey{u}).(*batch)
	return b
}

func (u *UnitOfWork) stage(ctx context.Context, op func(tx *gorm.DB) error) error {
	b := u.current(ctx)
	if b == nil {
		return domain.ErrNoUnitOfWork
	}
	b.mu.Lock()
	b.ops = append(b.ops, op)
	b.mu.Unlock()
	return nil
}

// SaveChanges runs the writes staged in ctx's batch, in order. The batch is emptied whether
// or not the transaction commits.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	b := u.current(ctx)
	if b == nil {
		return nil
	}
	b.mu.Lock()
	staged := b.ops
	b.ops = nil
	b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if len(staged) == 0 {
		return nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range staged {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return err
}
