package sqlstore

import (
	"context"
	"errors"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Table binds a domain entity to its gorm model.
type Table[E any, M any, K comparable] struct {
	// Key is the primary key column.
	Key       string
	ToModel   func(*E) M
	FromModel func(*M) E
}

// Repository implements domain.Repository over one table. Writes are staged on the batch the
// unit of work began in the caller's context and reach the database on SaveChanges.
type Repository[E any, M any, K comparable] struct {
	uow   *UnitOfWork
	table Table[E, M, K]
}

func NewRepository[E any, M any, K comparable](uow *UnitOfWork, table Table[E, M, K]) *Repository[E, M, K] {
	return &Repository[E, M, K]{uow: uow, table: table}
}

func (r *Repository[E, M, K]) keyIs(key K) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: r.table.Key}, Value: key}
}

func (r *Repository[E, M, K]) GetByID(ctx context.Context, key K) (E, error) {
	var m M
	err := r.uow.db.WithContext(ctx).Where(r.keyIs(key)).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var zero E
		return zero, domain.ErrNotFound
	}
	if err != nil {
		var zero E
		return zero, err
	}
	return r.table.FromModel(&m), nil
}

func (r *Repository[E, M, K]) Exists(ctx context.Context, key K) (bool, error) {
	var n int64
	if err := r.uow.db.WithContext(ctx).Model(new(M)).Where(r.keyIs(key)).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository[E, M, K]) Query() query.Source[E] {
	return &source[E, M, K]{db: r.uow.db, table: r.table}
}

// Add stages an insert on the unit of work begun in ctx. Generated keys are written back into
// entity on commit.
func (r *Repository[E, M, K]) Add(ctx context.Context, entity *E) error {
	return r.uow.stage(ctx, func(tx *gorm.DB) error {
		m := r.table.ToModel(entity)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*entity = r.table.FromModel(&m)
		return nil
	})
}

func (r *Repository[E, M, K]) Update(ctx context.Context, entity *E) error {
	return r.uow.stage(ctx, func(tx *gorm.DB) error {
		m := r.table.ToModel(entity)
		return tx.Select("*").Updates(&m).Error
	})
}

func (r *Repository[E, M, K]) Remove(ctx context.Context, entity *E) error {
	return r.uow.stage(ctx, func(tx *gorm.DB) error {
		m := r.table.ToModel(entity)
		return tx.Delete(&m).Error
	})
}

// source is an immutable query.Source over a table. Every Count and Fetch runs its own
// statement.
type source[E any, M any, K comparable] struct {
	db     *gorm.DB
	table  Table[E, M, K]
	where  []query.Predicate[E]
	orders []query.Ordering[E]
}

func (s *source[E, M, K]) Where(p query.Predicate[E]) query.Source[E] {
	next := *s
	next.where = append(append([]query.Predicate[E]{}, s.where...), p)
	return &next
}

func (s *source[E, M, K]) OrderBy(o query.Ordering[E]) query.Source[E] {
	next := *s
	next.orders = append(append([]query.Ordering[E]{}, s.orders...), o)
	return &next
}

func (s *source[E, M, K]) build(ctx context.Context) (*gorm.DB, error) {
	tx := s.db.WithContext(ctx).Model(new(M))
	for _, p := range s.where {
		if p == nil {
			continue
		}
		expr, err := render(p)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(expr)
	}
	return tx, nil
}

func (s *source[E, M, K]) Count(ctx context.Context) (int64, error) {
	tx, err := s.build(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *source[E, M, K]) Fetch(ctx context.Context, offset, limit int) ([]E, error) {
	tx, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range s.orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field.Column}, Desc: o.Descending})
	}
	// the key breaks ties so pages never overlap
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: s.table.Key}})
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []M
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]E, 0, len(rows))
	for i := range rows {
		out = append(out, s.table.FromModel(&rows[i]))
	}
	return out, nil
}
