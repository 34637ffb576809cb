package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
	"go.uber.org/zap"
)

// Runtime carries the ambient dependencies shared by every service.
type Runtime struct {
	Logger *zap.Logger
	Now    func() time.Time
}

func (r Runtime) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r Runtime) now() time.Time {
	if r.Now == nil {
		return time.Now().UTC()
	}
	return r.Now().UTC()
}

// lookupFailed records a reference lookup that failed after a committed write. The write
// stands and the DTO is returned without the looked-up names.
func (r Runtime) lookupFailed(entity string, err error) {
	r.logger().Warn("reference lookup failed after write", zap.String("entity", entity), zap.Error(err))
}

type readOptions struct {
	excludeDeleted bool
}

type ReadOption func(*readOptions)

// ExcludeDeleted makes single-row reads treat soft-deleted rows as absent.
func ExcludeDeleted() ReadOption {
	return func(o *readOptions) { o.excludeDeleted = true }
}

// ReadService serves paged lists and single-row reads of one entity type.
type ReadService[E any, D any, Q query.Parameterized, K comparable] struct {
	name     string
	repo     domain.Repository[E, K]
	schema   *query.Schema[E]
	fields   *query.Descriptor[Q]
	project  func(E) D
	defaults []query.Ordering[E]
	rt       Runtime
}

func NewReadService[E any, D any, Q query.Parameterized, K comparable](
	name string,
	repo domain.Repository[E, K],
	schema *query.Schema[E],
	fields *query.Descriptor[Q],
	project func(E) D,
	rt Runtime,
) *ReadService[E, D, Q, K] {
	return &ReadService[E, D, Q, K]{
		name:    name,
		repo:    repo,
		schema:  schema,
		fields:  fields,
		project: project,
		rt:      rt,
	}
}

// OrderByDefault sets the ordering used when a request leaves SortBy blank.
func (s *ReadService[E, D, Q, K]) OrderByDefault(orders ...query.Ordering[E]) {
	s.defaults = orders
}

func (s *ReadService[E, D, Q, K]) Name() string { return s.name }

func (s *ReadService[E, D, Q, K]) Descriptor() *query.Descriptor[Q] { return s.fields }

// Source applies filter, search and sort for params to the repository query.
func (s *ReadService[E, D, Q, K]) Source(params *Q) (query.Source[E], error) {
	src, err := query.Apply(s.repo.Query(), s.fields, s.schema, params)
	if err != nil {
		return nil, err
	}

	p := (*params).Params()
	if strings.TrimSpace(p.SortBy) == "" {
		for _, o := range s.defaults {
			src = src.OrderBy(o)
		}
	}
	if p.ExcludeDeleted {
		if flag, ok := s.schema.Field("IsDeleted"); ok {
			live, err := query.Equal(flag, false)
			if err != nil {
				return nil, err
			}
			src = src.Where(live)
		}
	}
	return src, nil
}

func (s *ReadService[E, D, Q, K]) GetAll(ctx context.Context, params Q) (query.PagedResult[D], error) {
	src, err := s.Source(&params)
	if err != nil {
		return query.PagedResult[D]{}, err
	}
	return s.Page(ctx, src, params.Params())
}

// Page counts and slices an already composed source.
func (s *ReadService[E, D, Q, K]) Page(ctx context.Context, src query.Source[E], p query.Parameters) (query.PagedResult[D], error) {
	page, err := query.Paginate(ctx, src, p, s.project)
	if err != nil {
		return query.PagedResult[D]{}, domain.ClassifyStorageError(s.name, err)
	}
	s.rt.logger().Debug("list",
		zap.String("entity", s.name),
		zap.Int("page", page.PageNumber),
		zap.Int("size", page.PageSize),
		zap.Int64("total", page.TotalCount),
	)
	return page, nil
}

func (s *ReadService[E, D, Q, K]) GetByID(ctx context.Context, key K, opts ...ReadOption) (*D, error) {
	entity, err := s.find(ctx, key, opts...)
	if err != nil || entity == nil {
		return nil, err
	}
	dto := s.project(*entity)
	return &dto, nil
}

func (s *ReadService[E, D, Q, K]) find(ctx context.Context, key K, opts ...ReadOption) (*E, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	entity, err := s.repo.GetByID(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.ClassifyStorageError(s.name, err)
	}
	if o.excludeDeleted {
		if sd, ok := any(&entity).(domain.SoftDeletable); ok && sd.Deleted() {
			return nil, nil
		}
	}
	return &entity, nil
}

// CrudService adds create, update and delete to ReadService. Each write begins its own batch
// on the unit of work, stages on the repository and commits.
type CrudService[E any, D any, C any, U any, Q query.Parameterized, K comparable] struct {
	*ReadService[E, D, Q, K]
	uow    domain.UnitOfWork
	mapper Mapper[E, D, C, U]
}

func NewCrudService[E any, D any, C any, U any, Q query.Parameterized, K comparable](
	name string,
	repo domain.Repository[E, K],
	uow domain.UnitOfWork,
	mapper Mapper[E, D, C, U],
	schema *query.Schema[E],
	fields *query.Descriptor[Q],
	rt Runtime,
) *CrudService[E, D, C, U, Q, K] {
	return &CrudService[E, D, C, U, Q, K]{
		ReadService: NewReadService(name, repo, schema, fields, mapper.ToDTO, rt),
		uow:         uow,
		mapper:      mapper,
	}
}

func (s *CrudService[E, D, C, U, Q, K]) Create(ctx context.Context, in C) (D, error) {
	entity := s.mapper.FromCreate(in)
	if st, ok := any(&entity).(domain.Stamped); ok {
		st.StampCreated(s.rt.now())
	}

	ctx = s.uow.Begin(ctx)
	if err := s.repo.Add(ctx, &entity); err != nil {
		var zero D
		return zero, domain.ClassifyStorageError(s.name, err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		var zero D
		return zero, domain.ClassifyStorageError(s.name, err)
	}

	s.rt.logger().Info("created", zap.String("entity", s.name))
	return s.mapper.ToDTO(entity), nil
}

// Update applies the fields present in `in` and returns nil when key does not exist.
func (s *CrudService[E, D, C, U, Q, K]) Update(ctx context.Context, key K, in U) (*D, error) {
	entity, err := s.find(ctx, key)
	if err != nil || entity == nil {
		return nil, err
	}

	s.mapper.Merge(entity, in)
	if st, ok := any(entity).(domain.Stamped); ok {
		st.StampUpdated(s.rt.now())
	}

	ctx = s.uow.Begin(ctx)
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, domain.ClassifyStorageError(s.name, err)
	}
	if err := s.uow.SaveChanges(ctx); err != nil {
		return nil, domain.ClassifyStorageError(s.name, err)
	}

	s.rt.logger().Info("updated", zap.String("entity", s.name), zap.Any("key", key))
	dto := s.mapper.ToDTO(*entity)
	return &dto, nil
}

// Delete flags soft-deletable entities and removes the rest. It reports false when key does
// not exist.
func (s *CrudService[E, D, C, U, Q, K]) Delete(ctx context.Context, key K) (bool, error) {
	entity, err := s.find(ctx, key)
	if err != nil || entity == nil {
		return false, err
	}

	ctx = s.uow.Begin(ctx)
	soft := false
	if sd, ok := any(entity).(domain.SoftDeletable); ok {
		soft = true
		sd.MarkDeleted()
		if st, ok := any(entity).(domain.Stamped); ok {
			st.StampUpdated(s.rt.now())
		}
		err = s.repo.Update(ctx, entity)
	} else {
		err = s.repo.Remove(ctx, entity)
	}
	if err != nil {
		return false, domain.ClassifyStorageError(s.name, err)
	}

	if err := s.uow.SaveChanges(ctx); err != nil {
		return false, domain.ClassifyStorageError(s.name, err)
	}

	s.rt.logger().Info("deleted", zap.String("entity", s.name), zap.Any("key", key), zap.Bool("soft", soft))
	return true, nil
}
