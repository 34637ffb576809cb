package query

import (
	"context"
	"math"
	"sort"
)

// Source is an immutable, chainable query over one entity type. Conditions added with Where are
// ANDed and orderings added with OrderBy apply in sequence.
type Source[E any] interface {
	Where(p Predicate[E]) Source[E]
	OrderBy(o Ordering[E]) Source[E]
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, offset, limit int) ([]E, error)
}

// Apply narrows src by the request's filter and search predicates and orders it by SortBy.
func Apply[E any, Q Parameterized](src Source[E], d *Descriptor[Q], s *Schema[E], params *Q) (Source[E], error) {
	filter, err := BuildFilter(d, s, params)
	if err != nil {
		return nil, err
	}
	if filter != nil {
		src = src.Where(filter)
	}
	if search := BuildSearch(d, s, params); search != nil {
		src = src.Where(search)
	}

	order, err := ResolveSort(d, s, params)
	if err != nil {
		return nil, err
	}
	if order != nil {
		src = src.OrderBy(*order)
	}
	return src, nil
}

// PagedResult is one page of a filtered, sorted and counted result set.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

func NewPagedResult[T any](items []T, totalCount int64, pageNumber, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if pageSize > 0 {
		pages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}

// Paginate counts src, then fetches and projects the page selected by p.
func Paginate[E, D any](ctx context.Context, src Source[E], p Parameters, project func(E) D) (PagedResult[D], error) {
	total, err := src.Count(ctx)
	if err != nil {
		return PagedResult[D]{}, err
	}

	rows, err := src.Fetch(ctx, p.Offset(), p.Size())
	if err != nil {
		return PagedResult[D]{}, err
	}

	items := make([]D, 0, len(rows))
	for _, row := range rows {
		items = append(items, project(row))
	}
	return NewPagedResult(items, total, p.Page(), p.Size()), nil
}

type sliceSource[E any] struct {
	items []E
	where []Predicate[E]
	order []Ordering[E]
}

// Slice serves rows from memory, interpreting predicates with Match.
func Slice[E any](items []E) Source[E] {
	return &sliceSource[E]{items: items}
}

func (s *sliceSource[E]) Where(p Predicate[E]) Source[E] {
	next := *s
	next.where = append(append([]Predicate[E]{}, s.where...), p)
	return &next
}

func (s *sliceSource[E]) OrderBy(o Ordering[E]) Source[E] {
	next := *s
	next.order = append(append([]Ordering[E]{}, s.order...), o)
	return &next
}

func (s *sliceSource[E]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(len(s.matching())), nil
}

func (s *sliceSource[E]) Fetch(ctx context.Context, offset, limit int) ([]E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := s.matching()
	if len(s.order) > 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			for _, o := range s.order {
				a, aok := o.Field.Value(&rows[i])
				b, bok := o.Field.Value(&rows[j])
				c := compareValues(o.Field.Kind, a, aok, b, bok)
				if c == 0 {
					continue
				}
				if o.Descending {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if offset >= len(rows) {
		return []E{}, nil
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end], nil
}

func (s *sliceSource[E]) matching() []E {
	out := make([]E, 0, len(s.items))
	for i := range s.items {
		keep := true
		for _, p := range s.where {
			if !p.Match(&s.items[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, s.items[i])
		}
	}
	return out
}
