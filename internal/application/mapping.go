package application

import (
	"context"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

// Mapper converts between an entity and its DTOs. Merge copies only the fields present in the
// update DTO.
type Mapper[E any, D any, C any, U any] interface {
	ToDTO(entity E) D
	FromCreate(in C) E
	Merge(entity *E, in U)
}

type Mapping[E any, D any, C any, U any] struct {
	toDTO      func(E) D
	fromCreate func(C) E
	merge      func(*E, U)
}

func NewMapping[E any, D any, C any, U any](toDTO func(E) D, fromCreate func(C) E, merge func(*E, U)) *Mapping[E, D, C, U] {
	return &Mapping[E, D, C, U]{toDTO: toDTO, fromCreate: fromCreate, merge: merge}
}

func (m *Mapping[E, D, C, U]) ToDTO(entity E) D       { return m.toDTO(entity) }
func (m *Mapping[E, D, C, U]) FromCreate(in C) E      { return m.fromCreate(in) }
func (m *Mapping[E, D, C, U]) Merge(entity *E, in U) { m.merge(entity, in) }

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func assignPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func clonePtr[T any](src *T) *T {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}

// lookup loads the rows of src whose integer key is one of ids, indexed by that key.
func lookup[E any](ctx context.Context, src query.Source[E], key query.EntityField[E], ids []int) (map[int]E, error) {
	seen := make(map[int]bool, len(ids))
	terms := make([]query.Predicate[E], 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		eq, err := query.Equal(key, id)
		if err != nil {
			return nil, err
		}
		terms = append(terms, eq)
	}

	out := make(map[int]E, len(terms))
	if len(terms) == 0 {
		return out, nil
	}

	rows, err := src.Where(query.Any(terms...)).Fetch(ctx, 0, len(terms))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		v, ok := key.Value(&rows[i])
		if !ok {
			continue
		}
		out[int(v.(int64))] = rows[i]
	}
	return out, nil
}
