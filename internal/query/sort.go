package query

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// Ordering sorts by one entity field.
type Ordering[E any] struct {
	Field      EntityField[E]
	Descending bool
}

func Asc[E any](field EntityField[E]) Ordering[E]  { return Ordering[E]{Field: field} }
func Desc[E any](field EntityField[E]) Ordering[E] { return Ordering[E]{Field: field, Descending: true} }

// ResolveSort validates SortBy against the sortable allow-list. It returns nil when SortBy is blank.
func ResolveSort[E any, Q Parameterized](d *Descriptor[Q], s *Schema[E], params *Q) (*Ordering[E], error) {
	p := (*params).Params()
	sortBy := strings.TrimSpace(p.SortBy)
	if sortBy == "" {
		return nil, nil
	}

	allowed := d.SortableFields()
	target := ""
	for _, name := range allowed {
		if strings.EqualFold(name, sortBy) {
			target = name
			break
		}
	}
	if target == "" {
		return nil, NewFilterValidationError("sortBy",
			fmt.Sprintf("Field '%s' is not sortable. Allowed fields: %s", sortBy, strings.Join(allowed, ", ")))
	}

	field, ok := s.Field(target)
	if !ok {
		return nil, NewFilterValidationError("sortBy",
			fmt.Sprintf("Property '%s' not found on entity type '%s'", target, s.Name()))
	}
	return &Ordering[E]{Field: field, Descending: p.Descending()}, nil
}

// compareValues orders two field values of the same kind. Absent values sort first.
func compareValues(kind Kind, a any, aok bool, b any, bok bool) int {
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	switch kind {
	case KindString:
		return strings.Compare(a.(string), b.(string))
	case KindInt:
		return cmp.Compare(a.(int64), b.(int64))
	case KindFloat:
		return cmp.Compare(a.(float64), b.(float64))
	case KindTime:
		return a.(time.Time).Compare(b.(time.Time))
	case KindBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	}
	return 0
}
