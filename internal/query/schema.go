package query

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the underlying type of an entity field, nullability unwrapped.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// EntityField is one registered field of an entity. Values returned by the accessor are
// normalized to string, int64, float64, bool or time.Time.
type EntityField[E any] struct {
	Name   string
	Column string
	Kind   Kind
	get    func(*E) (any, bool)
}

// Value reads the field from e. The second result is false for a nil nullable field.
func (f EntityField[E]) Value(e *E) (any, bool) {
	return f.get(e)
}

// Schema is the static field table of an entity type.
type Schema[E any] struct {
	name   string
	fields []EntityField[E]
	index  map[string]int
}

func NewSchema[E any](name string) *Schema[E] {
	return &Schema[E]{name: name, index: map[string]int{}}
}

func (s *Schema[E]) Name() string { return s.name }

// Field looks a field up by case-insensitive name.
func (s *Schema[E]) Field(name string) (EntityField[E], bool) {
	i, ok := s.index[strings.ToLower(name)]
	if !ok {
		return EntityField[E]{}, false
	}
	return s.fields[i], true
}

// MustField is Field for names known at compile time.
func (s *Schema[E]) MustField(name string) EntityField[E] {
	f, ok := s.Field(name)
	if !ok {
		panic(fmt.Sprintf("query: %s has no field %q", s.name, name))
	}
	return f
}

func (s *Schema[E]) Fields() []EntityField[E] {
	out := make([]EntityField[E], len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema[E]) add(name, column string, kind Kind, get func(*E) (any, bool)) *Schema[E] {
	key := strings.ToLower(name)
	if _, dup := s.index[key]; dup {
		panic(fmt.Sprintf("query: %s registers field %q twice", s.name, name))
	}
	s.index[key] = len(s.fields)
	s.fields = append(s.fields, EntityField[E]{Name: name, Column: column, Kind: kind, get: get})
	return s
}

func (s *Schema[E]) String(name, column string, get func(*E) string) *Schema[E] {
	return s.add(name, column, KindString, func(e *E) (any, bool) { return get(e), true })
}

func (s *Schema[E]) NullableString(name, column string, get func(*E) *string) *Schema[E] {
	return s.add(name, column, KindString, func(e *E) (any, bool) {
		if v := get(e); v != nil {
			return *v, true
		}
		return nil, false
	})
}

func (s *Schema[E]) Int(name, column string, get func(*E) int) *Schema[E] {
	return s.add(name, column, KindInt, func(e *E) (any, bool) { return int64(get(e)), true })
}

func (s *Schema[E]) NullableInt(name, column string, get func(*E) *int) *Schema[E] {
	return s.add(name, column, KindInt, func(e *E) (any, bool) {
		if v := get(e); v != nil {
			return int64(*v), true
		}
		return nil, false
	})
}

func (s *Schema[E]) Float(name, column string, get func(*E) float64) *Schema[E] {
	return s.add(name, column, KindFloat, func(e *E) (any, bool) { return get(e), true })
}

func (s *Schema[E]) NullableFloat(name, column string, get func(*E) *float64) *Schema[E] {
	return s.add(name, column, KindFloat, func(e *E) (any, bool) {
		if v := get(e); v != nil {
			return *v, true
		}
		return nil, false
	})
}

func (s *Schema[E]) Bool(name, column string, get func(*E) bool) *Schema[E] {
	return s.add(name, column, KindBool, func(e *E) (any, bool) { return get(e), true })
}

func (s *Schema[E]) NullableBool(name, column string, get func(*E) *bool) *Schema[E] {
	return s.add(name, column, KindBool, func(e *E) (any, bool) {
		if v := get(e); v != nil {
			return *v, true
		}
		return nil, false
	})
}

func (s *Schema[E]) Time(name, column string, get func(*E) time.Time) *Schema[E] {
	return s.add(name, column, KindTime, func(e *E) (any, bool) { return get(e), true })
}

func (s *Schema[E]) NullableTime(name, column string, get func(*E) *time.Time) *Schema[E] {
	return s.add(name, column, KindTime, func(e *E) (any, bool) {
		if v := get(e); v != nil {
			return *v, true
		}
		return nil, false
	})
}
