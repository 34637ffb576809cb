package query

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Predicate is a boolean condition over an entity. It is either a *Comparison or a *Junction.
type Predicate[E any] interface {
	Match(e *E) bool
	predicate()
}

// Comparison is a leaf: one entity field, one operator, one value already converted to the
// field's kind. String values are stored lower-cased.
type Comparison[E any] struct {
	Field EntityField[E]
	Op    Operator
	Value any
}

// Junction combines its terms with a single logic operator.
type Junction[E any] struct {
	Logic FilterLogic
	Terms []Predicate[E]
}

func (*Comparison[E]) predicate() {}
func (*Junction[E]) predicate()   {}

// Compare builds a leaf after checking the operator against the field kind and converting value.
func Compare[E any](field EntityField[E], op Operator, value any) (*Comparison[E], error) {
	switch field.Kind {
	case KindString:
		if !op.textual() {
			return nil, fmt.Errorf("Operator '%s' is not supported for type %s", op, field.Kind)
		}
	case KindBool:
		if op != Equals {
			return nil, fmt.Errorf("Operator '%s' is not supported for type %s", op, field.Kind)
		}
	default:
		if !op.ordered() {
			return nil, fmt.Errorf("Operator '%s' is not supported for type %s", op, field.Kind)
		}
	}

	converted, err := coerce(field.Kind, value)
	if err != nil {
		return nil, err
	}
	if s, ok := converted.(string); ok {
		converted = strings.ToLower(s)
	}
	return &Comparison[E]{Field: field, Op: op, Value: converted}, nil
}

// Equal is Compare with the Equals operator.
func Equal[E any](field EntityField[E], value any) (*Comparison[E], error) {
	return Compare(field, Equals, value)
}

// All ANDs the non-nil terms. It returns nil when none remain and the single term unwrapped.
func All[E any](terms ...Predicate[E]) Predicate[E] {
	return Combine(And, terms...)
}

// Any ORs the non-nil terms.
func Any[E any](terms ...Predicate[E]) Predicate[E] {
	return Combine(Or, terms...)
}

func Combine[E any](logic FilterLogic, terms ...Predicate[E]) Predicate[E] {
	kept := make([]Predicate[E], 0, len(terms))
	for _, t := range terms {
		if isNil(t) {
			continue
		}
		kept = append(kept, t)
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &Junction[E]{Logic: logic, Terms: kept}
}

// isNil also catches typed nil pointers of either variant.
func isNil[E any](p Predicate[E]) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Comparison[E]:
		return v == nil
	case *Junction[E]:
		return v == nil
	}
	return false
}

func (j *Junction[E]) Match(e *E) bool {
	if j.Logic == Or {
		for _, t := range j.Terms {
			if t.Match(e) {
				return true
			}
		}
		return false
	}
	for _, t := range j.Terms {
		if !t.Match(e) {
			return false
		}
	}
	return true
}

func (c *Comparison[E]) Match(e *E) bool {
	got, ok := c.Field.Value(e)
	if !ok {
		return false
	}

	switch c.Field.Kind {
	case KindString:
		s := strings.ToLower(got.(string))
		want := c.Value.(string)
		switch c.Op {
		case Equals:
			return s == want
		case Contains:
			return strings.Contains(s, want)
		case StartsWith:
			return strings.HasPrefix(s, want)
		case EndsWith:
			return strings.HasSuffix(s, want)
		}
		return false
	case KindBool:
		return got.(bool) == c.Value.(bool)
	case KindInt:
		return holds(c.Op, cmp.Compare(got.(int64), c.Value.(int64)))
	case KindFloat:
		return holds(c.Op, cmp.Compare(got.(float64), c.Value.(float64)))
	case KindTime:
		return holds(c.Op, got.(time.Time).Compare(c.Value.(time.Time)))
	}
	return false
}

func holds(op Operator, order int) bool {
	switch op {
	case Equals:
		return order == 0
	case GreaterThan:
		return order > 0
	case LessThan:
		return order < 0
	case GreaterThanOrEqual:
		return order >= 0
	case LessThanOrEqual:
		return order <= 0
	}
	return false
}

func coerce(kind Kind, value any) (any, error) {
	var (
		out any
		err error
	)
	switch kind {
	case KindString:
		out, err = cast.ToStringE(value)
	case KindInt:
		if s, ok := value.(string); ok {
			// cast treats a leading zero as octal
			out, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			break
		}
		out, err = cast.ToInt64E(value)
	case KindFloat:
		out, err = cast.ToFloat64E(value)
	case KindBool:
		out, err = cast.ToBoolE(value)
	case KindTime:
		var t time.Time
		t, err = cast.ToTimeE(value)
		out = t.UTC()
	default:
		err = fmt.Errorf("unknown kind %d", int(kind))
	}
	if err != nil {
		return nil, fmt.Errorf("Cannot convert value '%v' to type %s", value, kind)
	}
	return out, nil
}
