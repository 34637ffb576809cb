package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type binding struct {
	op       Operator
	override string
}

type capabilities struct {
	filter *binding
	search *binding
	sort   *binding
}

// Option declares one capability of a query field.
type Option func(*capabilities)

// Filter marks the field filterable with op against the entity field resolved by naming rules.
func Filter(op Operator) Option {
	return func(c *capabilities) { c.filter = &binding{op: op} }
}

// FilterOn marks the field filterable with op against an explicitly named entity field.
func FilterOn(op Operator, entityField string) Option {
	return func(c *capabilities) { c.filter = &binding{op: op, override: entityField} }
}

func Search() Option {
	return func(c *capabilities) { c.search = &binding{op: Contains} }
}

func SearchOn(entityField string) Option {
	return func(c *capabilities) { c.search = &binding{op: Contains, override: entityField} }
}

func Sort() Option {
	return func(c *capabilities) { c.sort = &binding{} }
}

func SortOn(entityField string) Option {
	return func(c *capabilities) { c.sort = &binding{override: entityField} }
}

// FieldSpec is one entry of a Descriptor.
type FieldSpec[Q any] struct {
	Name  string
	value func(*Q) (any, bool)
	set   func(*Q, string) error
	caps  capabilities
}

// Field binds name to the query field returned by ref. ref must return the address of the
// field so the descriptor can both read and assign it.
func Field[Q any, T any](name string, ref func(*Q) **T, opts ...Option) FieldSpec[Q] {
	spec := FieldSpec[Q]{
		Name: name,
		value: func(q *Q) (any, bool) {
			if p := *ref(q); p != nil {
				return *p, true
			}
			return nil, false
		},
		set: func(q *Q, raw string) error {
			v, err := parse[T](raw)
			if err != nil {
				return err
			}
			*ref(q) = &v
			return nil
		},
	}
	for _, opt := range opts {
		opt(&spec.caps)
	}
	return spec
}

// Attribute registers a field that carries no value, such as a sort-only column.
func Attribute[Q any](name string, opts ...Option) FieldSpec[Q] {
	spec := FieldSpec[Q]{Name: name}
	for _, opt := range opts {
		opt(&spec.caps)
	}
	if spec.caps.filter != nil {
		panic(fmt.Sprintf("query: attribute %q cannot be filterable without a value", name))
	}
	return spec
}

func (f FieldSpec[Q]) filterTarget() string {
	b := f.caps.filter
	if b.override != "" {
		return b.override
	}
	switch b.op {
	case GreaterThanOrEqual:
		if rest, ok := strings.CutPrefix(f.Name, "Min"); ok && rest != "" {
			return rest
		}
		if rest, ok := strings.CutSuffix(f.Name, "After"); ok && rest != "" {
			return rest
		}
	case LessThanOrEqual:
		if rest, ok := strings.CutPrefix(f.Name, "Max"); ok && rest != "" {
			return rest
		}
		if rest, ok := strings.CutSuffix(f.Name, "Before"); ok && rest != "" {
			return rest
		}
	}
	return f.Name
}

func (f FieldSpec[Q]) target(b *binding) string {
	if b.override != "" {
		return b.override
	}
	return f.Name
}

// FieldInfo describes the capabilities of one registered field.
type FieldInfo struct {
	Name         string
	Filterable   bool
	Operator     Operator
	FilterTarget string
	Searchable   bool
	SearchTarget string
	Sortable     bool
	SortTarget   string
}

// Descriptor is the static capability table of one query type.
type Descriptor[Q any] struct {
	fields []FieldSpec[Q]
	index  map[string]int
}

func Describe[Q any](fields ...FieldSpec[Q]) *Descriptor[Q] {
	d := &Descriptor[Q]{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		key := strings.ToLower(f.Name)
		if _, dup := d.index[key]; dup {
			panic(fmt.Sprintf("query: field %q described twice", f.Name))
		}
		d.index[key] = len(d.fields)
		d.fields = append(d.fields, f)
	}
	return d
}

func (d *Descriptor[Q]) Fields() []FieldInfo {
	out := make([]FieldInfo, 0, len(d.fields))
	for _, f := range d.fields {
		info := FieldInfo{Name: f.Name}
		if f.caps.filter != nil {
			info.Filterable = true
			info.Operator = f.caps.filter.op
			info.FilterTarget = f.filterTarget()
		}
		if f.caps.search != nil {
			info.Searchable = true
			info.SearchTarget = f.target(f.caps.search)
		}
		if f.caps.sort != nil {
			info.Sortable = true
			info.SortTarget = f.target(f.caps.sort)
		}
		out = append(out, info)
	}
	return out
}

// SortableFields is the sortBy allow-list, in registration order.
func (d *Descriptor[Q]) SortableFields() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, f := range d.fields {
		if f.caps.sort == nil {
			continue
		}
		t := f.target(f.caps.sort)
		if seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}

// Set parses raw into the named field of q.
func (d *Descriptor[Q]) Set(q *Q, name, raw string) error {
	i, ok := d.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok || d.fields[i].set == nil {
		return NewFilterValidationError(name, fmt.Sprintf("unknown field '%s'", name))
	}
	f := d.fields[i]
	if err := f.set(q, raw); err != nil {
		return NewFilterValidationError(f.Name, fmt.Sprintf("value '%s' is invalid: %v", raw, err))
	}
	return nil
}

func parse[T any](raw string) (T, error) {
	var (
		out T
		err error
	)
	raw = strings.TrimSpace(raw)
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		*p, err = strconv.Atoi(raw)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	case *bool:
		*p, err = cast.ToBoolE(raw)
	case *time.Time:
		*p, err = cast.ToTimeE(raw)
	default:
		err = fmt.Errorf("unsupported field type %T", out)
	}
	return out, err
}
