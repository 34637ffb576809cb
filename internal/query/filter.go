package query

import (
	"fmt"
	"strings"
)

// BuildFilter turns the filterable fields holding a value into one predicate combined by the
// request's FilterLogic. Every unresolvable field is reported in a single FilterValidationError.
// A nil predicate means no filter field was set.
func BuildFilter[E any, Q Parameterized](d *Descriptor[Q], s *Schema[E], params *Q) (Predicate[E], error) {
	var (
		leaves []Predicate[E]
		errs   = map[string]string{}
	)

	for _, f := range d.fields {
		if f.caps.filter == nil {
			continue
		}
		value, ok := f.value(params)
		if !ok {
			continue
		}

		target := f.filterTarget()
		field, found := s.Field(target)
		if !found {
			errs[f.Name] = fmt.Sprintf("Property '%s' not found on entity type '%s'", target, s.Name())
			continue
		}

		leaf, err := Compare(field, f.caps.filter.op, value)
		if err != nil {
			errs[f.Name] = err.Error()
			continue
		}
		leaves = append(leaves, leaf)
	}

	if len(errs) > 0 {
		return nil, &FilterValidationError{
			Message:     "One or more filter parameters are invalid.",
			FieldErrors: errs,
		}
	}
	return Combine((*params).Params().FilterLogic, leaves...), nil
}

// BuildSearch ORs a case-insensitive contains match of the search term across every searchable
// string field. A blank term, or no searchable string field, yields nil.
func BuildSearch[E any, Q Parameterized](d *Descriptor[Q], s *Schema[E], params *Q) Predicate[E] {
	term := (*params).Params().SearchTerm
	if strings.TrimSpace(term) == "" {
		return nil
	}

	var leaves []Predicate[E]
	for _, f := range d.fields {
		if f.caps.search == nil {
			continue
		}
		field, found := s.Field(f.target(f.caps.search))
		if !found || field.Kind != KindString {
			continue
		}
		leaves = append(leaves, &Comparison[E]{Field: field, Op: Contains, Value: strings.ToLower(term)})
	}
	return Any(leaves...)
}
