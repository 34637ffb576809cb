package query

import (
	"fmt"
	"strings"
)

// Operator is the comparison a filterable field applies against its entity field.
type Operator int

const (
	Equals Operator = iota
	Contains
	StartsWith
	EndsWith
	GreaterThan
	LessThan
	GreaterThanOrEqual
	LessThanOrEqual
)

var operatorNames = [...]string{
	Equals:             "Equals",
	Contains:           "Contains",
	StartsWith:         "StartsWith",
	EndsWith:           "EndsWith",
	GreaterThan:        "GreaterThan",
	LessThan:           "LessThan",
	GreaterThanOrEqual: "GreaterThanOrEqual",
	LessThanOrEqual:    "LessThanOrEqual",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorNames) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorNames[o]
}

func (o Operator) textual() bool {
	switch o {
	case Equals, Contains, StartsWith, EndsWith:
		return true
	}
	return false
}

func (o Operator) ordered() bool {
	switch o {
	case Equals, GreaterThan, LessThan, GreaterThanOrEqual, LessThanOrEqual:
		return true
	}
	return false
}

// FilterLogic decides how the filter leaves of one request are combined.
type FilterLogic int

const (
	And FilterLogic = iota
	Or
)

func (l FilterLogic) String() string {
	if l == Or {
		return "Or"
	}
	return "And"
}

func ParseFilterLogic(raw string) (FilterLogic, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "and":
		return And, nil
	case "or":
		return Or, nil
	}
	return And, fmt.Errorf("unknown filter logic %q", raw)
}
