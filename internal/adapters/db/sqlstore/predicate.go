package sqlstore

import (
	"fmt"
	"strings"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// render turns a predicate into a parameterized SQL condition. String comparisons are made on
// the lower-cased column because comparison values are stored lower-cased.
func render[E any](p query.Predicate[E]) (clause.Expr, error) {
	switch p := p.(type) {
	case *query.Comparison[E]:
		return renderComparison(p)
	case *query.Junction[E]:
		return renderJunction(p)
	}
	return clause.Expr{}, fmt.Errorf("unsupported predicate %T", p)
}

func renderJunction[E any](j *query.Junction[E]) (clause.Expr, error) {
	if len(j.Terms) == 0 {
		if j.Logic == query.Or {
			return clause.Expr{SQL: "1 = 0"}, nil
		}
		return clause.Expr{SQL: "1 = 1"}, nil
	}

	sep := " AND "
	if j.Logic == query.Or {
		sep = " OR "
	}
	parts := make([]string, 0, len(j.Terms))
	var vars []any
	for _, term := range j.Terms {
		expr, err := render(term)
		if err != nil {
			return clause.Expr{}, err
		}
		parts = append(parts, expr.SQL)
		vars = append(vars, expr.Vars...)
	}
	return clause.Expr{SQL: "(" + strings.Join(parts, sep) + ")", Vars: vars}, nil
}

func renderComparison[E any](c *query.Comparison[E]) (clause.Expr, error) {
	col := c.Field.Column
	if c.Field.Kind == query.KindString {
		v, _ := c.Value.(string)
		lower := "LOWER(" + col + ")"
		switch c.Op {
		case query.Equals:
			return clause.Expr{SQL: lower + " = ?", Vars: []any{v}}, nil
		case query.Contains:
			return like(lower, "%"+likeEscaper.Replace(v)+"%"), nil
		case query.StartsWith:
			return like(lower, likeEscaper.Replace(v)+"%"), nil
		case query.EndsWith:
			return like(lower, "%"+likeEscaper.Replace(v)), nil
		}
		return clause.Expr{}, fmt.Errorf("operator %s is not supported for %s fields", c.Op, c.Field.Kind)
	}

	var op string
	switch c.Op {
	case query.Equals:
		op = "="
	case query.GreaterThan:
		op = ">"
	case query.LessThan:
		op = "<"
	case query.GreaterThanOrEqual:
		op = ">="
	case query.LessThanOrEqual:
		op = "<="
	default:
		return clause.Expr{}, fmt.Errorf("operator %s is not supported for %s fields", c.Op, c.Field.Kind)
	}
	return clause.Expr{SQL: col + " " + op + " ?", Vars: []any{c.Value}}, nil
}

func like(col, pattern string) clause.Expr {
	return clause.Expr{SQL: col + " LIKE ? ESCAPE '!'", Vars: []any{pattern}}
}
