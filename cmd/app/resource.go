package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/application"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type readService[D any, Q query.Parameterized, K comparable] interface {
	Name() string
	Descriptor() *query.Descriptor[Q]
	GetAll(ctx context.Context, params Q) (query.PagedResult[D], error)
	GetByID(ctx context.Context, key K, opts ...application.ReadOption) (*D, error)
}

type crudService[D, C, U any, Q query.Parameterized, K comparable] interface {
	readService[D, Q, K]
	Create(ctx context.Context, in C) (D, error)
	Update(ctx context.Context, key K, in U) (*D, error)
	Delete(ctx context.Context, key K) (bool, error)
}

type column[D any] struct {
	header string
	value  func(D) string
}

// resource describes how one module is addressed and printed on the command line.
type resource[D any, Q query.Parameterized, K comparable] struct {
	name    string
	usage   string
	key     func(string) (K, error)
	columns []column[D]
}

func intKey(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.ValidationError{Field: "id", Msg: fmt.Sprintf("'%s' is not a number", raw)}
	}
	return n, nil
}

func stringKey(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", domain.ValidationError{Field: "id", Msg: "is required"}
	}
	return v, nil
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Value: 1, Usage: "page number"},
		&cli.IntFlag{Name: "size", Value: query.DefaultPageSize, Usage: "page size, at most 100"},
		&cli.StringFlag{Name: "search", Usage: "term matched against every searchable field"},
		&cli.StringFlag{Name: "sort", Usage: "sortable field name"},
		&cli.StringFlag{Name: "order", Value: "asc", Usage: "asc or desc"},
		&cli.StringFlag{Name: "logic", Value: "and", Usage: "how --where filters combine: and, or"},
		&cli.BoolFlag{Name: "exclude-deleted", Usage: "hide soft deleted rows"},
		&cli.StringSliceFlag{Name: "where", Usage: "Field=value filter, repeatable"},
		jsonFlag(),
	}
}

// buildQuery reads the list flags into a fresh Q.
func buildQuery[Q query.Parameterized](c *cli.Command, d *query.Descriptor[Q]) (Q, error) {
	var q Q
	logic, err := query.ParseFilterLogic(c.String("logic"))
	if err != nil {
		return q, domain.ValidationError{Field: "logic", Msg: err.Error()}
	}
	setter, ok := any(&q).(query.ParamsSetter)
	if !ok {
		return q, fmt.Errorf("%T does not embed query.Parameters", q)
	}
	setter.SetParams(query.Parameters{
		PageNumber:     c.Int("page"),
		PageSize:       c.Int("size"),
		SearchTerm:     c.String("search"),
		SortBy:         c.String("sort"),
		SortOrder:      c.String("order"),
		FilterLogic:    logic,
		ExcludeDeleted: c.Bool("exclude-deleted"),
	})

	for _, w := range c.StringSlice("where") {
		name, value, found := strings.Cut(w, "=")
		if !found {
			return q, domain.ValidationError{Field: "where", Msg: fmt.Sprintf("'%s' is not Field=value", w)}
		}
		if err := d.Set(&q, name, value); err != nil {
			return q, err
		}
	}
	return q, nil
}

// decodeBody parses --data strictly so misspelled fields are reported instead of dropped.
func decodeBody[T any](raw string) (T, error) {
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, domain.ValidationError{Field: "data", Msg: err.Error(), Err: err}
	}
	return out, nil
}

func keyArg[K comparable](c *cli.Command, parse func(string) (K, error)) (K, error) {
	if c.Args().Len() != 1 {
		var zero K
		return zero, domain.ValidationError{Field: "id", Msg: "exactly one id argument is required"}
	}
	return parse(c.Args().First())
}

func readCommands[D any, Q query.Parameterized, K comparable](r resource[D, Q, K], svc func() readService[D, Q, K]) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list",
			Usage: "List " + r.name + " with filters, search, sort and paging",
			Flags: listFlags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				s := svc()
				q, err := buildQuery(c, s.Descriptor())
				if err != nil {
					return err
				}
				page, err := s.GetAll(ctx, q)
				if err != nil {
					return err
				}
				if c.Bool("json") {
					return printJSON(page)
				}
				printPage(r.columns, page)
				return nil
			},
		},
		{
			Name:      "get",
			Usage:     "Show one record",
			ArgsUsage: "<id>",
			Flags:     []cli.Flag{jsonFlag(), &cli.BoolFlag{Name: "exclude-deleted", Usage: "treat soft deleted rows as missing"}},
			Action: func(ctx context.Context, c *cli.Command) error {
				key, err := keyArg(c, r.key)
				if err != nil {
					return err
				}
				var opts []application.ReadOption
				if c.Bool("exclude-deleted") {
					opts = append(opts, application.ExcludeDeleted())
				}
				s := svc()
				item, err := s.GetByID(ctx, key, opts...)
				if err != nil {
					return err
				}
				if item == nil {
					return notFound(s.Name(), key)
				}
				return printOne(c, r.columns, *item)
			},
		},
		{
			Name:  "fields",
			Usage: "Show which fields can be filtered, searched and sorted",
			Flags: []cli.Flag{jsonFlag()},
			Action: func(ctx context.Context, c *cli.Command) error {
				fields := svc().Descriptor().Fields()
				if c.Bool("json") {
					return printJSON(fields)
				}
				printFields(fields)
				return nil
			},
		},
	}
}

func crudCommands[D, C, U any, Q query.Parameterized, K comparable](r resource[D, Q, K], svc func() crudService[D, C, U, Q, K]) []*cli.Command {
	commands := readCommands(r, func() readService[D, Q, K] { return svc() })
	dataFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "data", Required: true, Usage: "JSON body"}
	}

	return append(commands,
		&cli.Command{
			Name:  "create",
			Usage: "Create a record from a JSON body",
			Flags: []cli.Flag{dataFlag(), jsonFlag()},
			Action: func(ctx context.Context, c *cli.Command) error {
				in, err := decodeBody[C](c.String("data"))
				if err != nil {
					return err
				}
				item, err := svc().Create(ctx, in)
				if err != nil {
					return err
				}
				return printOne(c, r.columns, item)
			},
		},
		&cli.Command{
			Name:      "update",
			Usage:     "Apply the fields present in a JSON body",
			ArgsUsage: "<id>",
			Flags:     []cli.Flag{dataFlag(), jsonFlag()},
			Action: func(ctx context.Context, c *cli.Command) error {
				key, err := keyArg(c, r.key)
				if err != nil {
					return err
				}
				in, err := decodeBody[U](c.String("data"))
				if err != nil {
					return err
				}
				s := svc()
				item, err := s.Update(ctx, key, in)
				if err != nil {
					return err
				}
				if item == nil {
					return notFound(s.Name(), key)
				}
				return printOne(c, r.columns, *item)
			},
		},
		&cli.Command{
			Name:      "delete",
			Usage:     "Delete a record, softly where the module keeps history",
			ArgsUsage: "<id>",
			Action: func(ctx context.Context, c *cli.Command) error {
				key, err := keyArg(c, r.key)
				if err != nil {
					return err
				}
				s := svc()
				ok, err := s.Delete(ctx, key)
				if err != nil {
					return err
				}
				if !ok {
					return notFound(s.Name(), key)
				}
				fmt.Printf("deleted %s %v\n", s.Name(), key)
				return nil
			},
		},
	)
}

func printOne[D any](c *cli.Command, columns []column[D], item D) error {
	if c.Bool("json") {
		return printJSON(item)
	}
	rows := make([][2]string, 0, len(columns))
	for _, col := range columns {
		rows = append(rows, [2]string{strings.ToLower(col.header), col.value(item)})
	}
	printKV(rows)
	return nil
}

func printPage[D any](columns []column[D], page query.PagedResult[D]) {
	headers := make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.header)
	}
	rows := make([][]string, 0, len(page.Items))
	for _, item := range page.Items {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, col.value(item))
		}
		rows = append(rows, row)
	}
	printTable(headers, rows)
	fmt.Printf("page %d of %d, %d total\n", page.PageNumber, page.TotalPages, page.TotalCount)
}

func notFound(name string, key any) error {
	return domain.NotFoundError{Resource: fmt.Sprintf("%s %v", name, key)}
}
