package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func printFields(fields []query.FieldInfo) {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		filter, search, sort := "-", "-", "-"
		if f.Filterable {
			filter = f.Operator.String() + " " + f.FilterTarget
		}
		if f.Searchable {
			search = f.SearchTarget
		}
		if f.Sortable {
			sort = f.SortTarget
		}
		rows = append(rows, []string{f.Name, filter, search, sort})
	}
	printTable([]string{"FIELD", "FILTER", "SEARCH", "SORT"}, rows)
}

func formatText(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMaybeFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}
