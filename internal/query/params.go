package query

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Parameters is embedded by every listable query type.
type Parameters struct {
	PageNumber  int         `json:"pageNumber"`
	PageSize    int         `json:"pageSize"`
	SearchTerm  string      `json:"searchTerm,omitempty"`
	SortBy      string      `json:"sortBy,omitempty"`
	SortOrder   string      `json:"sortOrder,omitempty"`
	FilterLogic FilterLogic `json:"filterLogic"`

	// ExcludeDeleted drops soft-deleted rows. Entities without a deleted flag ignore it.
	ExcludeDeleted bool `json:"excludeDeleted,omitempty"`
}

// Parameterized is satisfied by any struct embedding Parameters.
type Parameterized interface {
	Params() Parameters
}

func (p Parameters) Params() Parameters { return p }

func (p Parameters) Page() int {
	if p.PageNumber < 1 {
		return 1
	}
	return p.PageNumber
}

func (p Parameters) Size() int {
	switch {
	case p.PageSize < 1:
		return DefaultPageSize
	case p.PageSize > MaxPageSize:
		return MaxPageSize
	}
	return p.PageSize
}

func (p Parameters) Offset() int {
	return (p.Page() - 1) * p.Size()
}

func (p Parameters) Descending() bool {
	return strings.EqualFold(strings.TrimSpace(p.SortOrder), "desc")
}

// SetParams replaces the embedded parameters. It lets generic callers populate any query type
// through a *Q.
func (p *Parameters) SetParams(v Parameters) { *p = v }

// ParamsSetter is implemented by pointers to structs embedding Parameters.
type ParamsSetter interface {
	SetParams(v Parameters)
}
