package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

const (
	exitFailure    = 1
	exitValidation = 2
	exitNotFound   = 3
	exitConflict   = 4
)

const internalMessage = "An error occurred while processing your request."

// exitStatus maps an error returned by a command to a process exit code and the message
// printed on stderr. Internal failures never leak their cause.
func exitStatus(err error) (int, string) {
	if fv, ok := query.AsFilterValidation(err); ok {
		return exitValidation, formatFieldErrors(fv)
	}
	switch {
	case domain.IsValidation(err):
		return exitValidation, err.Error()
	case domain.IsNotFound(err):
		return exitNotFound, err.Error()
	case domain.IsConflict(err):
		return exitConflict, err.Error()
	case domain.IsInternal(err):
		return exitFailure, internalMessage
	case domain.IsCanceled(err):
		return exitFailure, "canceled"
	}
	return exitFailure, err.Error()
}

func formatFieldErrors(fv *query.FilterValidationError) string {
	fields := make([]string, 0, len(fv.FieldErrors))
	for f := range fv.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(fv.Message)
	for _, f := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", f, fv.FieldErrors[f])
	}
	return b.String()
}
