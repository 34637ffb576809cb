package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

func TestExitStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", domain.ValidationError{Field: "zoneName", Msg: "is required"}, exitValidation, "zoneName: is required"},
		{"not found", domain.NotFoundError{Resource: "ward 9"}, exitNotFound, "ward 9 not found"},
		{"conflict", domain.ConflictError{Resource: "zone", Msg: "code taken"}, exitConflict, "zone conflict: code taken"},
		{"internal", domain.InternalError{Msg: "zone: storage failure", Err: errors.New("disk full")}, exitFailure, internalMessage},
		{"canceled", fmt.Errorf("list: %w", context.Canceled), exitFailure, "canceled"},
		{"plain", errors.New("flag provided but not defined: -x"), exitFailure, "flag provided but not defined: -x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := exitStatus(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestExitStatusListsFieldErrors(t *testing.T) {
	fv := &query.FilterValidationError{
		Message:     "One or more filter parameters are invalid.",
		FieldErrors: map[string]string{"ZoneID": "not a number", "Nope": "unknown field 'Nope'"},
	}
	code, msg := exitStatus(fmt.Errorf("zones: %w", fv))
	assert.Equal(t, exitValidation, code)
	assert.Equal(t, "One or more filter parameters are invalid.\n  Nope: unknown field 'Nope'\n  ZoneID: not a number", msg)
}

func TestIntAndStringKeys(t *testing.T) {
	n, err := intKey(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = intKey("forty")
	assert.True(t, domain.IsValidation(err))

	s, err := stringKey(" G1 ")
	require.NoError(t, err)
	assert.Equal(t, "G1", s)

	_, err = stringKey("  ")
	assert.True(t, domain.IsValidation(err))
}

func TestDecodeBodyRejectsUnknownFields(t *testing.T) {
	type body struct {
		ZoneName string `json:"zoneName"`
	}
	got, err := decodeBody[body](`{"zoneName":"North"}`)
	require.NoError(t, err)
	assert.Equal(t, "North", got.ZoneName)

	_, err = decodeBody[body](`{"zoneNmae":"North"}`)
	assert.True(t, domain.IsValidation(err))
}

// run executes one wtis invocation against dsn with a fresh app.
func run(t *testing.T, dsn string, args ...string) error {
	t.Helper()
	a := &app{}
	base := []string{"wtis", "--db-driver", "sqlite", "--db-dsn", dsn, "--log-level", "error"}
	return rootCommand(a).Run(context.Background(), append(base, args...))
}

func TestCommandsAgainstSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "wtis.db")

	require.NoError(t, run(t, dsn, "migrate"))
	require.NoError(t, run(t, dsn, "zones", "create", "--data", `{"zoneName":"North","zoneCode":"N"}`))
	require.NoError(t, run(t, dsn, "zones", "list", "--where", "ZoneCode=N", "--json"))
	require.NoError(t, run(t, dsn, "zones", "get", "1"))
	require.NoError(t, run(t, dsn, "wards", "create", "--data", `{"wardName":"Aundh","wardCode":"W1","zoneId":1}`))

	err := run(t, dsn, "zones", "create", "--data", `{"zoneName":"North again","zoneCode":"N"}`)
	code, _ := exitStatus(err)
	assert.Equal(t, exitConflict, code, "duplicate zone code: %v", err)

	err = run(t, dsn, "zones", "get", "99")
	code, msg := exitStatus(err)
	assert.Equal(t, exitNotFound, code)
	assert.Equal(t, "zone 99 not found", msg)

	err = run(t, dsn, "zones", "list", "--where", "Nope=1")
	code, _ = exitStatus(err)
	assert.Equal(t, exitValidation, code)

	err = run(t, dsn, "zones", "list", "--logic", "xor")
	code, _ = exitStatus(err)
	assert.Equal(t, exitValidation, code)

	err = run(t, dsn, "floors", "update", "--data", `{"sequenceNo":3}`, "F9")
	code, _ = exitStatus(err)
	assert.Equal(t, exitNotFound, code)

	require.NoError(t, run(t, dsn, "wards", "delete", "1"))
	err = run(t, dsn, "consumers", "find", "WT0001")
	code, _ = exitStatus(err)
	assert.Equal(t, exitNotFound, code)
}
