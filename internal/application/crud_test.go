package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func testRuntime() Runtime {
	return Runtime{Now: func() time.Time { return fixedNow }}
}

func newOrganizations() (*OrganizationService, *memUnit) {
	uow := &memUnit{}
	repo := newMemRepo(uow,
		func(o *domain.Organization) int { return o.ID },
		func(o *domain.Organization, id int) { o.ID = id })
	return NewOrganizationService(repo, uow, testRuntime()), uow
}

func newFloors(rows ...domain.Floor) (*FloorService, *memUnit) {
	uow := &memUnit{}
	repo := newMemRepo[domain.Floor, string](uow, func(f *domain.Floor) string { return f.FloorID }, nil, rows...)
	return NewFloorService(repo, uow, testRuntime()), uow
}

func TestCreateStampsAndAssignsKey(t *testing.T) {
	ctx := context.Background()
	svc, uow := newOrganizations()

	created, err := svc.Create(ctx, CreateOrganization{Name: "Pune Municipal", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Nil(t, created.UpdatedAt)
	assert.Equal(t, 1, uow.saves)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
}

func TestSoftDeleteKeepsRowAndHonoursExcludeDeleted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrganizations()

	_, err := svc.Create(ctx, CreateOrganization{Name: "Nagpur"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateOrganization{Name: "Nashik"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDeleted)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, fixedNow, *got.UpdatedAt)

	hidden, err := svc.GetByID(ctx, 1, ExcludeDeleted())
	require.NoError(t, err)
	assert.Nil(t, hidden)

	all, err := svc.GetAll(ctx, OrganizationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.TotalCount)

	live, err := svc.GetAll(ctx, OrganizationQuery{Parameters: query.Parameters{ExcludeDeleted: true}})
	require.NoError(t, err)
	require.Len(t, live.Items, 1)
	assert.Equal(t, "Nashik", live.Items[0].Name)
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFloors(domain.Floor{FloorID: "F1", Description: ptr("Ground"), SequenceNo: ptr(1)})

	updated, err := svc.Update(ctx, "F1", UpdateFloor{SequenceNo: ptr(3), UpdatedBy: ptr(7)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ground", *updated.Description)
	assert.Equal(t, 3, *updated.SequenceNo)
	require.NotNil(t, updated.UpdatedDate)
	assert.Equal(t, fixedNow, *updated.UpdatedDate)

	missing, err := svc.Update(ctx, "F9", UpdateFloor{SequenceNo: ptr(1)})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHardDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFloors(domain.Floor{FloorID: "F1"}, domain.Floor{FloorID: "F2"})

	ok, err := svc.Delete(ctx, "F9")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Delete(ctx, "F1")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetByID(ctx, "F1")
	require.NoError(t, err)
	assert.Nil(t, got)

	page, err := svc.GetAll(ctx, FloorQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)
}

func TestStorageErrorsAreClassified(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate key", func(t *testing.T) {
		svc, _ := newFloors(domain.Floor{FloorID: "F1"})
		_, err := svc.Create(ctx, CreateFloor{FloorID: "F1"})
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err), "got %v", err)
	})

	t.Run("unique constraint message", func(t *testing.T) {
		svc, uow := newFloors()
		uow.fail = errors.New("UNIQUE constraint failed: floors.floor_id")
		_, err := svc.Create(ctx, CreateFloor{FloorID: "F1"})
		assert.True(t, domain.IsConflict(err), "got %v", err)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		svc, uow := newFloors()
		uow.fail = errors.New("disk I/O error")
		_, err := svc.Create(ctx, CreateFloor{FloorID: "F1"})
		assert.True(t, domain.IsInternal(err), "got %v", err)
		assert.Equal(t, "floor: storage failure", err.Error())
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		svc, _ := newFloors()
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Create(canceled, CreateFloor{FloorID: "F1"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGetAllFiltersAndRejectsUnsortableField(t *testing.T) {
	ctx := context.Background()
	var rows []domain.Floor
	for i := 1; i <= 5; i++ {
		rows = append(rows, domain.Floor{FloorID: string(rune('A' + i - 1)), SequenceNo: ptr(i)})
	}
	rows = append(rows, domain.Floor{FloorID: "Z"})
	svc, _ := newFloors(rows...)

	page, err := svc.GetAll(ctx, FloorQuery{MinSequenceNo: ptr(2), MaxSequenceNo: ptr(4)})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalCount)

	_, err = svc.GetAll(ctx, FloorQuery{Parameters: query.Parameters{SortBy: "MaxFloorNo"}})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	fv, ok := query.AsFilterValidation(err)
	require.True(t, ok)
	assert.Contains(t, fv.FieldErrors["sortBy"], "is not sortable")
}

func TestGetAllIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFloors(
		domain.Floor{FloorID: "B", Description: ptr("Basement")},
		domain.Floor{FloorID: "G", Description: ptr("Ground")},
		domain.Floor{FloorID: "T", Description: ptr("Terrace")},
	)
	params := FloorQuery{Parameters: query.Parameters{SearchTerm: "r", SortBy: "FloorID", SortOrder: "desc", PageSize: 2}}

	first, err := svc.GetAll(ctx, params)
	require.NoError(t, err)
	second, err := svc.GetAll(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 2, first.TotalCount)
	assert.Equal(t, "T", first.Items[0].FloorID)
}

func TestWritesStayInTheirOwnBatch(t *testing.T) {
	ctx := context.Background()
	uow := &memUnit{}
	repo := newMemRepo[domain.Floor, string](uow, func(f *domain.Floor) string { return f.FloorID }, nil, domain.Floor{FloorID: "F1"})
	svc := NewFloorService(repo, uow, testRuntime())

	pending := uow.Begin(ctx)
	require.NoError(t, repo.Add(pending, &domain.Floor{FloorID: "G"}))

	_, err := svc.Create(ctx, CreateFloor{FloorID: "F1"})
	assert.True(t, domain.IsConflict(err), "got %v", err)

	exists, err := repo.Exists(ctx, "G")
	require.NoError(t, err)
	assert.False(t, exists, "G was committed by another operation")

	require.NoError(t, uow.SaveChanges(pending))
	exists, err = repo.Exists(ctx, "G")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, repo.Add(ctx, &domain.Floor{FloorID: "X"}), domain.ErrNoUnitOfWork)
}
