package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/application"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "wtis_test.db")

	db, err := Open(Options{Driver: DriverSQLite, DSN: dbPath})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := RunMigrations(ctx, db, DriverSQLite, nil); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	store := NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRuntime() application.Runtime {
	return application.Runtime{Now: func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }}
}

func ptr[T any](v T) *T { return &v }

func TestOrganizationPagingSearchAndSort(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	svc := application.NewOrganizationService(store.Organizations, store.UoW, testRuntime())

	for i := 1; i <= 25; i++ {
		created, err := svc.Create(ctx, application.CreateOrganization{Name: fmt.Sprintf("Org %02d", i), IsActive: i%2 == 0})
		if err != nil {
			t.Fatalf("create org %d: %v", i, err)
		}
		if created.ID != i {
			t.Fatalf("expected generated id %d, got %d", i, created.ID)
		}
	}

	page, err := svc.GetAll(ctx, application.OrganizationQuery{Parameters: query.Parameters{PageNumber: 3, PageSize: 10}})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if page.TotalCount != 25 || page.TotalPages != 3 || len(page.Items) != 5 {
		t.Fatalf("unexpected page shape: total=%d pages=%d items=%d", page.TotalCount, page.TotalPages, len(page.Items))
	}
	if page.Items[0].ID != 21 {
		t.Fatalf("expected page 3 to start at id 21, got %d", page.Items[0].ID)
	}

	searched, err := svc.GetAll(ctx, application.OrganizationQuery{Parameters: query.Parameters{SearchTerm: "ORG 1", PageSize: 100}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if searched.TotalCount != 10 {
		t.Fatalf("expected 10 matches for ORG 1, got %d", searched.TotalCount)
	}

	sorted, err := svc.GetAll(ctx, application.OrganizationQuery{
		Parameters: query.Parameters{SortBy: "name", SortOrder: "DESC", PageSize: 3},
		IsActive:   ptr(true),
	})
	if err != nil {
		t.Fatalf("sorted: %v", err)
	}
	if sorted.TotalCount != 12 {
		t.Fatalf("expected 12 active organizations, got %d", sorted.TotalCount)
	}
	if sorted.Items[0].Name != "Org 24" || sorted.Items[2].Name != "Org 20" {
		t.Fatalf("unexpected order: %+v", sorted.Items)
	}
	if !sorted.Items[0].IsActive {
		t.Fatalf("expected active flag to round-trip")
	}
}

func TestOrFilterLogicAndLikeEscaping(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	svc := application.NewZoneService(store.Zones, store.UoW, testRuntime())

	for _, z := range []application.CreateZone{
		{ZoneName: "North", ZoneCode: "N"},
		{ZoneName: "South 50%", ZoneCode: "S"},
		{ZoneName: "East_Side", ZoneCode: "E", IsActive: ptr(false)},
	} {
		if _, err := svc.Create(ctx, z); err != nil {
			t.Fatalf("create zone %s: %v", z.ZoneCode, err)
		}
	}

	anyOf, err := svc.GetAll(ctx, application.ZoneQuery{
		Parameters: query.Parameters{FilterLogic: query.Or},
		ZoneCode:   ptr("n"),
		IsActive:   ptr(false),
	})
	if err != nil {
		t.Fatalf("or filter: %v", err)
	}
	if anyOf.TotalCount != 2 {
		t.Fatalf("expected North and East_Side, got %d rows", anyOf.TotalCount)
	}

	percent, err := svc.GetAll(ctx, application.ZoneQuery{Parameters: query.Parameters{SearchTerm: "%"}})
	if err != nil {
		t.Fatalf("search percent: %v", err)
	}
	if percent.TotalCount != 1 || percent.Items[0].ZoneCode != "S" {
		t.Fatalf("expected literal %% match only, got %+v", percent.Items)
	}

	underscore, err := svc.GetAll(ctx, application.ZoneQuery{Parameters: query.Parameters{SearchTerm: "_"}})
	if err != nil {
		t.Fatalf("search underscore: %v", err)
	}
	if underscore.TotalCount != 1 || underscore.Items[0].ZoneCode != "E" {
		t.Fatalf("expected literal _ match only, got %+v", underscore.Items)
	}
}

func TestUniqueViolationIsConflict(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	svc := application.NewOrganizationService(store.Organizations, store.UoW, testRuntime())

	if _, err := svc.Create(ctx, application.CreateOrganization{Name: "Pune Municipal"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, application.CreateOrganization{Name: "Pune Municipal"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// a failed commit leaves nothing staged behind
	if _, err := svc.Create(ctx, application.CreateOrganization{Name: "Nashik Municipal"}); err != nil {
		t.Fatalf("create after conflict: %v", err)
	}
	page, err := svc.GetAll(ctx, application.OrganizationQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 2 {
		t.Fatalf("expected 2 organizations, got %d", page.TotalCount)
	}
}

func TestSoftDeleteKeepsRow(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	svc := application.NewOrganizationService(store.Organizations, store.UoW, testRuntime())

	kept, _ := svc.Create(ctx, application.CreateOrganization{Name: "Kept", IsActive: true})
	gone, _ := svc.Create(ctx, application.CreateOrganization{Name: "Gone", IsActive: true})

	ok, err := svc.Delete(ctx, gone.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}

	row, err := svc.GetByID(ctx, gone.ID)
	if err != nil || row == nil {
		t.Fatalf("soft deleted row should still load: %v", err)
	}
	if !row.IsDeleted || row.UpdatedAt == nil {
		t.Fatalf("expected deleted flag and update stamp, got %+v", row)
	}

	hidden, err := svc.GetByID(ctx, gone.ID, application.ExcludeDeleted())
	if err != nil || hidden != nil {
		t.Fatalf("expected nil for excluded deleted row, got %+v err=%v", hidden, err)
	}

	live, err := svc.GetAll(ctx, application.OrganizationQuery{Parameters: query.Parameters{ExcludeDeleted: true}})
	if err != nil {
		t.Fatalf("list live: %v", err)
	}
	if live.TotalCount != 1 || live.Items[0].ID != kept.ID {
		t.Fatalf("expected only %d, got %+v", kept.ID, live.Items)
	}
}

func TestFloorStringKeyLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	svc := application.NewFloorService(store.Floors, store.UoW, testRuntime())

	if _, err := svc.Create(ctx, application.CreateFloor{FloorID: "G", Description: ptr("Ground"), SequenceNo: ptr(0)}); err != nil {
		t.Fatalf("create G: %v", err)
	}
	if _, err := svc.Create(ctx, application.CreateFloor{FloorID: "F1", Description: ptr("First"), SequenceNo: ptr(1)}); err != nil {
		t.Fatalf("create F1: %v", err)
	}

	updated, err := svc.Update(ctx, "F1", application.UpdateFloor{DescriptionEnglish: ptr("First floor")})
	if err != nil || updated == nil {
		t.Fatalf("update: %+v %v", updated, err)
	}
	if *updated.Description != "First" || *updated.DescriptionEnglish != "First floor" {
		t.Fatalf("partial update lost fields: %+v", updated)
	}

	reloaded, err := svc.GetByID(ctx, "F1")
	if err != nil || reloaded == nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.UpdatedDate == nil || !reloaded.UpdatedDate.Equal(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected update stamp, got %v", reloaded.UpdatedDate)
	}

	ranged, err := svc.GetAll(ctx, application.FloorQuery{MinSequenceNo: ptr(1)})
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if ranged.TotalCount != 1 || ranged.Items[0].FloorID != "F1" {
		t.Fatalf("expected F1 only, got %+v", ranged.Items)
	}

	ok, err := svc.Delete(ctx, "G")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	exists, err := store.Floors.Exists(ctx, "G")
	if err != nil || exists {
		t.Fatalf("expected G to be removed, exists=%v err=%v", exists, err)
	}
	ok, err = svc.Delete(ctx, "G")
	if err != nil || ok {
		t.Fatalf("second delete should report false, ok=%v err=%v", ok, err)
	}
}

func TestWardsAndConsumersAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	rt := testRuntime()

	zones := application.NewZoneService(store.Zones, store.UoW, rt)
	wards := application.NewWardService(store.Wards, store.Zones, store.UoW, rt)
	north, err := zones.Create(ctx, application.CreateZone{ZoneName: "North", ZoneCode: "N"})
	if err != nil {
		t.Fatalf("create zone: %v", err)
	}
	if _, err := wards.Create(ctx, application.CreateWard{WardName: "Shivaji Nagar", WardCode: "W12", ZoneID: north.ZoneID}); err != nil {
		t.Fatalf("create ward: %v", err)
	}
	listed, err := wards.GetAll(ctx, application.WardQuery{})
	if err != nil {
		t.Fatalf("list wards: %v", err)
	}
	if len(listed.Items) != 1 || listed.Items[0].ZoneName == nil || *listed.Items[0].ZoneName != "North" {
		t.Fatalf("expected enriched ward, got %+v", listed.Items)
	}

	seed := store.UoW.Begin(ctx)
	if err := store.ConnectionTypes.Add(seed, &domain.ConnectionType{ConnectionTypeName: "Domestic", IsActive: true}); err != nil {
		t.Fatalf("stage connection type: %v", err)
	}
	account := func(number, property, partition string, active bool) *domain.ConsumerAccount {
		c := &domain.ConsumerAccount{
			ConsumerNumber:   number,
			WardNo:           ptr("12"),
			PropertyNumber:   ptr(property),
			ConsumerName:     "Consumer " + number,
			EmailID:          ptr(number + "@Example.org"),
			ConnectionTypeID: 1,
			IsActive:         ptr(active),
		}
		if partition != "" {
			c.PartitionNumber = ptr(partition)
		}
		return c
	}
	for _, c := range []*domain.ConsumerAccount{
		account("WT1001", "P7", "F1", true),
		account("WT1002", "P7", "F2", true),
		account("WT1003", "P8", "", false),
	} {
		if err := store.ConsumerAccounts.Add(seed, c); err != nil {
			t.Fatalf("stage consumer: %v", err)
		}
	}
	if err := store.UoW.SaveChanges(seed); err != nil {
		t.Fatalf("seed consumers: %v", err)
	}

	consumers := application.NewConsumerService(store.ConsumerAccounts, application.ConsumerReferences{
		ConnectionTypes:      store.ConnectionTypes,
		ConnectionCategories: store.ConnectionCategories,
		PipeSizes:            store.PipeSizes,
	}, rt)

	found, err := consumers.FindConsumer(ctx, "12-P7-F2")
	if err != nil || found == nil {
		t.Fatalf("find by pattern: %+v %v", found, err)
	}
	if found.ConsumerNumber != "WT1002" {
		t.Fatalf("expected WT1002, got %s", found.ConsumerNumber)
	}
	if found.ConnectionTypeName == nil || *found.ConnectionTypeName != "Domestic" {
		t.Fatalf("expected connection type name, got %v", found.ConnectionTypeName)
	}

	byEmail, err := consumers.FindConsumer(ctx, "wt1001@example.ORG")
	if err != nil || byEmail == nil || byEmail.ConsumerNumber != "WT1001" {
		t.Fatalf("find by email: %+v %v", byEmail, err)
	}

	inactive, err := consumers.FindConsumer(ctx, "WT1003")
	if err != nil || inactive != nil {
		t.Fatalf("inactive consumer should not resolve: %+v %v", inactive, err)
	}

	active, err := consumers.GetAll(ctx, application.ConsumerQuery{})
	if err != nil {
		t.Fatalf("list consumers: %v", err)
	}
	if active.TotalCount != 2 {
		t.Fatalf("expected 2 active consumers, got %d", active.TotalCount)
	}
}

func TestCanceledContextStagesNothing(t *testing.T) {
	store := openTestStore(t)
	svc := application.NewZoneService(store.Zones, store.UoW, testRuntime())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Create(ctx, application.CreateZone{ZoneName: "North", ZoneCode: "N"}); !domain.IsCanceled(err) {
		t.Fatalf("expected cancellation, got %v", err)
	}

	page, err := svc.GetAll(context.Background(), application.ZoneQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 0 {
		t.Fatalf("expected no zones, got %d", page.TotalCount)
	}
}

func TestOpenSQLiteFromDSN(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dsn_only.db")
	db, err := Open(Options{DSN: dbPath})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if db.Dialector.Name() != "sqlite" {
		t.Fatalf("expected sqlite dialector, got %s", db.Dialector.Name())
	}
}

func TestInterleavedOperationsKeepTheirOwnWrites(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	svc := application.NewZoneService(store.Zones, store.UoW, testRuntime())

	if _, err := svc.Create(ctx, application.CreateZone{ZoneName: "South", ZoneCode: "S"}); err != nil {
		t.Fatalf("create south: %v", err)
	}

	// a staged insert that is still waiting for its own commit
	pending := store.UoW.Begin(ctx)
	north := &domain.Zone{ZoneName: "North", ZoneCode: "NORTH", IsActive: true}
	if err := store.Zones.Add(pending, north); err != nil {
		t.Fatalf("stage north: %v", err)
	}

	if _, err := svc.Create(ctx, application.CreateZone{ZoneName: "South again", ZoneCode: "S"}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if north.ZoneID != 0 {
		t.Fatalf("north was written by another operation: id=%d", north.ZoneID)
	}

	if err := store.UoW.SaveChanges(pending); err != nil {
		t.Fatalf("save north: %v", err)
	}
	if north.ZoneID == 0 {
		t.Fatalf("expected generated id for north")
	}
	got, err := store.Zones.GetByID(ctx, north.ZoneID)
	if err != nil {
		t.Fatalf("reload north: %v", err)
	}
	if got.ZoneCode != "NORTH" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestStagingWithoutBegin(t *testing.T) {
	store := openTestStore(t)
	err := store.Zones.Add(context.Background(), &domain.Zone{ZoneName: "North", ZoneCode: "N"})
	if !errors.Is(err, domain.ErrNoUnitOfWork) {
		t.Fatalf("expected ErrNoUnitOfWork, got %v", err)
	}
}
