package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type masters struct {
	uow        *memUnit
	zones      *memRepo[domain.Zone, int]
	wards      *memRepo[domain.Ward, int]
	pipeSizes  *memRepo[domain.PipeSize, int]
	types      *memRepo[domain.ConnectionType, int]
	categories *memRepo[domain.ConnectionCategory, int]
}

func seedMasters() masters {
	uow := &memUnit{}
	return masters{
		uow: uow,
		zones: newMemRepo(uow, func(z *domain.Zone) int { return z.ZoneID }, func(z *domain.Zone, id int) { z.ZoneID = id },
			domain.Zone{ZoneID: 1, ZoneName: "North", ZoneCode: "N"},
			domain.Zone{ZoneID: 2, ZoneName: "South", ZoneCode: "S"},
		),
		wards: newMemRepo(uow, func(w *domain.Ward) int { return w.WardID }, func(w *domain.Ward, id int) { w.WardID = id },
			domain.Ward{WardID: 1, WardName: "Shivaji Nagar", WardCode: "W1", ZoneID: 1},
			domain.Ward{WardID: 2, WardName: "Aundh", WardCode: "W2", ZoneID: 2},
			domain.Ward{WardID: 3, WardName: "Baner", WardCode: "W3", ZoneID: 9},
		),
		pipeSizes: newMemRepo(uow, func(p *domain.PipeSize) int { return p.PipeSizeID }, nil,
			domain.PipeSize{PipeSizeID: 1, SizeName: "15 mm", DiameterMM: 15},
		),
		types: newMemRepo(uow, func(c *domain.ConnectionType) int { return c.ConnectionTypeID }, nil,
			domain.ConnectionType{ConnectionTypeID: 1, ConnectionTypeName: "Domestic"},
		),
		categories: newMemRepo(uow, func(c *domain.ConnectionCategory) int { return c.CategoryID }, nil,
			domain.ConnectionCategory{CategoryID: 1, CategoryName: "General"},
		),
	}
}

func TestWardsCarryZoneNames(t *testing.T) {
	ctx := context.Background()
	m := seedMasters()
	svc := NewWardService(m.wards, m.zones, m.uow, testRuntime())

	page, err := svc.GetAll(ctx, WardQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	// default order is by ward name
	assert.Equal(t, "Aundh", page.Items[0].WardName)
	assert.Equal(t, "Baner", page.Items[1].WardName)
	assert.Equal(t, "Shivaji Nagar", page.Items[2].WardName)

	require.NotNil(t, page.Items[0].ZoneName)
	assert.Equal(t, "South", *page.Items[0].ZoneName)
	assert.Nil(t, page.Items[1].ZoneName)
	assert.Equal(t, "North", *page.Items[2].ZoneName)

	one, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, "North", *one.ZoneName)

	created, err := svc.Create(ctx, CreateWard{WardName: "Kothrud", WardCode: "W4", ZoneID: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, created.WardID)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.ZoneName)
	assert.Equal(t, "South", *created.ZoneName)

	moved, err := svc.Update(ctx, 4, UpdateWard{ZoneID: ptr(1)})
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, "North", *moved.ZoneName)
}

func TestWardSortOverridesDefault(t *testing.T) {
	m := seedMasters()
	svc := NewWardService(m.wards, m.zones, m.uow, testRuntime())

	page, err := svc.GetAll(context.Background(), WardQuery{Parameters: query.Parameters{SortBy: "wardcode", SortOrder: "desc"}})
	require.NoError(t, err)
	assert.Equal(t, "W3", page.Items[0].WardCode)
}

func TestRatesDefaultOrderAndNames(t *testing.T) {
	ctx := context.Background()
	m := seedMasters()
	rates := newMemRepo(m.uow, func(r *domain.Rate) int { return r.RateID }, func(r *domain.Rate, id int) { r.RateID = id },
		domain.Rate{RateID: 1, ZoneID: 2, WardID: 2, TapSizeID: 1, ConnectionTypeID: 1, ConnectionCategoryID: 1, Year: 2023},
		domain.Rate{RateID: 2, ZoneID: 1, WardID: 3, TapSizeID: 1, ConnectionTypeID: 1, ConnectionCategoryID: 1, Year: 2024},
		domain.Rate{RateID: 3, ZoneID: 1, WardID: 1, TapSizeID: 1, ConnectionTypeID: 1, ConnectionCategoryID: 1, Year: 2024},
	)
	svc := NewRateService(rates, RateReferences{
		Zones:                m.zones,
		Wards:                m.wards,
		PipeSizes:            m.pipeSizes,
		ConnectionTypes:      m.types,
		ConnectionCategories: m.categories,
	}, m.uow, testRuntime())

	page, err := svc.GetAll(ctx, RateQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{page.Items[0].RateID, page.Items[1].RateID, page.Items[2].RateID})

	top := page.Items[0]
	assert.Equal(t, "North", *top.ZoneName)
	assert.Equal(t, "N", *top.ZoneCode)
	assert.Equal(t, "Shivaji Nagar", *top.WardName)
	assert.Equal(t, "15 mm", *top.TapSize)
	assert.Equal(t, 15.0, *top.DiameterMM)
	assert.Equal(t, "Domestic", *top.ConnectionTypeName)
	assert.Equal(t, "General", *top.CategoryName)

	filtered, err := svc.GetAll(ctx, RateQuery{Year: ptr(2023)})
	require.NoError(t, err)
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "Aundh", *filtered.Items[0].WardName)
}

func TestConstructionTypesByGroup(t *testing.T) {
	ctx := context.Background()
	uow := &memUnit{}
	repo := newMemRepo[domain.ConstructionType, string](uow, func(c *domain.ConstructionType) string { return c.ConstructionID }, nil,
		domain.ConstructionType{ConstructionID: "C1", Description: "Brick", GroupID: "RCC-Frame"},
		domain.ConstructionType{ConstructionID: "C2", Description: "Concrete", GroupID: "rcc-Load"},
		domain.ConstructionType{ConstructionID: "C3", Description: "Brick", GroupID: "Load Bearing"},
	)
	svc := NewConstructionTypeService(repo, uow, testRuntime())

	page, err := svc.GetAllWithHierarchy(ctx, ConstructionTypeQuery{}, "RCC")
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalCount)

	page, err = svc.GetAllWithHierarchy(ctx, ConstructionTypeQuery{Description: ptr("brick")}, "rcc")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "C1", page.Items[0].ConstructionID)
}

type brokenSource[E any] struct{ err error }

func (b brokenSource[E]) Where(query.Predicate[E]) query.Source[E] { return b }
func (b brokenSource[E]) OrderBy(query.Ordering[E]) query.Source[E] { return b }
func (b brokenSource[E]) Count(context.Context) (int64, error) { return 0, b.err }
func (b brokenSource[E]) Fetch(context.Context, int, int) ([]E, error) {
	return nil, b.err
}

// unreadable serves writes normally but fails every query.
type unreadable[E any, K comparable] struct {
	*memRepo[E, K]
	err error
}

func (u unreadable[E, K]) Query() query.Source[E] { return brokenSource[E]{u.err} }

func TestWardWriteSurvivesFailedZoneLookup(t *testing.T) {
	ctx := context.Background()
	m := seedMasters()
	core, logs := observer.New(zapcore.WarnLevel)
	rt := testRuntime()
	rt.Logger = zap.New(core)
	zones := unreadable[domain.Zone, int]{memRepo: m.zones, err: errors.New("connection reset")}
	svc := NewWardService(m.wards, zones, m.uow, rt)

	created, err := svc.Create(ctx, CreateWard{WardName: "Kothrud", WardCode: "W4", ZoneID: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, created.WardID)
	assert.Nil(t, created.ZoneName)

	exists, err := m.wards.Exists(ctx, 4)
	require.NoError(t, err)
	assert.True(t, exists)

	moved, err := svc.Update(ctx, 4, UpdateWard{ZoneID: ptr(1)})
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, 1, moved.ZoneID)

	require.Equal(t, 2, logs.FilterMessage("reference lookup failed after write").Len())

	// reads still report the failure
	_, err = svc.GetByID(ctx, 4)
	assert.True(t, domain.IsInternal(err), "got %v", err)
}
