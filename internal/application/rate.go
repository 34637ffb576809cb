package application

import (
	"context"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type RateQuery struct {
	query.Parameters
	ZoneID               *int
	WardID               *int
	TapSizeID            *int
	ConnectionTypeID     *int
	ConnectionCategoryID *int
	Year                 *int
	IsActive             *bool
	MinRate              *float64
	MaxRate              *float64
}

var rateFields = query.Describe(
	query.Field("ZoneID", func(q *RateQuery) **int { return &q.ZoneID },
		query.Filter(query.Equals), query.Sort()),
	query.Field("WardID", func(q *RateQuery) **int { return &q.WardID },
		query.Filter(query.Equals), query.Sort()),
	query.Field("TapSizeID", func(q *RateQuery) **int { return &q.TapSizeID },
		query.Filter(query.Equals)),
	query.Field("ConnectionTypeID", func(q *RateQuery) **int { return &q.ConnectionTypeID },
		query.Filter(query.Equals)),
	query.Field("ConnectionCategoryID", func(q *RateQuery) **int { return &q.ConnectionCategoryID },
		query.Filter(query.Equals)),
	query.Field("Year", func(q *RateQuery) **int { return &q.Year },
		query.Filter(query.Equals), query.Sort()),
	query.Field("IsActive", func(q *RateQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Field("MinRate", func(q *RateQuery) **float64 { return &q.MinRate },
		query.Filter(query.GreaterThanOrEqual)),
	query.Field("MaxRate", func(q *RateQuery) **float64 { return &q.MaxRate },
		query.Filter(query.LessThanOrEqual)),
	query.Attribute[RateQuery]("Rate", query.Sort()),
	query.Attribute[RateQuery]("Remark", query.Search()),
)

type RateDTO struct {
	RateID               int        `json:"rateId"`
	ZoneID               int        `json:"zoneId"`
	ZoneName             *string    `json:"zoneName"`
	ZoneCode             *string    `json:"zoneCode"`
	WardID               int        `json:"wardId"`
	WardName             *string    `json:"wardName"`
	WardCode             *string    `json:"wardCode"`
	TapSizeID            int        `json:"tapSizeId"`
	TapSize              *string    `json:"tapSize"`
	DiameterMM           *float64   `json:"diameterMM"`
	ConnectionTypeID     int        `json:"connectionTypeId"`
	ConnectionTypeName   *string    `json:"connectionTypeName"`
	ConnectionCategoryID int        `json:"connectionCategoryId"`
	CategoryName         *string    `json:"categoryName"`
	MinReading           float64    `json:"minReading"`
	MaxReading           float64    `json:"maxReading"`
	PerLiter             float64    `json:"perLiter"`
	MinimumCharge        float64    `json:"minimumCharge"`
	MeterOffPenalty      float64    `json:"meterOffPenalty"`
	Rate                 float64    `json:"rate"`
	Year                 int        `json:"year"`
	Remark               *string    `json:"remark"`
	IsActive             bool       `json:"isActive"`
	CreatedBy            *int       `json:"createdBy,omitempty"`
	CreatedDate          *time.Time `json:"createdDate,omitempty"`
	UpdatedBy            *int       `json:"updatedBy,omitempty"`
	UpdatedDate          *time.Time `json:"updatedDate,omitempty"`
}

type CreateRate struct {
	ZoneID               int     `json:"zoneId"`
	WardID               int     `json:"wardId"`
	TapSizeID            int     `json:"tapSizeId"`
	ConnectionTypeID     int     `json:"connectionTypeId"`
	ConnectionCategoryID int     `json:"connectionCategoryId"`
	MinReading           float64 `json:"minReading"`
	MaxReading           float64 `json:"maxReading"`
	PerLiter             float64 `json:"perLiter"`
	MinimumCharge        float64 `json:"minimumCharge"`
	MeterOffPenalty      float64 `json:"meterOffPenalty"`
	Rate                 float64 `json:"rate"`
	Year                 int     `json:"year"`
	Remark               *string `json:"remark"`
	IsActive             *bool   `json:"isActive,omitempty"`
	CreatedBy            *int    `json:"createdBy,omitempty"`
}

type UpdateRate struct {
	ZoneID               *int     `json:"zoneId,omitempty"`
	WardID               *int     `json:"wardId,omitempty"`
	TapSizeID            *int     `json:"tapSizeId,omitempty"`
	ConnectionTypeID     *int     `json:"connectionTypeId,omitempty"`
	ConnectionCategoryID *int     `json:"connectionCategoryId,omitempty"`
	MinReading           *float64 `json:"minReading,omitempty"`
	MaxReading           *float64 `json:"maxReading,omitempty"`
	PerLiter             *float64 `json:"perLiter,omitempty"`
	MinimumCharge        *float64 `json:"minimumCharge,omitempty"`
	MeterOffPenalty      *float64 `json:"meterOffPenalty,omitempty"`
	Rate                 *float64 `json:"rate,omitempty"`
	Year                 *int     `json:"year,omitempty"`
	Remark               *string  `json:"remark,omitempty"`
	IsActive             *bool    `json:"isActive,omitempty"`
	UpdatedBy            *int     `json:"updatedBy,omitempty"`
}

// RateReferences are the repositories a rate's foreign keys point into.
type RateReferences struct {
	Zones                domain.Repository[domain.Zone, int]
	Wards                domain.Repository[domain.Ward, int]
	PipeSizes            domain.Repository[domain.PipeSize, int]
	ConnectionTypes      domain.Repository[domain.ConnectionType, int]
	ConnectionCategories domain.Repository[domain.ConnectionCategory, int]
}

// RateService decorates every rate it returns with the names behind its foreign keys.
type RateService struct {
	*CrudService[domain.Rate, RateDTO, CreateRate, UpdateRate, RateQuery, int]
	refs RateReferences
}

func NewRateService(repo domain.Repository[domain.Rate, int], refs RateReferences, uow domain.UnitOfWork, rt Runtime) *RateService {
	mapping := NewMapping(rateToDTO, rateFromCreate, mergeRate)
	crud := NewCrudService("rate", repo, uow, mapping, domain.RateSchema, rateFields, rt)
	crud.OrderByDefault(
		query.Desc(domain.RateSchema.MustField("Year")),
		query.Asc(domain.RateSchema.MustField("ZoneID")),
		query.Asc(domain.RateSchema.MustField("WardID")),
	)
	return &RateService{CrudService: crud, refs: refs}
}

func (s *RateService) GetAll(ctx context.Context, params RateQuery) (query.PagedResult[RateDTO], error) {
	page, err := s.CrudService.GetAll(ctx, params)
	if err != nil {
		return page, err
	}
	return page, s.enrich(ctx, ptrs(page.Items))
}

func (s *RateService) GetByID(ctx context.Context, id int, opts ...ReadOption) (*RateDTO, error) {
	dto, err := s.CrudService.GetByID(ctx, id, opts...)
	if err != nil || dto == nil {
		return dto, err
	}
	return dto, s.enrich(ctx, []*RateDTO{dto})
}

func (s *RateService) Create(ctx context.Context, in CreateRate) (RateDTO, error) {
	dto, err := s.CrudService.Create(ctx, in)
	if err != nil {
		return dto, err
	}
	if err := s.enrich(ctx, []*RateDTO{&dto}); err != nil {
		s.rt.lookupFailed(s.name, err)
	}
	return dto, nil
}

func (s *RateService) Update(ctx context.Context, id int, in UpdateRate) (*RateDTO, error) {
	dto, err := s.CrudService.Update(ctx, id, in)
	if err != nil || dto == nil {
		return dto, err
	}
	if err := s.enrich(ctx, []*RateDTO{dto}); err != nil {
		s.rt.lookupFailed(s.name, err)
	}
	return dto, nil
}

func (s *RateService) enrich(ctx context.Context, rates []*RateDTO) error {
	if len(rates) == 0 {
		return nil
	}
	var zoneIDs, wardIDs, sizeIDs, typeIDs, categoryIDs []int
	for _, r := range rates {
		zoneIDs = append(zoneIDs, r.ZoneID)
		wardIDs = append(wardIDs, r.WardID)
		sizeIDs = append(sizeIDs, r.TapSizeID)
		typeIDs = append(typeIDs, r.ConnectionTypeID)
		categoryIDs = append(categoryIDs, r.ConnectionCategoryID)
	}

	zones, err := lookup(ctx, s.refs.Zones.Query(), domain.ZoneSchema.MustField("ZoneID"), zoneIDs)
	if err != nil {
		return domain.ClassifyStorageError("zone", err)
	}
	wards, err := lookup(ctx, s.refs.Wards.Query(), domain.WardSchema.MustField("WardID"), wardIDs)
	if err != nil {
		return domain.ClassifyStorageError("ward", err)
	}
	sizes, err := lookup(ctx, s.refs.PipeSizes.Query(), domain.PipeSizeSchema.MustField("PipeSizeID"), sizeIDs)
	if err != nil {
		return domain.ClassifyStorageError("pipe size", err)
	}
	types, err := lookup(ctx, s.refs.ConnectionTypes.Query(), domain.ConnectionTypeSchema.MustField("ConnectionTypeID"), typeIDs)
	if err != nil {
		return domain.ClassifyStorageError("connection type", err)
	}
	categories, err := lookup(ctx, s.refs.ConnectionCategories.Query(), domain.ConnectionCategorySchema.MustField("CategoryID"), categoryIDs)
	if err != nil {
		return domain.ClassifyStorageError("connection category", err)
	}

	for _, r := range rates {
		if z, ok := zones[r.ZoneID]; ok {
			r.ZoneName, r.ZoneCode = &z.ZoneName, &z.ZoneCode
		}
		if w, ok := wards[r.WardID]; ok {
			r.WardName, r.WardCode = &w.WardName, &w.WardCode
		}
		if p, ok := sizes[r.TapSizeID]; ok {
			r.TapSize, r.DiameterMM = &p.SizeName, &p.DiameterMM
		}
		if t, ok := types[r.ConnectionTypeID]; ok {
			r.ConnectionTypeName = &t.ConnectionTypeName
		}
		if c, ok := categories[r.ConnectionCategoryID]; ok {
			r.CategoryName = &c.CategoryName
		}
	}
	return nil
}

func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func rateToDTO(r domain.Rate) RateDTO {
	return RateDTO{
		RateID:               r.RateID,
		ZoneID:               r.ZoneID,
		WardID:               r.WardID,
		TapSizeID:            r.TapSizeID,
		ConnectionTypeID:     r.ConnectionTypeID,
		ConnectionCategoryID: r.ConnectionCategoryID,
		MinReading:           r.MinReading,
		MaxReading:           r.MaxReading,
		PerLiter:             r.PerLiter,
		MinimumCharge:        r.MinimumCharge,
		MeterOffPenalty:      r.MeterOffPenalty,
		Rate:                 r.Rate,
		Year:                 r.Year,
		Remark:               clonePtr(r.Remark),
		IsActive:             r.IsActive,
		CreatedBy:            clonePtr(r.CreatedBy),
		CreatedDate:          clonePtr(r.CreatedDate),
		UpdatedBy:            clonePtr(r.UpdatedBy),
		UpdatedDate:          clonePtr(r.UpdatedDate),
	}
}

func rateFromCreate(in CreateRate) domain.Rate {
	return domain.Rate{
		ZoneID:               in.ZoneID,
		WardID:               in.WardID,
		TapSizeID:            in.TapSizeID,
		ConnectionTypeID:     in.ConnectionTypeID,
		ConnectionCategoryID: in.ConnectionCategoryID,
		MinReading:           in.MinReading,
		MaxReading:           in.MaxReading,
		PerLiter:             in.PerLiter,
		MinimumCharge:        in.MinimumCharge,
		MeterOffPenalty:      in.MeterOffPenalty,
		Rate:                 in.Rate,
		Year:                 in.Year,
		Remark:               clonePtr(in.Remark),
		IsActive:             activeByDefault(in.IsActive),
		CommonAudit:          domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeRate(r *domain.Rate, in UpdateRate) {
	assign(&r.ZoneID, in.ZoneID)
	assign(&r.WardID, in.WardID)
	assign(&r.TapSizeID, in.TapSizeID)
	assign(&r.ConnectionTypeID, in.ConnectionTypeID)
	assign(&r.ConnectionCategoryID, in.ConnectionCategoryID)
	assign(&r.MinReading, in.MinReading)
	assign(&r.MaxReading, in.MaxReading)
	assign(&r.PerLiter, in.PerLiter)
	assign(&r.MinimumCharge, in.MinimumCharge)
	assign(&r.MeterOffPenalty, in.MeterOffPenalty)
	assign(&r.Rate, in.Rate)
	assign(&r.Year, in.Year)
	assignPtr(&r.Remark, in.Remark)
	assign(&r.IsActive, in.IsActive)
	assignPtr(&r.UpdatedBy, in.UpdatedBy)
}
