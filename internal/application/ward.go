package application

import (
	"context"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type WardQuery struct {
	query.Parameters
	WardName *string
	WardCode *string
	ZoneID   *int
	IsActive *bool
}

var wardFields = query.Describe(
	query.Field("WardName", func(q *WardQuery) **string { return &q.WardName },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("WardCode", func(q *WardQuery) **string { return &q.WardCode },
		query.Filter(query.Equals), query.Search(), query.Sort()),
	query.Field("ZoneID", func(q *WardQuery) **int { return &q.ZoneID },
		query.Filter(query.Equals), query.Sort()),
	query.Field("IsActive", func(q *WardQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Attribute[WardQuery]("WardID", query.Sort()),
)

type WardDTO struct {
	WardID      int        `json:"wardId"`
	WardName    string     `json:"wardName"`
	WardCode    string     `json:"wardCode"`
	ZoneID      int        `json:"zoneId"`
	ZoneName    *string    `json:"zoneName"`
	IsActive    bool       `json:"isActive"`
	CreatedBy   *int       `json:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedBy   *int       `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

type CreateWard struct {
	WardName  string `json:"wardName"`
	WardCode  string `json:"wardCode"`
	ZoneID    int    `json:"zoneId"`
	IsActive  *bool  `json:"isActive,omitempty"`
	CreatedBy *int   `json:"createdBy,omitempty"`
}

type UpdateWard struct {
	WardName  *string `json:"wardName,omitempty"`
	WardCode  *string `json:"wardCode,omitempty"`
	ZoneID    *int    `json:"zoneId,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
	UpdatedBy *int    `json:"updatedBy,omitempty"`
}

// WardService decorates every ward it returns with the name of its zone.
type WardService struct {
	*CrudService[domain.Ward, WardDTO, CreateWard, UpdateWard, WardQuery, int]
	zones domain.Repository[domain.Zone, int]
}

func NewWardService(repo domain.Repository[domain.Ward, int], zones domain.Repository[domain.Zone, int], uow domain.UnitOfWork, rt Runtime) *WardService {
	mapping := NewMapping(wardToDTO, wardFromCreate, mergeWard)
	crud := NewCrudService("ward", repo, uow, mapping, domain.WardSchema, wardFields, rt)
	crud.OrderByDefault(query.Asc(domain.WardSchema.MustField("WardName")))
	return &WardService{CrudService: crud, zones: zones}
}

func (s *WardService) GetAll(ctx context.Context, params WardQuery) (query.PagedResult[WardDTO], error) {
	page, err := s.CrudService.GetAll(ctx, params)
	if err != nil {
		return page, err
	}
	return page, s.enrich(ctx, ptrs(page.Items))
}

func (s *WardService) GetByID(ctx context.Context, id int, opts ...ReadOption) (*WardDTO, error) {
	dto, err := s.CrudService.GetByID(ctx, id, opts...)
	if err != nil || dto == nil {
		return dto, err
	}
	return dto, s.enrich(ctx, []*WardDTO{dto})
}

func (s *WardService) Create(ctx context.Context, in CreateWard) (WardDTO, error) {
	dto, err := s.CrudService.Create(ctx, in)
	if err != nil {
		return dto, err
	}
	if err := s.enrich(ctx, []*WardDTO{&dto}); err != nil {
		s.rt.lookupFailed(s.name, err)
	}
	return dto, nil
}

func (s *WardService) Update(ctx context.Context, id int, in UpdateWard) (*WardDTO, error) {
	dto, err := s.CrudService.Update(ctx, id, in)
	if err != nil || dto == nil {
		return dto, err
	}
	if err := s.enrich(ctx, []*WardDTO{dto}); err != nil {
		s.rt.lookupFailed(s.name, err)
	}
	return dto, nil
}

func (s *WardService) enrich(ctx context.Context, wards []*WardDTO) error {
	if len(wards) == 0 {
		return nil
	}
	ids := make([]int, 0, len(wards))
	for _, w := range wards {
		ids = append(ids, w.ZoneID)
	}
	zones, err := lookup(ctx, s.zones.Query(), domain.ZoneSchema.MustField("ZoneID"), ids)
	if err != nil {
		return domain.ClassifyStorageError("zone", err)
	}
	for _, w := range wards {
		if z, ok := zones[w.ZoneID]; ok {
			w.ZoneName = &z.ZoneName
		}
	}
	return nil
}

func wardToDTO(w domain.Ward) WardDTO {
	return WardDTO{
		WardID:      w.WardID,
		WardName:    w.WardName,
		WardCode:    w.WardCode,
		ZoneID:      w.ZoneID,
		IsActive:    w.IsActive,
		CreatedBy:   clonePtr(w.CreatedBy),
		CreatedDate: clonePtr(w.CreatedDate),
		UpdatedBy:   clonePtr(w.UpdatedBy),
		UpdatedDate: clonePtr(w.UpdatedDate),
	}
}

func wardFromCreate(in CreateWard) domain.Ward {
	return domain.Ward{
		WardName:    in.WardName,
		WardCode:    in.WardCode,
		ZoneID:      in.ZoneID,
		IsActive:    activeByDefault(in.IsActive),
		CommonAudit: domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeWard(w *domain.Ward, in UpdateWard) {
	assign(&w.WardName, in.WardName)
	assign(&w.WardCode, in.WardCode)
	assign(&w.ZoneID, in.ZoneID)
	assign(&w.IsActive, in.IsActive)
	assignPtr(&w.UpdatedBy, in.UpdatedBy)
}
