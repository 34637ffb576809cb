package application

import (
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

// Zone

type ZoneQuery struct {
	query.Parameters
	ZoneName *string
	ZoneCode *string
	IsActive *bool
}

var zoneFields = query.Describe(
	query.Field("ZoneName", func(q *ZoneQuery) **string { return &q.ZoneName },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("ZoneCode", func(q *ZoneQuery) **string { return &q.ZoneCode },
		query.Filter(query.Equals), query.Search(), query.Sort()),
	query.Field("IsActive", func(q *ZoneQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Attribute[ZoneQuery]("ZoneID", query.Sort()),
)

type ZoneDTO struct {
	ZoneID      int        `json:"zoneId"`
	ZoneName    string     `json:"zoneName"`
	ZoneCode    string     `json:"zoneCode"`
	IsActive    bool       `json:"isActive"`
	CreatedBy   *int       `json:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedBy   *int       `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

type CreateZone struct {
	ZoneName  string `json:"zoneName"`
	ZoneCode  string `json:"zoneCode"`
	IsActive  *bool  `json:"isActive,omitempty"`
	CreatedBy *int   `json:"createdBy,omitempty"`
}

type UpdateZone struct {
	ZoneName  *string `json:"zoneName,omitempty"`
	ZoneCode  *string `json:"zoneCode,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
	UpdatedBy *int    `json:"updatedBy,omitempty"`
}

type ZoneService = CrudService[domain.Zone, ZoneDTO, CreateZone, UpdateZone, ZoneQuery, int]

func NewZoneService(repo domain.Repository[domain.Zone, int], uow domain.UnitOfWork, rt Runtime) *ZoneService {
	mapping := NewMapping(zoneToDTO, zoneFromCreate, mergeZone)
	return NewCrudService("zone", repo, uow, mapping, domain.ZoneSchema, zoneFields, rt)
}

func zoneToDTO(z domain.Zone) ZoneDTO {
	return ZoneDTO{
		ZoneID:      z.ZoneID,
		ZoneName:    z.ZoneName,
		ZoneCode:    z.ZoneCode,
		IsActive:    z.IsActive,
		CreatedBy:   clonePtr(z.CreatedBy),
		CreatedDate: clonePtr(z.CreatedDate),
		UpdatedBy:   clonePtr(z.UpdatedBy),
		UpdatedDate: clonePtr(z.UpdatedDate),
	}
}

func zoneFromCreate(in CreateZone) domain.Zone {
	return domain.Zone{
		ZoneName:    in.ZoneName,
		ZoneCode:    in.ZoneCode,
		IsActive:    activeByDefault(in.IsActive),
		CommonAudit: domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeZone(z *domain.Zone, in UpdateZone) {
	assign(&z.ZoneName, in.ZoneName)
	assign(&z.ZoneCode, in.ZoneCode)
	assign(&z.IsActive, in.IsActive)
	assignPtr(&z.UpdatedBy, in.UpdatedBy)
}

// Pipe size

type PipeSizeQuery struct {
	query.Parameters
	SizeName      *string
	IsActive      *bool
	MinDiameterMM *float64
	MaxDiameterMM *float64
}

var pipeSizeFields = query.Describe(
	query.Field("SizeName", func(q *PipeSizeQuery) **string { return &q.SizeName },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("IsActive", func(q *PipeSizeQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Field("MinDiameterMM", func(q *PipeSizeQuery) **float64 { return &q.MinDiameterMM },
		query.Filter(query.GreaterThanOrEqual)),
	query.Field("MaxDiameterMM", func(q *PipeSizeQuery) **float64 { return &q.MaxDiameterMM },
		query.Filter(query.LessThanOrEqual)),
	query.Attribute[PipeSizeQuery]("DiameterMM", query.Sort()),
)

type PipeSizeDTO struct {
	PipeSizeID  int        `json:"pipeSizeId"`
	SizeName    string     `json:"sizeName"`
	DiameterMM  float64    `json:"diameterMM"`
	IsActive    bool       `json:"isActive"`
	CreatedBy   *int       `json:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedBy   *int       `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

type CreatePipeSize struct {
	SizeName   string  `json:"sizeName"`
	DiameterMM float64 `json:"diameterMM"`
	IsActive   *bool   `json:"isActive,omitempty"`
	CreatedBy  *int    `json:"createdBy,omitempty"`
}

type UpdatePipeSize struct {
	SizeName   *string  `json:"sizeName,omitempty"`
	DiameterMM *float64 `json:"diameterMM,omitempty"`
	IsActive   *bool    `json:"isActive,omitempty"`
	UpdatedBy  *int     `json:"updatedBy,omitempty"`
}

type PipeSizeService = CrudService[domain.PipeSize, PipeSizeDTO, CreatePipeSize, UpdatePipeSize, PipeSizeQuery, int]

func NewPipeSizeService(repo domain.Repository[domain.PipeSize, int], uow domain.UnitOfWork, rt Runtime) *PipeSizeService {
	mapping := NewMapping(pipeSizeToDTO, pipeSizeFromCreate, mergePipeSize)
	return NewCrudService("pipe size", repo, uow, mapping, domain.PipeSizeSchema, pipeSizeFields, rt)
}

func pipeSizeToDTO(p domain.PipeSize) PipeSizeDTO {
	return PipeSizeDTO{
		PipeSizeID:  p.PipeSizeID,
		SizeName:    p.SizeName,
		DiameterMM:  p.DiameterMM,
		IsActive:    p.IsActive,
		CreatedBy:   clonePtr(p.CreatedBy),
		CreatedDate: clonePtr(p.CreatedDate),
		UpdatedBy:   clonePtr(p.UpdatedBy),
		UpdatedDate: clonePtr(p.UpdatedDate),
	}
}

func pipeSizeFromCreate(in CreatePipeSize) domain.PipeSize {
	return domain.PipeSize{
		SizeName:    in.SizeName,
		DiameterMM:  in.DiameterMM,
		IsActive:    activeByDefault(in.IsActive),
		CommonAudit: domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergePipeSize(p *domain.PipeSize, in UpdatePipeSize) {
	assign(&p.SizeName, in.SizeName)
	assign(&p.DiameterMM, in.DiameterMM)
	assign(&p.IsActive, in.IsActive)
	assignPtr(&p.UpdatedBy, in.UpdatedBy)
}

// Connection type

type ConnectionTypeQuery struct {
	query.Parameters
	ConnectionTypeName *string
	IsActive           *bool
}

var connectionTypeFields = query.Describe(
	query.Field("ConnectionTypeName", func(q *ConnectionTypeQuery) **string { return &q.ConnectionTypeName },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("IsActive", func(q *ConnectionTypeQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Attribute[ConnectionTypeQuery]("Description", query.Search()),
)

type ConnectionTypeDTO struct {
	ConnectionTypeID   int        `json:"connectionTypeId"`
	ConnectionTypeName string     `json:"connectionTypeName"`
	Description        *string    `json:"description"`
	IsActive           bool       `json:"isActive"`
	CreatedBy          *int       `json:"createdBy,omitempty"`
	CreatedDate        *time.Time `json:"createdDate,omitempty"`
	UpdatedBy          *int       `json:"updatedBy,omitempty"`
	UpdatedDate        *time.Time `json:"updatedDate,omitempty"`
}

type CreateConnectionType struct {
	ConnectionTypeName string  `json:"connectionTypeName"`
	Description        *string `json:"description"`
	IsActive           *bool   `json:"isActive,omitempty"`
	CreatedBy          *int    `json:"createdBy,omitempty"`
}

type UpdateConnectionType struct {
	ConnectionTypeName *string `json:"connectionTypeName,omitempty"`
	Description        *string `json:"description,omitempty"`
	IsActive           *bool   `json:"isActive,omitempty"`
	UpdatedBy          *int    `json:"updatedBy,omitempty"`
}

type ConnectionTypeService = CrudService[domain.ConnectionType, ConnectionTypeDTO, CreateConnectionType, UpdateConnectionType, ConnectionTypeQuery, int]

func NewConnectionTypeService(repo domain.Repository[domain.ConnectionType, int], uow domain.UnitOfWork, rt Runtime) *ConnectionTypeService {
	mapping := NewMapping(connectionTypeToDTO, connectionTypeFromCreate, mergeConnectionType)
	return NewCrudService("connection type", repo, uow, mapping, domain.ConnectionTypeSchema, connectionTypeFields, rt)
}

func connectionTypeToDTO(c domain.ConnectionType) ConnectionTypeDTO {
	return ConnectionTypeDTO{
		ConnectionTypeID:   c.ConnectionTypeID,
		ConnectionTypeName: c.ConnectionTypeName,
		Description:        clonePtr(c.Description),
		IsActive:           c.IsActive,
		CreatedBy:          clonePtr(c.CreatedBy),
		CreatedDate:        clonePtr(c.CreatedDate),
		UpdatedBy:          clonePtr(c.UpdatedBy),
		UpdatedDate:        clonePtr(c.UpdatedDate),
	}
}

func connectionTypeFromCreate(in CreateConnectionType) domain.ConnectionType {
	return domain.ConnectionType{
		ConnectionTypeName: in.ConnectionTypeName,
		Description:        clonePtr(in.Description),
		IsActive:           activeByDefault(in.IsActive),
		CommonAudit:        domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeConnectionType(c *domain.ConnectionType, in UpdateConnectionType) {
	assign(&c.ConnectionTypeName, in.ConnectionTypeName)
	assignPtr(&c.Description, in.Description)
	assign(&c.IsActive, in.IsActive)
	assignPtr(&c.UpdatedBy, in.UpdatedBy)
}

// Connection category

type ConnectionCategoryQuery struct {
	query.Parameters
	CategoryName *string
	IsActive     *bool
}

var connectionCategoryFields = query.Describe(
	query.Field("CategoryName", func(q *ConnectionCategoryQuery) **string { return &q.CategoryName },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("IsActive", func(q *ConnectionCategoryQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Attribute[ConnectionCategoryQuery]("Description", query.Search()),
)

type ConnectionCategoryDTO struct {
	CategoryID   int        `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Description  *string    `json:"description"`
	IsActive     bool       `json:"isActive"`
	CreatedBy    *int       `json:"createdBy,omitempty"`
	CreatedDate  *time.Time `json:"createdDate,omitempty"`
	UpdatedBy    *int       `json:"updatedBy,omitempty"`
	UpdatedDate  *time.Time `json:"updatedDate,omitempty"`
}

type CreateConnectionCategory struct {
	CategoryName string  `json:"categoryName"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"isActive,omitempty"`
	CreatedBy    *int    `json:"createdBy,omitempty"`
}

type UpdateConnectionCategory struct {
	CategoryName *string `json:"categoryName,omitempty"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
	UpdatedBy    *int    `json:"updatedBy,omitempty"`
}

type ConnectionCategoryService = CrudService[domain.ConnectionCategory, ConnectionCategoryDTO, CreateConnectionCategory, UpdateConnectionCategory, ConnectionCategoryQuery, int]

func NewConnectionCategoryService(repo domain.Repository[domain.ConnectionCategory, int], uow domain.UnitOfWork, rt Runtime) *ConnectionCategoryService {
	mapping := NewMapping(connectionCategoryToDTO, connectionCategoryFromCreate, mergeConnectionCategory)
	return NewCrudService("connection category", repo, uow, mapping, domain.ConnectionCategorySchema, connectionCategoryFields, rt)
}

func connectionCategoryToDTO(c domain.ConnectionCategory) ConnectionCategoryDTO {
	return ConnectionCategoryDTO{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		Description:  clonePtr(c.Description),
		IsActive:     c.IsActive,
		CreatedBy:    clonePtr(c.CreatedBy),
		CreatedDate:  clonePtr(c.CreatedDate),
		UpdatedBy:    clonePtr(c.UpdatedBy),
		UpdatedDate:  clonePtr(c.UpdatedDate),
	}
}

func connectionCategoryFromCreate(in CreateConnectionCategory) domain.ConnectionCategory {
	return domain.ConnectionCategory{
		CategoryName: in.CategoryName,
		Description:  clonePtr(in.Description),
		IsActive:     activeByDefault(in.IsActive),
		CommonAudit:  domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeConnectionCategory(c *domain.ConnectionCategory, in UpdateConnectionCategory) {
	assign(&c.CategoryName, in.CategoryName)
	assignPtr(&c.Description, in.Description)
	assign(&c.IsActive, in.IsActive)
	assignPtr(&c.UpdatedBy, in.UpdatedBy)
}

func activeByDefault(v *bool) bool {
	return v == nil || *v
}
