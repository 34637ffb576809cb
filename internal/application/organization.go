package application

import (
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type OrganizationQuery struct {
	query.Parameters
	Name            *string
	IsActive        *bool
	IsSetupComplete *bool
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
}

var organizationFields = query.Describe(
	query.Field("Name", func(q *OrganizationQuery) **string { return &q.Name },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("IsActive", func(q *OrganizationQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Field("IsSetupComplete", func(q *OrganizationQuery) **bool { return &q.IsSetupComplete },
		query.Filter(query.Equals)),
	query.Field("CreatedAfter", func(q *OrganizationQuery) **time.Time { return &q.CreatedAfter },
		query.FilterOn(query.GreaterThanOrEqual, "CreatedAt")),
	query.Field("CreatedBefore", func(q *OrganizationQuery) **time.Time { return &q.CreatedBefore },
		query.FilterOn(query.LessThanOrEqual, "CreatedAt")),
	query.Attribute[OrganizationQuery]("CreatedAt", query.Sort()),
)

type OrganizationDTO struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	IsActive        bool       `json:"isActive"`
	IsSetupComplete bool       `json:"isSetupComplete"`
	IsDeleted       bool       `json:"isDeleted"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	CreatedBy       *string    `json:"createdBy,omitempty"`
	UpdatedBy       *string    `json:"updatedBy,omitempty"`
}

type CreateOrganization struct {
	Name            string  `json:"name"`
	IsActive        bool    `json:"isActive"`
	IsSetupComplete bool    `json:"isSetupComplete"`
	CreatedBy       *string `json:"createdBy,omitempty"`
}

type UpdateOrganization struct {
	Name            *string `json:"name,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	IsSetupComplete *bool   `json:"isSetupComplete,omitempty"`
	UpdatedBy       *string `json:"updatedBy,omitempty"`
}

type OrganizationService = CrudService[domain.Organization, OrganizationDTO, CreateOrganization, UpdateOrganization, OrganizationQuery, int]

func NewOrganizationService(repo domain.Repository[domain.Organization, int], uow domain.UnitOfWork, rt Runtime) *OrganizationService {
	mapping := NewMapping(organizationToDTO, organizationFromCreate, mergeOrganization)
	return NewCrudService("organization", repo, uow, mapping, domain.OrganizationSchema, organizationFields, rt)
}

func organizationToDTO(o domain.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:              o.ID,
		Name:            o.Name,
		IsActive:        o.IsActive,
		IsSetupComplete: o.IsSetupComplete,
		IsDeleted:       o.IsDeleted,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       clonePtr(o.UpdatedAt),
		CreatedBy:       clonePtr(o.CreatedBy),
		UpdatedBy:       clonePtr(o.UpdatedBy),
	}
}

func organizationFromCreate(in CreateOrganization) domain.Organization {
	return domain.Organization{
		Audit:           domain.Audit{CreatedBy: clonePtr(in.CreatedBy)},
		Name:            in.Name,
		IsActive:        in.IsActive,
		IsSetupComplete: in.IsSetupComplete,
	}
}

func mergeOrganization(o *domain.Organization, in UpdateOrganization) {
	assign(&o.Name, in.Name)
	assign(&o.IsActive, in.IsActive)
	assign(&o.IsSetupComplete, in.IsSetupComplete)
	assignPtr(&o.UpdatedBy, in.UpdatedBy)
}
