package application

import (
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type FloorQuery struct {
	query.Parameters
	FloorID            *string
	Description        *string
	DescriptionEnglish *string
	SequenceNo         *int
	MinSequenceNo      *int
	MaxSequenceNo      *int
	CreatedAfter       *time.Time
	CreatedBefore      *time.Time
}

var floorFields = query.Describe(
	query.Field("FloorID", func(q *FloorQuery) **string { return &q.FloorID },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("Description", func(q *FloorQuery) **string { return &q.Description },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("DescriptionEnglish", func(q *FloorQuery) **string { return &q.DescriptionEnglish },
		query.Filter(query.Contains), query.Search()),
	query.Field("SequenceNo", func(q *FloorQuery) **int { return &q.SequenceNo },
		query.Filter(query.Equals), query.Sort()),
	query.Field("MinSequenceNo", func(q *FloorQuery) **int { return &q.MinSequenceNo },
		query.Filter(query.GreaterThanOrEqual)),
	query.Field("MaxSequenceNo", func(q *FloorQuery) **int { return &q.MaxSequenceNo },
		query.Filter(query.LessThanOrEqual)),
	query.Field("CreatedAfter", func(q *FloorQuery) **time.Time { return &q.CreatedAfter },
		query.FilterOn(query.GreaterThanOrEqual, "CreatedDate")),
	query.Field("CreatedBefore", func(q *FloorQuery) **time.Time { return &q.CreatedBefore },
		query.FilterOn(query.LessThanOrEqual, "CreatedDate")),
	query.Attribute[FloorQuery]("CreatedDate", query.Sort()),
)

type FloorDTO struct {
	FloorID            string     `json:"floorId"`
	Description        *string    `json:"description"`
	SequenceNo         *int       `json:"sequenceNo"`
	DescriptionEnglish *string    `json:"descriptionEnglish"`
	MaxFloorNo         *int       `json:"maxFloorNo"`
	CreatedDate        *time.Time `json:"createdDate,omitempty"`
	UpdatedDate        *time.Time `json:"updatedDate,omitempty"`
}

type CreateFloor struct {
	FloorID            string  `json:"floorId"`
	Description        *string `json:"description"`
	SequenceNo         *int    `json:"sequenceNo"`
	DescriptionEnglish *string `json:"descriptionEnglish"`
	MaxFloorNo         *int    `json:"maxFloorNo"`
	CreatedBy          *int    `json:"createdBy,omitempty"`
}

type UpdateFloor struct {
	Description        *string `json:"description,omitempty"`
	SequenceNo         *int    `json:"sequenceNo,omitempty"`
	DescriptionEnglish *string `json:"descriptionEnglish,omitempty"`
	MaxFloorNo         *int    `json:"maxFloorNo,omitempty"`
	UpdatedBy          *int    `json:"updatedBy,omitempty"`
}

type FloorService = CrudService[domain.Floor, FloorDTO, CreateFloor, UpdateFloor, FloorQuery, string]

func NewFloorService(repo domain.Repository[domain.Floor, string], uow domain.UnitOfWork, rt Runtime) *FloorService {
	mapping := NewMapping(floorToDTO, floorFromCreate, mergeFloor)
	return NewCrudService("floor", repo, uow, mapping, domain.FloorSchema, floorFields, rt)
}

func floorToDTO(f domain.Floor) FloorDTO {
	return FloorDTO{
		FloorID:            f.FloorID,
		Description:        clonePtr(f.Description),
		SequenceNo:         clonePtr(f.SequenceNo),
		DescriptionEnglish: clonePtr(f.DescriptionEnglish),
		MaxFloorNo:         clonePtr(f.MaxFloorNo),
		CreatedDate:        clonePtr(f.CreatedDate),
		UpdatedDate:        clonePtr(f.UpdatedDate),
	}
}

func floorFromCreate(in CreateFloor) domain.Floor {
	return domain.Floor{
		FloorID:            in.FloorID,
		Description:        clonePtr(in.Description),
		SequenceNo:         clonePtr(in.SequenceNo),
		DescriptionEnglish: clonePtr(in.DescriptionEnglish),
		MaxFloorNo:         clonePtr(in.MaxFloorNo),
		CommonAudit:        domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeFloor(f *domain.Floor, in UpdateFloor) {
	assignPtr(&f.Description, in.Description)
	assignPtr(&f.SequenceNo, in.SequenceNo)
	assignPtr(&f.DescriptionEnglish, in.DescriptionEnglish)
	assignPtr(&f.MaxFloorNo, in.MaxFloorNo)
	assignPtr(&f.UpdatedBy, in.UpdatedBy)
}

type SubFloorQuery struct {
	query.Parameters
	SubFloorID                 *string
	SubFloorDescription        *string
	SubFloorDescriptionEnglish *string
	MinPercentage              *float64
	MaxPercentage              *float64
}

var subFloorFields = query.Describe(
	query.Field("SubFloorID", func(q *SubFloorQuery) **string { return &q.SubFloorID },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("SubFloorDescription", func(q *SubFloorQuery) **string { return &q.SubFloorDescription },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("SubFloorDescriptionEnglish", func(q *SubFloorQuery) **string { return &q.SubFloorDescriptionEnglish },
		query.Filter(query.Contains), query.Search()),
	query.Field("MinPercentage", func(q *SubFloorQuery) **float64 { return &q.MinPercentage },
		query.FilterOn(query.GreaterThanOrEqual, "SubFloorPercentage")),
	query.Field("MaxPercentage", func(q *SubFloorQuery) **float64 { return &q.MaxPercentage },
		query.FilterOn(query.LessThanOrEqual, "SubFloorPercentage")),
	query.Attribute[SubFloorQuery]("SubFloorPercentage", query.Sort()),
)

type SubFloorDTO struct {
	SubFloorID                 string     `json:"subFloorId"`
	SubFloorDescription        *string    `json:"subFloorDescription"`
	SubFloorDescriptionEnglish *string    `json:"subFloorDescriptionEnglish"`
	SubFloorPercentage         *float64   `json:"subFloorPercentage"`
	CreatedDate                *time.Time `json:"createdDate,omitempty"`
	UpdatedDate                *time.Time `json:"updatedDate,omitempty"`
}

type CreateSubFloor struct {
	SubFloorID                 string   `json:"subFloorId"`
	SubFloorDescription        *string  `json:"subFloorDescription"`
	SubFloorDescriptionEnglish *string  `json:"subFloorDescriptionEnglish"`
	SubFloorPercentage         *float64 `json:"subFloorPercentage"`
	CreatedBy                  *int     `json:"createdBy,omitempty"`
}

type UpdateSubFloor struct {
	SubFloorDescription        *string  `json:"subFloorDescription,omitempty"`
	SubFloorDescriptionEnglish *string  `json:"subFloorDescriptionEnglish,omitempty"`
	SubFloorPercentage         *float64 `json:"subFloorPercentage,omitempty"`
	UpdatedBy                  *int     `json:"updatedBy,omitempty"`
}

type SubFloorService = CrudService[domain.SubFloor, SubFloorDTO, CreateSubFloor, UpdateSubFloor, SubFloorQuery, string]

func NewSubFloorService(repo domain.Repository[domain.SubFloor, string], uow domain.UnitOfWork, rt Runtime) *SubFloorService {
	mapping := NewMapping(subFloorToDTO, subFloorFromCreate, mergeSubFloor)
	return NewCrudService("sub floor", repo, uow, mapping, domain.SubFloorSchema, subFloorFields, rt)
}

func subFloorToDTO(s domain.SubFloor) SubFloorDTO {
	return SubFloorDTO{
		SubFloorID:                 s.SubFloorID,
		SubFloorDescription:        clonePtr(s.SubFloorDescription),
		SubFloorDescriptionEnglish: clonePtr(s.SubFloorDescriptionEnglish),
		SubFloorPercentage:         clonePtr(s.SubFloorPercentage),
		CreatedDate:                clonePtr(s.CreatedDate),
		UpdatedDate:                clonePtr(s.UpdatedDate),
	}
}

func subFloorFromCreate(in CreateSubFloor) domain.SubFloor {
	return domain.SubFloor{
		SubFloorID:                 in.SubFloorID,
		SubFloorDescription:        clonePtr(in.SubFloorDescription),
		SubFloorDescriptionEnglish: clonePtr(in.SubFloorDescriptionEnglish),
		SubFloorPercentage:         clonePtr(in.SubFloorPercentage),
		CommonAudit:                domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeSubFloor(s *domain.SubFloor, in UpdateSubFloor) {
	assignPtr(&s.SubFloorDescription, in.SubFloorDescription)
	assignPtr(&s.SubFloorDescriptionEnglish, in.SubFloorDescriptionEnglish)
	assignPtr(&s.SubFloorPercentage, in.SubFloorPercentage)
	assignPtr(&s.UpdatedBy, in.UpdatedBy)
}
