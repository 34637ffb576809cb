package application

import (
	"context"
	"strings"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type ConstructionTypeQuery struct {
	query.Parameters
	ConstructionID      *string
	Description         *string
	DescriptionEnglish  *string
	GroupID             *string
	KeyboardShortCutKey *string
	MinKeyWiseSequence  *int
	MaxKeyWiseSequence  *int
}

var constructionTypeFields = query.Describe(
	query.Field("ConstructionID", func(q *ConstructionTypeQuery) **string { return &q.ConstructionID },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("Description", func(q *ConstructionTypeQuery) **string { return &q.Description },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("DescriptionEnglish", func(q *ConstructionTypeQuery) **string { return &q.DescriptionEnglish },
		query.Filter(query.Contains), query.Search()),
	query.Field("GroupID", func(q *ConstructionTypeQuery) **string { return &q.GroupID },
		query.Filter(query.Equals), query.Sort()),
	query.Field("KeyboardShortCutKey", func(q *ConstructionTypeQuery) **string { return &q.KeyboardShortCutKey },
		query.Filter(query.Equals)),
	query.Field("MinKeyWiseSequence", func(q *ConstructionTypeQuery) **int { return &q.MinKeyWiseSequence },
		query.Filter(query.GreaterThanOrEqual)),
	query.Field("MaxKeyWiseSequence", func(q *ConstructionTypeQuery) **int { return &q.MaxKeyWiseSequence },
		query.Filter(query.LessThanOrEqual)),
	query.Attribute[ConstructionTypeQuery]("KeyWiseSequence", query.Sort()),
)

type ConstructionTypeDTO struct {
	ConstructionID      string     `json:"constructionId"`
	Description         string     `json:"description"`
	DescriptionEnglish  string     `json:"descriptionEnglish"`
	GroupID             string     `json:"groupId"`
	KeyboardShortCutKey string     `json:"keyboardShortCutKey"`
	KeyWiseSequence     *int       `json:"keyWiseSequence"`
	CreatedDate         *time.Time `json:"createdDate,omitempty"`
	UpdatedDate         *time.Time `json:"updatedDate,omitempty"`
}

type CreateConstructionType struct {
	ConstructionID      string `json:"constructionId"`
	Description         string `json:"description"`
	DescriptionEnglish  string `json:"descriptionEnglish"`
	GroupID             string `json:"groupId"`
	KeyboardShortCutKey string `json:"keyboardShortCutKey"`
	KeyWiseSequence     *int   `json:"keyWiseSequence"`
	CreatedBy           *int   `json:"createdBy,omitempty"`
}

type UpdateConstructionType struct {
	Description         *string `json:"description,omitempty"`
	DescriptionEnglish  *string `json:"descriptionEnglish,omitempty"`
	GroupID             *string `json:"groupId,omitempty"`
	KeyboardShortCutKey *string `json:"keyboardShortCutKey,omitempty"`
	KeyWiseSequence     *int    `json:"keyWiseSequence,omitempty"`
	UpdatedBy           *int    `json:"updatedBy,omitempty"`
}

type ConstructionTypeService struct {
	*CrudService[domain.ConstructionType, ConstructionTypeDTO, CreateConstructionType, UpdateConstructionType, ConstructionTypeQuery, string]
}

func NewConstructionTypeService(repo domain.Repository[domain.ConstructionType, string], uow domain.UnitOfWork, rt Runtime) *ConstructionTypeService {
	mapping := NewMapping(constructionTypeToDTO, constructionTypeFromCreate, mergeConstructionType)
	return &ConstructionTypeService{
		CrudService: NewCrudService("construction type", repo, uow, mapping, domain.ConstructionTypeSchema, constructionTypeFields, rt),
	}
}

// GetAllWithHierarchy lists like GetAll and additionally keeps only the rows whose GroupID
// contains group, ignoring case.
func (s *ConstructionTypeService) GetAllWithHierarchy(ctx context.Context, params ConstructionTypeQuery, group string) (query.PagedResult[ConstructionTypeDTO], error) {
	src, err := s.Source(&params)
	if err != nil {
		return query.PagedResult[ConstructionTypeDTO]{}, err
	}
	inGroup, err := query.Compare(domain.ConstructionTypeSchema.MustField("GroupID"), query.Contains, strings.ToLower(group))
	if err != nil {
		return query.PagedResult[ConstructionTypeDTO]{}, err
	}
	return s.Page(ctx, src.Where(inGroup), params.Params())
}

func constructionTypeToDTO(c domain.ConstructionType) ConstructionTypeDTO {
	return ConstructionTypeDTO{
		ConstructionID:      c.ConstructionID,
		Description:         c.Description,
		DescriptionEnglish:  c.DescriptionEnglish,
		GroupID:             c.GroupID,
		KeyboardShortCutKey: c.KeyboardShortCutKey,
		KeyWiseSequence:     clonePtr(c.KeyWiseSequence),
		CreatedDate:         clonePtr(c.CreatedDate),
		UpdatedDate:         clonePtr(c.UpdatedDate),
	}
}

func constructionTypeFromCreate(in CreateConstructionType) domain.ConstructionType {
	return domain.ConstructionType{
		ConstructionID:      in.ConstructionID,
		Description:         in.Description,
		DescriptionEnglish:  in.DescriptionEnglish,
		GroupID:             in.GroupID,
		KeyboardShortCutKey: in.KeyboardShortCutKey,
		KeyWiseSequence:     clonePtr(in.KeyWiseSequence),
		CommonAudit:         domain.CommonAudit{CreatedBy: clonePtr(in.CreatedBy)},
	}
}

func mergeConstructionType(c *domain.ConstructionType, in UpdateConstructionType) {
	assign(&c.Description, in.Description)
	assign(&c.DescriptionEnglish, in.DescriptionEnglish)
	assign(&c.GroupID, in.GroupID)
	assign(&c.KeyboardShortCutKey, in.KeyboardShortCutKey)
	assignPtr(&c.KeyWiseSequence, in.KeyWiseSequence)
	assignPtr(&c.UpdatedBy, in.UpdatedBy)
}
