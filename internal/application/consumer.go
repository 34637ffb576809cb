package application

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

type ConsumerQuery struct {
	query.Parameters
	ConsumerNumber     *string
	OldConsumerNumber  *string
	MobileNumber       *string
	WardNo             *string
	PropertyNumber     *string
	ZoneNo             *string
	ConsumerName       *string
	IsActive           *bool
	ConnectionDateFrom *time.Time
	ConnectionDateTo   *time.Time
}

var consumerFields = query.Describe(
	query.Field("ConsumerNumber", func(q *ConsumerQuery) **string { return &q.ConsumerNumber },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("OldConsumerNumber", func(q *ConsumerQuery) **string { return &q.OldConsumerNumber },
		query.Filter(query.Contains), query.Search()),
	query.Field("MobileNumber", func(q *ConsumerQuery) **string { return &q.MobileNumber },
		query.Filter(query.Contains), query.Search()),
	query.Field("WardNo", func(q *ConsumerQuery) **string { return &q.WardNo },
		query.Filter(query.Equals), query.Sort()),
	query.Field("PropertyNumber", func(q *ConsumerQuery) **string { return &q.PropertyNumber },
		query.Filter(query.Contains)),
	query.Field("ZoneNo", func(q *ConsumerQuery) **string { return &q.ZoneNo },
		query.Filter(query.Equals), query.Sort()),
	query.Field("ConsumerName", func(q *ConsumerQuery) **string { return &q.ConsumerName },
		query.Filter(query.Contains), query.Search(), query.Sort()),
	query.Field("IsActive", func(q *ConsumerQuery) **bool { return &q.IsActive },
		query.Filter(query.Equals), query.Sort()),
	query.Field("ConnectionDateFrom", func(q *ConsumerQuery) **time.Time { return &q.ConnectionDateFrom },
		query.FilterOn(query.GreaterThanOrEqual, "ConnectionDate")),
	query.Field("ConnectionDateTo", func(q *ConsumerQuery) **time.Time { return &q.ConnectionDateTo },
		query.FilterOn(query.LessThanOrEqual, "ConnectionDate")),
	query.Attribute[ConsumerQuery]("ConsumerNameEnglish", query.Search()),
	query.Attribute[ConsumerQuery]("ConsumerID", query.Sort()),
)

type ConsumerAccountDTO struct {
	ConsumerID          int        `json:"consumerId"`
	ConsumerNumber      string     `json:"consumerNumber"`
	OldConsumerNumber   *string    `json:"oldConsumerNumber"`
	ZoneNo              *string    `json:"zoneNo"`
	WardNo              *string    `json:"wardNo"`
	PropertyNumber      *string    `json:"propertyNumber"`
	PartitionNumber     *string    `json:"partitionNumber"`
	ConsumerName        string     `json:"consumerName"`
	ConsumerNameEnglish *string    `json:"consumerNameEnglish"`
	MobileNumber        *string    `json:"mobileNumber"`
	EmailID             *string    `json:"emailId"`
	Address             *string    `json:"address"`
	AddressEnglish      *string    `json:"addressEnglish"`
	ConnectionTypeID    int        `json:"connectionTypeId"`
	CategoryID          int        `json:"categoryId"`
	PipeSizeID          int        `json:"pipeSizeId"`
	ConnectionTypeName  *string    `json:"connectionTypeName"`
	CategoryName        *string    `json:"categoryName"`
	PipeSize            *string    `json:"pipeSize"`
	ConnectionDate      *time.Time `json:"connectionDate"`
	IsActive            *bool      `json:"isActive"`
	Remark              *string    `json:"remark"`
	CreatedDate         *time.Time `json:"createdDate,omitempty"`
	UpdatedDate         *time.Time `json:"updatedDate,omitempty"`
}

// ConsumerReferences are the master repositories a consumer account points into.
type ConsumerReferences struct {
	ConnectionTypes      domain.Repository[domain.ConnectionType, int]
	ConnectionCategories domain.Repository[domain.ConnectionCategory, int]
	PipeSizes            domain.Repository[domain.PipeSize, int]
}

// ConsumerService is read-only. Lists default to active consumers.
type ConsumerService struct {
	*ReadService[domain.ConsumerAccount, ConsumerAccountDTO, ConsumerQuery, int]
	refs ConsumerReferences
}

func NewConsumerService(repo domain.Repository[domain.ConsumerAccount, int], refs ConsumerReferences, rt Runtime) *ConsumerService {
	read := NewReadService("consumer", repo, domain.ConsumerAccountSchema, consumerFields, consumerToDTO, rt)
	read.OrderByDefault(query.Asc(domain.ConsumerAccountSchema.MustField("ConsumerID")))
	return &ConsumerService{ReadService: read, refs: refs}
}

func (s *ConsumerService) GetAll(ctx context.Context, params ConsumerQuery) (query.PagedResult[ConsumerAccountDTO], error) {
	if params.IsActive == nil {
		active := true
		params.IsActive = &active
	}
	page, err := s.ReadService.GetAll(ctx, params)
	if err != nil {
		return page, err
	}
	return page, s.enrich(ctx, ptrs(page.Items))
}

func (s *ConsumerService) GetByID(ctx context.Context, id int, opts ...ReadOption) (*ConsumerAccountDTO, error) {
	dto, err := s.ReadService.GetByID(ctx, id, opts...)
	if err != nil || dto == nil {
		return dto, err
	}
	return dto, s.enrich(ctx, []*ConsumerAccountDTO{dto})
}

// FindConsumer resolves one active consumer from any identifier a clerk might type: a
// ward-property[-partition] pattern, a consumer or old consumer number, a mobile number, a
// name, an email, a property or partition number, or the numeric id. Matching ignores case and
// the lowest id wins. It returns nil when nothing matches.
func (s *ConsumerService) FindConsumer(ctx context.Context, value string) (*ConsumerAccountDTO, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if strings.Contains(value, "-") {
		found, err := s.findByPattern(ctx, value)
		if err != nil || found != nil {
			return found, err
		}
	}
	return s.findByValue(ctx, value)
}

func (s *ConsumerService) findByPattern(ctx context.Context, pattern string) (*ConsumerAccountDTO, error) {
	parts := strings.Split(pattern, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return nil, nil
	}

	schema := domain.ConsumerAccountSchema
	terms := []query.Predicate[domain.ConsumerAccount]{}
	add := func(field string, value any) error {
		p, err := query.Equal(schema.MustField(field), value)
		if err != nil {
			return err
		}
		terms = append(terms, p)
		return nil
	}

	if err := add("IsActive", true); err != nil {
		return nil, err
	}
	if err := add("WardNo", parts[0]); err != nil {
		return nil, err
	}
	if parts[1] != "" {
		if err := add("PropertyNumber", parts[1]); err != nil {
			return nil, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if err := add("PartitionNumber", parts[2]); err != nil {
			return nil, err
		}
	}
	return s.first(ctx, query.All(terms...))
}

func (s *ConsumerService) findByValue(ctx context.Context, value string) (*ConsumerAccountDTO, error) {
	schema := domain.ConsumerAccountSchema
	var alternatives []query.Predicate[domain.ConsumerAccount]
	for _, name := range []string{
		"ConsumerNumber", "MobileNumber", "ConsumerName", "ConsumerNameEnglish",
		"OldConsumerNumber", "EmailID", "PropertyNumber", "PartitionNumber",
	} {
		p, err := query.Equal(schema.MustField(name), value)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, p)
	}
	if id, err := strconv.Atoi(value); err == nil {
		p, err := query.Equal(schema.MustField("ConsumerID"), id)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, p)
	}

	active, err := query.Equal(schema.MustField("IsActive"), true)
	if err != nil {
		return nil, err
	}
	return s.first(ctx, query.All[domain.ConsumerAccount](active, query.Any(alternatives...)))
}

func (s *ConsumerService) first(ctx context.Context, where query.Predicate[domain.ConsumerAccount]) (*ConsumerAccountDTO, error) {
	rows, err := s.repo.Query().
		Where(where).
		OrderBy(query.Asc(domain.ConsumerAccountSchema.MustField("ConsumerID"))).
		Fetch(ctx, 0, 1)
	if err != nil {
		return nil, domain.ClassifyStorageError(s.name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	dto := consumerToDTO(rows[0])
	return &dto, s.enrich(ctx, []*ConsumerAccountDTO{&dto})
}

func (s *ConsumerService) enrich(ctx context.Context, consumers []*ConsumerAccountDTO) error {
	if len(consumers) == 0 {
		return nil
	}
	var typeIDs, categoryIDs, sizeIDs []int
	for _, c := range consumers {
		typeIDs = append(typeIDs, c.ConnectionTypeID)
		categoryIDs = append(categoryIDs, c.CategoryID)
		sizeIDs = append(sizeIDs, c.PipeSizeID)
	}

	types, err := lookup(ctx, s.refs.ConnectionTypes.Query(), domain.ConnectionTypeSchema.MustField("ConnectionTypeID"), typeIDs)
	if err != nil {
		return domain.ClassifyStorageError("connection type", err)
	}
	categories, err := lookup(ctx, s.refs.ConnectionCategories.Query(), domain.ConnectionCategorySchema.MustField("CategoryID"), categoryIDs)
	if err != nil {
		return domain.ClassifyStorageError("connection category", err)
	}
	sizes, err := lookup(ctx, s.refs.PipeSizes.Query(), domain.PipeSizeSchema.MustField("PipeSizeID"), sizeIDs)
	if err != nil {
		return domain.ClassifyStorageError("pipe size", err)
	}

	for _, c := range consumers {
		if t, ok := types[c.ConnectionTypeID]; ok {
			c.ConnectionTypeName = &t.ConnectionTypeName
		}
		if k, ok := categories[c.CategoryID]; ok {
			c.CategoryName = &k.CategoryName
		}
		if p, ok := sizes[c.PipeSizeID]; ok {
			c.PipeSize = &p.SizeName
		}
	}
	return nil
}

func consumerToDTO(c domain.ConsumerAccount) ConsumerAccountDTO {
	return ConsumerAccountDTO{
		ConsumerID:          c.ConsumerID,
		ConsumerNumber:      c.ConsumerNumber,
		OldConsumerNumber:   clonePtr(c.OldConsumerNumber),
		ZoneNo:              clonePtr(c.ZoneNo),
		WardNo:              clonePtr(c.WardNo),
		PropertyNumber:      clonePtr(c.PropertyNumber),
		PartitionNumber:     clonePtr(c.PartitionNumber),
		ConsumerName:        c.ConsumerName,
		ConsumerNameEnglish: clonePtr(c.ConsumerNameEnglish),
		MobileNumber:        clonePtr(c.MobileNumber),
		EmailID:             clonePtr(c.EmailID),
		Address:             clonePtr(c.Address),
		AddressEnglish:      clonePtr(c.AddressEnglish),
		ConnectionTypeID:    c.ConnectionTypeID,
		CategoryID:          c.CategoryID,
		PipeSizeID:          c.PipeSizeID,
		ConnectionDate:      clonePtr(c.ConnectionDate),
		IsActive:            clonePtr(c.IsActive),
		Remark:              clonePtr(c.Remark),
		CreatedDate:         clonePtr(c.CreatedDate),
		UpdatedDate:         clonePtr(c.UpdatedDate),
	}
}
