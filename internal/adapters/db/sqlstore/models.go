package sqlstore

import (
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
)

type OrganizationModel struct {
	ID              int        `gorm:"primaryKey;autoIncrement"`
	Name            string     `gorm:"not null;uniqueIndex"`
	IsActive        bool       `gorm:"not null"`
	IsSetupComplete bool       `gorm:"not null"`
	IsDeleted       bool       `gorm:"not null;index"`
	CreatedAt       time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
	CreatedBy       *string
	UpdatedBy       *string
}

func (OrganizationModel) TableName() string { return "organizations" }

type FloorModel struct {
	FloorID            string `gorm:"primaryKey"`
	Description        *string
	SequenceNo         *int
	DescriptionEnglish *string
	MaxFloorNo         *int
	domain.CommonAudit
}

func (FloorModel) TableName() string { return "floors" }

type SubFloorModel struct {
	SubFloorID                 string `gorm:"primaryKey"`
	SubFloorDescription        *string
	SubFloorDescriptionEnglish *string
	SubFloorPercentage         *float64
	domain.CommonAudit
}

func (SubFloorModel) TableName() string { return "sub_floors" }

type ConstructionTypeModel struct {
	ConstructionID      string `gorm:"primaryKey"`
	Description         string `gorm:"not null"`
	DescriptionEnglish  string `gorm:"not null"`
	GroupID             string `gorm:"not null;index"`
	KeyboardShortCutKey string `gorm:"not null"`
	KeyWiseSequence     *int
	domain.CommonAudit
}

func (ConstructionTypeModel) TableName() string { return "construction_types" }

type ZoneModel struct {
	ZoneID   int    `gorm:"primaryKey;autoIncrement"`
	ZoneName string `gorm:"not null"`
	ZoneCode string `gorm:"not null;uniqueIndex"`
	IsActive bool   `gorm:"not null"`
	domain.CommonAudit
}

func (ZoneModel) TableName() string { return "zones" }

type WardModel struct {
	WardID   int    `gorm:"primaryKey;autoIncrement"`
	WardName string `gorm:"not null"`
	WardCode string `gorm:"not null;uniqueIndex"`
	ZoneID   int    `gorm:"not null;index"`
	IsActive bool   `gorm:"not null"`
	domain.CommonAudit
}

func (WardModel) TableName() string { return "wards" }

type PipeSizeModel struct {
	PipeSizeID int     `gorm:"primaryKey;autoIncrement"`
	SizeName   string  `gorm:"not null;uniqueIndex"`
	DiameterMM float64 `gorm:"column:diameter_mm;not null"`
	IsActive   bool    `gorm:"not null"`
	domain.CommonAudit
}

func (PipeSizeModel) TableName() string { return "pipe_sizes" }

type ConnectionTypeModel struct {
	ConnectionTypeID   int    `gorm:"primaryKey;autoIncrement"`
	ConnectionTypeName string `gorm:"not null;uniqueIndex"`
	Description        *string
	IsActive           bool `gorm:"not null"`
	domain.CommonAudit
}

func (ConnectionTypeModel) TableName() string { return "connection_types" }

type ConnectionCategoryModel struct {
	CategoryID   int    `gorm:"primaryKey;autoIncrement"`
	CategoryName string `gorm:"not null;uniqueIndex"`
	Description  *string
	IsActive     bool `gorm:"not null"`
	domain.CommonAudit
}

func (ConnectionCategoryModel) TableName() string { return "connection_categories" }

type RateModel struct {
	RateID               int `gorm:"primaryKey;autoIncrement"`
	ZoneID               int `gorm:"not null;index"`
	WardID               int `gorm:"not null;index"`
	TapSizeID            int `gorm:"not null"`
	ConnectionTypeID     int `gorm:"not null"`
	ConnectionCategoryID int `gorm:"not null"`
	MinReading           float64
	MaxReading           float64
	PerLiter             float64
	MinimumCharge        float64
	MeterOffPenalty      float64
	Rate                 float64
	Year                 int `gorm:"not null;index"`
	Remark               *string
	IsActive             bool `gorm:"not null"`
	domain.CommonAudit
}

func (RateModel) TableName() string { return "rates" }

type ConsumerAccountModel struct {
	ConsumerID          int    `gorm:"primaryKey;autoIncrement"`
	ConsumerNumber      string `gorm:"not null;uniqueIndex"`
	OldConsumerNumber   *string
	ZoneNo              *string
	WardNo              *string `gorm:"index:idx_consumer_property"`
	PropertyNumber      *string `gorm:"index:idx_consumer_property"`
	PartitionNumber     *string
	ConsumerName        string `gorm:"not null"`
	ConsumerNameEnglish *string
	MobileNumber        *string `gorm:"index"`
	EmailID             *string
	Address             *string
	AddressEnglish      *string
	ConnectionTypeID    int
	CategoryID          int
	PipeSizeID          int
	ConnectionDate      *time.Time
	IsActive            *bool
	Remark              *string
	CreatedDate         *time.Time
	UpdatedDate         *time.Time
}

func (ConsumerAccountModel) TableName() string { return "consumer_accounts" }

// Table bindings map each entity onto its model and key column.

var OrganizationTable = Table[domain.Organization, OrganizationModel, int]{
	Key: "id",
	ToModel: func(o *domain.Organization) OrganizationModel {
		return OrganizationModel{
			ID:              o.ID,
			Name:            o.Name,
			IsActive:        o.IsActive,
			IsSetupComplete: o.IsSetupComplete,
			IsDeleted:       o.IsDeleted,
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
			CreatedBy:       o.CreatedBy,
			UpdatedBy:       o.UpdatedBy,
		}
	},
	FromModel: func(m *OrganizationModel) domain.Organization {
		return domain.Organization{
			Audit: domain.Audit{
				ID:        m.ID,
				CreatedAt: m.CreatedAt.UTC(),
				UpdatedAt: utc(m.UpdatedAt),
				CreatedBy: m.CreatedBy,
				UpdatedBy: m.UpdatedBy,
				IsDeleted: m.IsDeleted,
			},
			Name:            m.Name,
			IsActive:        m.IsActive,
			IsSetupComplete: m.IsSetupComplete,
		}
	},
}

var FloorTable = Table[domain.Floor, FloorModel, string]{
	Key: "floor_id",
	ToModel: func(f *domain.Floor) FloorModel {
		return FloorModel{
			FloorID:            f.FloorID,
			Description:        f.Description,
			SequenceNo:         f.SequenceNo,
			DescriptionEnglish: f.DescriptionEnglish,
			MaxFloorNo:         f.MaxFloorNo,
			CommonAudit:        f.CommonAudit,
		}
	},
	FromModel: func(m *FloorModel) domain.Floor {
		return domain.Floor{
			FloorID:            m.FloorID,
			Description:        m.Description,
			SequenceNo:         m.SequenceNo,
			DescriptionEnglish: m.DescriptionEnglish,
			MaxFloorNo:         m.MaxFloorNo,
			CommonAudit:        utcAudit(m.CommonAudit),
		}
	},
}

var SubFloorTable = Table[domain.SubFloor, SubFloorModel, string]{
	Key: "sub_floor_id",
	ToModel: func(s *domain.SubFloor) SubFloorModel {
		return SubFloorModel{
			SubFloorID:                 s.SubFloorID,
			SubFloorDescription:        s.SubFloorDescription,
			SubFloorDescriptionEnglish: s.SubFloorDescriptionEnglish,
			SubFloorPercentage:         s.SubFloorPercentage,
			CommonAudit:                s.CommonAudit,
		}
	},
	FromModel: func(m *SubFloorModel) domain.SubFloor {
		return domain.SubFloor{
			SubFloorID:                 m.SubFloorID,
			SubFloorDescription:        m.SubFloorDescription,
			SubFloorDescriptionEnglish: m.SubFloorDescriptionEnglish,
			SubFloorPercentage:         m.SubFloorPercentage,
			CommonAudit:                utcAudit(m.CommonAudit),
		}
	},
}

var ConstructionTypeTable = Table[domain.ConstructionType, ConstructionTypeModel, string]{
	Key: "construction_id",
	ToModel: func(c *domain.ConstructionType) ConstructionTypeModel {
		return ConstructionTypeModel{
			ConstructionID:      c.ConstructionID,
			Description:         c.Description,
			DescriptionEnglish:  c.DescriptionEnglish,
			GroupID:             c.GroupID,
			KeyboardShortCutKey: c.KeyboardShortCutKey,
			KeyWiseSequence:     c.KeyWiseSequence,
			CommonAudit:         c.CommonAudit,
		}
	},
	FromModel: func(m *ConstructionTypeModel) domain.ConstructionType {
		return domain.ConstructionType{
			ConstructionID:      m.ConstructionID,
			Description:         m.Description,
			DescriptionEnglish:  m.DescriptionEnglish,
			GroupID:             m.GroupID,
			KeyboardShortCutKey: m.KeyboardShortCutKey,
			KeyWiseSequence:     m.KeyWiseSequence,
			CommonAudit:         utcAudit(m.CommonAudit),
		}
	},
}

var ZoneTable = Table[domain.Zone, ZoneModel, int]{
	Key: "zone_id",
	ToModel: func(z *domain.Zone) ZoneModel {
		return ZoneModel{ZoneID: z.ZoneID, ZoneName: z.ZoneName, ZoneCode: z.ZoneCode, IsActive: z.IsActive, CommonAudit: z.CommonAudit}
	},
	FromModel: func(m *ZoneModel) domain.Zone {
		return domain.Zone{ZoneID: m.ZoneID, ZoneName: m.ZoneName, ZoneCode: m.ZoneCode, IsActive: m.IsActive, CommonAudit: utcAudit(m.CommonAudit)}
	},
}

var WardTable = Table[domain.Ward, WardModel, int]{
	Key: "ward_id",
	ToModel: func(w *domain.Ward) WardModel {
		return WardModel{WardID: w.WardID, WardName: w.WardName, WardCode: w.WardCode, ZoneID: w.ZoneID, IsActive: w.IsActive, CommonAudit: w.CommonAudit}
	},
	FromModel: func(m *WardModel) domain.Ward {
		return domain.Ward{WardID: m.WardID, WardName: m.WardName, WardCode: m.WardCode, ZoneID: m.ZoneID, IsActive: m.IsActive, CommonAudit: utcAudit(m.CommonAudit)}
	},
}

var PipeSizeTable = Table[domain.PipeSize, PipeSizeModel, int]{
	Key: "pipe_size_id",
	ToModel: func(p *domain.PipeSize) PipeSizeModel {
		return PipeSizeModel{PipeSizeID: p.PipeSizeID, SizeName: p.SizeName, DiameterMM: p.DiameterMM, IsActive: p.IsActive, CommonAudit: p.CommonAudit}
	},
	FromModel: func(m *PipeSizeModel) domain.PipeSize {
		return domain.PipeSize{PipeSizeID: m.PipeSizeID, SizeName: m.SizeName, DiameterMM: m.DiameterMM, IsActive: m.IsActive, CommonAudit: utcAudit(m.CommonAudit)}
	},
}

var ConnectionTypeTable = Table[domain.ConnectionType, ConnectionTypeModel, int]{
	Key: "connection_type_id",
	ToModel: func(c *domain.ConnectionType) ConnectionTypeModel {
		return ConnectionTypeModel{
			ConnectionTypeID:   c.ConnectionTypeID,
			ConnectionTypeName: c.ConnectionTypeName,
			Description:        c.Description,
			IsActive:           c.IsActive,
			CommonAudit:        c.CommonAudit,
		}
	},
	FromModel: func(m *ConnectionTypeModel) domain.ConnectionType {
		return domain.ConnectionType{
			ConnectionTypeID:   m.ConnectionTypeID,
			ConnectionTypeName: m.ConnectionTypeName,
			Description:        m.Description,
			IsActive:           m.IsActive,
			CommonAudit:        utcAudit(m.CommonAudit),
		}
	},
}

var ConnectionCategoryTable = Table[domain.ConnectionCategory, ConnectionCategoryModel, int]{
	Key: "category_id",
	ToModel: func(c *domain.ConnectionCategory) ConnectionCategoryModel {
		return ConnectionCategoryModel{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Description:  c.Description,
			IsActive:     c.IsActive,
			CommonAudit:  c.CommonAudit,
		}
	},
	FromModel: func(m *ConnectionCategoryModel) domain.ConnectionCategory {
		return domain.ConnectionCategory{
			CategoryID:   m.CategoryID,
			CategoryName: m.CategoryName,
			Description:  m.Description,
			IsActive:     m.IsActive,
			CommonAudit:  utcAudit(m.CommonAudit),
		}
	},
}

var RateTable = Table[domain.Rate, RateModel, int]{
	Key: "rate_id",
	ToModel: func(r *domain.Rate) RateModel {
		return RateModel{
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
			Remark:               r.Remark,
			IsActive:             r.IsActive,
			CommonAudit:          r.CommonAudit,
		}
	},
	FromModel: func(m *RateModel) domain.Rate {
		return domain.Rate{
			RateID:               m.RateID,
			ZoneID:               m.ZoneID,
			WardID:               m.WardID,
			TapSizeID:            m.TapSizeID,
			ConnectionTypeID:     m.ConnectionTypeID,
			ConnectionCategoryID: m.ConnectionCategoryID,
			MinReading:           m.MinReading,
			MaxReading:           m.MaxReading,
			PerLiter:             m.PerLiter,
			MinimumCharge:        m.MinimumCharge,
			MeterOffPenalty:      m.MeterOffPenalty,
			Rate:                 m.Rate,
			Year:                 m.Year,
			Remark:               m.Remark,
			IsActive:             m.IsActive,
			CommonAudit:          utcAudit(m.CommonAudit),
		}
	},
}

var ConsumerAccountTable = Table[domain.ConsumerAccount, ConsumerAccountModel, int]{
	Key: "consumer_id",
	ToModel: func(c *domain.ConsumerAccount) ConsumerAccountModel {
		return ConsumerAccountModel(*c)
	},
	FromModel: func(m *ConsumerAccountModel) domain.ConsumerAccount {
		c := domain.ConsumerAccount(*m)
		c.ConnectionDate = utc(c.ConnectionDate)
		c.CreatedDate = utc(c.CreatedDate)
		c.UpdatedDate = utc(c.UpdatedDate)
		return c
	},
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func utcAudit(a domain.CommonAudit) domain.CommonAudit {
	a.CreatedDate = utc(a.CreatedDate)
	a.UpdatedDate = utc(a.UpdatedDate)
	return a
}
