package domain

import "time"

// Audit is embedded by the soft-deletable, integer keyed entity family.
type Audit struct {
	ID        int
	CreatedAt time.Time
	UpdatedAt *time.Time
	CreatedBy *string
	UpdatedBy *string
	IsDeleted bool
}

func (a *Audit) StampCreated(at time.Time) { a.CreatedAt = at }
func (a *Audit) StampUpdated(at time.Time) { a.UpdatedAt = &at }
func (a *Audit) MarkDeleted()              { a.IsDeleted = true }
func (a *Audit) Deleted() bool             { return a.IsDeleted }

// CommonAudit is embedded by the hard-deleted master entities.
type CommonAudit struct {
	CreatedDate *time.Time
	UpdatedDate *time.Time
	CreatedBy   *int
	UpdatedBy   *int
}

func (a *CommonAudit) StampCreated(at time.Time) { a.CreatedDate = &at }
func (a *CommonAudit) StampUpdated(at time.Time) { a.UpdatedDate = &at }

// Stamped is implemented through Audit and CommonAudit.
type Stamped interface {
	StampCreated(at time.Time)
	StampUpdated(at time.Time)
}

// SoftDeletable entities are flagged instead of removed.
type SoftDeletable interface {
	MarkDeleted()
	Deleted() bool
}

type Organization struct {
	Audit
	Name            string
	IsActive        bool
	IsSetupComplete bool
}

type Floor struct {
	FloorID            string
	Description        *string
	SequenceNo         *int
	DescriptionEnglish *string
	MaxFloorNo         *int
	CommonAudit
}

type SubFloor struct {
	SubFloorID                 string
	SubFloorDescription        *string
	SubFloorDescriptionEnglish *string
	SubFloorPercentage         *float64
	CommonAudit
}

type ConstructionType struct {
	ConstructionID      string
	Description         string
	DescriptionEnglish  string
	GroupID             string
	KeyboardShortCutKey string
	KeyWiseSequence     *int
	CommonAudit
}

type Zone struct {
	ZoneID   int
	ZoneName string
	ZoneCode string
	IsActive bool
	CommonAudit
}

type Ward struct {
	WardID   int
	WardName string
	WardCode string
	ZoneID   int
	IsActive bool
	CommonAudit
}

type PipeSize struct {
	PipeSizeID int
	SizeName   string
	DiameterMM float64
	IsActive   bool
	CommonAudit
}

type ConnectionType struct {
	ConnectionTypeID   int
	ConnectionTypeName string
	Description        *string
	IsActive           bool
	CommonAudit
}

type ConnectionCategory struct {
	CategoryID   int
	CategoryName string
	Description  *string
	IsActive     bool
	CommonAudit
}

// Rate is one tariff slab for a zone, ward, tap size, connection type and category.
type Rate struct {
	RateID               int
	ZoneID               int
	WardID               int
	TapSizeID            int
	ConnectionTypeID     int
	ConnectionCategoryID int
	MinReading           float64
	MaxReading           float64
	PerLiter             float64
	MinimumCharge        float64
	MeterOffPenalty      float64
	Rate                 float64
	Year                 int
	Remark               *string
	IsActive             bool
	CommonAudit
}

type ConsumerAccount struct {
	ConsumerID          int
	ConsumerNumber      string
	OldConsumerNumber   *string
	ZoneNo              *string
	WardNo              *string
	PropertyNumber      *string
	PartitionNumber     *string
	ConsumerName        string
	ConsumerNameEnglish *string
	MobileNumber        *string
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
