package domain

import (
	"time"

	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/query"
)

// Entity schemas name every field the query layer may filter, search or sort on, together with
// its storage column.

var OrganizationSchema = query.NewSchema[Organization]("Organization").
	Int("Id", "id", func(o *Organization) int { return o.ID }).
	String("Name", "name", func(o *Organization) string { return o.Name }).
	Bool("IsActive", "is_active", func(o *Organization) bool { return o.IsActive }).
	Bool("IsSetupComplete", "is_setup_complete", func(o *Organization) bool { return o.IsSetupComplete }).
	Bool("IsDeleted", "is_deleted", func(o *Organization) bool { return o.IsDeleted }).
	Time("CreatedAt", "created_at", func(o *Organization) time.Time { return o.CreatedAt }).
	NullableTime("UpdatedAt", "updated_at", func(o *Organization) *time.Time { return o.UpdatedAt })

var FloorSchema = withCommonAudit(query.NewSchema[Floor]("Floor").
	String("FloorID", "floor_id", func(f *Floor) string { return f.FloorID }).
	NullableString("Description", "description", func(f *Floor) *string { return f.Description }).
	NullableInt("SequenceNo", "sequence_no", func(f *Floor) *int { return f.SequenceNo }).
	NullableString("DescriptionEnglish", "description_english", func(f *Floor) *string { return f.DescriptionEnglish }).
	NullableInt("MaxFloorNo", "max_floor_no", func(f *Floor) *int { return f.MaxFloorNo }),
	func(f *Floor) *CommonAudit { return &f.CommonAudit })

var SubFloorSchema = withCommonAudit(query.NewSchema[SubFloor]("SubFloor").
	String("SubFloorID", "sub_floor_id", func(s *SubFloor) string { return s.SubFloorID }).
	NullableString("SubFloorDescription", "sub_floor_description", func(s *SubFloor) *string { return s.SubFloorDescription }).
	NullableString("SubFloorDescriptionEnglish", "sub_floor_description_english", func(s *SubFloor) *string { return s.SubFloorDescriptionEnglish }).
	NullableFloat("SubFloorPercentage", "sub_floor_percentage", func(s *SubFloor) *float64 { return s.SubFloorPercentage }),
	func(s *SubFloor) *CommonAudit { return &s.CommonAudit })

var ConstructionTypeSchema = withCommonAudit(query.NewSchema[ConstructionType]("ConstructionType").
	String("ConstructionID", "construction_id", func(c *ConstructionType) string { return c.ConstructionID }).
	String("Description", "description", func(c *ConstructionType) string { return c.Description }).
	String("DescriptionEnglish", "description_english", func(c *ConstructionType) string { return c.DescriptionEnglish }).
	String("GroupID", "group_id", func(c *ConstructionType) string { return c.GroupID }).
	String("KeyboardShortCutKey", "keyboard_short_cut_key", func(c *ConstructionType) string { return c.KeyboardShortCutKey }).
	NullableInt("KeyWiseSequence", "key_wise_sequence", func(c *ConstructionType) *int { return c.KeyWiseSequence }),
	func(c *ConstructionType) *CommonAudit { return &c.CommonAudit })

var ZoneSchema = withCommonAudit(query.NewSchema[Zone]("Zone").
	Int("ZoneID", "zone_id", func(z *Zone) int { return z.ZoneID }).
	String("ZoneName", "zone_name", func(z *Zone) string { return z.ZoneName }).
	String("ZoneCode", "zone_code", func(z *Zone) string { return z.ZoneCode }).
	Bool("IsActive", "is_active", func(z *Zone) bool { return z.IsActive }),
	func(z *Zone) *CommonAudit { return &z.CommonAudit })

var WardSchema = withCommonAudit(query.NewSchema[Ward]("Ward").
	Int("WardID", "ward_id", func(w *Ward) int { return w.WardID }).
	String("WardName", "ward_name", func(w *Ward) string { return w.WardName }).
	String("WardCode", "ward_code", func(w *Ward) string { return w.WardCode }).
	Int("ZoneID", "zone_id", func(w *Ward) int { return w.ZoneID }).
	Bool("IsActive", "is_active", func(w *Ward) bool { return w.IsActive }),
	func(w *Ward) *CommonAudit { return &w.CommonAudit })

var PipeSizeSchema = withCommonAudit(query.NewSchema[PipeSize]("PipeSize").
	Int("PipeSizeID", "pipe_size_id", func(p *PipeSize) int { return p.PipeSizeID }).
	String("SizeName", "size_name", func(p *PipeSize) string { return p.SizeName }).
	Float("DiameterMM", "diameter_mm", func(p *PipeSize) float64 { return p.DiameterMM }).
	Bool("IsActive", "is_active", func(p *PipeSize) bool { return p.IsActive }),
	func(p *PipeSize) *CommonAudit { return &p.CommonAudit })

var ConnectionTypeSchema = withCommonAudit(query.NewSchema[ConnectionType]("ConnectionType").
	Int("ConnectionTypeID", "connection_type_id", func(c *ConnectionType) int { return c.ConnectionTypeID }).
	String("ConnectionTypeName", "connection_type_name", func(c *ConnectionType) string { return c.ConnectionTypeName }).
	NullableString("Description", "description", func(c *ConnectionType) *string { return c.Description }).
	Bool("IsActive", "is_active", func(c *ConnectionType) bool { return c.IsActive }),
	func(c *ConnectionType) *CommonAudit { return &c.CommonAudit })

var ConnectionCategorySchema = withCommonAudit(query.NewSchema[ConnectionCategory]("ConnectionCategory").
	Int("CategoryID", "category_id", func(c *ConnectionCategory) int { return c.CategoryID }).
	String("CategoryName", "category_name", func(c *ConnectionCategory) string { return c.CategoryName }).
	NullableString("Description", "description", func(c *ConnectionCategory) *string { return c.Description }).
	Bool("IsActive", "is_active", func(c *ConnectionCategory) bool { return c.IsActive }),
	func(c *ConnectionCategory) *CommonAudit { return &c.CommonAudit })

var RateSchema = withCommonAudit(query.NewSchema[Rate]("Rate").
	Int("RateID", "rate_id", func(r *Rate) int { return r.RateID }).
	Int("ZoneID", "zone_id", func(r *Rate) int { return r.ZoneID }).
	Int("WardID", "ward_id", func(r *Rate) int { return r.WardID }).
	Int("TapSizeID", "tap_size_id", func(r *Rate) int { return r.TapSizeID }).
	Int("ConnectionTypeID", "connection_type_id", func(r *Rate) int { return r.ConnectionTypeID }).
	Int("ConnectionCategoryID", "connection_category_id", func(r *Rate) int { return r.ConnectionCategoryID }).
	Float("MinReading", "min_reading", func(r *Rate) float64 { return r.MinReading }).
	Float("MaxReading", "max_reading", func(r *Rate) float64 { return r.MaxReading }).
	Float("PerLiter", "per_liter", func(r *Rate) float64 { return r.PerLiter }).
	Float("MinimumCharge", "minimum_charge", func(r *Rate) float64 { return r.MinimumCharge }).
	Float("MeterOffPenalty", "meter_off_penalty", func(r *Rate) float64 { return r.MeterOffPenalty }).
	Float("Rate", "rate", func(r *Rate) float64 { return r.Rate }).
	Int("Year", "year", func(r *Rate) int { return r.Year }).
	NullableString("Remark", "remark", func(r *Rate) *string { return r.Remark }).
	Bool("IsActive", "is_active", func(r *Rate) bool { return r.IsActive }),
	func(r *Rate) *CommonAudit { return &r.CommonAudit })

var ConsumerAccountSchema = query.NewSchema[ConsumerAccount]("ConsumerAccount").
	Int("ConsumerID", "consumer_id", func(c *ConsumerAccount) int { return c.ConsumerID }).
	String("ConsumerNumber", "consumer_number", func(c *ConsumerAccount) string { return c.ConsumerNumber }).
	NullableString("OldConsumerNumber", "old_consumer_number", func(c *ConsumerAccount) *string { return c.OldConsumerNumber }).
	NullableString("ZoneNo", "zone_no", func(c *ConsumerAccount) *string { return c.ZoneNo }).
	NullableString("WardNo", "ward_no", func(c *ConsumerAccount) *string { return c.WardNo }).
	NullableString("PropertyNumber", "property_number", func(c *ConsumerAccount) *string { return c.PropertyNumber }).
	NullableString("PartitionNumber", "partition_number", func(c *ConsumerAccount) *string { return c.PartitionNumber }).
	String("ConsumerName", "consumer_name", func(c *ConsumerAccount) string { return c.ConsumerName }).
	NullableString("ConsumerNameEnglish", "consumer_name_english", func(c *ConsumerAccount) *string { return c.ConsumerNameEnglish }).
	NullableString("MobileNumber", "mobile_number", func(c *ConsumerAccount) *string { return c.MobileNumber }).
	NullableString("EmailID", "email_id", func(c *ConsumerAccount) *string { return c.EmailID }).
	NullableString("Address", "address", func(c *ConsumerAccount) *string { return c.Address }).
	Int("ConnectionTypeID", "connection_type_id", func(c *ConsumerAccount) int { return c.ConnectionTypeID }).
	Int("CategoryID", "category_id", func(c *ConsumerAccount) int { return c.CategoryID }).
	Int("PipeSizeID", "pipe_size_id", func(c *ConsumerAccount) int { return c.PipeSizeID }).
	NullableTime("ConnectionDate", "connection_date", func(c *ConsumerAccount) *time.Time { return c.ConnectionDate }).
	NullableBool("IsActive", "is_active", func(c *ConsumerAccount) *bool { return c.IsActive }).
	NullableTime("CreatedDate", "created_date", func(c *ConsumerAccount) *time.Time { return c.CreatedDate })

func withCommonAudit[E any](s *query.Schema[E], audit func(*E) *CommonAudit) *query.Schema[E] {
	return s.
		NullableTime("CreatedDate", "created_date", func(e *E) *time.Time { return audit(e).CreatedDate }).
		NullableTime("UpdatedDate", "updated_date", func(e *E) *time.Time { return audit(e).UpdatedDate }).
		NullableInt("CreatedBy", "created_by", func(e *E) *int { return audit(e).CreatedBy }).
		NullableInt("UpdatedBy", "updated_by", func(e *E) *int { return audit(e).UpdatedBy })
}
