package sqlstore

import (
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/domain"
	"gorm.io/gorm"
)

// Store holds one repository per table, all bound to a single unit of work. Each operation
// begins its own batch on it.
type Store struct {
	DB  *gorm.DB
	UoW *UnitOfWork

	Organizations        *Repository[domain.Organization, OrganizationModel, int]
	Floors               *Repository[domain.Floor, FloorModel, string]
	SubFloors            *Repository[domain.SubFloor, SubFloorModel, string]
	ConstructionTypes    *Repository[domain.ConstructionType, ConstructionTypeModel, string]
	Zones                *Repository[domain.Zone, ZoneModel, int]
	Wards                *Repository[domain.Ward, WardModel, int]
	PipeSizes            *Repository[domain.PipeSize, PipeSizeModel, int]
	ConnectionTypes      *Repository[domain.ConnectionType, ConnectionTypeModel, int]
	ConnectionCategories *Repository[domain.ConnectionCategory, ConnectionCategoryModel, int]
	Rates                *Repository[domain.Rate, RateModel, int]
	ConsumerAccounts     *Repository[domain.ConsumerAccount, ConsumerAccountModel, int]
}

func NewStore(db *gorm.DB) *Store {
	uow := NewUnitOfWork(db)
	return &Store{
		DB:                   db,
		UoW:                  uow,
		Organizations:        NewRepository(uow, OrganizationTable),
		Floors:               NewRepository(uow, FloorTable),
		SubFloors:            NewRepository(uow, SubFloorTable),
		ConstructionTypes:    NewRepository(uow, ConstructionTypeTable),
		Zones:                NewRepository(uow, ZoneTable),
		Wards:                NewRepository(uow, WardTable),
		PipeSizes:            NewRepository(uow, PipeSizeTable),
		ConnectionTypes:      NewRepository(uow, ConnectionTypeTable),
		ConnectionCategories: NewRepository(uow, ConnectionCategoryTable),
		Rates:                NewRepository(uow, RateTable),
		ConsumerAccounts:     NewRepository(uow, ConsumerAccountTable),
	}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
